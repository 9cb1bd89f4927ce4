package session

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when a save or delete is requested while another
// one is still in flight on the same session.
var ErrBusy = errors.New("another operation is already in flight")

// ErrClosed is returned when the session has been closed; late
// completions are discarded instead of applied.
var ErrClosed = errors.New("session is closed")

// ErrNotEditing is returned when a draft mutation or save is attempted
// outside the editing state.
var ErrNotEditing = errors.New("record is not being edited")

// ErrNotViewing is returned when a delete or edit is attempted outside
// the viewing state.
var ErrNotViewing = errors.New("record is not in viewing state")

// ValidationError reports a request rejected locally before any store
// call: a missing required field, or a delete without an identifier.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// IsValidationError reports whether err is a local validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
