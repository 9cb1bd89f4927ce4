// Package session implements the edit workflow over one personnel
// record: draft mutation with field normalization, validation, the
// save/delete transitions against the record store, and the document
// reference lifecycle on the draft.
package session

import (
	"github.com/gestionale-hr/personnel-backend/internal/models"
)

// RecordStore is the narrow store interface the workflow consumes.
// Create and Update return the record identifier; Create assigns it.
type RecordStore interface {
	ListRecords() ([]models.Employee, error)
	GetRecord(id string) (*models.Employee, error)
	CreateRecord(record *models.Employee) (string, error)
	UpdateRecord(record *models.Employee) (string, error)
	DeleteRecord(id string) error
}

// State is the workflow state of a session.
type State string

const (
	StateViewing  State = "viewing"
	StateEditing  State = "editing"
	StateSaving   State = "saving"
	StateDeleting State = "deleting"
	StateRemoved  State = "removed"
)

// requiredFields must be non-empty before a save reaches the store.
var requiredFields = []string{"name", "surname", "phone", "email", "gender", "tax_code", "employed"}

// Result carries the outcome of a successful save or delete: the
// notification message and the path the client should navigate to.
type Result struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

// Session manages one record through the viewing/editing/saving
// lifecycle. It is bound to a single user interaction and is not safe
// for concurrent use.
type Session struct {
	collection string
	store      RecordStore
	notifier   Notifier

	state    State
	record   *models.Employee // last persisted snapshot
	draft    *models.Employee // mutable copy while editing
	rollback *models.Employee // snapshot taken on edit entry
	closed   bool
}

// New opens a session over an existing persisted record, starting in
// viewing state.
func New(collection string, record *models.Employee, store RecordStore, notifier Notifier) *Session {
	return &Session{
		collection: collection,
		store:      store,
		notifier:   notifier,
		state:      StateViewing,
		record:     record.Clone(),
	}
}

// NewDraft opens a session for a record that has never been persisted,
// starting in editing state with an empty draft.
func NewDraft(collection string, store RecordStore, notifier Notifier) *Session {
	return &Session{
		collection: collection,
		store:      store,
		notifier:   notifier,
		state:      StateEditing,
		draft:      &models.Employee{},
	}
}

// State returns the current workflow state.
func (s *Session) State() State {
	return s.state
}

// Record returns the last persisted snapshot, nil for a new draft.
func (s *Session) Record() *models.Employee {
	return s.record
}

// Draft returns the mutable draft, nil outside editing.
func (s *Session) Draft() *models.Employee {
	return s.draft
}

// Close marks the session dead. Outcomes of operations still in flight
// are discarded, so a stale completion cannot mutate state after the
// user has navigated away.
func (s *Session) Close() {
	s.closed = true
}

// Edit transitions viewing -> editing, snapshotting the persisted
// record as the rollback target.
func (s *Session) Edit() error {
	if s.closed {
		return ErrClosed
	}
	if s.state != StateViewing {
		return ErrNotViewing
	}
	s.rollback = s.record.Clone()
	s.draft = s.record.Clone()
	s.state = StateEditing
	return nil
}

// Apply copies the editable fields of input onto the draft and runs the
// field normalization rules. The identifier is never overwritten.
func (s *Session) Apply(input *models.Employee) error {
	if s.closed {
		return ErrClosed
	}
	if s.state != StateEditing {
		return ErrNotEditing
	}
	id := s.draft.ID
	*s.draft = *input.Clone()
	s.draft.ID = id
	s.draft.Normalize()
	return nil
}

// AddDocument appends ref to the draft's document list unless it is
// already present.
func (s *Session) AddDocument(ref string) error {
	if s.closed {
		return ErrClosed
	}
	if s.state != StateEditing {
		return ErrNotEditing
	}
	if s.draft.HasDocument(ref) {
		return nil
	}
	s.draft.Documents = append(s.draft.Documents, ref)
	return nil
}

// RemoveDocument removes ref from the draft's document list; absent
// refs are a no-op.
func (s *Session) RemoveDocument(ref string) error {
	if s.closed {
		return ErrClosed
	}
	if s.state != StateEditing {
		return ErrNotEditing
	}
	for i, doc := range s.draft.Documents {
		if doc == ref {
			s.draft.Documents = append(s.draft.Documents[:i], s.draft.Documents[i+1:]...)
			return nil
		}
	}
	return nil
}

// Cancel discards the draft of an existing record and restores the
// rollback snapshot taken when editing began. A never-persisted draft
// has nothing to revert to; callers navigate away instead.
func (s *Session) Cancel() error {
	if s.closed {
		return ErrClosed
	}
	if s.state != StateEditing {
		return ErrNotEditing
	}
	if s.record == nil {
		return ErrNotViewing
	}
	s.record = s.rollback
	s.rollback = nil
	s.draft = nil
	s.state = StateViewing
	return nil
}

// Save validates the draft and commits it through the store. Validation
// failures never reach the store and leave the session editing. Store
// failures revert to editing with the draft values intact. On success
// the draft becomes the persisted snapshot and the session returns to
// viewing with a redirect to the record page.
func (s *Session) Save() (*Result, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.state == StateSaving || s.state == StateDeleting {
		return nil, ErrBusy
	}
	if s.state != StateEditing {
		return nil, ErrNotEditing
	}

	for _, field := range requiredFields {
		if s.draft.Field(field) == "" {
			err := &ValidationError{Field: field, Message: "required field is missing"}
			s.notifier.NotifyError(err.Error())
			return nil, err
		}
	}

	s.state = StateSaving

	var (
		id  string
		err error
	)
	if s.draft.ID == "" {
		id, err = s.store.CreateRecord(s.draft)
	} else {
		id, err = s.store.UpdateRecord(s.draft)
	}

	if s.closed {
		return nil, ErrClosed
	}
	if err != nil {
		s.state = StateEditing
		s.notifier.NotifyError(err.Error())
		return nil, err
	}

	s.draft.ID = id
	s.record = s.draft.Clone()
	s.draft = nil
	s.rollback = nil
	s.state = StateViewing

	result := &Result{
		Message:  "record saved",
		Redirect: "/" + s.collection + "/" + id,
	}
	s.notifier.NotifySuccess(result.Message)
	return result, nil
}

// Delete removes the persisted record. A record without an identifier
// was never persisted; deleting it is a validation error and no store
// call is made. On failure the session stays in viewing with the record
// untouched.
func (s *Session) Delete() (*Result, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.state == StateSaving || s.state == StateDeleting {
		return nil, ErrBusy
	}
	if s.state != StateViewing {
		return nil, ErrNotViewing
	}
	if s.record == nil || s.record.ID == "" {
		err := &ValidationError{Message: "record has no identifier"}
		s.notifier.NotifyError(err.Error())
		return nil, err
	}

	s.state = StateDeleting
	err := s.store.DeleteRecord(s.record.ID)

	if s.closed {
		return nil, ErrClosed
	}
	if err != nil {
		s.state = StateViewing
		s.notifier.NotifyError(err.Error())
		return nil, err
	}

	s.state = StateRemoved
	result := &Result{
		Message:  "record deleted",
		Redirect: "/" + s.collection,
	}
	s.notifier.NotifySuccess(result.Message)
	return result, nil
}
