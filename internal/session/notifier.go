package session

import (
	"github.com/sirupsen/logrus"
)

// Notifier is the fire-and-forget notification surface. Implementations
// must not fail; duplicate delivery is acceptable.
type Notifier interface {
	NotifySuccess(message string)
	NotifyError(message string)
}

// LogNotifier reports notifications through the application logger.
type LogNotifier struct {
	logger *logrus.Logger
}

// NewLogNotifier creates a notifier backed by logger.
func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// NotifySuccess logs a success notification.
func (n *LogNotifier) NotifySuccess(message string) {
	n.logger.WithField("notification", "success").Info(message)
}

// NotifyError logs an error notification.
func (n *LogNotifier) NotifyError(message string) {
	n.logger.WithField("notification", "error").Error(message)
}
