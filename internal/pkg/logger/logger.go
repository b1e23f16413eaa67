// Package logger wraps zap for the session log. Output goes to a rotating file
// so that stdout stays free for the interactive console.
package logger

import (
	"github.com/google/uuid"
)

// Logger is the structured logger used across the application.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	With(keysAndValues ...any) Logger
	Sync() error
}

// NewSessionID returns a fresh identifier used to correlate the log lines of one
// ordering session.
func NewSessionID() string {
	return uuid.New().String()
}
