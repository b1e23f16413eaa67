package logger

import (
	"errors"

	"go.uber.org/zap/zapcore"
)

type Option func(*ZapLogger)

func MaxSize(size int) Option {
	return func(l *ZapLogger) {
		l.maxSize = size
	}
}

func MaxBackups(backups int) Option {
	return func(l *ZapLogger) {
		l.maxBackups = backups
	}
}

func MaxAge(age int) Option {
	return func(l *ZapLogger) {
		l.maxAge = age
	}
}

func SetLevel(level zapcore.Level) Option {
	return func(l *ZapLogger) {
		l.level = level
	}
}

// WithConsole tees every entry to stderr in addition to the log file.
func WithConsole(enabled bool) Option {
	return func(l *ZapLogger) {
		l.console = enabled
	}
}

// WithFields attaches constant fields (service name, environment) to every entry.
func WithFields(keysAndValues ...any) Option {
	return func(l *ZapLogger) {
		l.fields = append(l.fields, keysAndValues...)
	}
}

func (l *ZapLogger) validate() error {
	if l.filename == "" {
		return errors.New("invalid filename: must not be empty")
	}
	if l.maxSize <= 0 {
		return errors.New("invalid maxSize: must be > 0")
	}
	if l.maxBackups < 0 {
		return errors.New("invalid maxBackups: must be >= 0")
	}
	if l.maxAge <= 0 {
		return errors.New("invalid maxAge: must be > 0")
	}
	return nil
}
