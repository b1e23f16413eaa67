package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"pizzaorder/internal/pkg/logger"
)

// InterruptContext returns the context a run executes under. Only the tracker
// watch loop listens for Ctrl-C on it; any other run keeps the default SIGINT
// handling, so an interrupt at a prompt ends the process at once.
func InterruptContext(parent context.Context, watching bool) (context.Context, context.CancelFunc) {
	if !watching {
		return context.WithCancel(parent)
	}
	return signal.NotifyContext(parent, os.Interrupt)
}

// SyncLogger flushes log. Sync on a terminal stream reports EINVAL or ENOTTY,
// which is not a lost write and is not returned.
func SyncLogger(log logger.Logger) error {
	err := log.Sync()
	if err == nil || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
