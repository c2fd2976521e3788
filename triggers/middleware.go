package triggers

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Middleware wraps a Handler with cross-cutting behavior (logging, recovery).
type Middleware func(Handler) Handler

// WithLogging returns a middleware that logs handler start, end, duration and errors.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Handler) Handler {
		return func(ctx context.Context, ev Event) error {
			logger.Info("trigger start", "metadata", ev.Metadata)
			start := time.Now()
			err := next(ctx, ev)
			dur := time.Since(start)
			if err != nil {
				logger.Error("trigger error", "duration", dur, "error", err)
				return err
			}
			logger.Info("trigger end", "duration", dur)
			return nil
		}
	}
}

// PanicError is returned by handlers wrapped with WithRecovery when they panic.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("trigger handler panicked: %v", e.Value)
}

// WithRecovery returns a middleware that turns handler panics into *PanicError.
func WithRecovery() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, ev Event) (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = &PanicError{Value: p}
				}
			}()
			return next(ctx, ev)
		}
	}
}
