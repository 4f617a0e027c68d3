package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// FromContext retrieves a Logger from context, or returns the default logger.
// The logger is stored under charmbracelet/log's own context key, so
// packages calling log.FromContext directly see the same logger.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(log.ContextKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithLogger returns a context with the given logger attached.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return log.WithContext(ctx, logger)
}
