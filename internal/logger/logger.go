// Package logger carries a [slog.Logger] through a context.
package logger

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

type ctxKey string

const loggerKey ctxKey = "logger"

var discard = slog.New(slog.DiscardHandler)

// New returns a logger writing tinted, human-readable records to w.
// Colors are emitted unless noColor is set; callers decide that from the
// configuration and whether w is a terminal.
func New(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

// Put returns a new context with the provided logger.
func Put(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Get retrieves the logger from the context.
//
// If the context has no logger, it returns one that discards all messages.
func Get(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return discard
}
