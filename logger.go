package categorizer

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with categorizer-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// LogAdd logs an insert. replaced is true when the value was already present
// and its category set got overwritten.
func (l *Logger) LogAdd(ctx context.Context, categories int, replaced bool) {
	l.DebugContext(ctx, "add completed",
		"categories", categories,
		"replaced", replaced,
	)
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(ctx context.Context, err error) {
	if err != nil {
		l.DebugContext(ctx, "remove failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "remove completed")
	}
}

// LogLookup logs a category lookup.
func (l *Logger) LogLookup(ctx context.Context, kind LookupKind, categories, results int, err error) {
	if err != nil {
		l.DebugContext(ctx, "lookup failed",
			"kind", kind.String(),
			"categories", categories,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "lookup completed",
			"kind", kind.String(),
			"categories", categories,
			"results", results,
		)
	}
}

// LogRules logs a rule evaluation pass.
func (l *Logger) LogRules(ctx context.Context, evaluated, matched int) {
	l.DebugContext(ctx, "rules evaluated",
		"evaluated", evaluated,
		"matched", matched,
	)
}

// LogRemoveAll logs a bulk remove.
func (l *Logger) LogRemoveAll(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "remove all completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.DebugContext(ctx, "remove all completed",
			"count", count,
		)
	}
}
