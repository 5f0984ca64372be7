package sampleframe

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sampleframe-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithShape adds the dataset shape to the logger.
func (l *Logger) WithShape(nsamples, nfeatures int) *Logger {
	return &Logger{
		Logger: l.Logger.With("nsamples", nsamples, "nfeatures", nfeatures),
	}
}

// LogSelect logs a metadata selection operation.
func (l *Logger) LogSelect(ctx context.Context, op string, fields []string, nsamples, nfeatures int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "selection failed",
			"op", op,
			"fields", fields,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "selection completed",
			"op", op,
			"fields", fields,
			"nsamples", nsamples,
			"nfeatures", nfeatures,
		)
	}
}

// LogConcat logs a sample-axis concatenation.
func (l *Logger) LogConcat(ctx context.Context, operands, nsamples int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "concatenation failed",
			"operands", operands,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "concatenation completed",
			"operands", operands,
			"nsamples", nsamples,
		)
	}
}

// LogFilter logs a chunk-grouped in-place operation.
func (l *Logger) LogFilter(ctx context.Context, op string, chunks int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "in-place filter failed",
			"op", op,
			"chunks", chunks,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "in-place filter completed",
			"op", op,
			"chunks", chunks,
		)
	}
}
