package bitgraph

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with bitgraph-specific context.
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
	return NewJSONLoggerTo(os.Stderr, level)
}

// NewJSONLoggerTo is NewJSONLogger writing to w.
func NewJSONLoggerTo(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewTextLoggerTo(os.Stderr, level)
}

// NewTextLoggerTo is NewTextLogger writing to w.
func NewTextLoggerTo(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithGraph adds the graph name and vertex count to the logger.
func (l *Logger) WithGraph(name string, vertices int) *Logger {
	return &Logger{
		Logger: l.Logger.With("graph", name, "vertices", vertices),
	}
}

// WithKernel adds the traversal kernel and adjacency representation fields.
func (l *Logger) WithKernel(kernel, kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kernel", kernel, "repr", kind),
	}
}

// LogBuild logs construction of an adjacency representation.
func (l *Logger) LogBuild(ctx context.Context, kind string, vertices, edges int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "graph build failed",
			"repr", kind,
			"vertices", vertices,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "graph built",
		"repr", kind,
		"vertices", vertices,
		"edges", edges,
		"duration", d,
	)
}

// LogTraversal logs a single traversal run.
func (l *Logger) LogTraversal(ctx context.Context, kernel, kind string, source, reached int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "traversal failed",
			"kernel", kernel,
			"repr", kind,
			"source", source,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "traversal completed",
		"kernel", kernel,
		"repr", kind,
		"source", source,
		"reached", reached,
		"duration", d,
	)
}

// LogSnapshot logs a snapshot write or read.
func (l *Logger) LogSnapshot(ctx context.Context, filename string, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"filename", filename,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "snapshot saved",
		"filename", filename,
		"bytes", bytes,
	)
}
