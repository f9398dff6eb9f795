package sortgo

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with sortgo-specific context.
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

// WithStrategy adds a pivot strategy field to the logger.
func (l *Logger) WithStrategy(s PivotStrategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String()),
	}
}

// WithRange adds lo/hi range fields to the logger.
func (l *Logger) WithRange(lo, hi int) *Logger {
	return &Logger{
		Logger: l.Logger.With("lo", lo, "hi", hi),
	}
}

// LogHeapFallback logs a depth-limit escape to the heapsort fallback.
func (l *Logger) LogHeapFallback(lo, hi, depth, limit int) {
	l.Debug("heapsort fallback engaged",
		"lo", lo,
		"hi", hi,
		"depth", depth,
		"depth_limit", limit,
	)
}

// LogParallelHandoff logs a partition hand-off to the concurrent dispatcher.
func (l *Logger) LogParallelHandoff(lo, hi, depth int) {
	l.Debug("partition handed to dispatcher",
		"lo", lo,
		"hi", hi,
		"depth", depth,
	)
}

// LogSort logs a completed top-level sort.
func (l *Logger) LogSort(n int, duration time.Duration, err error) {
	if err != nil {
		l.Error("sort failed",
			"n", n,
			"duration", duration,
			"error", err,
		)
	} else {
		l.Debug("sort completed",
			"n", n,
			"duration", duration,
		)
	}
}
