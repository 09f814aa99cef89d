package mockfile

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with file-lifecycle specific helpers.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// LogTransition logs a lifecycle state change of a file opener.
func (l *Logger) LogTransition(op string, from, to State) {
	l.Debug("file state changed",
		"op", op,
		"from", from.String(),
		"to", to.String(),
	)
}

// LogResize logs a change of the buffer size.
func (l *Logger) LogResize(op string, from, to int64) {
	l.Debug("file resized",
		"op", op,
		"from", from,
		"to", to,
	)
}

// LogViolation logs a fatal contract violation right before it aborts.
func (l *Logger) LogViolation(err *ViolationError) {
	l.Error("file contract violated",
		"op", err.Op,
		"reason", err.Reason,
	)
}
