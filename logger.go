package strictvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with strictvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NewTextLogger(slog.LevelInfo)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes key=value records to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithStrategy adds a strategy field to the logger.
func (l *Logger) WithStrategy(s Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String()),
	}
}

// WithOp adds an operation field to the logger.
func (l *Logger) WithOp(op Op) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op.String()),
	}
}

// LogMutation logs a write operation.
func (l *Logger) LogMutation(op Op, count, size int, err error) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	lg := l.WithOp(op)
	if err != nil {
		lg.Debug("mutation rejected",
			"count", count,
			"size", size,
			"error", err,
		)
	} else {
		lg.Debug("mutation completed",
			"count", count,
			"size", size,
		)
	}
}

// LogDerive logs the creation of a derived vector.
func (l *Logger) LogDerive(op Op, sources, size int, err error) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	lg := l.WithOp(op)
	if err != nil {
		lg.Debug("derive failed",
			"sources", sources,
			"error", err,
		)
	} else {
		lg.Debug("derive completed",
			"sources", sources,
			"size", size,
		)
	}
}
