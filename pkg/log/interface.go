// Package log provides a structured logging interface for streamkern
// estimator operations.
//
// It defines a minimal, slog-compatible logging interface together with
// standard attribute keys for online-learning events (training steps,
// dictionary growth, scoring). The interface is implementation-agnostic:
// the default backend is log/slog, and the attribute conventions map
// cleanly onto zerolog or zap if a caller prefers those.
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// The interface supports contextual loggers through With, so a caller can
// pre-populate the model name and estimator id once and have every
// subsequent message carry them.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If the first field is an error, stack trace information may be
	// automatically included by the handler.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	//
	// Example:
	//
	//	logger := log.GetLogger().With(
	//	    log.ModelNameKey, "Centroid",
	//	    log.EstimatorIDKey, "centroid-001",
	//	)
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to avoid building expensive attribute values that would be
	// discarded anyway.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
