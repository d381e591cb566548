package wsp

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with wsp-specific fields.
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

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithPoints adds point count and dimension fields to the logger.
func (l *Logger) WithPoints(n, dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("points", n, "dimension", dim),
	}
}

// LogWalk logs the outcome of one elimination walk.
func (l *Logger) LogWalk(dMin float64, origin, active int) {
	l.Debug("walk completed",
		"distance", dMin,
		"origin", origin,
		"active", active,
	)
}

// LogIteration logs one adaptive search step. Verbose steps are logged at
// Info, others at Debug.
func (l *Logger) LogIteration(verbose bool, iter int, distance float64, active, target int) {
	level := slog.LevelDebug
	if verbose {
		level = slog.LevelInfo
	}
	l.Log(context.Background(), level, "adaptive iteration",
		"iteration", iter,
		"distance", distance,
		"active", active,
		"target", target,
	)
}

// LogAdaptiveResult logs the distance an adaptive search settled on.
func (l *Logger) LogAdaptiveResult(verbose bool, res AdaptiveResult) {
	level := slog.LevelDebug
	if verbose {
		level = slog.LevelInfo
	}
	msg := "adaptive search reached target"
	if !res.Exact {
		msg = "adaptive search best approximation"
	}
	l.Log(context.Background(), level, msg,
		"distance", res.Distance,
		"active", res.Active,
		"target", res.Target,
		"iterations", res.Iterations,
	)
}
