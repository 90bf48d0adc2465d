package primego

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with primego-specific context.
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
	return NewLogger(slog.DiscardHandler)
}

// LogNthPrime logs a completed NthPrime call.
func (l *Logger) LogNthPrime(ctx context.Context, rank uint64, strategy Strategy, prime uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "nth prime failed",
			"rank", rank,
			"strategy", strategy.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "nth prime completed",
			"rank", rank,
			"strategy", strategy.String(),
			"prime", prime,
		)
	}
}

// LogFallback logs a dense buffer that did not fit the memory limit.
func (l *Logger) LogFallback(ctx context.Context, rank uint64, required int64, err error) {
	l.WarnContext(ctx, "dense buffer exceeds memory limit, using segmented sieve",
		"rank", rank,
		"required_bytes", required,
		"error", err,
	)
}

// LogRetry logs a retry with an inflated bound.
func (l *Logger) LogRetry(ctx context.Context, rank, bound uint64) {
	l.WarnContext(ctx, "bound exhausted, retrying with inflated bound",
		"rank", rank,
		"bound", bound,
	)
}

// LogWindow logs a struck segmented window.
func (l *Logger) LogWindow(ctx context.Context, low, high uint64) {
	l.DebugContext(ctx, "window struck",
		"low", low,
		"high", high,
	)
}
