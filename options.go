package primego

import (
	"log/slog"

	"github.com/hupe1980/primego/internal/sieve"
)

const (
	// DefaultThreshold is the smallest rank answered by the segmented sieve.
	DefaultThreshold = 10_000_000

	// DefaultWindowSize is the number of values per segmented window.
	DefaultWindowSize = sieve.DefaultWindowSize
)

type options struct {
	threshold        int64
	windowSize       uint64
	boundRetry       bool
	memoryLimit      int64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Sieve.
type Option func(*options)

// WithThreshold sets the smallest rank answered by the segmented sieve.
// Ranks below it use the dense sieve. Must be positive.
func WithThreshold(n int64) Option {
	return func(o *options) {
		o.threshold = n
	}
}

// WithWindowSize sets the number of values per segmented window.
// Peak memory of the segmented sieve is roughly size/8 bytes plus the base
// primes. Must be at least 2.
func WithWindowSize(size uint64) Option {
	return func(o *options) {
		o.windowSize = size
	}
}

// WithBoundRetry enables a single retry with a doubled bound when a sieve
// exhausts its bound. Disabled by default: the estimate always
// overestimates, so exhaustion indicates a defect worth surfacing.
func WithBoundRetry(enabled bool) Option {
	return func(o *options) {
		o.boundRetry = enabled
	}
}

// WithMemoryLimit caps the bytes of sieve buffers live at once across all
// calls on the Sieve. Dense calls whose buffer does not fit fall back to the
// segmented sieve. 0 disables the limit. Must not be negative.
//
// Example:
//
//	s, _ := primego.New(primego.WithMemoryLimit(16 << 20))
//	p, _ := s.NthPrime(ctx, 9_000_000) // segmented despite the threshold
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithMetricsCollector configures a metrics collector for monitoring calls.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &primego.BasicMetricsCollector{}
//	s, _ := primego.New(primego.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Dense: %d, Avg latency: %dns\n", stats.DenseCount, stats.DenseAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for calls.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := primego.NewJSONLogger(slog.LevelInfo)
//	s, _ := primego.New(primego.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		threshold:        DefaultThreshold,
		windowSize:       DefaultWindowSize,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

func (o options) validate() error {
	if o.threshold <= 0 {
		return &ErrInvalidOption{Name: "threshold", Value: o.threshold}
	}
	if o.windowSize < 2 || !sieve.Addressable(o.windowSize) {
		return &ErrInvalidOption{Name: "window size", Value: o.windowSize}
	}
	if o.memoryLimit < 0 {
		return &ErrInvalidOption{Name: "memory limit", Value: o.memoryLimit}
	}
	return nil
}
