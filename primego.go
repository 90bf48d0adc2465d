package primego

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/primego/internal/bound"
	"github.com/hupe1980/primego/internal/resource"
	"github.com/hupe1980/primego/internal/sieve"
)

const (
	// MaxRank is the largest rank accepted. Its bound stays below 2^62, which
	// keeps every bound and window computation inside 64 bits. On 32-bit
	// platforms a dense buffer larger than sieve.MaxWindowLen values is
	// replaced by the segmented sieve.
	MaxRank = 1 << 56

	// MaxValue is the largest value Primes accepts as the end of a range.
	MaxValue = 1 << 62
)

// Sieve computes primes by rank. It is immutable after construction and
// safe for concurrent use. Buffers are allocated per call.
type Sieve struct {
	threshold  uint64
	windowSize uint64
	boundRetry bool
	memory     *resource.Controller
	metrics    MetricsCollector
	logger     *Logger

	estimate func(uint64) uint64
}

// New creates a Sieve.
func New(optFns ...Option) (*Sieve, error) {
	o := applyOptions(optFns)
	if err := o.validate(); err != nil {
		return nil, err
	}
	return newSieve(o), nil
}

func newSieve(o options) *Sieve {
	return &Sieve{
		threshold:  uint64(o.threshold),
		windowSize: o.windowSize,
		boundRetry: o.boundRetry,
		memory:     resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit}),
		metrics:    o.metricsCollector,
		logger:     o.logger,
		estimate:   bound.Estimate,
	}
}

var defaultSieve = newSieve(applyOptions(nil))

// NthPrime returns the prime of rank n (zero-based) using default settings.
// Negative n is treated as 0.
func NthPrime(n int64) (uint64, error) {
	return defaultSieve.NthPrime(context.Background(), n)
}

// NthPrime returns the prime of rank n (zero-based). Negative n is treated as 0.
//
// The context is only consulted between segmented windows.
func (s *Sieve) NthPrime(ctx context.Context, n int64) (uint64, error) {
	rank, err := normalizeRank(n)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	prime, strategy, err := s.nthPrime(ctx, rank)
	s.metrics.RecordNthPrime(strategy, time.Since(start), err)
	s.logger.LogNthPrime(ctx, rank, strategy, prime, err)

	return prime, err
}

// Strategy reports the sieve NthPrime picks for n when memory allows.
// Ranks above MaxRank report StrategySegmented even though NthPrime
// rejects them with ErrRankOutOfRange.
func (s *Sieve) Strategy(n int64) Strategy {
	return s.strategy(uint64(max(n, 0)))
}

// PeakMemoryUsage returns the largest number of buffer bytes that have been
// live at once across calls on s.
func (s *Sieve) PeakMemoryUsage() int64 {
	return s.memory.PeakMemoryUsage()
}

// Primes yields the primes in [low, high] in ascending order, sweeping the
// range in segmented windows. A non-nil error is yielded at most once, as
// the final element.
func (s *Sieve) Primes(ctx context.Context, low, high uint64) iter.Seq2[uint64, error] {
	if high > MaxValue {
		return func(yield func(uint64, error) bool) {
			yield(0, fmt.Errorf("%w: %d exceeds %d", ErrValueOutOfRange, high, uint64(MaxValue)))
		}
	}
	return sieve.Range(ctx, low, high, s.segmentConfig(ctx))
}

func (s *Sieve) strategy(rank uint64) Strategy {
	if rank >= s.threshold {
		return StrategySegmented
	}
	return StrategyDense
}

func (s *Sieve) nthPrime(ctx context.Context, rank uint64) (uint64, Strategy, error) {
	limit := s.estimate(rank)

	for attempt := 0; ; attempt++ {
		prime, strategy, err := s.run(ctx, rank, limit)
		if err == nil {
			return prime, strategy, nil
		}

		if s.boundRetry && attempt == 0 && errors.Is(err, sieve.ErrBoundExhausted) {
			limit = bound.Inflate(limit)
			s.metrics.RecordRetry()
			s.logger.LogRetry(ctx, rank, limit)
			continue
		}

		return 0, strategy, translateError(err, rank, limit, strategy)
	}
}

func (s *Sieve) run(ctx context.Context, rank, limit uint64) (uint64, Strategy, error) {
	if s.strategy(rank) == StrategyDense {
		required := sieve.Bytes(limit + 1)

		var err error
		switch {
		case !sieve.Addressable(limit + 1):
			err = fmt.Errorf("%w: [0, %d]", sieve.ErrWindowTooLarge, limit)
		case !s.memory.Fits(required):
			err = fmt.Errorf("%w: dense buffer needs %d bytes", resource.ErrMemoryLimitExceeded, required)
		default:
			// The buffer fits the limit but other calls may hold the budget.
			var prime uint64
			prime, err = sieve.Dense(rank, limit, s.memory)
			if !errors.Is(err, resource.ErrMemoryLimitExceeded) {
				return prime, StrategyDense, err
			}
		}

		s.metrics.RecordFallback()
		s.logger.LogFallback(ctx, rank, required, err)
	}

	prime, err := sieve.Segmented(ctx, rank, limit, s.segmentConfig(ctx))
	return prime, StrategySegmented, err
}

func (s *Sieve) segmentConfig(ctx context.Context) sieve.SegmentConfig {
	return sieve.SegmentConfig{
		WindowSize: s.windowSize,
		Memory:     s.memory,
		OnWindow: func(low, high uint64) {
			s.metrics.RecordWindow(high - low + 1)
			s.logger.LogWindow(ctx, low, high)
		},
	}
}

func normalizeRank(n int64) (uint64, error) {
	if n < 0 {
		return 0, nil
	}
	if n > MaxRank {
		return 0, fmt.Errorf("%w: %d exceeds %d", ErrRankOutOfRange, n, int64(MaxRank))
	}
	return uint64(n), nil
}
