package primego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordNthPrime is called after each NthPrime call.
	// strategy is the sieve that produced the answer, err is nil if successful.
	RecordNthPrime(strategy Strategy, duration time.Duration, err error)

	// RecordWindow is called for each segmented window, with its size in values.
	RecordWindow(size uint64)

	// RecordFallback is called when a dense buffer does not fit the memory
	// limit and the segmented sieve is used instead.
	RecordFallback()

	// RecordRetry is called when a call is retried with an inflated bound.
	RecordRetry()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordNthPrime(Strategy, time.Duration, error) {}
func (NoopMetricsCollector) RecordWindow(uint64)                           {}
func (NoopMetricsCollector) RecordFallback()                               {}
func (NoopMetricsCollector) RecordRetry()                                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DenseCount          atomic.Int64
	DenseErrors         atomic.Int64
	DenseTotalNanos     atomic.Int64
	SegmentedCount      atomic.Int64
	SegmentedErrors     atomic.Int64
	SegmentedTotalNanos atomic.Int64
	WindowCount         atomic.Int64
	WindowValues        atomic.Int64
	FallbackCount       atomic.Int64
	RetryCount          atomic.Int64
}

// RecordNthPrime implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNthPrime(strategy Strategy, duration time.Duration, err error) {
	switch strategy {
	case StrategySegmented:
		b.SegmentedCount.Add(1)
		b.SegmentedTotalNanos.Add(duration.Nanoseconds())
		if err != nil {
			b.SegmentedErrors.Add(1)
		}
	default:
		b.DenseCount.Add(1)
		b.DenseTotalNanos.Add(duration.Nanoseconds())
		if err != nil {
			b.DenseErrors.Add(1)
		}
	}
}

// RecordWindow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWindow(size uint64) {
	b.WindowCount.Add(1)
	b.WindowValues.Add(int64(size))
}

// RecordFallback implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFallback() {
	b.FallbackCount.Add(1)
}

// RecordRetry implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRetry() {
	b.RetryCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		DenseCount:        b.DenseCount.Load(),
		DenseErrors:       b.DenseErrors.Load(),
		DenseAvgNanos:     avgNanos(b.DenseTotalNanos.Load(), b.DenseCount.Load()),
		SegmentedCount:    b.SegmentedCount.Load(),
		SegmentedErrors:   b.SegmentedErrors.Load(),
		SegmentedAvgNanos: avgNanos(b.SegmentedTotalNanos.Load(), b.SegmentedCount.Load()),
		WindowCount:       b.WindowCount.Load(),
		WindowValues:      b.WindowValues.Load(),
		FallbackCount:     b.FallbackCount.Load(),
		RetryCount:        b.RetryCount.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DenseCount        int64
	DenseErrors       int64
	DenseAvgNanos     int64
	SegmentedCount    int64
	SegmentedErrors   int64
	SegmentedAvgNanos int64
	WindowCount       int64
	WindowValues      int64
	FallbackCount     int64
	RetryCount        int64
}
