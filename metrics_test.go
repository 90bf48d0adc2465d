package primego

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	m.RecordNthPrime(StrategyDense, 10*time.Millisecond, nil)
	m.RecordNthPrime(StrategyDense, 30*time.Millisecond, errors.New("boom"))
	m.RecordNthPrime(StrategySegmented, 5*time.Millisecond, nil)
	m.RecordWindow(100)
	m.RecordWindow(50)
	m.RecordFallback()
	m.RecordRetry()

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.DenseCount)
	assert.Equal(t, int64(1), stats.DenseErrors)
	assert.Equal(t, (20 * time.Millisecond).Nanoseconds(), stats.DenseAvgNanos)
	assert.Equal(t, int64(1), stats.SegmentedCount)
	assert.Equal(t, int64(0), stats.SegmentedErrors)
	assert.Equal(t, (5 * time.Millisecond).Nanoseconds(), stats.SegmentedAvgNanos)
	assert.Equal(t, int64(2), stats.WindowCount)
	assert.Equal(t, int64(150), stats.WindowValues)
	assert.Equal(t, int64(1), stats.FallbackCount)
	assert.Equal(t, int64(1), stats.RetryCount)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	stats := (&BasicMetricsCollector{}).GetStats()
	assert.Equal(t, BasicMetricsStats{}, stats)
}

func TestMetrics_SieveIntegration(t *testing.T) {
	m := &BasicMetricsCollector{}
	s, err := New(WithMetricsCollector(m), WithThreshold(100), WithWindowSize(100))
	require.NoError(t, err)

	_, err = s.NthPrime(context.Background(), 50)
	require.NoError(t, err)

	// Rank 100 is 547, found in the sixth window [502, 601].
	_, err = s.NthPrime(context.Background(), 100)
	require.NoError(t, err)

	stats := m.GetStats()
	assert.Equal(t, int64(1), stats.DenseCount)
	assert.Equal(t, int64(1), stats.SegmentedCount)
	assert.Equal(t, int64(6), stats.WindowCount)
	assert.Equal(t, int64(600), stats.WindowValues)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	m.RecordNthPrime(StrategyDense, time.Second, nil)
	m.RecordWindow(1)
	m.RecordFallback()
	m.RecordRetry()
}
