package primego

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	assert.Equal(t, uint64(DefaultThreshold), s.threshold)
	assert.Equal(t, uint64(DefaultWindowSize), s.windowSize)
	assert.False(t, s.boundRetry)
	assert.Equal(t, int64(0), s.memory.MemoryLimit())
	assert.IsType(t, NoopMetricsCollector{}, s.metrics)
	assert.NotNil(t, s.logger)
}

func TestNew_Options(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	logger := NewTextLogger(slog.LevelDebug)

	s, err := New(
		WithThreshold(42),
		WithWindowSize(1024),
		WithBoundRetry(true),
		WithMemoryLimit(1<<20),
		WithMetricsCollector(metrics),
		WithLogger(logger),
		nil, // ignored
	)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), s.threshold)
	assert.Equal(t, uint64(1024), s.windowSize)
	assert.True(t, s.boundRetry)
	assert.Equal(t, int64(1<<20), s.memory.MemoryLimit())
	assert.Same(t, metrics, s.metrics)
	assert.Same(t, logger, s.logger)
}

func TestNew_NilCollectors(t *testing.T) {
	s, err := New(WithMetricsCollector(nil), WithLogger(nil))
	require.NoError(t, err)

	assert.IsType(t, NoopMetricsCollector{}, s.metrics)
	require.NotNil(t, s.logger)

	_, err = s.NthPrime(t.Context(), 10)
	require.NoError(t, err)
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want string
	}{
		{"ZeroThreshold", WithThreshold(0), "threshold"},
		{"NegativeThreshold", WithThreshold(-1), "threshold"},
		{"TinyWindow", WithWindowSize(1), "window size"},
		{"NegativeMemory", WithMemoryLimit(-1), "memory limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.opt)
			assert.Nil(t, s)

			var invalid *ErrInvalidOption
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.want, invalid.Name)
		})
	}
}
