package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/hupe1980/primego"
)

type config struct {
	threshold   int64
	window      uint64
	retry       bool
	memoryLimit int64
	logLevel    string
	jsonLogs    bool
	stats       bool
}

func (c *config) register(fs *pflag.FlagSet) {
	fs.Int64Var(&c.threshold, "threshold", primego.DefaultThreshold, "smallest rank answered by the segmented sieve")
	fs.Uint64Var(&c.window, "window", primego.DefaultWindowSize, "values per segmented window")
	fs.BoolVar(&c.retry, "retry", false, "retry once with a doubled bound if the estimate is exhausted")
	fs.Int64Var(&c.memoryLimit, "memory-limit", 0, "cap on live sieve buffer bytes (0 = unlimited)")
	fs.StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.BoolVar(&c.jsonLogs, "json", false, "emit JSON logs")
	fs.BoolVar(&c.stats, "stats", false, "print sieve metrics to stderr on exit")
}

func (c *config) logger() (*primego.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", c.logLevel, err)
	}
	if c.jsonLogs {
		return primego.NewJSONLogger(level), nil
	}
	return primego.NewTextLogger(level), nil
}

func (c *config) sieve(metrics primego.MetricsCollector) (*primego.Sieve, error) {
	logger, err := c.logger()
	if err != nil {
		return nil, err
	}

	return primego.New(
		primego.WithThreshold(c.threshold),
		primego.WithWindowSize(c.window),
		primego.WithBoundRetry(c.retry),
		primego.WithMemoryLimit(c.memoryLimit),
		primego.WithMetricsCollector(metrics),
		primego.WithLogger(logger),
	)
}

func (c *config) printStats(w io.Writer, s *primego.Sieve, metrics *primego.BasicMetricsCollector) {
	if !c.stats {
		return
	}

	st := metrics.GetStats()
	fmt.Fprintf(w, "dense: %d calls, %d errors, avg %dns\n", st.DenseCount, st.DenseErrors, st.DenseAvgNanos)
	fmt.Fprintf(w, "segmented: %d calls, %d errors, avg %dns\n", st.SegmentedCount, st.SegmentedErrors, st.SegmentedAvgNanos)
	fmt.Fprintf(w, "windows: %d (%d values)\n", st.WindowCount, st.WindowValues)
	fmt.Fprintf(w, "fallbacks: %d, retries: %d\n", st.FallbackCount, st.RetryCount)
	fmt.Fprintf(w, "peak buffer memory: %d bytes\n", s.PeakMemoryUsage())
}
