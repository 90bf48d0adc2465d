package sieve

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/primego/internal/bound"
)

// Dense and segmented sieves answer the same ranks; compare them with:
//   go test ./internal/sieve -run '^$' -bench . -benchmem

var benchRanks = []uint64{10_000, 1_000_000, 5_000_000}

func BenchmarkDense(b *testing.B) {
	for _, n := range benchRanks {
		limit := bound.Estimate(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Dense(n, limit, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSegmented(b *testing.B) {
	ctx := context.Background()
	for _, n := range benchRanks {
		limit := bound.Estimate(n)
		for _, size := range []uint64{1 << 16, DefaultWindowSize} {
			b.Run(fmt.Sprintf("n=%d/window=%d", n, size), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					if _, err := Segmented(ctx, n, limit, SegmentConfig{WindowSize: size}); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkBasePrimes(b *testing.B) {
	for b.Loop() {
		BasePrimes(1 << 16)
	}
}
