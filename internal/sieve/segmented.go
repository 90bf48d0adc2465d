package sieve

import (
	"context"
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/primego/internal/bound"
	"github.com/hupe1980/primego/internal/resource"
)

// DefaultWindowSize is the number of values covered by one segmented window.
const DefaultWindowSize = 1_000_000

// SegmentConfig controls a segmented sweep.
type SegmentConfig struct {
	// WindowSize is the number of values per window. Values below 2 select
	// DefaultWindowSize, and values above MaxWindowLen are capped.
	WindowSize uint64

	// Memory accounts for the base-prime and window buffers. May be nil.
	Memory *resource.Controller

	// OnWindow, if set, is called after each window has been struck.
	OnWindow func(low, high uint64)
}

func (c SegmentConfig) windowSize() uint64 {
	if c.WindowSize < 2 {
		return DefaultWindowSize
	}
	return min(c.WindowSize, MaxWindowLen)
}

// BasePrimes returns every prime in [2, limit]. limit must fit in uint32.
func BasePrimes(limit uint64) *roaring.Bitmap {
	rb := roaring.New()
	if limit < 2 {
		return rb
	}

	w := NewWindow(0, limit)
	w.Sieve()
	for p := range w.Primes() {
		rb.Add(uint32(p))
	}
	return rb
}

// Segmented returns the prime of rank n by sweeping [2, limit] in windows.
// The context is checked between windows.
func Segmented(ctx context.Context, n, limit uint64, cfg SegmentConfig) (uint64, error) {
	var (
		counter uint64
		prime   uint64
		found   bool
	)

	err := sweep(ctx, 2, limit, cfg, func(w *Window) bool {
		c := w.Count()
		if n-counter >= c {
			counter += c
			return true
		}
		prime, found = w.Select(n - counter)
		return false
	})
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%w: rank %d within [2, %d] (%d primes)", ErrBoundExhausted, n, limit, counter)
	}
	return prime, nil
}

// Range yields every prime in [low, high] in ascending order. A non-nil
// error is yielded at most once, as the final element.
func Range(ctx context.Context, low, high uint64, cfg SegmentConfig) iter.Seq2[uint64, error] {
	return func(yield func(uint64, error) bool) {
		from := max(low, 2)
		if from > high {
			return
		}

		stopped := false
		err := sweep(ctx, from, high, cfg, func(w *Window) bool {
			for p := range w.Primes() {
				if !yield(p, nil) {
					stopped = true
					return false
				}
			}
			return true
		})
		if err != nil && !stopped {
			yield(0, err)
		}
	}
}

// sweep strikes consecutive windows covering [low, high] with the base primes
// up to sqrt(high) and hands each one to visit until visit returns false.
func sweep(ctx context.Context, low, high uint64, cfg SegmentConfig, visit func(*Window) bool) error {
	size := cfg.windowSize()

	base, release, err := basePrimes(bound.Sqrt(high), cfg.Memory)
	if err != nil {
		return err
	}
	defer release()

	for lo := low; lo <= high; lo += size {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("segmented sweep at %d: %w", lo, err)
		}

		hi := high
		if high-lo >= size {
			hi = lo + size - 1
		}

		releaseWindow, err := cfg.Memory.Reserve(Bytes(hi - lo + 1))
		if err != nil {
			return fmt.Errorf("window [%d, %d]: %w", lo, hi, err)
		}

		w := strikeWindow(lo, hi, base)
		if cfg.OnWindow != nil {
			cfg.OnWindow(lo, hi)
		}
		more := visit(w)
		releaseWindow()
		if !more {
			return nil
		}

		if hi == high {
			break
		}
	}
	return nil
}

// basePrimes collects the primes up to limit as a sorted slice. The slice
// stays reserved against mem until release is called.
func basePrimes(limit uint64, mem *resource.Controller) ([]uint32, func(), error) {
	releaseSieve, err := mem.Reserve(Bytes(limit + 1))
	if err != nil {
		return nil, nil, fmt.Errorf("base primes up to %d: %w", limit, err)
	}
	rb := BasePrimes(limit)
	releaseSieve()

	release, err := mem.Reserve(int64(rb.GetCardinality()) * 4)
	if err != nil {
		return nil, nil, fmt.Errorf("base primes up to %d: %w", limit, err)
	}
	return rb.ToArray(), release, nil
}

func strikeWindow(low, high uint64, base []uint32) *Window {
	w := NewWindow(low, high)
	for _, p := range base {
		q := uint64(p)
		if q*q > high {
			break
		}
		w.Strike(q)
	}
	return w
}
