package sieve

import (
	"fmt"

	"github.com/hupe1980/primego/internal/resource"
)

// Dense returns the prime of rank n by sieving a single window over [0, limit].
// The buffer is reserved against mem, which may be nil.
func Dense(n, limit uint64, mem *resource.Controller) (uint64, error) {
	if !Addressable(limit + 1) {
		return 0, fmt.Errorf("%w: [0, %d]", ErrWindowTooLarge, limit)
	}

	release, err := mem.Reserve(Bytes(limit + 1))
	if err != nil {
		return 0, fmt.Errorf("dense buffer for [0, %d]: %w", limit, err)
	}
	defer release()

	w := NewWindow(0, limit)
	w.Sieve()

	if p, ok := w.Select(n); ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: rank %d within [0, %d]", ErrBoundExhausted, n, limit)
}
