// Package resource enforces a memory budget for sieve buffers.
//
// A Controller tracks how many bytes of sieve buffers are live and,
// when configured with a limit, refuses reservations that would exceed it.
// Reservations never block: the caller decides whether to fall back to a
// smaller buffer or give up.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB of sieve buffers
//	})
//
//	release, err := rc.Reserve(bytes)
//	if err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer release()
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional limits without nil checks everywhere.
package resource
