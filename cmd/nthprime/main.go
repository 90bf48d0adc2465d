// Command nthprime prints primes by zero-based rank.
//
// Usage:
//
//	nthprime [flags] N...
//	nthprime range [flags] LOW HIGH
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
