package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hupe1980/primego"
)

func newRangeCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "range LOW HIGH",
		Short: "Print every prime in [LOW, HIGH]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			low, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid LOW %q: %w", args[0], err)
			}
			high, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid HIGH %q: %w", args[1], err)
			}

			metrics := &primego.BasicMetricsCollector{}
			s, err := cfg.sieve(metrics)
			if err != nil {
				return err
			}
			defer cfg.printStats(cmd.ErrOrStderr(), s, metrics)

			for p, err := range s.Primes(cmd.Context(), low, high) {
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}
