package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/primego"
)

func newRootCmd() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:   "nthprime [flags] [--] N...",
		Short: "Print the prime of each zero-based rank N",
		Long: `Print the prime of each zero-based rank N, one per line.
Rank 0 is 2. Negative ranks are treated as 0; they must follow the --
separator so they are not read as flags, as in: nthprime 5 -- -3`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ranks := make([]int64, len(args))
			for i, arg := range args {
				n, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid rank %q: %w", arg, err)
				}
				ranks[i] = n
			}

			metrics := &primego.BasicMetricsCollector{}
			s, err := cfg.sieve(metrics)
			if err != nil {
				return err
			}
			defer cfg.printStats(cmd.ErrOrStderr(), s, metrics)

			for _, n := range ranks {
				p, err := s.NthPrime(cmd.Context(), n)
				if err != nil {
					return fmt.Errorf("rank %d: %w", n, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cfg.register(cmd.PersistentFlags())
	cmd.SetFlagErrorFunc(flagError)
	cmd.AddCommand(newRangeCmd(cfg))

	return cmd
}

// flagError explains a negative number that pflag rejected as a shorthand flag.
func flagError(_ *cobra.Command, err error) error {
	msg := err.Error()
	if !strings.HasPrefix(msg, "unknown shorthand flag") {
		return err
	}
	i := strings.LastIndex(msg, " in ")
	if i < 0 {
		return err
	}
	arg := msg[i+len(" in "):]
	if _, perr := strconv.ParseInt(arg, 10, 64); perr != nil {
		return err
	}
	return fmt.Errorf("negative number %s must follow the -- separator: %w", arg, err)
}
