package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cscbench "github.com/RedisLabs/csc-bench"
)

// benchRunner allows mocking the live runner in tests.
type benchRunner interface {
	Run(ctx context.Context, label string) (cscbench.Output, error)
}

var newRunnerFunc = func(addr string, runs int) benchRunner {
	return cscbench.NewRunner(redis.NewClient(&redis.Options{Addr: addr}), runs)
}

func newBenchCmd() *cobra.Command {
	var (
		runs  int
		label string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure the client variants against a live Redis server",
		Long: `Seeds each configuration's keys, times the regular and cached client
variants over repeated runs, and writes the samples as a dated JSON file
into the data directory, ready for render, serve and compare.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := viper.GetString("redis-addr")
			if label == "" {
				host, err := os.Hostname()
				if err != nil {
					host = "local"
				}
				label = host
			}

			fmt.Fprintf(cmd.OutOrStdout(), "benchmarking %s (%d runs per series)\n", addr, runs)
			out, err := newRunnerFunc(addr, runs).Run(cmd.Context(), label)
			if err != nil {
				return fmt.Errorf("benchmark failed: %w", err)
			}

			dir := dataDir()
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			tm, err := out.Time()
			if err != nil {
				tm = time.Now()
			}
			file := filepath.Join(dir, cscbench.FileName(tm, out.Label))
			if err := cscbench.WriteJSONFile(file, out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			printSummary(cmd, out)
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", file)
			return nil
		},
	}

	cmd.Flags().String("redis-addr", "127.0.0.1:6379", "Redis server address")
	cmd.Flags().IntVar(&runs, "runs", 5, "repetitions per series")
	cmd.Flags().StringVar(&label, "label", "", "run label (default: hostname)")
	viper.BindPFlag("redis-addr", cmd.Flags().Lookup("redis-addr"))
	return cmd
}

func printSummary(cmd *cobra.Command, out cscbench.Output) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TEST\tKEYS\tREGULAR (ms)\tCACHED (ms)")
	for _, c := range out.Comparisons() {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", c.Test, c.KeyCount,
			cscbench.FormatMillis(cscbench.TrimmedMean(c.Regular)),
			cscbench.FormatMillis(cscbench.TrimmedMean(c.Cached)))
	}
	w.Flush()
}
