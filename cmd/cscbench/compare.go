package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cscbench "github.com/RedisLabs/csc-bench"
)

func newCompareCmd() *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "compare <baseline.json> <candidate.json>",
		Short: "Compare two benchmark outputs and flag regressions",
		Long: `Pairs series by (test, key count, variant), compares trimmed means and
reports percentage deltas. Exits non-zero when any series slowed down
past the threshold, so the command works as a 'git bisect run' probe.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseline, err := cscbench.LoadOutputFile(args[0])
			if err != nil {
				return fmt.Errorf("load baseline: %w", err)
			}
			candidate, err := cscbench.LoadOutputFile(args[1])
			if err != nil {
				return fmt.Errorf("load candidate: %w", err)
			}

			deltas := cscbench.Compare(baseline, candidate)
			if len(deltas) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no comparable series")
				return nil
			}

			red := color.New(color.FgRed).SprintfFunc()
			green := color.New(color.FgGreen).SprintfFunc()

			regressions := 0
			for _, d := range deltas {
				line := fmt.Sprintf("%s/%d/%s: %s -> %s ms (%+.1f%%)",
					d.Test, d.KeyCount, d.Variant,
					cscbench.FormatMillis(d.Baseline), cscbench.FormatMillis(d.Candidate), d.Percent)
				switch {
				case d.Regression(threshold):
					regressions++
					fmt.Fprintln(cmd.OutOrStdout(), red("%s REGRESSION", line))
				case d.Percent < 0:
					fmt.Fprintln(cmd.OutOrStdout(), green("%s", line))
				default:
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}

			if regressions > 0 {
				return fmt.Errorf("%d series regressed more than %.1f%%", regressions, threshold)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 10.0, "regression threshold in percent")
	return cmd
}
