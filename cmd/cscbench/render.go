package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cscbench "github.com/RedisLabs/csc-bench"
)

func newRenderCmd() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render benchmark comparisons to an HTML file",
		Long: `Renders one grouped bar chart per (test, key count) configuration,
comparing the regular and cached client variants, with trimmed averages
in each chart's subtitle. Without --input the sample table from the
published article is rendered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cscbench.Builtin()
			if input != "" {
				var err error
				out, err = cscbench.LoadOutputFile(input)
				if err != nil {
					return fmt.Errorf("load input: %w", err)
				}
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := cscbench.NewPage(out).Render(f); err != nil {
				return fmt.Errorf("render page: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "rendered %d comparisons (%s, %s) to %s\n",
				len(out.Comparisons()), out.Date, out.Label, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "benchmark output file to render instead of the builtin table")
	cmd.Flags().StringVar(&output, "output", "charts.html", "HTML file to write")
	return cmd
}
