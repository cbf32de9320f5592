package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	cscbench "github.com/RedisLabs/csc-bench"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <patch-dir>",
		Short: "Merge a directory of benchmark outputs into the data directory",
		Long: `Outputs whose date and label are new are moved into the data directory
as-is. When an output with the same date and label already exists, only
its missing series are merged in; duplicates are reported and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patchDir := args[0]
			dir := dataDir()

			patches, err := cscbench.LoadDataDirFiles(patchDir)
			if err != nil {
				return fmt.Errorf("load patch dir: %w", err)
			}
			existing, err := cscbench.LoadDataDirFiles(dir)
			if err != nil {
				if !os.IsNotExist(err) {
					return fmt.Errorf("load data dir: %w", err)
				}
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}

			for _, p := range patches {
				tm, err := p.Time()
				if err != nil {
					return fmt.Errorf("bad date in patch %s: %w", p.Name, err)
				}

				merged := false
				for i := range existing {
					if existing[i].Date != p.Date || existing[i].Label != p.Label {
						continue
					}
					for _, dup := range cscbench.Merge(&existing[i].Output, p.Output) {
						fmt.Fprintf(cmd.OutOrStdout(), "skip duplicated series %s\n", dup)
					}
					if err := cscbench.WriteJSONFile(filepath.Join(dir, existing[i].Name), existing[i].Output); err != nil {
						return err
					}
					if err := os.Remove(filepath.Join(patchDir, p.Name)); err != nil {
						return err
					}
					merged = true
					break
				}
				if merged {
					continue
				}

				// moves canonicalize the file name
				name := cscbench.FileName(tm, p.Label)
				if err := os.Rename(filepath.Join(patchDir, p.Name), filepath.Join(dir, name)); err != nil {
					return err
				}
				existing = append(existing, cscbench.OutputFile{Name: name, Output: p.Output})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d outputs into %s\n", len(patches), dir)
			return nil
		},
	}
	return cmd
}
