package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit

var rootCmd = &cobra.Command{
	Use:   "cscbench",
	Short: "Benchmark Redis client-side caching and chart the results",
	Long: `cscbench measures how a plain Redis client compares to one with an
in-process read-through cache, stores the timing samples as dated JSON
files, and renders grouped bar charts with trimmed averages.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("data-dir", "data", "directory holding benchmark output files")
	viper.BindPFlag("data-dir", rootCmd.PersistentFlags().Lookup("data-dir"))

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newBenchCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newImportCmd())
}

func initConfig() {
	viper.SetEnvPrefix("cscbench")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func dataDir() string {
	return viper.GetString("data-dir")
}
