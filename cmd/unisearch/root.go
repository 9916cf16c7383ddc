package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "unisearch",
	Short: "Uninformed state-space search on the vacuum world",
	Long: `unisearch runs uniform-cost tree search (UCTS), uniform-cost graph search (UCGS)
and iterative-deepening tree search (IDTS) on vacuum-world instances and reports
expansions, generations, timing and the solution found by each.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML configuration file (built-in defaults when empty)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
}
