// Package main provides the CLI entry point for timecollect.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timecollect",
		Short: "Collect weekly timesheets into a single report",
		Long: `timecollect reads every employee's timesheet listed in the roster
sheets, classifies each worked day into its reporting week and exports one
row per worked cell as an xlsx workbook or JSON.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCmd(), newWeeksCmd())
	return rootCmd
}
