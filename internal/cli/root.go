// Package cli implements the daytally CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/daytally-io/daytally/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "daytally",
	Short: "Track time per task with daily totals and a calendar view",
	Long: `Daytally tracks elapsed active time per task. Totals are persisted
per calendar day and can be browsed in a month calendar. Running daytally
without a subcommand opens the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(versionCmd)
}
