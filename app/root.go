// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ticket-office",
	Short: "ticket-office is the backend service for event and ticket listings",
	Long: `ticket-office is the backend service for event and ticket listings.
It serves cursor-paginated event/ticket reads from a relational database and
per-client box-office settings from a MongoDB document store.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
