package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adaptive",
	Short: "Adaptive prediction service",
	Long: `Adaptive learns a user's workflow patterns and predicts their next
action: which step usually follows the current one, what they do in similar
situations, and what a free-text request is asking for.

Run 'adaptive serve' to expose the prediction engine over REST, or use the
predict and stats subcommands to query learned state directly.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
