package cmd

import (
	"github.com/spf13/cobra"
)

// categorizeCmd is the base command for categorization operations.
var categorizeCmd = &cobra.Command{
	Use:   "categorize",
	Short: "Manage commit categorization",
	Long: `Provides commands to categorize scanned commits into business-domain
categories using the configured LLM provider, either directly or through the
background worker.`,
}

func init() {
	rootCmd.AddCommand(categorizeCmd)
	// Subcommands 'run' and 'enqueue' register themselves in their files' init().
}
