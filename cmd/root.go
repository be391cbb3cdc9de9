package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zohotime",
	Short: "Unattended daily time logging for Zoho Projects",
	Long: `zohotime logs a single time entry for yesterday against a configured
Zoho Projects task, authenticating via an OAuth2 refresh token.
It is designed to run under an external scheduler (e.g. a GitHub
Actions cron) and is configured entirely through environment variables.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(windowCmd)
}
