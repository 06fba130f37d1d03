// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "optionpanel",
	Short: "optionpanel serves declarative admin settings pages",
	Long: `optionpanel serves administration settings pages built from
declarative field definitions: pages declare their tabs, sections and
fields once, and the panel renders, sanitizes and persists them.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
