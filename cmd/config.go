package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage kitlog configuration",
	Long: `Provides commands for managing the kitlog configuration file.

Use these commands to:
  - Write a config file with the defaults (config init)
  - Show the configuration in effect (config show)

Examples:
  # Create ~/.config/kitlog/config.toml
  kitlog config init

  # Create a config for CI with its own prefix
  kitlog --config ci/kitlog.toml config init --prefix "[ci]"

  # Show the configuration as JSON
  kitlog config show --json`,
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

// resetConfigState resets all config command global variables to their default values for testing.
func resetConfigState() {
	resetConfigInitState()
	resetConfigShowState()
}
