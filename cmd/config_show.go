package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/deploykit/kitlog/internal/configs"
	"github.com/deploykit/kitlog/internal/ui"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the configuration in effect",
	Long: `Displays the kitlog configuration after defaults, the config file
and command-line flags have been applied.

Examples:
  kitlog config show
  kitlog config show --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := currentConfig()
		out := cmd.OutOrStdout()
		Logger.Debugf("Flags: json=%t", configShowJSON)

		if configShowJSON {
			output, err := json.MarshalIndent(config, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal config to JSON: %w", err)
			}
			fmt.Fprintln(out, string(output))
			return nil
		}

		if configs.KitlogSettings != nil {
			fmt.Fprintln(out, ui.Info.Sprint("Configuration")+" "+ui.Muted.Sprint(configs.KitlogSettings.ConfigPath)+":")
			fmt.Fprintln(out)
		}
		if err := toml.NewEncoder(out).Encode(config); err != nil {
			return Logger.ErrorfAndReturn("Failed to encode config: %w", err)
		}
		if auditPath := config.AuditPath(); config.Audit.Enabled && auditPath != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Info.Sprint("→")+" Audit journal: "+ui.Path.Sprint(auditPath))
		}
		return nil
	},
}
