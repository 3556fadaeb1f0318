package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deploykit/kitlog/internal/configs"
	kerrors "github.com/deploykit/kitlog/internal/errors"
	"github.com/deploykit/kitlog/internal/ui"
	"github.com/deploykit/kitlog/internal/utils"
)

var (
	configInitForce    bool
	configInitPrefix   string
	configInitExitCode int
	configInitAudit    bool
)

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	configInitCmd.Flags().StringVarP(&configInitPrefix, "prefix", "p", "", "default line prefix (prompted for on a terminal)")
	configInitCmd.Flags().IntVar(&configInitExitCode, "exit-code", 1, "exit code of a failed assertion")
	configInitCmd.Flags().BoolVar(&configInitAudit, "audit", false, "enable the audit journal")
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
	configInitPrefix = ""
	configInitExitCode = 1
	configInitAudit = false
}

// promptForInput prompts the user for input with an optional default value.
func promptForInput(out io.Writer, reader *bufio.Reader, prompt, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(out, "%s [%s]: ", prompt, defaultValue)
	} else {
		fmt.Fprintf(out, "%s: ", prompt)
	}

	input, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file",
	Long: `Writes a kitlog config file with the default settings.

The prefix is prompted for when standard input is a terminal and
--prefix is not given.

Examples:
  kitlog config init
  kitlog config init --prefix "[release]" --exit-code 70 --audit
  kitlog config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configs.KitlogSettings.ConfigPath
		out := cmd.OutOrStdout()
		Logger.Infof("Initializing config at %s", configPath)

		if utils.FileExists(configPath) && !configInitForce {
			fmt.Fprintln(out, ui.Warning.Sprint("⚠")+" Config already exists at "+ui.Path.Sprint(configPath))
			fmt.Fprintln(out, ui.Info.Sprint("→")+" Run "+ui.Code.Sprint("kitlog config init --force")+" to overwrite it")
			return fmt.Errorf("%s: %w", configPath, kerrors.ErrConfigExists)
		}

		config := configs.DefaultConfig()
		config.Assert.ExitCode = configInitExitCode
		config.Audit.Enabled = configInitAudit

		switch {
		case cmd.Flags().Changed("prefix"):
			config.Logger.Prefix = configInitPrefix
		case utils.IsTerminal():
			prefix, err := promptForInput(out, bufio.NewReader(cmd.InOrStdin()), "Line prefix", config.Logger.Prefix)
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to read prefix: %w", err)
			}
			config.Logger.Prefix = prefix
		}

		Logger.Debugf("Saving config %+v", *config)
		if err := configs.SaveConfig(configPath, config); err != nil {
			return Logger.ErrorfAndReturn("Failed to save config: %w", err)
		}

		fmt.Fprintln(out, ui.Success.Sprint("✓")+" Config written to "+ui.Path.Sprint(configPath))
		return nil
	},
}
