package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/deploykit/kitlog/internal/assert"
	"github.com/deploykit/kitlog/internal/audit"
	"github.com/deploykit/kitlog/internal/configs"
	logger "github.com/deploykit/kitlog/internal/logging"
	"github.com/deploykit/kitlog/internal/ui"
	"github.com/deploykit/kitlog/internal/utils"
)

var (
	verbose    bool
	debug      bool
	noColor    bool
	configPath string

	Logger logger.Logger
	Config *configs.Config

	RootCmd = &cobra.Command{
		Use:   "kitlog",
		Short: "kitlog - line logging and fail-fast assertions for deployment scripts.",
		Long: `kitlog gives shell-driven deployments the same logging and assertion
helpers the deploykit libraries use.

Features:
  - Emit prefixed log lines built from several values
  - Abort a script when a precondition does not hold
  - Run commands with their output relayed as log lines
  - Keep an audit journal of everything emitted

Usage:
  kitlog <command> [flags]

Available Commands:
  log       Emit a log line
  assert    Fail fast when a condition does not hold
  exec      Run a command and relay its output
  config    Manage kitlog configuration
  audit     Show the audit journal

Run 'kitlog help <command>' for more details on a specific command.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if utils.TerminalWidth(80) >= 40 {
				banner := figure.NewFigure("kitlog", "", true)
				fmt.Fprintln(out, ui.Success.Sprint(banner.String()))
			}
			fmt.Fprintln(out, "Welcome to kitlog! Run "+ui.Code.Sprint("kitlog --help")+" to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file (default $XDG_CONFIG_HOME/kitlog/config.toml)")

	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(assertCmd)
	RootCmd.AddCommand(execCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(auditCmd)
}

// setup loads the configuration and applies it to the process-wide
// logger, color and assertion state.
func setup() error {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}
	Logger.Debugf("Initializing kitlog with verbose=%t, debug=%t", verbose, debug)

	if err := configs.InitSettings(configPath); err != nil {
		return Logger.ErrorfAndReturn("Failed to initialize settings: %w", err)
	}

	Logger.Debugf("Loading config from %s", configs.KitlogSettings.ConfigPath)
	config, err := configs.LoadConfig(configs.KitlogSettings.ConfigPath)
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to load config: %w", err)
	}

	colorMode := config.Logger.Color
	if noColor {
		colorMode = ui.ColorNever
	}
	if err := ui.ApplyColorMode(colorMode); err != nil {
		return Logger.ErrorfAndReturn("Failed to apply color mode: %w", err)
	}

	assert.SetExitCode(config.Assert.ExitCode)
	assert.ResetFailureHooks()
	if config.Audit.Enabled {
		auditPath := config.AuditPath()
		prefix := config.Logger.Prefix
		Logger.Debugf("Auditing assertion failures to %s", auditPath)
		assert.RegisterFailureHook(func(message string) {
			entry := audit.NewEntry(audit.OpAssert)
			entry.Prefix = prefix
			entry.Message = message
			entry.ExitCode = assert.ExitCode()
			audit.Log(auditPath, entry)
		})
	}

	Config = config
	return nil
}

// currentConfig returns the loaded config, or the defaults when setup has not run.
func currentConfig() *configs.Config {
	if Config == nil {
		return configs.DefaultConfig()
	}
	return Config
}

// recordAudit writes entry to the journal when auditing is enabled.
func recordAudit(entry audit.Entry) {
	config := currentConfig()
	if !config.Audit.Enabled {
		return
	}
	entry.Prefix = config.Logger.Prefix
	audit.Log(config.AuditPath(), entry)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	noColor = false
	configPath = ""
	Logger = logger.Logger{}
	Config = nil
	assert.ResetFailureHooks()
	assert.SetExitCode(assert.DefaultExitCode)
	resetLogCommandState()
	resetAssertCommandState()
	resetExecCommandState()
	resetConfigState()
	resetAuditCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed mark of every flag to prevent test pollution.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetCobraFlagState(child)
	}
}
