package cmd

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deploykit/kitlog/internal/audit"
	logger "github.com/deploykit/kitlog/internal/logging"
)

var (
	logPrefix    string
	logQuiet     bool
	logSeparator string
)

func init() {
	logCmd.Flags().StringVarP(&logPrefix, "prefix", "p", "", "label in front of the line (default from config)")
	logCmd.Flags().BoolVarP(&logQuiet, "quiet", "q", false, "discard the line instead of emitting it")
	logCmd.Flags().StringVarP(&logSeparator, "separator", "s", " ", "text placed between values")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logPrefix = ""
	logQuiet = false
	logSeparator = " "
}

var logCmd = &cobra.Command{
	Use:   "log VALUES...",
	Short: "Emit a log line",
	Long: `Builds one log line from the given values and emits it with the
configured prefix.

A value of \n ends the current line and starts a new one. A single value
of - reads standard input and emits every input line.

Examples:
  # Emit "[DeployKit] deploying web to eu-west-1"
  kitlog log deploying web to eu-west-1

  # Use another prefix
  kitlog log --prefix "[migrate]" applied 12 migrations

  # Relay a build's output
  make build | kitlog log --prefix "[build]" -`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config := currentConfig()

		prefix := config.Logger.Prefix
		if cmd.Flags().Changed("prefix") {
			prefix = logPrefix
		}
		enabled := config.Logger.Verbose && !logQuiet
		Logger.Debugf("Logging %d values with prefix=%q enabled=%t", len(args), prefix, enabled)

		line := logger.NewKitLoggerWithPrefix(enabled, prefix).SetOutput(cmd.OutOrStdout())

		var emitted []string
		if len(args) == 1 && args[0] == "-" {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				text := scanner.Text()
				line.Append(text).Append(logger.Endl)
				if text != "" {
					emitted = append(emitted, text)
				}
			}
			if err := scanner.Err(); err != nil {
				return Logger.ErrorfAndReturn("Failed to read standard input: %w", err)
			}
		} else {
			emitted = appendValues(line, args, logSeparator)
		}

		if err := line.Close(); err != nil {
			return Logger.ErrorfAndReturn("Failed to write log line: %w", err)
		}

		if enabled {
			for _, text := range emitted {
				entry := audit.NewEntry(audit.OpLog)
				entry.Message = text
				recordAudit(entry)
			}
		}
		return nil
	},
}

// appendValues appends values to line, separating values on the same line
// with sep. It returns the text of every line it started.
func appendValues(line *logger.KitLogger, values []string, sep string) []string {
	var lines []string
	var current []string
	atLineStart := true

	for _, value := range values {
		if value == `\n` {
			line.Append(logger.Endl)
			if len(current) > 0 {
				lines = append(lines, strings.Join(current, sep))
			}
			current = nil
			atLineStart = true
			continue
		}
		if !atLineStart {
			line.Append(sep)
		}
		line.Append(value)
		current = append(current, value)
		atLineStart = false
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, sep))
	}
	return lines
}
