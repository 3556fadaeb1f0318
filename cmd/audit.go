package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deploykit/kitlog/internal/audit"
	"github.com/deploykit/kitlog/internal/ui"
)

var (
	auditOperation string
	auditJSON      bool
	auditLimit     int
)

func init() {
	auditCmd.Flags().StringVar(&auditOperation, "op", "", "only show operations matching this glob (log, assert, exec)")
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "output entries as JSON Lines")
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "n", 0, "only show the last N entries")
}

// resetAuditCommandState resets the audit command's global state for testing.
func resetAuditCommandState() {
	auditOperation = ""
	auditJSON = false
	auditLimit = 0
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the audit journal",
	Long: `Lists the entries of the audit journal: emitted log lines, commands run
with exec and failed assertions.

Auditing is enabled with [audit] enabled = true in the config file.

Examples:
  # Everything
  kitlog audit

  # Failed assertions only
  kitlog audit --op assert

  # The last 20 entries as JSON Lines
  kitlog audit -n 20 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := currentConfig()
		out := cmd.OutOrStdout()

		logPath := config.AuditPath()
		Logger.Debugf("Reading audit journal from %s", logPath)
		entries, err := audit.ReadEntries(logPath)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read audit journal: %w", err)
		}

		entries, err = audit.FilterByOperation(entries, auditOperation)
		if err != nil {
			return Logger.ErrorfAndReturn("Invalid --op pattern %q: %w", auditOperation, err)
		}

		if auditLimit > 0 && len(entries) > auditLimit {
			entries = entries[len(entries)-auditLimit:]
		}

		if len(entries) == 0 {
			if !auditJSON {
				fmt.Fprintln(out, ui.Warning.Sprint("⚠")+" No audit entries found")
				if !config.Audit.Enabled {
					fmt.Fprintln(out, ui.Info.Sprint("→")+" Auditing is disabled; run "+ui.Code.Sprint("kitlog config init --audit --force")+" to enable it")
				}
			}
			return nil
		}

		for _, entry := range entries {
			if auditJSON {
				data, err := json.Marshal(entry)
				if err != nil {
					return Logger.ErrorfAndReturn("Failed to marshal entry: %w", err)
				}
				fmt.Fprintln(out, string(data))
				continue
			}
			fmt.Fprintln(out, formatEntry(entry))
		}
		return nil
	},
}

// formatEntry renders one journal entry on a single line.
func formatEntry(entry audit.Entry) string {
	var b strings.Builder
	b.WriteString(ui.Muted.Sprint(entry.Timestamp))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("%-6s", entry.Operation))
	b.WriteString(" ")
	b.WriteString(entry.User)
	if entry.Host != "" {
		b.WriteString("@" + entry.Host)
	}

	switch entry.Operation {
	case audit.OpExec:
		b.WriteString(" " + ui.Code.Sprint(strings.Join(entry.Command, " ")))
		b.WriteString(fmt.Sprintf(" exit=%d", entry.ExitCode))
	case audit.OpAssert:
		b.WriteString(" " + ui.Error.Sprint(entry.Message))
		b.WriteString(fmt.Sprintf(" exit=%d", entry.ExitCode))
	default:
		if entry.Prefix != "" {
			b.WriteString(" " + ui.Prefix.Sprint(entry.Prefix))
		}
		b.WriteString(" " + entry.Message)
	}
	return b.String()
}
