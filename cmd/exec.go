package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deploykit/kitlog/internal/assert"
	"github.com/deploykit/kitlog/internal/audit"
	kerrors "github.com/deploykit/kitlog/internal/errors"
	logger "github.com/deploykit/kitlog/internal/logging"
	"github.com/deploykit/kitlog/internal/ui"
)

// maxOutputLine bounds a single relayed output line.
const maxOutputLine = 1024 * 1024

var (
	execPrefix      string
	execMustSucceed bool
)

func init() {
	execCmd.Flags().StringVarP(&execPrefix, "prefix", "p", "", "label in front of relayed lines (default from config)")
	execCmd.Flags().BoolVar(&execMustSucceed, "must-succeed", false, "treat a non-zero exit as a failed assertion")
}

// resetExecCommandState resets the exec command's global state for testing.
func resetExecCommandState() {
	execPrefix = ""
	execMustSucceed = false
}

var execCmd = &cobra.Command{
	Use:   "exec [flags] -- COMMAND [ARGS...]",
	Short: "Run a command and relay its output as log lines",
	Long: `Runs COMMAND and relays every line it writes to standard output or
standard error as a log line with the configured prefix.

Without --verbose a spinner is shown while the command runs and the
output is emitted when it finishes. With --verbose lines are relayed as
they arrive.

Examples:
  # Run a migration with its output prefixed
  kitlog exec --prefix "[migrate]" -- ./migrate up

  # Abort the deployment with the assertion exit code if the build fails
  kitlog exec --must-succeed -- make release`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("exec: %w", kerrors.ErrNoCommand)
		}

		config := currentConfig()
		prefix := config.Logger.Prefix
		if cmd.Flags().Changed("prefix") {
			prefix = execPrefix
		}

		out := cmd.OutOrStdout()
		line := logger.NewKitLoggerWithPrefix(config.Logger.Verbose, prefix).SetOutput(out)
		live := verbose || debug

		Logger.Infof("Running %s", strings.Join(args, " "))
		spinner, cleanup := startSpinner(out, "Running "+args[0]+"...", !live)

		child := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
		reader, writer := io.Pipe()
		child.Stdout = writer
		child.Stderr = writer

		if err := child.Start(); err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to start " + ui.Code.Sprint(args[0])
			cleanup()
			return Logger.ErrorfAndReturn("Failed to start %s: %w", args[0], err)
		}

		waitErr := make(chan error, 1)
		go func() {
			err := child.Wait()
			writer.Close()
			waitErr <- err
		}()

		var pending []string
		scanner := bufio.NewScanner(reader)
		scanner.Buffer(make([]byte, 0, 64*1024), maxOutputLine)
		for scanner.Scan() {
			if live {
				line.Append(scanner.Text()).Append(logger.Endl)
			} else {
				pending = append(pending, scanner.Text())
			}
		}
		if err := scanner.Err(); err != nil {
			Logger.Warnf("Stopped relaying output of %s: %v", args[0], err)
			_, _ = io.Copy(io.Discard, reader)
		}

		runErr := <-waitErr
		exitCode := 0
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		if runErr == nil {
			spinner.FinalMSG = ui.Success.Sprint("✓") + " " + ui.Code.Sprint(args[0]) + " finished"
		} else {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " " + ui.Code.Sprint(args[0]) + " failed"
		}
		cleanup()

		for _, text := range pending {
			line.Append(text).Append(logger.Endl)
		}
		if err := line.Close(); err != nil {
			return Logger.ErrorfAndReturn("Failed to write output: %w", err)
		}

		entry := audit.NewEntry(audit.OpExec)
		entry.Command = args
		entry.ExitCode = exitCode
		recordAudit(entry)

		if runErr == nil {
			return nil
		}
		if execMustSucceed {
			return assert.Checkf(false, "%s exited with status %d", args[0], exitCode)
		}
		return fmt.Errorf("%s failed: %w", args[0], runErr)
	},
}
