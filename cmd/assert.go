package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deploykit/kitlog/internal/assert"
	kerrors "github.com/deploykit/kitlog/internal/errors"
	"github.com/deploykit/kitlog/internal/utils"
)

var (
	assertFiles []string
	assertEnv   []string
)

func init() {
	assertCmd.Flags().StringSliceVar(&assertFiles, "file", nil, "require that the file exists (repeatable)")
	assertCmd.Flags().StringSliceVar(&assertEnv, "env", nil, "require that the environment variable is set (repeatable)")
}

// resetAssertCommandState resets the assert command's global state for testing.
func resetAssertCommandState() {
	assertFiles = nil
	assertEnv = nil
}

var assertCmd = &cobra.Command{
	Use:   "assert [CONDITION [MESSAGE...]]",
	Short: "Fail fast when a condition does not hold",
	Long: `Checks a condition and terminates with the configured assertion exit
code when it does not hold. The message is written to standard error.

CONDITION is a boolean (true, false, 1, 0, t, f). --file and --env add
checks for files and environment variables.

Examples:
  # Abort unless the previous step produced an artifact
  kitlog assert --file dist/app.tar.gz

  # Abort with a message when a shell test fails
  kitlog assert "$( [ -n "$TAG" ] && echo true || echo false )" "TAG must be set"

  # Require credentials in the environment
  kitlog assert --env AWS_ACCESS_KEY_ID --env AWS_SECRET_ACCESS_KEY`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && len(assertFiles) == 0 && len(assertEnv) == 0 {
			return fmt.Errorf("no condition given: %w", kerrors.ErrInvalidCondition)
		}

		if len(args) > 0 {
			condition, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("%q is not a boolean: %w", args[0], kerrors.ErrInvalidCondition)
			}

			message := strings.Join(args[1:], " ")
			if message == "" {
				message = "condition is false"
			}

			Logger.Debugf("Checking condition %t: %s", condition, message)
			if err := assert.Check(condition, message); err != nil {
				return err
			}
		}

		for _, file := range assertFiles {
			Logger.Debugf("Checking that %s exists", file)
			if err := assert.Checkf(utils.FileExists(file), "file %s does not exist", file); err != nil {
				return err
			}
		}

		for _, name := range assertEnv {
			Logger.Debugf("Checking that $%s is set", name)
			if err := assert.Checkf(os.Getenv(name) != "", "environment variable %s is not set", name); err != nil {
				return err
			}
		}

		Logger.Infof("All assertions held")
		return nil
	},
}
