package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/deploykit/kitlog/internal/assert"
	kerrors "github.com/deploykit/kitlog/internal/errors"
)

func TestAssertCommand(t *testing.T) {
	t.Run("TrueConditionSucceeds", func(t *testing.T) {
		setupTestEnvironment(t)

		for _, condition := range []string{"true", "1", "t", "TRUE"} {
			output, err := runKitlog(t, "", "assert", condition, "never shown")
			if err != nil {
				t.Errorf("assert %s failed: %v", condition, err)
			}
			if output != "" {
				t.Errorf("assert %s wrote %q", condition, output)
			}
		}
	})

	t.Run("FalseConditionIsFatal", func(t *testing.T) {
		setupTestEnvironment(t)

		_, err := runKitlog(t, "", "assert", "false", "TAG", "must", "be", "set")
		if !kerrors.IsFatal(err) {
			t.Fatalf("err = %v, want a fatal assertion error", err)
		}
		if err.Error() != "assertion failed: TAG must be set" {
			t.Errorf("err = %q", err.Error())
		}
	})

	t.Run("FalseConditionDefaultMessage", func(t *testing.T) {
		setupTestEnvironment(t)

		_, err := runKitlog(t, "", "assert", "0")
		if err == nil || err.Error() != "assertion failed: condition is false" {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("InvalidCondition", func(t *testing.T) {
		setupTestEnvironment(t)

		_, err := runKitlog(t, "", "assert", "maybe", "message")
		if !errors.Is(err, kerrors.ErrInvalidCondition) {
			t.Errorf("err = %v, want ErrInvalidCondition", err)
		}
		if kerrors.IsFatal(err) {
			t.Error("a usage error must not be fatal")
		}
	})

	t.Run("NoCondition", func(t *testing.T) {
		setupTestEnvironment(t)

		_, err := runKitlog(t, "", "assert")
		if !errors.Is(err, kerrors.ErrInvalidCondition) {
			t.Errorf("err = %v, want ErrInvalidCondition", err)
		}
	})

	t.Run("FileChecks", func(t *testing.T) {
		setupTestEnvironment(t)

		artifact := filepath.Join(t.TempDir(), "app.tar.gz")
		if err := os.WriteFile(artifact, []byte("x"), 0600); err != nil {
			t.Fatalf("Failed to write artifact: %v", err)
		}

		if _, err := runKitlog(t, "", "assert", "--file", artifact); err != nil {
			t.Errorf("existing file should pass: %v", err)
		}

		missing := filepath.Join(t.TempDir(), "missing")
		_, err := runKitlog(t, "", "assert", "--file", artifact, "--file", missing)
		if !kerrors.IsFatal(err) {
			t.Fatalf("err = %v, want a fatal assertion error", err)
		}
		if err.Error() != "assertion failed: file "+missing+" does not exist" {
			t.Errorf("err = %q", err.Error())
		}
	})

	t.Run("EnvChecks", func(t *testing.T) {
		setupTestEnvironment(t)
		t.Setenv("KITLOG_TEST_SET", "value")
		t.Setenv("KITLOG_TEST_EMPTY", "")

		if _, err := runKitlog(t, "", "assert", "--env", "KITLOG_TEST_SET"); err != nil {
			t.Errorf("set variable should pass: %v", err)
		}

		_, err := runKitlog(t, "", "assert", "--env", "KITLOG_TEST_SET,KITLOG_TEST_EMPTY")
		if err == nil || err.Error() != "assertion failed: environment variable KITLOG_TEST_EMPTY is not set" {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("ConfigSetsExitCode", func(t *testing.T) {
		configDir, _ := setupTestEnvironment(t)
		writeTestConfig(t, configDir, "[assert]\nexit_code = 70\n")

		if _, err := runKitlog(t, "", "assert", "true"); err != nil {
			t.Fatalf("Command failed: %v", err)
		}
		if assert.ExitCode() != 70 {
			t.Errorf("ExitCode() = %d, want 70", assert.ExitCode())
		}
	})
}
