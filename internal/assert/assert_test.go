package assert

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	kerrors "github.com/deploykit/kitlog/internal/errors"
)

// stubExit replaces the process exit and stderr for the duration of a test.
func stubExit(t *testing.T) (*bytes.Buffer, *[]int) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	var codes []int

	originalExit, originalStderr := exit, stderr
	exit = func(code int) { codes = append(codes, code) }
	stderr = &out

	t.Cleanup(func() {
		exit, stderr = originalExit, originalStderr
		SetExitCode(DefaultExitCode)
		ResetFailureHooks()
	})
	return &out, &codes
}

func TestAssertTrueIsNoOp(t *testing.T) {
	out, codes := stubExit(t)

	Assert(true, "never shown")
	Assertf(true, "never %s", "shown")

	if out.Len() != 0 {
		t.Errorf("Assert(true) wrote %q", out.String())
	}
	if len(*codes) != 0 {
		t.Errorf("Assert(true) exited with %v", *codes)
	}
}

func TestAssertFalseReportsAndExits(t *testing.T) {
	out, codes := stubExit(t)

	Assert(false, "no hosts to deploy to")

	if out.String() != "assertion failed: no hosts to deploy to\n" {
		t.Errorf("stderr = %q", out.String())
	}
	if len(*codes) != 1 || (*codes)[0] != DefaultExitCode {
		t.Errorf("exit codes = %v, want [%d]", *codes, DefaultExitCode)
	}
}

func TestAssertfFormatsMessage(t *testing.T) {
	out, _ := stubExit(t)

	Assertf(false, "expected %d replicas, got %d", 3, 1)

	if !strings.Contains(out.String(), "expected 3 replicas, got 1") {
		t.Errorf("stderr = %q", out.String())
	}
}

func TestAssertUsesConfiguredExitCode(t *testing.T) {
	_, codes := stubExit(t)
	SetExitCode(70)

	Assert(false, "boom")

	if len(*codes) != 1 || (*codes)[0] != 70 {
		t.Errorf("exit codes = %v, want [70]", *codes)
	}
}

func TestFailureHooksRunBeforeExit(t *testing.T) {
	_, codes := stubExit(t)

	var seen []string
	RegisterFailureHook(func(message string) {
		if len(*codes) != 0 {
			t.Error("hook ran after exit")
		}
		seen = append(seen, message)
	})

	Assert(false, "first")
	Assert(true, "skipped")

	if len(seen) != 1 || seen[0] != "first" {
		t.Errorf("hook saw %v, want [first]", seen)
	}
}

func TestCheck(t *testing.T) {
	if err := Check(true, "fine"); err != nil {
		t.Errorf("Check(true) = %v, want nil", err)
	}
	if err := Checkf(true, "fine %d", 1); err != nil {
		t.Errorf("Checkf(true) = %v, want nil", err)
	}

	err := Checkf(false, "port %d in use", 8080)
	if !kerrors.IsFatal(err) {
		t.Fatalf("Checkf(false) = %v, want a fatal error", err)
	}
	if err.Error() != "assertion failed: port 8080 in use" {
		t.Errorf("err = %q", err.Error())
	}
}

func TestFatal(t *testing.T) {
	t.Run("NilIsNoOp", func(t *testing.T) {
		out, codes := stubExit(t)
		Fatal(nil)
		if out.Len() != 0 || len(*codes) != 0 {
			t.Errorf("Fatal(nil) wrote %q, exited %v", out.String(), *codes)
		}
	})

	t.Run("AssertionUsesAssertExitCode", func(t *testing.T) {
		out, codes := stubExit(t)
		SetExitCode(3)

		var seen string
		RegisterFailureHook(func(message string) { seen = message })

		Fatal(fmt.Errorf("deploying: %w", Check(false, "disk full")))

		if len(*codes) != 1 || (*codes)[0] != 3 {
			t.Errorf("exit codes = %v, want [3]", *codes)
		}
		if seen != "disk full" {
			t.Errorf("hook saw %q, want %q", seen, "disk full")
		}
		if !strings.Contains(out.String(), "deploying: assertion failed: disk full") {
			t.Errorf("stderr = %q", out.String())
		}
	})

	t.Run("OtherErrorsExitOne", func(t *testing.T) {
		out, codes := stubExit(t)
		SetExitCode(3)

		Fatal(kerrors.ErrInvalidConfig)

		if len(*codes) != 1 || (*codes)[0] != 1 {
			t.Errorf("exit codes = %v, want [1]", *codes)
		}
		if out.String() != "Error: config is invalid\n" {
			t.Errorf("stderr = %q", out.String())
		}
	})
}

// TestAssertTerminatesProcess runs a failing Assert in a child process and
// checks that it really exits.
func TestAssertTerminatesProcess(t *testing.T) {
	if os.Getenv("KITLOG_ASSERT_CHILD") == "1" {
		Assert(false, "child assertion")
		fmt.Println("still running")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestAssertTerminatesProcess$")
	cmd.Env = append(os.Environ(), "KITLOG_ASSERT_CHILD=1", "NO_COLOR=1")
	var stdout, stderrBuf bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("child should exit with an error, got %v", err)
	}
	if exitErr.ExitCode() != DefaultExitCode {
		t.Errorf("child exit code = %d, want %d", exitErr.ExitCode(), DefaultExitCode)
	}
	if !strings.Contains(stderrBuf.String(), "assertion failed: child assertion") {
		t.Errorf("child stderr = %q", stderrBuf.String())
	}
	if strings.Contains(stdout.String(), "still running") {
		t.Error("child kept running after a failed assertion")
	}
}
