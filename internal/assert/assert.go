// Package assert provides fail-fast precondition checks.
//
// Assert terminates the process when its condition is false. The exit is
// immediate: deferred functions do not run and resources held by the
// caller are not released. Use Check where the caller should decide what
// a failure means; it returns an *errors.AssertionError instead.
package assert

import (
	"fmt"
	"io"
	"os"
	"sync"

	kerrors "github.com/deploykit/kitlog/internal/errors"
	"github.com/deploykit/kitlog/internal/ui"
)

// DefaultExitCode is the status a failed assertion exits with.
const DefaultExitCode = 1

var (
	mu       sync.Mutex
	exitCode = DefaultExitCode
	hooks    []func(message string)

	// exit and stderr are swapped out by tests.
	exit   = os.Exit
	stderr io.Writer
)

// Assert terminates the process when condition is false, after writing
// message to standard error and running the failure hooks.
func Assert(condition bool, message string) {
	if condition {
		return
	}
	fail(message)
}

// Assertf is Assert with a formatted message.
func Assertf(condition bool, format string, args ...any) {
	if condition {
		return
	}
	fail(fmt.Sprintf(format, args...))
}

// Check returns an *errors.AssertionError when condition is false.
func Check(condition bool, message string) error {
	if condition {
		return nil
	}
	return kerrors.NewAssertionError(message)
}

// Checkf is Check with a formatted message.
func Checkf(condition bool, format string, args ...any) error {
	if condition {
		return nil
	}
	return kerrors.NewAssertionError(fmt.Sprintf(format, args...))
}

// Fatal reports err and terminates the process. Assertion failures exit
// with the configured exit code, anything else with 1. A nil err is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}

	var assertErr *kerrors.AssertionError
	if kerrors.As(err, &assertErr) {
		runHooks(assertErr.Message)
		report(ui.Error.Sprint(err.Error()))
		exit(ExitCode())
		return
	}

	report(ui.Error.Sprint("Error:") + " " + err.Error())
	exit(1)
}

// SetExitCode changes the status failed assertions exit with.
func SetExitCode(code int) {
	mu.Lock()
	defer mu.Unlock()
	exitCode = code
}

// ExitCode returns the status failed assertions exit with.
func ExitCode() int {
	mu.Lock()
	defer mu.Unlock()
	return exitCode
}

// RegisterFailureHook adds fn to the functions run with the message of
// every failed assertion, before the process exits.
func RegisterFailureHook(fn func(message string)) {
	mu.Lock()
	defer mu.Unlock()
	hooks = append(hooks, fn)
}

// ResetFailureHooks removes every registered hook.
func ResetFailureHooks() {
	mu.Lock()
	defer mu.Unlock()
	hooks = nil
}

func fail(message string) {
	runHooks(message)
	report(ui.Error.Sprint(kerrors.NewAssertionError(message).Error()))
	exit(ExitCode())
}

func runHooks(message string) {
	mu.Lock()
	registered := make([]func(string), len(hooks))
	copy(registered, hooks)
	mu.Unlock()

	for _, fn := range registered {
		fn(message)
	}
}

func report(text string) {
	w := stderr
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, text)
}
