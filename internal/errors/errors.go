package errors

import "errors"

// Assertion errors indicate a checked condition did not hold.
var (
	// ErrAssertionFailed is wrapped by every *AssertionError.
	ErrAssertionFailed = errors.New("assertion failed")
)

// Config errors indicate issues with the kitlog configuration file.
var (
	// ErrConfigExists indicates the config file already exists.
	ErrConfigExists = errors.New("config file already exists")

	// ErrInvalidConfig indicates the config file is malformed or holds invalid values.
	ErrInvalidConfig = errors.New("config is invalid")

	// ErrInvalidColorMode indicates an unknown color mode.
	ErrInvalidColorMode = errors.New("invalid color mode")
)

// Command errors indicate bad command-line input.
var (
	// ErrInvalidCondition indicates an assert condition could not be parsed as a boolean.
	ErrInvalidCondition = errors.New("invalid condition")

	// ErrNoCommand indicates exec was called without a command to run.
	ErrNoCommand = errors.New("no command given")
)

// AssertionError is the fatal error kind produced by a failed check.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	if e.Message == "" {
		return ErrAssertionFailed.Error()
	}
	return ErrAssertionFailed.Error() + ": " + e.Message
}

func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// NewAssertionError returns an *AssertionError carrying message.
func NewAssertionError(message string) *AssertionError {
	return &AssertionError{Message: message}
}

// IsFatal reports whether err is, or wraps, an assertion failure.
func IsFatal(err error) bool {
	return errors.Is(err, ErrAssertionFailed)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
