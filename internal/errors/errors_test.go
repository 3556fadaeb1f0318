package errors

import (
	"fmt"
	"testing"
)

func TestAssertionErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"WithMessage", "no hosts", "assertion failed: no hosts"},
		{"EmptyMessage", "", "assertion failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAssertionError(tt.message)
			if got := err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssertionErrorIsFatal(t *testing.T) {
	err := fmt.Errorf("deploying: %w", NewAssertionError("disk full"))

	if !IsFatal(err) {
		t.Error("wrapped assertion error should be fatal")
	}
	if !Is(err, ErrAssertionFailed) {
		t.Error("wrapped assertion error should match ErrAssertionFailed")
	}

	var assertErr *AssertionError
	if !As(err, &assertErr) {
		t.Fatal("As should find the *AssertionError")
	}
	if assertErr.Message != "disk full" {
		t.Errorf("Message = %q, want %q", assertErr.Message, "disk full")
	}
}

func TestOtherErrorsAreNotFatal(t *testing.T) {
	for _, err := range []error{nil, ErrInvalidConfig, ErrInvalidCondition, fmt.Errorf("wrap: %w", ErrConfigExists)} {
		if IsFatal(err) {
			t.Errorf("IsFatal(%v) = true, want false", err)
		}
	}
}
