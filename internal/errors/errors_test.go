package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

// TestConfigError tests ConfigError creation and message formatting.
func TestConfigError(t *testing.T) {
	err := NewConfigError("invalid worker count: %d", -1)

	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("NewConfigError did not produce a ConfigError: %T", err)
	}
	if !strings.Contains(err.Error(), "invalid worker count: -1") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

// TestValidationError tests the field-qualified message.
func TestValidationError(t *testing.T) {
	err := ValidationError{Field: "size", Message: "must be non-negative"}
	want := `validation error for "size": must be non-negative`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// TestReductionErrorUnwrap verifies the cause survives wrapping.
func TestReductionErrorUnwrap(t *testing.T) {
	cause := context.Canceled
	err := ReductionError{Strategy: "locked", Cause: cause}

	if !errors.Is(err, context.Canceled) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if !strings.Contains(err.Error(), "locked") {
		t.Errorf("message should name the strategy: %q", err.Error())
	}
}

// TestMismatchError tests formatting and errors.As extraction through a
// wrap chain.
func TestMismatchError(t *testing.T) {
	inner := MismatchError{Strategy: "lockfree", Got: 41, Want: 42}
	wrapped := WrapError(inner, "analyzing results")

	var m MismatchError
	if !errors.As(wrapped, &m) {
		t.Fatal("errors.As should extract MismatchError through WrapError")
	}
	if m.Got != 41 || m.Want != 42 {
		t.Errorf("extracted %+v", m)
	}
}

// TestWrapError tests nil passthrough and %w semantics.
func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := errors.New("base")
	wrapped := WrapError(base, "stage %d", 2)
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match base via errors.Is")
	}
	if !strings.Contains(wrapped.Error(), "stage 2") {
		t.Errorf("wrapped message missing context: %q", wrapped.Error())
	}
}

// TestIsContextError covers both context error kinds and a non-context error.
func TestIsContextError(t *testing.T) {
	if !IsContextError(context.Canceled) {
		t.Error("context.Canceled should be a context error")
	}
	if !IsContextError(fmt.Errorf("wrap: %w", context.DeadlineExceeded)) {
		t.Error("wrapped DeadlineExceeded should be a context error")
	}
	if IsContextError(errors.New("boom")) {
		t.Error("generic error should not be a context error")
	}
}

// TestHandleRunError maps each error class to its exit code.
func TestHandleRunError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"timeout", context.DeadlineExceeded, ExitErrorTimeout, "Timeout"},
		{"canceled", context.Canceled, ExitErrorCanceled, "canceled"},
		{"mismatch", MismatchError{Strategy: "locked", Got: 1, Want: 2}, ExitErrorMismatch, "CRITICAL"},
		{"generic", errors.New("boom"), ExitErrorGeneric, "boom"},
		{"wrapped timeout", WrapError(context.DeadlineExceeded, "run"), ExitErrorTimeout, "Timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := HandleRunError(tt.err, 10*time.Millisecond, &buf, NoColorProvider{})
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(buf.String(), tt.wantOut) {
				t.Errorf("output %q should contain %q", buf.String(), tt.wantOut)
			}
		})
	}
}
