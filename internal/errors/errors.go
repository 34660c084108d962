package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between strategies.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags
// or values. It indicates that the application cannot proceed due to
// incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies
// which field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// ReductionError encapsulates a failure inside a strategy run while
// preserving the original cause for inspection with errors.Is/As.
type ReductionError struct {
	// Strategy is the name of the strategy that failed.
	Strategy string
	// Cause is the underlying error that triggered this reduction error.
	Cause error
}

// Error returns the error message including the failing strategy.
func (e ReductionError) Error() string {
	return fmt.Sprintf("strategy %q failed: %v", e.Strategy, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e ReductionError) Unwrap() error { return e.Cause }

// MismatchError reports a divergence between a strategy's combined result
// and the reference result. It is the one error class that indicates a
// broken synchronization discipline rather than an environmental failure.
type MismatchError struct {
	// Strategy is the name of the diverging strategy.
	Strategy string
	// Got is the combined result the strategy produced.
	Got int64
	// Want is the reference combined result.
	Want int64
}

// Error returns a formatted message describing the divergence.
func (e MismatchError) Error() string {
	return fmt.Sprintf("strategy %q produced %d, want %d", e.Strategy, e.Got, e.Want)
}

// TimeoutError represents a run that exceeded its configured time budget.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w,
// so the result can be unwrapped and checked with errors.Is/As.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies the escape codes error reporting decorates its
// output with. The presentation layer provides a themed implementation;
// tests use NoColorProvider.
type ColorProvider interface {
	// ErrorColor returns the escape code for error text.
	ErrorColor() string
	// WarningColor returns the escape code for warning text.
	WarningColor() string
	// ResetColor returns the escape code clearing all formatting.
	ResetColor() string
}

// NoColorProvider is a ColorProvider emitting no escape codes.
type NoColorProvider struct{}

// ErrorColor returns the empty string.
func (NoColorProvider) ErrorColor() string { return "" }

// WarningColor returns the empty string.
func (NoColorProvider) WarningColor() string { return "" }

// ResetColor returns the empty string.
func (NoColorProvider) ResetColor() string { return "" }

// HandleRunError writes a diagnostic for a failed run and returns the exit
// code matching the error class: timeout, cancellation, mismatch or
// generic failure.
func HandleRunError(err error, elapsed time.Duration, out io.Writer, colors ColorProvider) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sTimeout exceeded after %s.%s\n",
			colors.ErrorColor(), elapsed.Round(time.Millisecond), colors.ResetColor())
		return ExitErrorTimeout

	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sRun canceled after %s.%s\n",
			colors.WarningColor(), elapsed.Round(time.Millisecond), colors.ResetColor())
		return ExitErrorCanceled
	}

	var mismatch MismatchError
	if errors.As(err, &mismatch) {
		fmt.Fprintf(out, "%sCRITICAL: %v%s\n", colors.ErrorColor(), mismatch, colors.ResetColor())
		return ExitErrorMismatch
	}

	fmt.Fprintf(out, "%sError: %v%s\n", colors.ErrorColor(), err, colors.ResetColor())
	return ExitErrorGeneric
}
