package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/appmodel/apphost/internal/model"
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, model.ErrNoConnectionString):
		return ExitNotFound
	case errors.Is(err, model.ErrDuplicateResource),
		errors.Is(err, model.ErrDuplicateEndpoint),
		errors.Is(err, model.ErrInvalidName),
		errors.Is(err, model.ErrUnresolvedPlaceholder),
		errors.Is(err, model.ErrMissingAllocation):
		return ExitValidationError
	default:
		return ExitGeneralError
	}
}

// WrapValidation wraps an error as a validation-class ExitError.
func WrapValidation(err error, msg string) error {
	return NewExitError(fmt.Errorf("%s: %w", msg, err), ExitValidationError)
}
