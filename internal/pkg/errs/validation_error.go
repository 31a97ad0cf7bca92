package errs

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel matched by every ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports malformed input for a value type. Message is the
// fixed, human-readable text callers and clients rely on.
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewValidationErrorWithCause creates a ValidationError that keeps the
// underlying parse or format error.
func NewValidationErrorWithCause(field, message string, cause error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s for %s: %s (cause: %v)", ErrValidation, e.Field, sanitize(e.Message), e.Cause)
	}
	return fmt.Sprintf("%s for %s: %s", ErrValidation, e.Field, sanitize(e.Message))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
