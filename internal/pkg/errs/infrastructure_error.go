package errs

import (
	"errors"
	"fmt"
)

// ErrInfrastructure is the sentinel matched by every InfrastructureError.
var ErrInfrastructure = errors.New("infrastructure failure")

// InfrastructureError wraps a store or broker failure with the operation that
// was being performed.
type InfrastructureError struct {
	Operation string
	Cause     error
}

// NewInfrastructureError wraps cause. It returns nil when cause is nil so that
// repositories can write `return errs.NewInfrastructureError("save order", err)`.
func NewInfrastructureError(operation string, cause error) error {
	if cause == nil {
		return nil
	}

	return &InfrastructureError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %s (cause: %v)", ErrInfrastructure, e.Operation, e.Cause)
}

// Unwrap exposes both the sentinel and the original cause to errors.Is/As.
func (e *InfrastructureError) Unwrap() []error {
	return []error{ErrInfrastructure, e.Cause}
}
