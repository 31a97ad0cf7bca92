package errs

import (
	"errors"
	"fmt"
)

// ErrBusinessRuleViolation is the sentinel matched by every BusinessRuleViolationError.
var ErrBusinessRuleViolation = errors.New("business rule violated")

// BusinessRuleViolationError reports a broken invariant or state-machine guard.
// Rule is machine readable (e.g. "OrderCancellationRule").
type BusinessRuleViolationError struct {
	Rule    string
	Message string
}

// NewBusinessRuleViolationError creates a BusinessRuleViolationError.
func NewBusinessRuleViolationError(rule, message string) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{
		Rule:    rule,
		Message: message,
	}
}

func (e *BusinessRuleViolationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrBusinessRuleViolation, e.Rule, sanitize(e.Message))
}

func (e *BusinessRuleViolationError) Unwrap() error {
	return ErrBusinessRuleViolation
}

// IsRule reports whether err is a BusinessRuleViolationError for rule.
func IsRule(err error, rule string) bool {
	var violation *BusinessRuleViolationError
	if !errors.As(err, &violation) {
		return false
	}
	return violation.Rule == rule
}
