// Package errs provides standardized error types for the tracking application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes the error taxonomy used by the core:
//   - ValidationError: malformed input for a value type (field + message)
//   - ObjectNotFoundError: a referenced aggregate does not exist
//   - BusinessRuleViolationError: a named invariant or state-machine guard was broken
//   - InfrastructureError: a store or broker failure, wrapped with context
//
// and the generic helpers ValueIsRequiredError, ValueIsInvalidError and
// ValueIsOutOfRangeError.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValidation)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
