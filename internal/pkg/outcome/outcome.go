// Package outcome provides Outcome, the success/failure envelope returned by
// every command and query handler.
//
// Handlers never return a bare error for expected failures (invalid input,
// missing aggregates, broken business rules). They return a Failure whose
// message is safe to show to a client and whose cause can still be inspected
// with errors.Is / errors.As by the transport layer.
//
// Example:
//
//	result := handler.Handle(ctx, cmd)
//	if result.IsFailure() {
//	    return result.Error()
//	}
//	view, _ := result.Value()
package outcome

import (
	"errors"
)

// ErrInvalidState is returned when an Outcome is used in a way its variant
// does not allow, e.g. reading the value of a failure.
var ErrInvalidState = errors.New("invalid outcome state")

// Outcome is either Success(value) or Failure(error). The zero value is not a
// valid Outcome; build one with Success, Failure or FailureFrom.
type Outcome[T any] struct {
	value     T
	message   string
	cause     error
	isSuccess bool
}

// Success wraps value in a successful Outcome.
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{
		value:     value,
		isSuccess: true,
	}
}

// Failure builds a failed Outcome. A failure must carry a message; passing an
// empty one is a programming error and panics.
func Failure[T any](message string) Outcome[T] {
	if message == "" {
		panic(errors.Join(ErrInvalidState, errors.New("failure requires a non-empty error message")))
	}

	return Outcome[T]{
		message: message,
		cause:   errors.New(message),
	}
}

// FailureFrom builds a failed Outcome from err, keeping it as the cause.
func FailureFrom[T any](err error) Outcome[T] {
	if err == nil {
		panic(errors.Join(ErrInvalidState, errors.New("failure requires a non-nil error")))
	}

	return Outcome[T]{
		message: err.Error(),
		cause:   err,
	}
}

// IsSuccess reports whether the Outcome holds a value.
func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

// IsFailure reports whether the Outcome holds an error.
func (o Outcome[T]) IsFailure() bool {
	return !o.isSuccess
}

// Value returns the success value, or ErrInvalidState for a failure.
func (o Outcome[T]) Value() (T, error) {
	if !o.isSuccess {
		var zero T
		return zero, ErrInvalidState
	}
	return o.value, nil
}

// ValueOrDefault returns the success value, or def for a failure.
func (o Outcome[T]) ValueOrDefault(def T) T {
	if !o.isSuccess {
		return def
	}
	return o.value
}

// Error returns the failure message; it is empty for a success.
func (o Outcome[T]) Error() string {
	return o.message
}

// Cause returns the error behind a failure, nil for a success.
func (o Outcome[T]) Cause() error {
	return o.cause
}
