package http

import (
	"errors"
	"log/slog"
	"net/http"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/outcome"

	"github.com/labstack/echo/v4"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const internalErrorMessage = "Internal server error"

// StatusFor maps a failure cause to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrBusinessRuleViolation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respond[T any](ctx echo.Context, status int, result outcome.Outcome[T]) error {
	if result.IsFailure() {
		return writeFailure(ctx, result.Cause())
	}

	value, _ := result.Value()
	return ctx.JSON(status, value)
}

func writeFailure(ctx echo.Context, cause error) error {
	status := StatusFor(cause)
	message := cause.Error()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx.Request().Context(), "Request failed",
			"error", cause,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
		)
		message = internalErrorMessage
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// ErrorHandler renders echo errors, including unknown routes and binding
// failures, with the same body as use case failures.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		_ = writeFailure(ctx, err)
		return
	}

	message := http.StatusText(httpErr.Code)
	if m, ok := httpErr.Message.(string); ok {
		message = m
	}
	_ = ctx.JSON(httpErr.Code, Error{Code: httpErr.Code, Message: message})
}
