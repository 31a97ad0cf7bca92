package guard_test

import (
	"errors"
	"testing"

	"tracking/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type email struct {
		value string
		guard guard.ConstructorGuard
	}
	errEmailNotConstructed := errors.New("email must be created via newEmail")

	newEmail := func(value string) email {
		return email{value: value, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		e := newEmail("user@example.com")
		require.NoError(t, e.guard.Validate(errEmailNotConstructed))
	})

	t.Run("copied_value_keeps_guard", func(t *testing.T) {
		e := newEmail("user@example.com")
		copied := e
		require.NoError(t, copied.guard.Validate(errEmailNotConstructed))
	})

	t.Run("struct_literal_fails", func(t *testing.T) {
		e := email{value: "user@example.com"}
		require.ErrorIs(t, e.guard.Validate(errEmailNotConstructed), errEmailNotConstructed)
	})
}
