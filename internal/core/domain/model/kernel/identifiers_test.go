package kernel_test

import (
	"testing"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerID(t *testing.T) {
	t.Run("should generate distinct ids", func(t *testing.T) {
		id1 := kernel.NewCustomerID()
		id2 := kernel.NewCustomerID()

		require.NoError(t, id1.Validate())
		assert.False(t, id1.IsEqual(id2))
		assert.True(t, id1.IsEqual(id1))
	})

	t.Run("should round trip through string", func(t *testing.T) {
		id := kernel.NewCustomerID()

		parsed, err := kernel.CustomerIDFromString(id.String())
		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("should reject malformed input with a validation error", func(t *testing.T) {
		_, err := kernel.CustomerIDFromString("abc")

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "customerId", validationErr.Field)
		assert.Equal(t, "Invalid customer ID: abc", validationErr.Message)
	})

	t.Run("should reject the nil uuid", func(t *testing.T) {
		_, err := kernel.CustomerIDFromUUID(uuid.Nil)
		assert.Equal(t, kernel.ErrCustomerIDIsNotConstructed, err)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.CustomerID
		assert.Equal(t, kernel.ErrCustomerIDIsNotConstructed, id.Validate())
	})
}

func TestOrderID(t *testing.T) {
	t.Run("should round trip through uuid", func(t *testing.T) {
		id := kernel.NewOrderID()

		parsed, err := kernel.OrderIDFromUUID(id.UUID().Bytes())
		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
		assert.Equal(t, id.String(), parsed.String())
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("not-an-id")

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "Invalid order ID: not-an-id")
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.OrderID
		assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, id.Validate())
	})
}
