package kernel_test

import (
	"testing"

	"tracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhoneNumber(t *testing.T) {
	t.Run("should strip separators", func(t *testing.T) {
		phone, err := kernel.NewPhoneNumber("+1 (555) 123-4567")

		require.NoError(t, err)
		assert.Equal(t, "+15551234567", phone.Value())
		assert.True(t, phone.IsEqual(phone))
	})

	t.Run("should reject malformed numbers", func(t *testing.T) {
		for _, input := range []string{"123", "phone", "+1-555-CALL-NOW", "1234567890123456"} {
			_, err := kernel.NewPhoneNumber(input)
			require.Error(t, err, input)
			assert.Contains(t, err.Error(), "Invalid phone number format")
		}
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := kernel.NewPhoneNumber("  ")
		assert.Contains(t, err.Error(), "Phone number cannot be empty")
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("should trim parts and allow empty state", func(t *testing.T) {
		address, err := kernel.NewAddress(" 1 Main St ", "Springfield", "", "12345", "US")

		require.NoError(t, err)
		assert.Equal(t, "1 Main St", address.Street())
		assert.Empty(t, address.State())
		assert.Equal(t, "1 Main St, Springfield, 12345, US", address.String())
		require.NoError(t, address.Validate())
	})

	t.Run("should include state in string form", func(t *testing.T) {
		address, err := kernel.NewAddress("1 Main St", "Springfield", "IL", "12345", "US")

		require.NoError(t, err)
		assert.Equal(t, "1 Main St, Springfield, IL 12345, US", address.String())
	})

	t.Run("should report all missing parts", func(t *testing.T) {
		_, err := kernel.NewAddress("", " ", "IL", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Street is required")
		assert.Contains(t, err.Error(), "City is required")
		assert.Contains(t, err.Error(), "Postal code is required")
		assert.Contains(t, err.Error(), "Country is required")
	})

	t.Run("should compare by value", func(t *testing.T) {
		a, _ := kernel.NewAddress("1 Main St", "Springfield", "IL", "12345", "US")
		b, _ := kernel.NewAddress("1 Main St", "Springfield", "IL", "12345", "US")
		c, _ := kernel.NewAddress("2 Main St", "Springfield", "IL", "12345", "US")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
