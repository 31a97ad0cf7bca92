package customer_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tracking/internal/core/domain/model/customer"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(
		kernel.NewCustomerID(),
		"Jane Doe",
		kernel.MustNewEmailAddress("jane@example.com"),
		nil,
		nil,
		kernel.EmptyAttributes(),
	)
	require.NoError(t, err)
	return c
}

func TestNewCustomer(t *testing.T) {
	id := kernel.NewCustomerID()
	email := kernel.MustNewEmailAddress("Jane@Example.com")

	t.Run("should create active customer with one event", func(t *testing.T) {
		prefs, err := kernel.NewAttributes("preferences", map[string]any{"newsletter": true})
		require.NoError(t, err)

		c, err := customer.NewCustomer(id, "  Jane Doe ", email, nil, nil, prefs)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Jane Doe", c.Name())
		assert.Equal(t, "jane@example.com", c.Email().Value())
		assert.True(t, c.IsActive())
		assert.Nil(t, c.Address())
		assert.Nil(t, c.PhoneNumber())
		assert.True(t, c.Preferences().IsEqual(prefs))
		assert.Equal(t, c.CreatedAt(), c.UpdatedAt())
		assert.Equal(t, time.UTC, c.CreatedAt().Location())
		assert.Equal(t, 1, c.PendingEventCount())
	})

	t.Run("should record CustomerCreated with payload", func(t *testing.T) {
		c, err := customer.NewCustomer(id, "Jane", email, nil, nil, kernel.EmptyAttributes())
		require.NoError(t, err)

		events := c.DrainEvents()
		require.Len(t, events, 1)

		created, ok := events[0].(customer.CreatedEvent)
		require.True(t, ok)
		assert.Equal(t, customer.EventTypeCreated, created.EventType())
		assert.Equal(t, id.String(), created.AggregateID())
		assert.Equal(t, "Jane", created.Name())
		assert.True(t, created.Email().IsEqual(email))
	})

	t.Run("should keep optional contact details", func(t *testing.T) {
		address, err := kernel.NewAddress("1 Main St", "Springfield", "IL", "12345", "US")
		require.NoError(t, err)
		phone, err := kernel.NewPhoneNumber("+1 555 123 4567")
		require.NoError(t, err)

		c, err := customer.NewCustomer(id, "Jane", email, &address, &phone, kernel.EmptyAttributes())

		require.NoError(t, err)
		require.NotNil(t, c.Address())
		assert.True(t, c.Address().IsEqual(address))
		require.NotNil(t, c.PhoneNumber())
		assert.Equal(t, "+15551234567", c.PhoneNumber().Value())
	})

	t.Run("should reject empty names", func(t *testing.T) {
		for _, name := range []string{"", "   ", "\t"} {
			c, err := customer.NewCustomer(id, name, email, nil, nil, kernel.EmptyAttributes())

			assert.Nil(t, c)
			var validationErr *errs.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "name", validationErr.Field)
			assert.Equal(t, "Customer name cannot be empty", validationErr.Message)
		}
	})

	t.Run("should reject names that are not valid UTF-8", func(t *testing.T) {
		c, err := customer.NewCustomer(id, "Jane \xff\xfe Doe", email, nil, nil, kernel.EmptyAttributes())

		require.Error(t, err)
		assert.Nil(t, c)
		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "name", validationErr.Field)
		assert.Equal(t, "Customer name must be valid UTF-8 text", validationErr.Message)
	})

	t.Run("should enforce name length in characters", func(t *testing.T) {
		_, err := customer.NewCustomer(id, strings.Repeat("é", customer.MaxNameLength), email, nil, nil, kernel.EmptyAttributes())
		require.NoError(t, err)

		_, err = customer.NewCustomer(id, strings.Repeat("a", customer.MaxNameLength+1), email, nil, nil, kernel.EmptyAttributes())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Customer name cannot exceed 200 characters")
	})

	t.Run("should report all invalid arguments", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.CustomerID{}, "", kernel.EmailAddress{}, nil, nil, kernel.EmptyAttributes())

		assert.Nil(t, c)
		require.ErrorIs(t, err, kernel.ErrCustomerIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrEmailAddressIsNotConstructed)
		assert.Contains(t, err.Error(), "Customer name cannot be empty")
	})
}

func TestRestoreCustomer(t *testing.T) {
	id := kernel.NewCustomerID()
	email := kernel.MustNewEmailAddress("jane@example.com")
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	updated := created.Add(time.Hour)

	t.Run("should restore state without events", func(t *testing.T) {
		c, err := customer.RestoreCustomer(id, "Jane", email, nil, nil, false, kernel.EmptyAttributes(), created, updated)

		require.NoError(t, err)
		assert.False(t, c.IsActive())
		assert.Equal(t, created, c.CreatedAt())
		assert.Equal(t, updated, c.UpdatedAt())
		assert.Zero(t, c.PendingEventCount())
	})

	t.Run("should check invariants", func(t *testing.T) {
		_, err := customer.RestoreCustomer(id, " ", email, nil, nil, true, kernel.EmptyAttributes(), created, updated)
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestCustomer_Deactivate(t *testing.T) {
	t.Run("should deactivate active customer", func(t *testing.T) {
		c := newCustomer(t)
		before := c.UpdatedAt()
		c.DrainEvents()

		err := c.Deactivate("fraud review")

		require.NoError(t, err)
		assert.False(t, c.IsActive())
		assert.True(t, c.UpdatedAt().After(before))

		events := c.DrainEvents()
		require.Len(t, events, 1)
		deactivated, ok := events[0].(customer.DeactivatedEvent)
		require.True(t, ok)
		assert.Equal(t, customer.EventTypeDeactivated, deactivated.EventType())
		assert.True(t, deactivated.CustomerID().IsEqual(c.ID()))
		assert.Equal(t, "fraud review", deactivated.Reason())
	})

	t.Run("should append exactly one event after creation", func(t *testing.T) {
		c := newCustomer(t)

		require.NoError(t, c.Deactivate("moved away"))
		assert.Equal(t, 2, c.PendingEventCount())
	})

	t.Run("should reject already inactive customer", func(t *testing.T) {
		c := newCustomer(t)
		require.NoError(t, c.Deactivate("first"))
		updated := c.UpdatedAt()
		pending := c.PendingEventCount()

		err := c.Deactivate("second")

		require.Error(t, err)
		assert.True(t, errs.IsRule(err, customer.RuleCustomerAlreadyInactive))
		assert.False(t, c.IsActive())
		assert.Equal(t, updated, c.UpdatedAt())
		assert.Equal(t, pending, c.PendingEventCount())
	})
}

func TestCustomer_Updates(t *testing.T) {
	t.Run("should update contact details without events", func(t *testing.T) {
		c := newCustomer(t)
		c.DrainEvents()
		before := c.UpdatedAt()

		address, err := kernel.NewAddress("1 Main St", "Springfield", "", "12345", "US")
		require.NoError(t, err)
		phone, err := kernel.NewPhoneNumber("5551234567")
		require.NoError(t, err)
		prefs, err := kernel.NewAttributes("preferences", map[string]any{"language": "de"})
		require.NoError(t, err)

		require.NoError(t, c.UpdateAddress(&address))
		require.NoError(t, c.UpdatePhoneNumber(&phone))
		c.UpdatePreferences(prefs)

		assert.True(t, c.Address().IsEqual(address))
		assert.True(t, c.PhoneNumber().IsEqual(phone))
		assert.True(t, c.Preferences().IsEqual(prefs))
		assert.True(t, c.UpdatedAt().After(before))
		assert.Zero(t, c.PendingEventCount())
	})

	t.Run("nil clears optional details", func(t *testing.T) {
		c := newCustomer(t)

		require.NoError(t, c.UpdateAddress(nil))
		require.NoError(t, c.UpdatePhoneNumber(nil))

		assert.Nil(t, c.Address())
		assert.Nil(t, c.PhoneNumber())
	})

	t.Run("should reject unconstructed values", func(t *testing.T) {
		c := newCustomer(t)

		require.ErrorIs(t, c.UpdateAddress(&kernel.Address{}), kernel.ErrAddressIsNotConstructed)
		require.ErrorIs(t, c.UpdatePhoneNumber(&kernel.PhoneNumber{}), kernel.ErrPhoneNumberIsNotConstructed)
	})
}

func TestCustomer_IsEqual(t *testing.T) {
	c := newCustomer(t)
	restored, err := customer.RestoreCustomer(
		c.ID(), "Other Name", kernel.MustNewEmailAddress("other@example.com"),
		nil, nil, false, kernel.EmptyAttributes(), time.Now(), time.Now(),
	)
	require.NoError(t, err)

	assert.True(t, c.IsEqual(restored))
	assert.False(t, c.IsEqual(newCustomer(t)))
	assert.False(t, c.IsEqual(nil))
}

func TestCustomer_Validate(t *testing.T) {
	var c *customer.Customer
	require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	require.ErrorIs(t, (&customer.Customer{}).Validate(), customer.ErrCustomerIsNotConstructed)
}

func TestEvents_JSON(t *testing.T) {
	id := kernel.NewCustomerID()

	data, err := json.Marshal(customer.NewDeactivatedEvent(id, "closed"))
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, id.String(), payload["customerId"])
	assert.Equal(t, "closed", payload["reason"])
	assert.NotEmpty(t, payload["eventId"])
	assert.NotEmpty(t, payload["occurredAt"])
}
