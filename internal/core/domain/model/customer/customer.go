package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// MaxNameLength is the longest customer name accepted, in characters.
const MaxNameLength = 200

// Rule names reported for customers.
const (
	// RuleCustomerAlreadyInactive is reported when deactivating an inactive customer.
	RuleCustomerAlreadyInactive = "CustomerAlreadyInactive"
	// RuleCustomerEmailMustBeUnique is reported when an email already belongs to another customer.
	RuleCustomerEmailMustBeUnique = "CustomerEmailMustBeUnique"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is the aggregate root for a person who places orders.
//
// Customer follows these invariants:
//   - Must have a valid identifier and email address
//   - Name is trimmed, non-empty and at most MaxNameLength characters
//   - Address and phone are optional but well-formed when present
//   - Once inactive, a customer stays inactive
//
// Customer is not safe for concurrent use. Load it, mutate it, save it and
// drop it within a single request.
type Customer struct {
	id          kernel.CustomerID
	name        string
	email       kernel.EmailAddress
	address     *kernel.Address
	phone       *kernel.PhoneNumber
	isActive    bool
	preferences kernel.Attributes
	createdAt   time.Time
	updatedAt   time.Time

	events kernel.EventRecorder

	isConstructed bool
}

// NewCustomer creates an active customer and records a CustomerCreated event.
// address and phone may be nil. All invalid arguments are reported together.
//
// Example:
//
//	email, _ := kernel.NewEmailAddress("jane@example.com")
//	c, err := customer.NewCustomer(kernel.NewCustomerID(), "Jane", email, nil, nil, kernel.EmptyAttributes())
//	if err != nil {
//	    // Handle validation error
//	}
func NewCustomer(
	id kernel.CustomerID,
	name string,
	email kernel.EmailAddress,
	address *kernel.Address,
	phone *kernel.PhoneNumber,
	preferences kernel.Attributes,
) (*Customer, error) {
	now := time.Now().UTC()

	c := &Customer{
		isActive:      true,
		preferences:   preferences,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setAddress(address),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	c.events.Record(NewCreatedEvent(c.id, c.name, c.email))
	return c, nil
}

// RestoreCustomer rebuilds a customer from stored state. It checks the same
// invariants as NewCustomer but records no events.
func RestoreCustomer(
	id kernel.CustomerID,
	name string,
	email kernel.EmailAddress,
	address *kernel.Address,
	phone *kernel.PhoneNumber,
	isActive bool,
	preferences kernel.Attributes,
	createdAt time.Time,
	updatedAt time.Time,
) (*Customer, error) {
	c := &Customer{
		isActive:      isActive,
		preferences:   preferences,
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setAddress(address),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer was built through NewCustomer or RestoreCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}

	return nil
}

// IsEqual compares two customers by identifier.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Customer) ID() kernel.CustomerID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() kernel.EmailAddress {
	return c.email
}

// Address returns the postal address, or nil when none is on file.
func (c *Customer) Address() *kernel.Address {
	if c.address == nil {
		return nil
	}
	address := *c.address
	return &address
}

// PhoneNumber returns the phone number, or nil when none is on file.
func (c *Customer) PhoneNumber() *kernel.PhoneNumber {
	if c.phone == nil {
		return nil
	}
	phone := *c.phone
	return &phone
}

func (c *Customer) IsActive() bool {
	return c.isActive
}

func (c *Customer) Preferences() kernel.Attributes {
	return c.preferences
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

// Deactivate marks the customer inactive and records a CustomerDeactivated
// event.
//
// Returns a BusinessRuleViolationError with rule CustomerAlreadyInactive when
// the customer is already inactive; in that case nothing changes.
func (c *Customer) Deactivate(reason string) error {
	if !c.isActive {
		return errs.NewBusinessRuleViolationError(
			RuleCustomerAlreadyInactive,
			fmt.Sprintf("Customer %s is already inactive", c.id),
		)
	}

	c.isActive = false
	c.touch()
	c.events.Record(NewDeactivatedEvent(c.id, strings.TrimSpace(reason)))
	return nil
}

// UpdateAddress replaces the postal address. A nil address clears it.
func (c *Customer) UpdateAddress(address *kernel.Address) error {
	if err := c.setAddress(address); err != nil {
		return err
	}

	c.touch()
	return nil
}

// UpdatePhoneNumber replaces the phone number. A nil phone clears it.
func (c *Customer) UpdatePhoneNumber(phone *kernel.PhoneNumber) error {
	if err := c.setPhone(phone); err != nil {
		return err
	}

	c.touch()
	return nil
}

// UpdatePreferences replaces the preference map.
func (c *Customer) UpdatePreferences(preferences kernel.Attributes) {
	c.preferences = preferences
	c.touch()
}

// DrainEvents hands over the events recorded since the last drain.
func (c *Customer) DrainEvents() []kernel.DomainEvent {
	return c.events.DrainEvents()
}

func (c *Customer) PendingEventCount() int {
	return c.events.PendingEventCount()
}

func (c *Customer) touch() {
	now := time.Now().UTC()
	if !now.After(c.updatedAt) {
		now = c.updatedAt.Add(time.Microsecond)
	}
	c.updatedAt = now
}

func (c *Customer) setID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if !utf8.ValidString(name) {
		return errs.NewValidationError("name", "Customer name must be valid UTF-8 text")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValidationError("name", "Customer name cannot be empty")
	}

	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return errs.NewValidationError("name", fmt.Sprintf("Customer name cannot exceed %d characters", MaxNameLength))
	}

	c.name = trimmed
	return nil
}

func (c *Customer) setEmail(email kernel.EmailAddress) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Customer) setAddress(address *kernel.Address) error {
	if address == nil {
		c.address = nil
		return nil
	}

	if err := address.Validate(); err != nil {
		return err
	}

	copied := *address
	c.address = &copied
	return nil
}

func (c *Customer) setPhone(phone *kernel.PhoneNumber) error {
	if phone == nil {
		c.phone = nil
		return nil
	}

	if err := phone.Validate(); err != nil {
		return err
	}

	copied := *phone
	c.phone = &copied
	return nil
}
