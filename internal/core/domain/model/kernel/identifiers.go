package kernel

import (
	"tracking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCustomerIDIsNotConstructed = errs.NewValueIsRequiredError("CustomerID must be created via NewCustomerID or CustomerIDFromString")
	ErrOrderIDIsNotConstructed    = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID or OrderIDFromString")
)

// CustomerID identifies a customer aggregate. Two ids are equal when their
// underlying UUIDs are.
type CustomerID struct {
	value UUID
}

// NewCustomerID generates a fresh CustomerID.
func NewCustomerID() CustomerID {
	return CustomerID{value: NewUUID()}
}

// CustomerIDFromString parses a CustomerID supplied by a client or a store.
func CustomerIDFromString(s string) (CustomerID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return CustomerID{}, errs.NewValidationErrorWithCause("customerId", "Invalid customer ID: "+s, err)
	}
	return CustomerID{value: id}, nil
}

// CustomerIDFromUUID wraps an already parsed uuid.UUID.
func CustomerIDFromUUID(u uuid.UUID) (CustomerID, error) {
	id := CustomerID{value: UUID{id: u}}
	if err := id.Validate(); err != nil {
		return CustomerID{}, err
	}
	return id, nil
}

func (c CustomerID) UUID() UUID {
	return c.value
}

func (c CustomerID) String() string {
	return c.value.String()
}

func (c CustomerID) IsEqual(other CustomerID) bool {
	return c.value.IsEqual(other.value)
}

func (c CustomerID) Validate() error {
	if c.value.Validate() != nil {
		return ErrCustomerIDIsNotConstructed
	}
	return nil
}

// OrderID identifies an order aggregate.
type OrderID struct {
	value UUID
}

// NewOrderID generates a fresh OrderID.
func NewOrderID() OrderID {
	return OrderID{value: NewUUID()}
}

// OrderIDFromString parses an OrderID supplied by a client or a store.
func OrderIDFromString(s string) (OrderID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return OrderID{}, errs.NewValidationErrorWithCause("orderId", "Invalid order ID: "+s, err)
	}
	return OrderID{value: id}, nil
}

// OrderIDFromUUID wraps an already parsed uuid.UUID.
func OrderIDFromUUID(u uuid.UUID) (OrderID, error) {
	id := OrderID{value: UUID{id: u}}
	if err := id.Validate(); err != nil {
		return OrderID{}, err
	}
	return id, nil
}

func (o OrderID) UUID() UUID {
	return o.value
}

func (o OrderID) String() string {
	return o.value.String()
}

func (o OrderID) IsEqual(other OrderID) bool {
	return o.value.IsEqual(other.value)
}

func (o OrderID) Validate() error {
	if o.value.Validate() != nil {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
