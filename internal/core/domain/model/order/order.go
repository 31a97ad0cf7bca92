package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// Rule names reported for orders.
const (
	// RuleMinimumOrderAmount is reported when an order total is not greater than zero.
	RuleMinimumOrderAmount = "MinimumOrderAmount"
	// RuleOrderRequiresActiveCustomer is reported when ordering for an inactive customer.
	RuleOrderRequiresActiveCustomer = "OrderRequiresActiveCustomer"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root that manages
// the order lifecycle from placement through shipping to delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Total amount must be greater than zero, checked on every construction
//   - Status transitions follow defined business rules
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. It is not safe for concurrent use.
type Order struct {
	// id is the unique identifier for the order
	id kernel.OrderID

	// customerID references the customer who placed the order
	customerID kernel.CustomerID

	// totalAmount is the order total (must be positive)
	totalAmount kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// details holds free-form order data the core never interprets
	details kernel.Attributes

	createdAt time.Time
	updatedAt time.Time

	events kernel.EventRecorder

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Pending order and records an OrderCreated event.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: The customer placing the order
//   - totalAmount: Order total (must be greater than zero)
//   - details: Free-form order details
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error or MinimumOrderAmount violation
//
// Example:
//
//	total, _ := kernel.ParseMoney("150.50 USD")
//	o, err := order.NewOrder(kernel.NewOrderID(), customerID, total, kernel.EmptyAttributes())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.OrderID,
	customerID kernel.CustomerID,
	totalAmount kernel.Money,
	details kernel.Attributes,
) (*Order, error) {
	now := time.Now().UTC()

	o := &Order{
		status:        Pending,
		details:       details,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	o.events.Record(NewCreatedEvent(o.id, o.customerID, o.totalAmount))
	return o, nil
}

// RestoreOrder rebuilds an order from stored state. The total amount invariant
// is checked again; no events are recorded.
func RestoreOrder(
	id kernel.OrderID,
	customerID kernel.CustomerID,
	totalAmount kernel.Money,
	status Status,
	details kernel.Attributes,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		details:       details,
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setTotalAmount(totalAmount),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.CustomerID {
	return o.customerID
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Details returns the free-form order details.
func (o *Order) Details() kernel.Attributes {
	return o.details
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Confirm moves a Pending order to Confirmed and records OrderStatusChanged.
func (o *Order) Confirm() error {
	return o.transition(o.status.Confirm)
}

// Ship moves a Confirmed order to Shipped and records OrderStatusChanged.
func (o *Order) Ship() error {
	return o.transition(o.status.Ship)
}

// Deliver moves a Shipped order to Delivered and records OrderStatusChanged.
func (o *Order) Deliver() error {
	return o.transition(o.status.Deliver)
}

// Cancel moves a Pending or Confirmed order to Cancelled and records
// OrderCancelled. An empty reason becomes DefaultCancelReason.
//
// Example:
//
//	if err := o.Cancel(""); err != nil {
//	    // Order was already shipped, delivered or cancelled
//	}
func (o *Order) Cancel(reason string) error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultCancelReason
	}

	previous := o.status
	o.status = next
	o.touch()
	o.events.Record(NewCancelledEvent(o.id, previous, reason))
	return nil
}

// CanBeCancelled reports whether Cancel would succeed. It changes nothing.
func (o *Order) CanBeCancelled() bool {
	return o.status.CanBeCancelled()
}

// DrainEvents hands over the events recorded since the last drain.
func (o *Order) DrainEvents() []kernel.DomainEvent {
	return o.events.DrainEvents()
}

func (o *Order) PendingEventCount() int {
	return o.events.PendingEventCount()
}

func (o *Order) transition(next func() (Status, error)) error {
	newStatus, err := next()
	if err != nil {
		return err
	}

	oldStatus := o.status
	o.status = newStatus
	o.touch()
	o.events.Record(NewStatusChangedEvent(o.id, oldStatus, newStatus))
	return nil
}

func (o *Order) touch() {
	now := time.Now().UTC()
	if !now.After(o.updatedAt) {
		now = o.updatedAt.Add(time.Microsecond)
	}
	o.updatedAt = now
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setTotalAmount validates and sets the order total.
// The total must be strictly greater than zero.
func (o *Order) setTotalAmount(totalAmount kernel.Money) error {
	if err := totalAmount.Validate(); err != nil {
		return err
	}

	if !totalAmount.IsPositive() {
		return errs.NewBusinessRuleViolationError(
			RuleMinimumOrderAmount,
			fmt.Sprintf("Order total must be greater than zero, got %s", totalAmount),
		)
	}

	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
