package order

import (
	"encoding/json"
	"time"

	"tracking/internal/core/domain/model/kernel"
)

// DefaultCancelReason is used when an order is cancelled without a reason.
const DefaultCancelReason = "Customer request"

// Event type names as stored in the outbox.
const (
	EventTypeCreated       = "OrderCreated"
	EventTypeStatusChanged = "OrderStatusChanged"
	EventTypeCancelled     = "OrderCancelled"
)

// CreatedEvent is recorded once when an order is placed.
type CreatedEvent struct {
	kernel.BaseEvent
	orderID     kernel.OrderID
	customerID  kernel.CustomerID
	totalAmount kernel.Money
}

func NewCreatedEvent(orderID kernel.OrderID, customerID kernel.CustomerID, totalAmount kernel.Money) CreatedEvent {
	return CreatedEvent{
		BaseEvent:   kernel.NewBaseEvent(),
		orderID:     orderID,
		customerID:  customerID,
		totalAmount: totalAmount,
	}
}

func (e CreatedEvent) EventType() string             { return EventTypeCreated }
func (e CreatedEvent) AggregateID() string           { return e.orderID.String() }
func (e CreatedEvent) OrderID() kernel.OrderID       { return e.orderID }
func (e CreatedEvent) CustomerID() kernel.CustomerID { return e.customerID }
func (e CreatedEvent) TotalAmount() kernel.Money     { return e.totalAmount }

func (e CreatedEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID     string    `json:"eventId"`
		OccurredAt  time.Time `json:"occurredAt"`
		OrderID     string    `json:"orderId"`
		CustomerID  string    `json:"customerId"`
		TotalAmount string    `json:"totalAmount"`
		Currency    string    `json:"currency"`
	}{
		EventID:     e.EventID().String(),
		OccurredAt:  e.OccurredAt(),
		OrderID:     e.orderID.String(),
		CustomerID:  e.customerID.String(),
		TotalAmount: e.totalAmount.Amount().String(),
		Currency:    e.totalAmount.Currency(),
	})
}

// StatusChangedEvent is recorded on confirm, ship and deliver.
type StatusChangedEvent struct {
	kernel.BaseEvent
	orderID   kernel.OrderID
	oldStatus Status
	newStatus Status
}

func NewStatusChangedEvent(orderID kernel.OrderID, oldStatus, newStatus Status) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent: kernel.NewBaseEvent(),
		orderID:   orderID,
		oldStatus: oldStatus,
		newStatus: newStatus,
	}
}

func (e StatusChangedEvent) EventType() string       { return EventTypeStatusChanged }
func (e StatusChangedEvent) AggregateID() string     { return e.orderID.String() }
func (e StatusChangedEvent) OrderID() kernel.OrderID { return e.orderID }
func (e StatusChangedEvent) OldStatus() Status       { return e.oldStatus }
func (e StatusChangedEvent) NewStatus() Status       { return e.newStatus }

func (e StatusChangedEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    string    `json:"eventId"`
		OccurredAt time.Time `json:"occurredAt"`
		OrderID    string    `json:"orderId"`
		OldStatus  string    `json:"oldStatus"`
		NewStatus  string    `json:"newStatus"`
	}{
		EventID:    e.EventID().String(),
		OccurredAt: e.OccurredAt(),
		OrderID:    e.orderID.String(),
		OldStatus:  e.oldStatus.String(),
		NewStatus:  e.newStatus.String(),
	})
}

// CancelledEvent is recorded when a Pending or Confirmed order is cancelled.
type CancelledEvent struct {
	kernel.BaseEvent
	orderID        kernel.OrderID
	previousStatus Status
	reason         string
}

func NewCancelledEvent(orderID kernel.OrderID, previousStatus Status, reason string) CancelledEvent {
	return CancelledEvent{
		BaseEvent:      kernel.NewBaseEvent(),
		orderID:        orderID,
		previousStatus: previousStatus,
		reason:         reason,
	}
}

func (e CancelledEvent) EventType() string       { return EventTypeCancelled }
func (e CancelledEvent) AggregateID() string     { return e.orderID.String() }
func (e CancelledEvent) OrderID() kernel.OrderID { return e.orderID }
func (e CancelledEvent) PreviousStatus() Status  { return e.previousStatus }
func (e CancelledEvent) Reason() string          { return e.reason }

func (e CancelledEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID        string    `json:"eventId"`
		OccurredAt     time.Time `json:"occurredAt"`
		OrderID        string    `json:"orderId"`
		PreviousStatus string    `json:"previousStatus"`
		Reason         string    `json:"reason"`
	}{
		EventID:        e.EventID().String(),
		OccurredAt:     e.OccurredAt(),
		OrderID:        e.orderID.String(),
		PreviousStatus: e.previousStatus.String(),
		Reason:         e.reason,
	})
}
