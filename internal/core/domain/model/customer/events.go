package customer

import (
	"encoding/json"
	"time"

	"tracking/internal/core/domain/model/kernel"
)

// Event type names as stored in the outbox.
const (
	EventTypeCreated     = "CustomerCreated"
	EventTypeDeactivated = "CustomerDeactivated"
)

// CreatedEvent is recorded once when a customer is created.
type CreatedEvent struct {
	kernel.BaseEvent
	customerID kernel.CustomerID
	name       string
	email      kernel.EmailAddress
}

func NewCreatedEvent(customerID kernel.CustomerID, name string, email kernel.EmailAddress) CreatedEvent {
	return CreatedEvent{
		BaseEvent:  kernel.NewBaseEvent(),
		customerID: customerID,
		name:       name,
		email:      email,
	}
}

func (e CreatedEvent) EventType() string             { return EventTypeCreated }
func (e CreatedEvent) AggregateID() string           { return e.customerID.String() }
func (e CreatedEvent) CustomerID() kernel.CustomerID { return e.customerID }
func (e CreatedEvent) Name() string                  { return e.name }
func (e CreatedEvent) Email() kernel.EmailAddress    { return e.email }

func (e CreatedEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    string    `json:"eventId"`
		OccurredAt time.Time `json:"occurredAt"`
		CustomerID string    `json:"customerId"`
		Name       string    `json:"name"`
		Email      string    `json:"email"`
	}{
		EventID:    e.EventID().String(),
		OccurredAt: e.OccurredAt(),
		CustomerID: e.customerID.String(),
		Name:       e.name,
		Email:      e.email.Value(),
	})
}

// DeactivatedEvent is recorded when an active customer is deactivated.
type DeactivatedEvent struct {
	kernel.BaseEvent
	customerID kernel.CustomerID
	reason     string
}

func NewDeactivatedEvent(customerID kernel.CustomerID, reason string) DeactivatedEvent {
	return DeactivatedEvent{
		BaseEvent:  kernel.NewBaseEvent(),
		customerID: customerID,
		reason:     reason,
	}
}

func (e DeactivatedEvent) EventType() string             { return EventTypeDeactivated }
func (e DeactivatedEvent) AggregateID() string           { return e.customerID.String() }
func (e DeactivatedEvent) CustomerID() kernel.CustomerID { return e.customerID }
func (e DeactivatedEvent) Reason() string                { return e.reason }

func (e DeactivatedEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    string    `json:"eventId"`
		OccurredAt time.Time `json:"occurredAt"`
		CustomerID string    `json:"customerId"`
		Reason     string    `json:"reason"`
	}{
		EventID:    e.EventID().String(),
		OccurredAt: e.OccurredAt(),
		CustomerID: e.customerID.String(),
		Reason:     e.reason,
	})
}
