package kernel

import (
	"time"
)

// DomainEvent is an immutable record of a state change, produced by an
// aggregate and handed to an EventPublisher once the change is persisted.
type DomainEvent interface {
	EventID() UUID
	OccurredAt() time.Time
	// EventType is the stable name used on the wire, e.g. "OrderCancelled".
	EventType() string
	AggregateID() string
}

// BaseEvent carries the identity and timestamp every event shares. Concrete
// events embed it by value.
type BaseEvent struct {
	eventID    UUID
	occurredAt time.Time
}

// NewBaseEvent stamps a fresh event id and the current UTC time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{
		eventID:    NewUUID(),
		occurredAt: time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() UUID {
	return e.eventID
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// EventRecorder accumulates the events raised by an aggregate. It is
// append-only; the only way to read it is DrainEvents, which hands the events
// over to the caller and empties the recorder.
//
// Aggregates hold a recorder as an unexported field and forward DrainEvents
// and PendingEventCount, so that callers cannot append events themselves.
type EventRecorder struct {
	pending []DomainEvent
}

// Record appends event.
func (r *EventRecorder) Record(event DomainEvent) {
	r.pending = append(r.pending, event)
}

// DrainEvents returns the pending events in the order they were recorded and
// clears the recorder. The returned slice is owned by the caller.
func (r *EventRecorder) DrainEvents() []DomainEvent {
	drained := r.pending
	r.pending = nil

	if drained == nil {
		return []DomainEvent{}
	}
	return drained
}

// PendingEventCount returns the number of events recorded since the last drain.
func (r *EventRecorder) PendingEventCount() int {
	return len(r.pending)
}
