package ports

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
)

// EventPublisher is the outbound boundary for domain events. Handlers call it
// once per successful commit with the events drained from the aggregate.
type EventPublisher interface {
	Publish(ctx context.Context, events []kernel.DomainEvent) error
}

// OutboxMessage is a published event waiting to be relayed to a broker.
type OutboxMessage struct {
	ID          kernel.UUID
	EventType   string
	AggregateID string
	// Payload is the JSON encoding of the event.
	Payload    []byte
	OccurredAt time.Time
	Attempts   int
	LastError  string
}

// OutboxRepository stores published events until they are relayed.
type OutboxRepository interface {
	// FetchPending returns up to limit unrelayed messages, oldest first.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished flags the messages as relayed.
	MarkPublished(ctx context.Context, ids []kernel.UUID) error

	// MarkFailed records a failed relay attempt. The message stays pending.
	MarkFailed(ctx context.Context, id kernel.UUID, cause error) error
}

// EventDispatcher delivers one stored event to a broker.
type EventDispatcher interface {
	Dispatch(ctx context.Context, message OutboxMessage) error
}
