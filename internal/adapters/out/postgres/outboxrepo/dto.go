// Package outboxrepo stores published domain events in an outbox table until
// a relay hands them to a broker.
package outboxrepo

import (
	"encoding/json"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MessageDTO is the outbox_messages table row. The row id is the event id.
type MessageDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EventType   string         `gorm:"size:100;not null;index"`
	AggregateID string         `gorm:"size:64;not null;index"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time      `gorm:"not null;index"`
	PublishedAt *time.Time     `gorm:"index"`
	Attempts    int            `gorm:"not null"`
	LastError   string         `gorm:"type:text"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromEvent(event kernel.DomainEvent) (MessageDTO, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return MessageDTO{}, err
	}

	return MessageDTO{
		ID:          event.EventID().Bytes(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		OccurredAt:  event.OccurredAt(),
	}, nil
}

func toMessage(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		EventType:   dto.EventType,
		AggregateID: dto.AggregateID,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt,
		Attempts:    dto.Attempts,
		LastError:   dto.LastError,
	}, nil
}
