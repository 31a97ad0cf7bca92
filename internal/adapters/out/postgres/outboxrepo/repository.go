package outboxrepo

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	_ ports.EventPublisher   = (*GormOutboxRepository)(nil)
	_ ports.OutboxRepository = (*GormOutboxRepository)(nil)
)

// GormOutboxRepository is both the event publisher used by command handlers
// and the store read by the relay.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Publish appends events to the outbox. Events already stored under the same
// id are skipped, so publishing twice is harmless.
func (r *GormOutboxRepository) Publish(ctx context.Context, events []kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(events))
	for _, event := range events {
		dto, err := fromEvent(event)
		if err != nil {
			return errs.NewInfrastructureError("encode "+event.EventType(), err)
		}
		dtos = append(dtos, dto)
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dtos).Error
	if err != nil {
		return errs.NewInfrastructureError("append outbox messages", err)
	}

	return nil
}

// FetchPending returns unpublished messages in the order they occurred.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewInfrastructureError("fetch outbox messages", err)
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		message, convErr := toMessage(dto)
		if convErr != nil {
			return nil, errs.NewInfrastructureError("decode outbox message", convErr)
		}
		messages = append(messages, message)
	}

	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	err := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ?", raw).
		Update("published_at", time.Now().UTC()).Error
	if err != nil {
		return errs.NewInfrastructureError("mark outbox messages published", err)
	}

	return nil
}

// MarkFailed bumps the attempt counter and keeps the latest error text.
func (r *GormOutboxRepository) MarkFailed(ctx context.Context, id kernel.UUID, cause error) error {
	lastError := ""
	if cause != nil {
		lastError = cause.Error()
	}

	err := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": lastError,
		}).Error
	if err != nil {
		return errs.NewInfrastructureError("mark outbox message failed", err)
	}

	return nil
}
