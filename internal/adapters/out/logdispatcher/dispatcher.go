// Package logdispatcher relays outbox messages to a structured log. It is the
// dispatcher used when no broker is configured.
package logdispatcher

import (
	"context"
	"log/slog"

	"tracking/internal/core/ports"
)

var _ ports.EventDispatcher = (*Dispatcher)(nil)

type Dispatcher struct {
	logger *slog.Logger
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{logger: logger.With("component", "log_dispatcher")}
}

// Dispatch never fails.
func (d *Dispatcher) Dispatch(ctx context.Context, message ports.OutboxMessage) error {
	d.logger.InfoContext(ctx, "Domain event",
		"event_id", message.ID.String(),
		"event_type", message.EventType,
		"aggregate_id", message.AggregateID,
		"occurred_at", message.OccurredAt,
		"payload", string(message.Payload),
	)
	return nil
}
