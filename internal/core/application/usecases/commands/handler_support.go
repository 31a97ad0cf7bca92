package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/outcome"
)

// failure wraps err with the "Error <operation>: " prefix used for every
// aggregate and persistence failure. Input validation errors raised by an
// aggregate constructor are returned as they are, like those of value types.
func failure[T any](operation string, err error) outcome.Outcome[T] {
	if errors.Is(err, errs.ErrValidation) {
		return outcome.FailureFrom[T](err)
	}
	return outcome.FailureFrom[T](fmt.Errorf("Error %s: %w", operation, err))
}

// eventSource is implemented by aggregates that record domain events.
type eventSource interface {
	DrainEvents() []kernel.DomainEvent
}

// eventPublication hands drained events to the publisher once a transaction
// has committed. The publisher runs detached from request cancellation. A
// publish failure is logged only; the state change is already durable.
type eventPublication struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func newEventPublication(publisher ports.EventPublisher, logger *slog.Logger, component string) eventPublication {
	if logger == nil {
		logger = slog.Default()
	}
	return eventPublication{
		publisher: publisher,
		logger:    logger.With("component", component),
	}
}

func (p eventPublication) publish(ctx context.Context, source eventSource) {
	events := source.DrainEvents()
	if len(events) == 0 || p.publisher == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	if err := p.publisher.Publish(ctx, events); err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish domain events",
			"error", err,
			"aggregate_id", events[0].AggregateID(),
			"count", len(events),
		)
	}
}

// parseAttributes converts an optional raw map into Attributes.
func parseAttributes(field string, raw map[string]any) (kernel.Attributes, error) {
	if raw == nil {
		return kernel.EmptyAttributes(), nil
	}
	return kernel.NewAttributes(field, raw)
}
