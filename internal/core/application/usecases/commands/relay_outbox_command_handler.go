package commands

import (
	"context"
	"log/slog"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/outcome"
)

// RelayOutboxCommandHandler moves published events from the outbox to a
// broker. Messages are dispatched in order. A failed message is marked and
// retried on the next run; later messages of the same aggregate are held back
// with it so consumers never see them out of order. Other aggregates continue.
type RelayOutboxCommandHandler struct {
	outbox     ports.OutboxRepository
	dispatcher ports.EventDispatcher
	logger     *slog.Logger
}

func NewRelayOutboxCommandHandler(
	outbox ports.OutboxRepository,
	dispatcher ports.EventDispatcher,
	logger *slog.Logger,
) RelayOutboxCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return RelayOutboxCommandHandler{
		outbox:     outbox,
		dispatcher: dispatcher,
		logger:     logger.With("component", "relay_outbox_handler"),
	}
}

// Handle returns the number of messages relayed in this run.
func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) outcome.Outcome[int] {
	if err := ctx.Err(); err != nil {
		return outcome.FailureFrom[int](err)
	}
	messages, err := h.outbox.FetchPending(ctx, cmd.batchSize())
	if err != nil {
		return failure[int]("relaying outbox", err)
	}

	relayed := make([]kernel.UUID, 0, len(messages))
	held := make(map[string]struct{})
	for _, message := range messages {
		if err = ctx.Err(); err != nil {
			break
		}

		if _, blocked := held[message.AggregateID]; blocked {
			h.logger.DebugContext(ctx, "Holding outbox message behind failed predecessor",
				"message_id", message.ID.String(),
				"aggregate_id", message.AggregateID,
			)
			continue
		}

		if dispatchErr := h.dispatcher.Dispatch(ctx, message); dispatchErr != nil {
			h.logger.WarnContext(ctx, "Failed to dispatch outbox message",
				"error", dispatchErr,
				"message_id", message.ID.String(),
				"event_type", message.EventType,
				"attempts", message.Attempts+1,
			)
			if markErr := h.outbox.MarkFailed(ctx, message.ID, dispatchErr); markErr != nil {
				h.logger.ErrorContext(ctx, "Failed to record outbox dispatch failure",
					"error", markErr,
					"message_id", message.ID.String(),
				)
			}
			held[message.AggregateID] = struct{}{}
			continue
		}

		relayed = append(relayed, message.ID)
	}

	if len(relayed) == 0 {
		return outcome.Success(0)
	}

	if err = h.outbox.MarkPublished(context.WithoutCancel(ctx), relayed); err != nil {
		return failure[int]("relaying outbox", err)
	}

	return outcome.Success(len(relayed))
}
