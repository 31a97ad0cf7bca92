package commands

import (
	"context"
	"log/slog"

	"tracking/internal/core/application/usecases/views"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/outcome"
)

// CancelOrderCommandHandler cancels orders that have not shipped yet.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     eventPublication
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		events:     newEventPublication(publisher, logger, "cancel_order_handler"),
	}
}

// Handle cancels the order and publishes OrderCancelled after commit.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) outcome.Outcome[views.OrderView] {
	orderID, err := kernel.OrderIDFromString(cmd.OrderID)
	if err != nil {
		return outcome.FailureFrom[views.OrderView](err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return failure[views.OrderView]("cancelling order", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	if err = ctx.Err(); err != nil {
		return outcome.FailureFrom[views.OrderView](err)
	}
	aggregate, err := repo.FindByID(ctx, orderID)
	if err != nil {
		return failure[views.OrderView]("cancelling order", err)
	}
	if aggregate == nil {
		return outcome.FailureFrom[views.OrderView](errs.NewObjectNotFoundError("order", orderID.String()))
	}

	if err = aggregate.Cancel(cmd.Reason); err != nil {
		return failure[views.OrderView]("cancelling order", err)
	}

	if err = ctx.Err(); err != nil {
		return outcome.FailureFrom[views.OrderView](err)
	}
	if err = repo.Save(ctx, aggregate); err != nil {
		return failure[views.OrderView]("cancelling order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return failure[views.OrderView]("cancelling order", err)
	}

	h.events.publish(ctx, aggregate)
	return outcome.Success(views.FromOrder(aggregate))
}
