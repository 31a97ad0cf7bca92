package commands

import (
	"context"
	"log/slog"

	"tracking/internal/core/application/usecases/views"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/outcome"
)

// ChangeOrderStatusCommandHandler confirms, ships or delivers orders.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	events     eventPublication
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		events:     newEventPublication(publisher, logger, "change_order_status_handler"),
	}
}

// Handle applies the requested transition and publishes OrderStatusChanged
// after commit. An illegal transition yields the transition's rule failure.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) outcome.Outcome[views.OrderView] {
	orderID, err := kernel.OrderIDFromString(cmd.OrderID)
	if err != nil {
		return outcome.FailureFrom[views.OrderView](err)
	}

	action, err := ParseOrderAction(cmd.Action)
	if err != nil {
		return outcome.FailureFrom[views.OrderView](err)
	}
	operation := operationFor(action)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return failure[views.OrderView](operation, err)
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
		return failure[views.OrderView](operation, err)
	}
	if aggregate == nil {
		return outcome.FailureFrom[views.OrderView](errs.NewObjectNotFoundError("order", orderID.String()))
	}

	if err = apply(aggregate, action); err != nil {
		return failure[views.OrderView](operation, err)
	}

	if err = ctx.Err(); err != nil {
		return outcome.FailureFrom[views.OrderView](err)
	}
	if err = repo.Save(ctx, aggregate); err != nil {
		return failure[views.OrderView](operation, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return failure[views.OrderView](operation, err)
	}

	h.events.publish(ctx, aggregate)
	return outcome.Success(views.FromOrder(aggregate))
}

func apply(aggregate *order.Order, action OrderAction) error {
	switch action {
	case ActionConfirm:
		return aggregate.Confirm()
	case ActionShip:
		return aggregate.Ship()
	default:
		return aggregate.Deliver()
	}
}

func operationFor(action OrderAction) string {
	switch action {
	case ActionConfirm:
		return "confirming order"
	case ActionShip:
		return "shipping order"
	default:
		return "delivering order"
	}
}
