package commands

import (
	"context"
	"fmt"
	"log/slog"

	"tracking/internal/core/application/usecases/views"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/outcome"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Orders are only placed for existing, active customers and start Pending.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, logger)
//	result := handler.Handle(ctx, cmd)
//	if result.IsFailure() {
//	    return fmt.Errorf("order creation failed: %w", result.Cause())
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	events     eventPublication
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because the customer is read in the same transaction
// the order is written in.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		events:     newEventPublication(publisher, logger, "create_order_handler"),
	}
}

// Handle processes the order creation command and publishes OrderCreated
// after commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) outcome.Outcome[views.OrderView] {
	customerID, err := kernel.CustomerIDFromString(cmd.CustomerID)
	if err != nil {
		return outcome.FailureFrom[views.OrderView](err)
	}

	total, err := kernel.NewMoney(cmd.TotalAmount, cmd.currency())
	if err != nil {
		return outcome.FailureFrom[views.OrderView](err)
	}

	details, err := parseAttributes("details", cmd.Details)
	if err != nil {
		return outcome.FailureFrom[views.OrderView](err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return failure[views.OrderView]("creating order", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = ctx.Err(); err != nil {
		return outcome.FailureFrom[views.OrderView](err)
	}
	owner, err := uow.CustomerRepository().FindByID(ctx, customerID)
	if err != nil {
		return failure[views.OrderView]("creating order", err)
	}
	if owner == nil {
		return outcome.FailureFrom[views.OrderView](errs.NewObjectNotFoundError("customer", customerID.String()))
	}
	if !owner.IsActive() {
		return outcome.FailureFrom[views.OrderView](errs.NewBusinessRuleViolationError(
			order.RuleOrderRequiresActiveCustomer,
			fmt.Sprintf("Cannot create order for inactive customer %s", customerID),
		))
	}

	aggregate, err := order.NewOrder(kernel.NewOrderID(), customerID, total, details)
	if err != nil {
		return failure[views.OrderView]("creating order", err)
	}

	if err = ctx.Err(); err != nil {
		return outcome.FailureFrom[views.OrderView](err)
	}
	if err = uow.OrderRepository().Save(ctx, aggregate); err != nil {
		return failure[views.OrderView]("creating order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return failure[views.OrderView]("creating order", err)
	}

	h.events.publish(ctx, aggregate)
	return outcome.Success(views.FromOrder(aggregate))
}
