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

// DeactivateCustomerCommandHandler deactivates customers.
type DeactivateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	events     eventPublication
}

func NewDeactivateCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) DeactivateCustomerCommandHandler {
	return DeactivateCustomerCommandHandler{
		uowFactory: uowFactory,
		events:     newEventPublication(publisher, logger, "deactivate_customer_handler"),
	}
}

// Handle loads the customer, deactivates it and publishes CustomerDeactivated
// after commit. An already inactive customer yields a CustomerAlreadyInactive
// failure and nothing is written.
func (h *DeactivateCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd DeactivateCustomerCommand,
) outcome.Outcome[views.CustomerView] {
	customerID, err := kernel.CustomerIDFromString(cmd.CustomerID)
	if err != nil {
		return outcome.FailureFrom[views.CustomerView](err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return failure[views.CustomerView]("deactivating customer", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()

	if err = ctx.Err(); err != nil {
		return outcome.FailureFrom[views.CustomerView](err)
	}
	aggregate, err := repo.FindByID(ctx, customerID)
	if err != nil {
		return failure[views.CustomerView]("deactivating customer", err)
	}
	if aggregate == nil {
		return outcome.FailureFrom[views.CustomerView](errs.NewObjectNotFoundError("customer", customerID.String()))
	}

	if err = aggregate.Deactivate(cmd.Reason); err != nil {
		return failure[views.CustomerView]("deactivating customer", err)
	}

	if err = ctx.Err(); err != nil {
		return outcome.FailureFrom[views.CustomerView](err)
	}
	if err = repo.Save(ctx, aggregate); err != nil {
		return failure[views.CustomerView]("deactivating customer", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return failure[views.CustomerView]("deactivating customer", err)
	}

	h.events.publish(ctx, aggregate)
	return outcome.Success(views.FromCustomer(aggregate))
}
