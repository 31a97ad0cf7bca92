package commands

import (
	"context"
	"log/slog"
	"strings"

	"tracking/internal/core/application/usecases/views"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/outcome"
)

// UpdateCustomerProfileCommandHandler updates contact details and preferences.
type UpdateCustomerProfileCommandHandler struct {
	uowFactory CustomerUoWFactory
	events     eventPublication
}

func NewUpdateCustomerProfileCommandHandler(
	uowFactory CustomerUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateCustomerProfileCommandHandler {
	return UpdateCustomerProfileCommandHandler{
		uowFactory: uowFactory,
		events:     newEventPublication(publisher, logger, "update_customer_profile_handler"),
	}
}

func (h *UpdateCustomerProfileCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCustomerProfileCommand,
) outcome.Outcome[views.CustomerView] {
	customerID, err := kernel.CustomerIDFromString(cmd.CustomerID)
	if err != nil {
		return outcome.FailureFrom[views.CustomerView](err)
	}

	address, err := cmd.Address.toAddress()
	if err != nil {
		return outcome.FailureFrom[views.CustomerView](err)
	}

	clearPhone := cmd.Phone != nil && strings.TrimSpace(*cmd.Phone) == ""
	var phone *kernel.PhoneNumber
	if !clearPhone {
		if phone, err = toPhoneNumber(cmd.Phone); err != nil {
			return outcome.FailureFrom[views.CustomerView](err)
		}
	}

	var preferences *kernel.Attributes
	if cmd.Preferences != nil {
		parsed, parseErr := kernel.NewAttributes("preferences", cmd.Preferences)
		if parseErr != nil {
			return outcome.FailureFrom[views.CustomerView](parseErr)
		}
		preferences = &parsed
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return failure[views.CustomerView]("updating customer", err)
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
		return failure[views.CustomerView]("updating customer", err)
	}
	if aggregate == nil {
		return outcome.FailureFrom[views.CustomerView](errs.NewObjectNotFoundError("customer", customerID.String()))
	}

	if address != nil {
		if err = aggregate.UpdateAddress(address); err != nil {
			return failure[views.CustomerView]("updating customer", err)
		}
	}
	if phone != nil || clearPhone {
		if err = aggregate.UpdatePhoneNumber(phone); err != nil {
			return failure[views.CustomerView]("updating customer", err)
		}
	}
	if preferences != nil {
		aggregate.UpdatePreferences(*preferences)
	}

	if err = ctx.Err(); err != nil {
		return outcome.FailureFrom[views.CustomerView](err)
	}
	if err = repo.Save(ctx, aggregate); err != nil {
		return failure[views.CustomerView]("updating customer", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return failure[views.CustomerView]("updating customer", err)
	}

	h.events.publish(ctx, aggregate)
	return outcome.Success(views.FromCustomer(aggregate))
}
