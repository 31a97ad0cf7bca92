package commands

import (
	"context"
	"fmt"
	"log/slog"

	"tracking/internal/core/application/usecases/views"
	"tracking/internal/core/domain/model/customer"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/outcome"
)

// CreateCustomerCommandHandler creates customers with unique email addresses.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	events     eventPublication
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		events:     newEventPublication(publisher, logger, "create_customer_handler"),
	}
}

// Handle validates the input, rejects duplicate emails, stores the customer
// and publishes CustomerCreated after commit.
func (h *CreateCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCustomerCommand,
) outcome.Outcome[views.CustomerView] {
	email, err := kernel.NewEmailAddress(cmd.Email)
	if err != nil {
		return outcome.FailureFrom[views.CustomerView](err)
	}

	address, err := cmd.Address.toAddress()
	if err != nil {
		return outcome.FailureFrom[views.CustomerView](err)
	}

	phone, err := toPhoneNumber(cmd.Phone)
	if err != nil {
		return outcome.FailureFrom[views.CustomerView](err)
	}

	preferences, err := parseAttributes("preferences", cmd.Preferences)
	if err != nil {
		return outcome.FailureFrom[views.CustomerView](err)
	}

	aggregate, err := customer.NewCustomer(kernel.NewCustomerID(), cmd.Name, email, address, phone, preferences)
	if err != nil {
		return failure[views.CustomerView]("creating customer", err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return failure[views.CustomerView]("creating customer", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()

	if err = ctx.Err(); err != nil {
		return outcome.FailureFrom[views.CustomerView](err)
	}
	existing, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return failure[views.CustomerView]("creating customer", err)
	}
	if existing != nil {
		return outcome.FailureFrom[views.CustomerView](errs.NewBusinessRuleViolationError(
			customer.RuleCustomerEmailMustBeUnique,
			fmt.Sprintf("Customer with email %s already exists", email),
		))
	}

	if err = ctx.Err(); err != nil {
		return outcome.FailureFrom[views.CustomerView](err)
	}
	if err = repo.Save(ctx, aggregate); err != nil {
		return failure[views.CustomerView]("creating customer", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return failure[views.CustomerView]("creating customer", err)
	}

	h.events.publish(ctx, aggregate)
	return outcome.Success(views.FromCustomer(aggregate))
}
