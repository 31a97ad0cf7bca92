package queries

import (
	"context"

	"tracking/internal/core/application/usecases/views"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/outcome"
)

// GetCustomerQuery fetches one customer by id.
type GetCustomerQuery struct {
	CustomerID string `json:"customerId"`
}

type GetCustomerQueryHandler struct {
	customers ports.CustomerRepository
}

func NewGetCustomerQueryHandler(customers ports.CustomerRepository) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{customers: customers}
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) outcome.Outcome[views.CustomerView] {
	customerID, err := kernel.CustomerIDFromString(query.CustomerID)
	if err != nil {
		return outcome.FailureFrom[views.CustomerView](err)
	}

	if err = ctx.Err(); err != nil {
		return outcome.FailureFrom[views.CustomerView](err)
	}
	found, err := h.customers.FindByID(ctx, customerID)
	if err != nil {
		return failure[views.CustomerView]("loading customer", err)
	}
	if found == nil {
		return outcome.FailureFrom[views.CustomerView](errs.NewObjectNotFoundError("customer", customerID.String()))
	}

	return outcome.Success(views.FromCustomer(found))
}
