package queries

import (
	"context"

	"tracking/internal/core/application/usecases/views"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/outcome"
)

// GetCustomerOrdersQuery lists the orders of an existing customer.
type GetCustomerOrdersQuery struct {
	CustomerID string `json:"customerId"`
}

type GetCustomerOrdersQueryHandler struct {
	customers ports.CustomerRepository
	orders    ports.OrderRepository
}

func NewGetCustomerOrdersQueryHandler(
	customers ports.CustomerRepository,
	orders ports.OrderRepository,
) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{customers: customers, orders: orders}
}

// Handle fails with ObjectNotFound for an unknown customer and returns an
// empty list for a customer without orders.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) outcome.Outcome[[]views.OrderView] {
	customerID, err := kernel.CustomerIDFromString(query.CustomerID)
	if err != nil {
		return outcome.FailureFrom[[]views.OrderView](err)
	}

	if err = ctx.Err(); err != nil {
		return outcome.FailureFrom[[]views.OrderView](err)
	}
	owner, err := h.customers.FindByID(ctx, customerID)
	if err != nil {
		return failure[[]views.OrderView]("loading customer orders", err)
	}
	if owner == nil {
		return outcome.FailureFrom[[]views.OrderView](errs.NewObjectNotFoundError("customer", customerID.String()))
	}

	if err = ctx.Err(); err != nil {
		return outcome.FailureFrom[[]views.OrderView](err)
	}
	found, err := h.orders.FindByCustomer(ctx, customerID)
	if err != nil {
		return failure[[]views.OrderView]("loading customer orders", err)
	}

	return outcome.Success(views.FromOrders(found))
}
