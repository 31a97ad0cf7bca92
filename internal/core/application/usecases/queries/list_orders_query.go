package queries

import (
	"context"
	"fmt"

	"tracking/internal/core/application/usecases/views"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/outcome"
)

// ListOrdersQuery lists every order, oldest first.
type ListOrdersQuery struct{}

type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, _ ListOrdersQuery) outcome.Outcome[[]views.OrderView] {
	if err := ctx.Err(); err != nil {
		return outcome.FailureFrom[[]views.OrderView](err)
	}
	found, err := h.orders.ListAll(ctx)
	if err != nil {
		return failure[[]views.OrderView]("listing orders", err)
	}

	return outcome.Success(views.FromOrders(found))
}

func failure[T any](operation string, err error) outcome.Outcome[T] {
	return outcome.FailureFrom[T](fmt.Errorf("Error %s: %w", operation, err))
}
