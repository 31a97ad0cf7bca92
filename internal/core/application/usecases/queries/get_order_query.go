package queries

import (
	"context"

	"tracking/internal/core/application/usecases/views"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/outcome"
)

// GetOrderQuery fetches one order by id.
type GetOrderQuery struct {
	OrderID string `json:"orderId"`
}

type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) outcome.Outcome[views.OrderView] {
	orderID, err := kernel.OrderIDFromString(query.OrderID)
	if err != nil {
		return outcome.FailureFrom[views.OrderView](err)
	}

	if err = ctx.Err(); err != nil {
		return outcome.FailureFrom[views.OrderView](err)
	}
	found, err := h.orders.FindByID(ctx, orderID)
	if err != nil {
		return failure[views.OrderView]("loading order", err)
	}
	if found == nil {
		return outcome.FailureFrom[views.OrderView](errs.NewObjectNotFoundError("order", orderID.String()))
	}

	return outcome.Success(views.FromOrder(found))
}
