package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Store failures are returned as errs.InfrastructureError.
type OrderRepository interface {
	// FindByID returns the order or (nil, nil) when none exists.
	FindByID(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// Save inserts or replaces the order by id.
	Save(ctx context.Context, aggregate *order.Order) error

	// FindByCustomer returns the customer's orders, oldest first.
	FindByCustomer(ctx context.Context, customerID kernel.CustomerID) ([]*order.Order, error)

	// ListAll returns every order, oldest first.
	ListAll(ctx context.Context) ([]*order.Order, error)
}
