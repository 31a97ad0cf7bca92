package commands

import (
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when CreateOrderCommand.Currency is empty.
const DefaultCurrency = "USD"

// CreateOrderCommand places an order for an active customer.
// TotalAmount accepts both JSON numbers and strings.
//
// Example:
//
//	cmd := commands.CreateOrderCommand{
//	    CustomerID:  customerID.String(),
//	    TotalAmount: decimal.RequireFromString("150.50"),
//	}
//	result := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	CustomerID  string          `json:"customerId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Currency    string          `json:"currency,omitempty"`
	Details     map[string]any  `json:"details,omitempty"`
}

func (c CreateOrderCommand) currency() string {
	if c.Currency == "" {
		return DefaultCurrency
	}
	return c.Currency
}
