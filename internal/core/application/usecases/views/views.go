// Package views holds the read models returned by command and query handlers.
// Views are plain data with JSON tags; they never reference aggregates.
package views

import (
	"time"

	"tracking/internal/core/domain/model/customer"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type AddressView struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type CustomerView struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Address     *AddressView   `json:"address,omitempty"`
	Phone       *string        `json:"phone,omitempty"`
	IsActive    bool           `json:"isActive"`
	Preferences map[string]any `json:"preferences"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type OrderView struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Currency    string          `json:"currency"`
	// Total is the display form, e.g. "150.50 USD".
	Total     string         `json:"total"`
	Status    string         `json:"status"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func FromAddress(address kernel.Address) AddressView {
	return AddressView{
		Street:     address.Street(),
		City:       address.City(),
		State:      address.State(),
		PostalCode: address.PostalCode(),
		Country:    address.Country(),
	}
}

func FromCustomer(c *customer.Customer) CustomerView {
	view := CustomerView{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Email:       c.Email().Value(),
		IsActive:    c.IsActive(),
		Preferences: c.Preferences().ToMap(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}

	if address := c.Address(); address != nil {
		addressView := FromAddress(*address)
		view.Address = &addressView
	}

	if phone := c.PhoneNumber(); phone != nil {
		value := phone.Value()
		view.Phone = &value
	}

	return view
}

func FromCustomers(customers []*customer.Customer) []CustomerView {
	result := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		result = append(result, FromCustomer(c))
	}
	return result
}

func FromOrder(o *order.Order) OrderView {
	return OrderView{
		ID:          o.ID().String(),
		CustomerID:  o.CustomerID().String(),
		TotalAmount: o.TotalAmount().Amount(),
		Currency:    o.TotalAmount().Currency(),
		Total:       o.TotalAmount().String(),
		Status:      o.Status().String(),
		Details:     o.Details().ToMap(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

func FromOrders(orders []*order.Order) []OrderView {
	result := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		result = append(result, FromOrder(o))
	}
	return result
}
