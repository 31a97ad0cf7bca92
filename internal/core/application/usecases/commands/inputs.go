package commands

import (
	"tracking/internal/core/domain/model/kernel"
)

// AddressInput is the raw postal address accepted by customer commands.
type AddressInput struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (a *AddressInput) toAddress() (*kernel.Address, error) {
	if a == nil {
		return nil, nil
	}

	address, err := kernel.NewAddress(a.Street, a.City, a.State, a.PostalCode, a.Country)
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func toPhoneNumber(raw *string) (*kernel.PhoneNumber, error) {
	if raw == nil {
		return nil, nil
	}

	phone, err := kernel.NewPhoneNumber(*raw)
	if err != nil {
		return nil, err
	}
	return &phone, nil
}
