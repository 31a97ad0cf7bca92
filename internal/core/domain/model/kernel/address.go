package kernel

import (
	"errors"
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is a postal address. State is optional; every other part is required.
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	state      string
	postalCode string
	country    string
	guard      guard.ConstructorGuard
}

// NewAddress trims every part and reports all missing parts at once.
func NewAddress(street, city, state, postalCode, country string) (Address, error) {
	a := Address{
		state: strings.TrimSpace(state),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requiredPart(&a.street, street, "address.street", "Street"),
		requiredPart(&a.city, city, "address.city", "City"),
		requiredPart(&a.postalCode, postalCode, "address.postalCode", "Postal code"),
		requiredPart(&a.country, country, "address.country", "Country"),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string     { return a.street }
func (a Address) City() string       { return a.city }
func (a Address) State() string      { return a.state }
func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Country() string    { return a.country }

func (a Address) IsEqual(other Address) bool {
	return a == other
}

// String renders a single-line address, skipping the state when it is empty.
func (a Address) String() string {
	region := a.postalCode
	if a.state != "" {
		region = a.state + " " + a.postalCode
	}
	return strings.Join([]string{a.street, a.city, region, a.country}, ", ")
}

func requiredPart(dst *string, value, field, label string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.NewValidationError(field, label+" is required")
	}
	*dst = trimmed
	return nil
}
