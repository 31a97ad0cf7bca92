// Package customerrepo persists customer aggregates with GORM. Optional and
// free-form parts of the aggregate (address, preferences) are stored as JSONB.
package customerrepo

import (
	"encoding/json"
	"time"

	"tracking/internal/core/domain/model/customer"
	"tracking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CustomerDTO is the customers table row.
type CustomerDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"size:200;not null"`
	Email       string         `gorm:"size:254;not null;uniqueIndex:idx_customers_email"`
	Address     datatypes.JSON `gorm:"type:jsonb"`
	Phone       *string        `gorm:"size:32"`
	IsActive    bool           `gorm:"not null;index"`
	Preferences datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time      `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime:false"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO is the JSON shape of the address column.
type AddressDTO struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func fromDomain(c *customer.Customer) (CustomerDTO, error) {
	preferences, err := json.Marshal(c.Preferences())
	if err != nil {
		return CustomerDTO{}, err
	}

	dto := CustomerDTO{
		ID:          c.ID().UUID().Bytes(),
		Name:        c.Name(),
		Email:       c.Email().Value(),
		IsActive:    c.IsActive(),
		Preferences: preferences,
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}

	if a := c.Address(); a != nil {
		address, marshalErr := json.Marshal(AddressDTO{
			Street:     a.Street(),
			City:       a.City(),
			State:      a.State(),
			PostalCode: a.PostalCode(),
			Country:    a.Country(),
		})
		if marshalErr != nil {
			return CustomerDTO{}, marshalErr
		}
		dto.Address = address
	}

	if p := c.PhoneNumber(); p != nil {
		phone := p.Value()
		dto.Phone = &phone
	}

	return dto, nil
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.CustomerIDFromUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmailAddress(dto.Email)
	if err != nil {
		return nil, err
	}

	var address *kernel.Address
	if len(dto.Address) > 0 && string(dto.Address) != "null" {
		var raw AddressDTO
		if err = json.Unmarshal(dto.Address, &raw); err != nil {
			return nil, err
		}
		a, addrErr := kernel.NewAddress(raw.Street, raw.City, raw.State, raw.PostalCode, raw.Country)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &a
	}

	var phone *kernel.PhoneNumber
	if dto.Phone != nil {
		p, phoneErr := kernel.NewPhoneNumber(*dto.Phone)
		if phoneErr != nil {
			return nil, phoneErr
		}
		phone = &p
	}

	preferences := kernel.EmptyAttributes()
	if len(dto.Preferences) > 0 {
		if preferences, err = kernel.AttributesFromJSON("preferences", dto.Preferences); err != nil {
			return nil, err
		}
	}

	return customer.RestoreCustomer(
		id,
		dto.Name,
		email,
		address,
		phone,
		dto.IsActive,
		preferences,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
