// Package orderrepo persists order aggregates with GORM. Amounts are stored
// as unconstrained numerics next to their currency, so every digit the
// domain accepted is kept; details are stored as JSONB.
package orderrepo

import (
	"encoding/json"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the orders table row.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:numeric;not null"`
	Currency    string          `gorm:"type:char(3);not null"`
	Status      int             `gorm:"not null;index"`
	Details     datatypes.JSON  `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime:false"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	details, err := json.Marshal(o.Details())
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:          o.ID().UUID().Bytes(),
		CustomerID:  o.CustomerID().UUID().Bytes(),
		TotalAmount: o.TotalAmount().Amount(),
		Currency:    o.TotalAmount().Currency(),
		Status:      int(o.Status()),
		Details:     details,
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}, nil
}

// toDomain rebuilds the aggregate with RestoreOrder, so stored rows are
// checked against the same invariants as new orders.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.CustomerIDFromUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	details := kernel.EmptyAttributes()
	if len(dto.Details) > 0 {
		if details, err = kernel.AttributesFromJSON("details", dto.Details); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		customerID,
		total,
		order.Status(dto.Status),
		details,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
