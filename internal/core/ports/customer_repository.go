// Package ports defines the contracts between the tracking core and its
// infrastructure: repositories, the unit of work, and the outbound event
// boundary. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"tracking/internal/core/domain/model/customer"
	"tracking/internal/core/domain/model/kernel"
)

// CustomerFilter narrows Search. Nil fields do not filter.
type CustomerFilter struct {
	// NameContains matches a case-insensitive substring of the name.
	NameContains *string
	// Email matches the normalized address exactly.
	Email    *kernel.EmailAddress
	IsActive *bool
}

// CustomerRepository defines the persistence contract for customer aggregates.
// Store failures are returned as errs.InfrastructureError.
type CustomerRepository interface {
	// FindByID returns the customer or (nil, nil) when none exists.
	FindByID(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error)

	// FindByEmail returns the customer owning email or (nil, nil) when none exists.
	FindByEmail(ctx context.Context, email kernel.EmailAddress) (*customer.Customer, error)

	// Save inserts or replaces the customer by id. Saving the same state twice
	// leaves one record.
	Save(ctx context.Context, aggregate *customer.Customer) error

	// ListAll returns every customer ordered by creation time.
	ListAll(ctx context.Context) ([]*customer.Customer, error)

	// Search returns customers matching filter ordered by creation time.
	//
	// Example:
	//   active := true
	//   page, err := repo.Search(ctx, ports.CustomerFilter{IsActive: &active}, 50, 0)
	//   if err != nil {
	//       return fmt.Errorf("failed to search customers: %w", err)
	//   }
	Search(ctx context.Context, filter CustomerFilter, limit, offset int) ([]*customer.Customer, error)
}
