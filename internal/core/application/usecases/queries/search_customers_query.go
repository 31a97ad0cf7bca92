package queries

import (
	"context"
	"strings"

	"tracking/internal/core/application/usecases/views"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/outcome"
)

const (
	DefaultSearchLimit = 50
	MaxSearchLimit     = 200
)

// SearchCustomersQuery filters customers. Nil filters match everything.
// Limit defaults to DefaultSearchLimit and is capped at MaxSearchLimit.
type SearchCustomersQuery struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
	Limit    int     `json:"limit,omitempty"`
	Offset   int     `json:"offset,omitempty"`
}

func (q SearchCustomersQuery) limit() int {
	switch {
	case q.Limit <= 0:
		return DefaultSearchLimit
	case q.Limit > MaxSearchLimit:
		return MaxSearchLimit
	default:
		return q.Limit
	}
}

type SearchCustomersQueryHandler struct {
	customers ports.CustomerRepository
}

func NewSearchCustomersQueryHandler(customers ports.CustomerRepository) SearchCustomersQueryHandler {
	return SearchCustomersQueryHandler{customers: customers}
}

func (h SearchCustomersQueryHandler) Handle(
	ctx context.Context,
	query SearchCustomersQuery,
) outcome.Outcome[[]views.CustomerView] {
	if query.Offset < 0 {
		return outcome.FailureFrom[[]views.CustomerView](errs.NewValidationError("offset", "Offset cannot be negative"))
	}

	filter := ports.CustomerFilter{IsActive: query.IsActive}

	if query.Name != nil {
		if name := strings.TrimSpace(*query.Name); name != "" {
			filter.NameContains = &name
		}
	}

	if query.Email != nil {
		email, err := kernel.NewEmailAddress(*query.Email)
		if err != nil {
			return outcome.FailureFrom[[]views.CustomerView](err)
		}
		filter.Email = &email
	}

	if err := ctx.Err(); err != nil {
		return outcome.FailureFrom[[]views.CustomerView](err)
	}
	found, err := h.customers.Search(ctx, filter, query.limit(), query.Offset)
	if err != nil {
		return failure[[]views.CustomerView]("searching customers", err)
	}

	return outcome.Success(views.FromCustomers(found))
}
