package customerrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tracking/internal/core/domain/model/customer"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolation = "23505"

var _ ports.CustomerRepository = (*GormCustomerRepository)(nil)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a repository bound to db, which may be a transaction.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID returns nil, nil when no customer has id.
func (r *GormCustomerRepository) FindByID(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "find customer", "id = ?", id.UUID().Bytes())
}

// FindByEmail returns nil, nil when no customer owns email.
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email kernel.EmailAddress) (*customer.Customer, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "find customer by email", "email = ?", email.Value())
}

// Save upserts the customer by id. A clash on the email index is reported as
// a CustomerEmailMustBeUnique violation.
func (r *GormCustomerRepository) Save(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return errs.NewInfrastructureError("encode customer", err)
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "email", "address", "phone", "is_active", "preferences", "updated_at",
			}),
		}).
		Create(&dto).Error
	if err != nil {
		if isUniqueViolation(err) {
			return errs.NewBusinessRuleViolationError(
				customer.RuleCustomerEmailMustBeUnique,
				fmt.Sprintf("Customer with email %s already exists", dto.Email),
			)
		}
		return errs.NewInfrastructureError("save customer", err)
	}

	return nil
}

func (r *GormCustomerRepository) ListAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, errs.NewInfrastructureError("list customers", err)
	}
	return toDomainList(dtos)
}

func (r *GormCustomerRepository) Search(
	ctx context.Context,
	filter ports.CustomerFilter,
	limit, offset int,
) ([]*customer.Customer, error) {
	query := r.db.WithContext(ctx).Model(&CustomerDTO{})

	if filter.NameContains != nil {
		query = query.Where("name ILIKE ?", "%"+escapeLike(*filter.NameContains)+"%")
	}
	if filter.Email != nil {
		query = query.Where("email = ?", filter.Email.Value())
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var dtos []CustomerDTO
	if err := query.Order("created_at, id").Limit(limit).Offset(offset).Find(&dtos).Error; err != nil {
		return nil, errs.NewInfrastructureError("search customers", err)
	}
	return toDomainList(dtos)
}

func (r *GormCustomerRepository) first(ctx context.Context, operation string, query string, arg any) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).Where(query, arg).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewInfrastructureError(operation, err)
	}

	c, err := toDomain(dto)
	if err != nil {
		return nil, errs.NewInfrastructureError("decode customer", err)
	}
	return c, nil
}

func toDomainList(dtos []CustomerDTO) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, errs.NewInfrastructureError("decode customer", err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// isUniqueViolation recognises duplicate keys from both drivers: pgx errors
// are translated by gorm, lib/pq errors are not.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
