package customerrepo_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"tracking/internal/adapters/out/postgres/customerrepo"
	"tracking/internal/core/domain/model/customer"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var customerColumns = []string{
	"id", "name", "email", "address", "phone", "is_active", "preferences", "created_at", "updated_at",
}

func newMockedRepository(t *testing.T) (*customerrepo.GormCustomerRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return customerrepo.NewGormCustomerRepository(db), mock
}

func newTestCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	address, err := kernel.NewAddress("1 Main St", "Springfield", "", "12345", "US")
	require.NoError(t, err)
	c, err := customer.NewCustomer(
		kernel.NewCustomerID(),
		"Jane Doe",
		kernel.MustNewEmailAddress("jane@example.com"),
		&address,
		nil,
		kernel.EmptyAttributes(),
	)
	require.NoError(t, err)
	return c
}

func TestFindByID(t *testing.T) {
	t.Run("should map row to aggregate", func(t *testing.T) {
		repo, mock := newMockedRepository(t)
		id := kernel.NewCustomerID()
		created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		phone := "+15551234567"

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers" WHERE id = $1`)).
			WillReturnRows(sqlmock.NewRows(customerColumns).AddRow(
				id.String(), "Jane Doe", "jane@example.com",
				[]byte(`{"street":"1 Main St","city":"Springfield","postalCode":"12345","country":"US"}`),
				phone, true, []byte(`{"theme":"dark"}`), created, created.Add(time.Hour),
			))

		found, err := repo.FindByID(t.Context(), id)
		require.NoError(t, err)
		require.NotNil(t, found)

		assert.True(t, found.ID().IsEqual(id))
		assert.Equal(t, "Jane Doe", found.Name())
		require.NotNil(t, found.Address())
		assert.Equal(t, "1 Main St, Springfield, 12345, US", found.Address().String())
		require.NotNil(t, found.PhoneNumber())
		assert.Equal(t, phone, found.PhoneNumber().Value())
		theme, ok := found.Preferences().Get("theme")
		require.True(t, ok)
		assert.Equal(t, "dark", theme)
		assert.Equal(t, created, found.CreatedAt())
		assert.Zero(t, found.PendingEventCount())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return nil when missing", func(t *testing.T) {
		repo, mock := newMockedRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers" WHERE id = $1`)).
			WillReturnRows(sqlmock.NewRows(customerColumns))

		found, err := repo.FindByID(t.Context(), kernel.NewCustomerID())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("should wrap store failure", func(t *testing.T) {
		repo, mock := newMockedRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers"`)).
			WillReturnError(errors.New("connection reset"))

		found, err := repo.FindByID(t.Context(), kernel.NewCustomerID())
		require.ErrorIs(t, err, errs.ErrInfrastructure)
		assert.Contains(t, err.Error(), "connection reset")
		assert.Nil(t, found)
	})
}

func TestSave(t *testing.T) {
	t.Run("should upsert by id", func(t *testing.T) {
		repo, mock := newMockedRepository(t)
		c := newTestCustomer(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "customers"`) + `.*` +
			regexp.QuoteMeta(`ON CONFLICT ("id") DO UPDATE SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Save(t.Context(), c))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should report duplicate email as rule violation", func(t *testing.T) {
		repo, mock := newMockedRepository(t)
		c := newTestCustomer(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "customers"`)).
			WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
		mock.ExpectRollback()

		err := repo.Save(t.Context(), c)
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.True(t, errs.IsRule(err, customer.RuleCustomerEmailMustBeUnique))
		assert.Contains(t, err.Error(), "jane@example.com")
	})

	t.Run("should reject zero value aggregate", func(t *testing.T) {
		repo, mock := newMockedRepository(t)

		err := repo.Save(t.Context(), &customer.Customer{})
		require.ErrorIs(t, err, customer.ErrCustomerIsNotConstructed)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSearch(t *testing.T) {
	repo, mock := newMockedRepository(t)
	name := "50%_off"
	active := false
	email := kernel.MustNewEmailAddress("jane@example.com")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers" WHERE name ILIKE $1 AND email = $2 AND is_active = $3 ORDER BY created_at, id`)).
		WithArgs(`%50\%\_off%`, "jane@example.com", false, 10, 20).
		WillReturnRows(sqlmock.NewRows(customerColumns))

	found, err := repo.Search(t.Context(), ports.CustomerFilter{
		NameContains: &name,
		Email:        &email,
		IsActive:     &active,
	}, 10, 20)

	require.NoError(t, err)
	assert.Empty(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}
