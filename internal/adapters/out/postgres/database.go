package postgres

import (
	"fmt"
	"time"

	"tracking/internal/adapters/out/postgres/customerrepo"
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/adapters/out/postgres/outboxrepo"

	// Registers the "postgres" database/sql driver selected by DriverLibPQ.
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Driver names accepted by Options.Driver.
const (
	DriverPgx   = "pgx"
	DriverLibPQ = "postgres"
)

// Options configures Open.
type Options struct {
	DSN             string
	Driver          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// LogQueries enables gorm's SQL logging at Info level.
	LogQueries bool
}

// DSN builds a key/value connection string understood by both drivers.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

// Open connects to PostgreSQL through gorm. Driver errors are translated to
// gorm sentinels such as gorm.ErrDuplicatedKey.
func Open(opts Options) (*gorm.DB, error) {
	driver := opts.Driver
	if driver == "" {
		driver = DriverPgx
	}
	if driver != DriverPgx && driver != DriverLibPQ {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	dialector := postgres.New(postgres.Config{
		DSN:        opts.DSN,
		DriverName: driver,
	})

	logLevel := logger.Silent
	if opts.LogQueries {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	return db, nil
}

// Migrate creates or updates the customers, orders and outbox tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&outboxrepo.MessageDTO{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
