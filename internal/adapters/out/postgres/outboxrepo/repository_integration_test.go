package outboxrepo_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tracking/internal/adapters/out/postgres/outboxrepo"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&outboxrepo.MessageDTO{}))
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE outbox_messages").Error)
	suite.repository = outboxrepo.NewGormOutboxRepository(suite.db)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestPublish_ThenRelay_Lifecycle() {
	ctx := context.Background()
	events := suite.orderEvents()

	suite.Require().NoError(suite.repository.Publish(ctx, events))
	suite.Require().NoError(suite.repository.Publish(ctx, events))

	pending, err := suite.repository.FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(order.EventTypeCreated, pending[0].EventType)
	suite.True(events[0].EventID().IsEqual(pending[0].ID))
	suite.Equal(events[0].AggregateID(), pending[0].AggregateID)

	var payload map[string]any
	suite.Require().NoError(json.Unmarshal(pending[0].Payload, &payload))
	suite.Equal(events[0].AggregateID(), payload["orderId"])

	suite.Require().NoError(suite.repository.MarkFailed(ctx, pending[1].ID, errors.New("broker down")))
	suite.Require().NoError(suite.repository.MarkPublished(ctx, []kernel.UUID{pending[0].ID}))

	remaining, err := suite.repository.FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.Equal(order.EventTypeStatusChanged, remaining[0].EventType)
	suite.Equal(1, remaining[0].Attempts)
	suite.Equal("broker down", remaining[0].LastError)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestFetchPending_RespectsLimit() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Publish(ctx, suite.orderEvents()))

	pending, err := suite.repository.FetchPending(ctx, 1)

	suite.Require().NoError(err)
	suite.Len(pending, 1)
}

func (suite *OutboxRepositoryIntegrationTestSuite) orderEvents() []kernel.DomainEvent {
	o, err := order.NewOrder(kernel.NewOrderID(), kernel.NewCustomerID(),
		kernel.MustNewMoney(decimal.NewFromInt(40), "USD"), kernel.EmptyAttributes())
	suite.Require().NoError(err)
	time.Sleep(time.Millisecond)
	suite.Require().NoError(o.Confirm())
	return o.DrainEvents()
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
