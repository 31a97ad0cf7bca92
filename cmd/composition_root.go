package cmd

import (
	"log/slog"

	httpadapter "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/logdispatcher"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/postgres/outboxrepo"
	"tracking/internal/adapters/out/redisstream"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/ports"
	"tracking/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	outbox     *outboxrepo.GormOutboxRepository
	redis      redis.UniversalClient
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}
	return CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		outbox:     outboxrepo.NewGormOutboxRepository(gormDB),
	}
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() *commands.CreateCustomerCommandHandler {
	h := commands.NewCreateCustomerCommandHandler(c.customerUoWFactory(), c.outbox, c.logger)
	return &h
}

func (c *CompositionRoot) CreateDeactivateCustomerCommandHandler() *commands.DeactivateCustomerCommandHandler {
	h := commands.NewDeactivateCustomerCommandHandler(c.customerUoWFactory(), c.outbox, c.logger)
	return &h
}

func (c *CompositionRoot) CreateUpdateCustomerProfileCommandHandler() *commands.UpdateCustomerProfileCommandHandler {
	h := commands.NewUpdateCustomerProfileCommandHandler(c.customerUoWFactory(), c.outbox, c.logger)
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateOrderCommandHandler(f, c.outbox, c.logger)
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	h := commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.outbox, c.logger)
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	h := commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.outbox, c.logger)
	return &h
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() *commands.RelayOutboxCommandHandler {
	h := commands.NewRelayOutboxCommandHandler(c.outbox, c.eventDispatcher(), c.logger)
	return &h
}

// Queries read outside a transaction.
func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.uowFactory.Create().CustomerRepository())
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetCustomerOrdersQueryHandler(uow.CustomerRepository(), uow.OrderRepository())
}

func (c *CompositionRoot) CreateSearchCustomersQueryHandler() queries.SearchCustomersQueryHandler {
	return queries.NewSearchCustomersQueryHandler(c.uowFactory.Create().CustomerRepository())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) HTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateCustomer:        c.CreateCreateCustomerCommandHandler(),
		DeactivateCustomer:    c.CreateDeactivateCustomerCommandHandler(),
		UpdateCustomerProfile: c.CreateUpdateCustomerProfileCommandHandler(),
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:     c.CreateChangeOrderStatusCommandHandler(),
		CancelOrder:           c.CreateCancelOrderCommandHandler(),

		GetCustomer:       c.CreateGetCustomerQueryHandler(),
		GetCustomerOrders: c.CreateGetCustomerOrdersQueryHandler(),
		SearchCustomers:   c.CreateSearchCustomersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRelayOutboxCommandHandler(),
		jobs.RelayOptions{Schedule: c.config.RelaySchedule, BatchSize: c.config.RelayBatchSize},
		c.logger,
	)
}

func (c *CompositionRoot) eventDispatcher() ports.EventDispatcher {
	if c.config.EventDispatcher != DispatcherRedis {
		return logdispatcher.NewDispatcher(c.logger)
	}
	if c.redis == nil {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.config.RedisAddr,
			Password: c.config.RedisPassword,
			DB:       c.config.RedisDB,
		})
	}
	return redisstream.NewDispatcher(c.redis, redisstream.Options{
		Stream: c.config.RedisStream,
		MaxLen: c.config.RedisStreamMaxLen,
	})
}

// Close releases connections opened by the root. The database is owned by the caller.
func (c *CompositionRoot) Close() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
