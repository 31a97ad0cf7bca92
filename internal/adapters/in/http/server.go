package http

import (
	"context"
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/application/usecases/views"
	"tracking/internal/pkg/outcome"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// UseCase is any command or query handler.
type UseCase[In, Out any] interface {
	Handle(ctx context.Context, input In) outcome.Outcome[Out]
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateCustomer        UseCase[commands.CreateCustomerCommand, views.CustomerView]
	DeactivateCustomer    UseCase[commands.DeactivateCustomerCommand, views.CustomerView]
	UpdateCustomerProfile UseCase[commands.UpdateCustomerProfileCommand, views.CustomerView]
	CreateOrder           UseCase[commands.CreateOrderCommand, views.OrderView]
	ChangeOrderStatus     UseCase[commands.ChangeOrderStatusCommand, views.OrderView]
	CancelOrder           UseCase[commands.CancelOrderCommand, views.OrderView]

	GetCustomer       UseCase[queries.GetCustomerQuery, views.CustomerView]
	GetCustomerOrders UseCase[queries.GetCustomerOrdersQuery, []views.OrderView]
	SearchCustomers   UseCase[queries.SearchCustomersQuery, []views.CustomerView]
	GetOrder          UseCase[queries.GetOrderQuery, views.OrderView]
	ListOrders        UseCase[queries.ListOrdersQuery, []views.OrderView]
}

var _ ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

type reasonBody struct {
	Reason string `json:"reason"`
}

// GetHealth handles GET /api/v1/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var cmd commands.CreateCustomerCommand
	if err := ctx.Bind(&cmd); err != nil {
		return invalidBody(ctx)
	}

	return respond(ctx, http.StatusCreated, s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd))
}

// SearchCustomers handles GET /api/v1/customers.
func (s *Server) SearchCustomers(ctx echo.Context, params SearchCustomersParams) error {
	query := queries.SearchCustomersQuery{
		Name:     params.Name,
		Email:    params.Email,
		IsActive: params.IsActive,
	}
	if params.Limit != nil {
		query.Limit = *params.Limit
	}
	if params.Offset != nil {
		query.Offset = *params.Offset
	}

	return respond(ctx, http.StatusOK, s.handlers.SearchCustomers.Handle(ctx.Request().Context(), query))
}

// GetCustomer handles GET /api/v1/customers/{customerId}.
func (s *Server) GetCustomer(ctx echo.Context, customerID openapi_types.UUID) error {
	query := queries.GetCustomerQuery{CustomerID: customerID.String()}
	return respond(ctx, http.StatusOK, s.handlers.GetCustomer.Handle(ctx.Request().Context(), query))
}

// UpdateCustomerProfile handles PATCH /api/v1/customers/{customerId}.
func (s *Server) UpdateCustomerProfile(ctx echo.Context, customerID openapi_types.UUID) error {
	var cmd commands.UpdateCustomerProfileCommand
	if err := ctx.Bind(&cmd); err != nil {
		return invalidBody(ctx)
	}
	cmd.CustomerID = customerID.String()

	return respond(ctx, http.StatusOK, s.handlers.UpdateCustomerProfile.Handle(ctx.Request().Context(), cmd))
}

// DeactivateCustomer handles POST /api/v1/customers/{customerId}/deactivate.
func (s *Server) DeactivateCustomer(ctx echo.Context, customerID openapi_types.UUID) error {
	var body reasonBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd := commands.DeactivateCustomerCommand{CustomerID: customerID.String(), Reason: body.Reason}
	return respond(ctx, http.StatusOK, s.handlers.DeactivateCustomer.Handle(ctx.Request().Context(), cmd))
}

// GetCustomerOrders handles GET /api/v1/customers/{customerId}/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context, customerID openapi_types.UUID) error {
	query := queries.GetCustomerOrdersQuery{CustomerID: customerID.String()}
	return respond(ctx, http.StatusOK, s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var cmd commands.CreateOrderCommand
	if err := ctx.Bind(&cmd); err != nil {
		return invalidBody(ctx)
	}

	return respond(ctx, http.StatusCreated, s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	return respond(ctx, http.StatusOK, s.handlers.ListOrders.Handle(ctx.Request().Context(), queries.ListOrdersQuery{}))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	query := queries.GetOrderQuery{OrderID: orderID.String()}
	return respond(ctx, http.StatusOK, s.handlers.GetOrder.Handle(ctx.Request().Context(), query))
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	return s.changeStatus(ctx, orderID, commands.ActionConfirm)
}

// ShipOrder handles POST /api/v1/orders/{orderId}/ship.
func (s *Server) ShipOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	return s.changeStatus(ctx, orderID, commands.ActionShip)
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver.
func (s *Server) DeliverOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	return s.changeStatus(ctx, orderID, commands.ActionDeliver)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel. The body is optional.
func (s *Server) CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	var body reasonBody
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&body); err != nil {
			return invalidBody(ctx)
		}
	}

	cmd := commands.CancelOrderCommand{OrderID: orderID.String(), Reason: body.Reason}
	return respond(ctx, http.StatusOK, s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd))
}

func (s *Server) changeStatus(ctx echo.Context, orderID openapi_types.UUID, action commands.OrderAction) error {
	cmd := commands.ChangeOrderStatusCommand{OrderID: orderID.String(), Action: string(action)}
	return respond(ctx, http.StatusOK, s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd))
}
