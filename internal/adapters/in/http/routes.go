package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// SearchCustomersParams are the query parameters of GET /api/v1/customers.
type SearchCustomersParams struct {
	Name     *string `form:"name,omitempty" json:"name,omitempty"`
	Email    *string `form:"email,omitempty" json:"email,omitempty"`
	IsActive *bool   `form:"isActive,omitempty" json:"isActive,omitempty"`
	Limit    *int    `form:"limit,omitempty" json:"limit,omitempty"`
	Offset   *int    `form:"offset,omitempty" json:"offset,omitempty"`
}

// ServerInterface lists one method per operation of the OpenAPI document.
type ServerInterface interface {
	// (GET /api/v1/health)
	GetHealth(ctx echo.Context) error
	// (POST /api/v1/customers)
	CreateCustomer(ctx echo.Context) error
	// (GET /api/v1/customers)
	SearchCustomers(ctx echo.Context, params SearchCustomersParams) error
	// (GET /api/v1/customers/{customerId})
	GetCustomer(ctx echo.Context, customerID openapi_types.UUID) error
	// (PATCH /api/v1/customers/{customerId})
	UpdateCustomerProfile(ctx echo.Context, customerID openapi_types.UUID) error
	// (POST /api/v1/customers/{customerId}/deactivate)
	DeactivateCustomer(ctx echo.Context, customerID openapi_types.UUID) error
	// (GET /api/v1/customers/{customerId}/orders)
	GetCustomerOrders(ctx echo.Context, customerID openapi_types.UUID) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/confirm)
	ConfirmOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/ship)
	ShipOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/deliver)
	DeliverOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

func (w *ServerInterfaceWrapper) SearchCustomers(ctx echo.Context) error {
	var params SearchCustomersParams

	query := ctx.QueryParams()
	for _, p := range []struct {
		name string
		dest any
	}{
		{"name", &params.Name},
		{"email", &params.Email},
		{"isActive", &params.IsActive},
		{"limit", &params.Limit},
		{"offset", &params.Offset},
	} {
		if err := runtime.BindQueryParameter("form", true, false, p.name, query, p.dest); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", p.name, err))
		}
	}

	return w.Handler.SearchCustomers(ctx, params)
}

func (w *ServerInterfaceWrapper) GetCustomer(ctx echo.Context) error {
	return withUUID(ctx, "customerId", w.Handler.GetCustomer)
}

func (w *ServerInterfaceWrapper) UpdateCustomerProfile(ctx echo.Context) error {
	return withUUID(ctx, "customerId", w.Handler.UpdateCustomerProfile)
}

func (w *ServerInterfaceWrapper) DeactivateCustomer(ctx echo.Context) error {
	return withUUID(ctx, "customerId", w.Handler.DeactivateCustomer)
}

func (w *ServerInterfaceWrapper) GetCustomerOrders(ctx echo.Context) error {
	return withUUID(ctx, "customerId", w.Handler.GetCustomerOrders)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	return withUUID(ctx, "orderId", w.Handler.GetOrder)
}

func (w *ServerInterfaceWrapper) ConfirmOrder(ctx echo.Context) error {
	return withUUID(ctx, "orderId", w.Handler.ConfirmOrder)
}

func (w *ServerInterfaceWrapper) ShipOrder(ctx echo.Context) error {
	return withUUID(ctx, "orderId", w.Handler.ShipOrder)
}

func (w *ServerInterfaceWrapper) DeliverOrder(ctx echo.Context) error {
	return withUUID(ctx, "orderId", w.Handler.DeliverOrder)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	return withUUID(ctx, "orderId", w.Handler.CancelOrder)
}

func withUUID(ctx echo.Context, name string, next func(echo.Context, openapi_types.UUID) error) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}

	return next(ctx, id)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation of si to router under /api/v1.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/api/v1/health", w.GetHealth)
	router.POST("/api/v1/customers", w.CreateCustomer)
	router.GET("/api/v1/customers", w.SearchCustomers)
	router.GET("/api/v1/customers/:customerId", w.GetCustomer)
	router.PATCH("/api/v1/customers/:customerId", w.UpdateCustomerProfile)
	router.POST("/api/v1/customers/:customerId/deactivate", w.DeactivateCustomer)
	router.GET("/api/v1/customers/:customerId/orders", w.GetCustomerOrders)
	router.POST("/api/v1/orders", w.CreateOrder)
	router.GET("/api/v1/orders", w.ListOrders)
	router.GET("/api/v1/orders/:orderId", w.GetOrder)
	router.POST("/api/v1/orders/:orderId/confirm", w.ConfirmOrder)
	router.POST("/api/v1/orders/:orderId/ship", w.ShipOrder)
	router.POST("/api/v1/orders/:orderId/deliver", w.DeliverOrder)
	router.POST("/api/v1/orders/:orderId/cancel", w.CancelOrder)
}
