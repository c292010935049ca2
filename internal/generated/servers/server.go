package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (POST /auth/login)
	Login(ctx echo.Context) error

	// (POST /auth/logout)
	Logout(ctx echo.Context) error

	// (GET /orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error

	// (POST /orders)
	CreateOrder(ctx echo.Context) error

	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error

	// (PATCH /orders/{orderId})
	UpdateOrder(ctx echo.Context, orderId openapi_types.UUID) error

	// (POST /orders/{orderId}/items)
	AddOrderItem(ctx echo.Context, orderId openapi_types.UUID) error

	// (DELETE /orders/{orderId}/items/{itemId})
	RemoveOrderItem(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error

	// (GET /orders/{orderId}/ticket)
	GetOrderTicket(ctx echo.Context, orderId openapi_types.UUID) error

	// (GET /products)
	GetProducts(ctx echo.Context) error

	// (POST /products)
	CreateProduct(ctx echo.Context) error

	// (DELETE /products/{productId})
	DeleteProduct(ctx echo.Context, productId openapi_types.UUID) error

	// (PATCH /products/{productId})
	UpdateProduct(ctx echo.Context, productId openapi_types.UUID) error

	// (GET /reports/cash-close)
	GetCashClose(ctx echo.Context, params GetCashCloseParams) error

	// (GET /reports/dead-stock)
	GetDeadStock(ctx echo.Context, params GetDeadStockParams) error

	// (GET /reports/products)
	GetProductMargins(ctx echo.Context, params GetProductMarginsParams) error

	// (GET /reports/sales)
	GetDailySales(ctx echo.Context, params GetDailySalesParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// Login converts echo context to params.
func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

// Logout converts echo context to params.
func (w *ServerInterfaceWrapper) Logout(ctx echo.Context) error {
	return w.Handler.Logout(ctx)
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var err error

	ctx.Set(CookieAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.GetOrders(ctx, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	ctx.Set(CookieAuthScopes, []string{})

	return w.Handler.GetOrder(ctx, orderId)
}

// UpdateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	ctx.Set(CookieAuthScopes, []string{})

	return w.Handler.UpdateOrder(ctx, orderId)
}

// AddOrderItem converts echo context to params.
func (w *ServerInterfaceWrapper) AddOrderItem(ctx echo.Context) error {
	orderId, err := bindUUIDPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	ctx.Set(CookieAuthScopes, []string{})

	return w.Handler.AddOrderItem(ctx, orderId)
}

// RemoveOrderItem converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveOrderItem(ctx echo.Context) error {
	orderId, err := bindUUIDPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	itemId, err := bindUUIDPathParameter(ctx, "itemId")
	if err != nil {
		return err
	}

	ctx.Set(CookieAuthScopes, []string{})

	return w.Handler.RemoveOrderItem(ctx, orderId, itemId)
}

// GetOrderTicket converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderTicket(ctx echo.Context) error {
	orderId, err := bindUUIDPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	ctx.Set(CookieAuthScopes, []string{})

	return w.Handler.GetOrderTicket(ctx, orderId)
}

// GetProducts converts echo context to params.
func (w *ServerInterfaceWrapper) GetProducts(ctx echo.Context) error {
	return w.Handler.GetProducts(ctx)
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	ctx.Set(CookieAuthScopes, []string{})

	return w.Handler.CreateProduct(ctx)
}

// DeleteProduct converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteProduct(ctx echo.Context) error {
	productId, err := bindUUIDPathParameter(ctx, "productId")
	if err != nil {
		return err
	}

	ctx.Set(CookieAuthScopes, []string{})

	return w.Handler.DeleteProduct(ctx, productId)
}

// UpdateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateProduct(ctx echo.Context) error {
	productId, err := bindUUIDPathParameter(ctx, "productId")
	if err != nil {
		return err
	}

	ctx.Set(CookieAuthScopes, []string{})

	return w.Handler.UpdateProduct(ctx, productId)
}

// GetCashClose converts echo context to params.
func (w *ServerInterfaceWrapper) GetCashClose(ctx echo.Context) error {
	ctx.Set(CookieAuthScopes, []string{})

	var params GetCashCloseParams
	if err := bindDateQueryParameter(ctx, &params.Date); err != nil {
		return err
	}

	return w.Handler.GetCashClose(ctx, params)
}

// GetDeadStock converts echo context to params.
func (w *ServerInterfaceWrapper) GetDeadStock(ctx echo.Context) error {
	ctx.Set(CookieAuthScopes, []string{})

	var params GetDeadStockParams
	if err := bindDateQueryParameter(ctx, &params.Date); err != nil {
		return err
	}

	return w.Handler.GetDeadStock(ctx, params)
}

// GetProductMargins converts echo context to params.
func (w *ServerInterfaceWrapper) GetProductMargins(ctx echo.Context) error {
	ctx.Set(CookieAuthScopes, []string{})

	var params GetProductMarginsParams
	if err := bindDateQueryParameter(ctx, &params.Date); err != nil {
		return err
	}

	return w.Handler.GetProductMargins(ctx, params)
}

// GetDailySales converts echo context to params.
func (w *ServerInterfaceWrapper) GetDailySales(ctx echo.Context) error {
	ctx.Set(CookieAuthScopes, []string{})

	var params GetDailySalesParams
	// ------------- Optional query parameter "days" -------------

	err := runtime.BindQueryParameter("form", true, false, "days", ctx.QueryParams(), &params.Days)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter days: %s", err))
	}

	return w.Handler.GetDailySales(ctx, params)
}

func bindUUIDPathParameter(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindDateQueryParameter(ctx echo.Context, dst **ReportDate) error {
	err := runtime.BindQueryParameter("form", true, false, "date", ctx.QueryParams(), dst)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter date: %s", err))
	}
	return nil
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group
// so handlers can be registered on either.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends baseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/auth/login", wrapper.Login)
	router.POST(baseURL+"/auth/logout", wrapper.Logout)
	router.GET(baseURL+"/orders", wrapper.GetOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/orders/:orderId", wrapper.UpdateOrder)
	router.POST(baseURL+"/orders/:orderId/items", wrapper.AddOrderItem)
	router.DELETE(baseURL+"/orders/:orderId/items/:itemId", wrapper.RemoveOrderItem)
	router.GET(baseURL+"/orders/:orderId/ticket", wrapper.GetOrderTicket)
	router.GET(baseURL+"/products", wrapper.GetProducts)
	router.POST(baseURL+"/products", wrapper.CreateProduct)
	router.DELETE(baseURL+"/products/:productId", wrapper.DeleteProduct)
	router.PATCH(baseURL+"/products/:productId", wrapper.UpdateProduct)
	router.GET(baseURL+"/reports/cash-close", wrapper.GetCashClose)
	router.GET(baseURL+"/reports/dead-stock", wrapper.GetDeadStock)
	router.GET(baseURL+"/reports/products", wrapper.GetProductMargins)
	router.GET(baseURL+"/reports/sales", wrapper.GetDailySales)
}
