package http

import (
	"net/http"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CommandHandlers groups the write use cases exposed over HTTP.
type CommandHandlers struct {
	Login           commands.LoginCommandHandler
	CreateProduct   commands.CreateProductCommandHandler
	UpdateProduct   commands.UpdateProductCommandHandler
	DeleteProduct   commands.DeleteProductCommandHandler
	CreateOrder     commands.CreateOrderCommandHandler
	UpdateOrder     commands.UpdateOrderCommandHandler
	AddOrderItem    commands.AddOrderItemCommandHandler
	RemoveOrderItem commands.RemoveOrderItemCommandHandler
}

// QueryHandlers groups the read use cases exposed over HTTP.
type QueryHandlers struct {
	GetProducts       queries.GetProductsQueryHandler
	GetOrders         queries.GetOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	GetOrderTicket    queries.GetOrderTicketQueryHandler
	GetCashClose      queries.GetCashCloseQueryHandler
	GetDailySales     queries.GetDailySalesQueryHandler
	GetProductMargins queries.GetProductMarginsQueryHandler
	GetDeadStock      queries.GetDeadStockQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	cookies  CookieConfig
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(cmds CommandHandlers, qs QueryHandlers, cookies CookieConfig) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		cookies:  cookies,
	}
}

// Login handles POST /api/v1/auth/login - checks credentials and sets the session cookie.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewLoginCommand(body.Email, body.Password)
	if err != nil {
		return err
	}

	result, err := s.commands.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	ctx.SetCookie(s.cookies.session(result.Session.Token, result.Session.ExpiresAt))

	return ctx.JSON(http.StatusOK, servers.LoginResponse{
		UserId:    result.UserID.Google(),
		Email:     result.Email,
		Role:      servers.LoginResponseRole(result.Role),
		ExpiresAt: result.Session.ExpiresAt,
	})
}

// Logout handles POST /api/v1/auth/logout - clears the session cookie.
func (s *Server) Logout(ctx echo.Context) error {
	ctx.SetCookie(s.cookies.expired())
	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products - the menu.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.queries.GetProducts.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = toProduct(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	variants := make([]product.VariantDetails, 0)
	if body.Variants != nil {
		for _, v := range *body.Variants {
			variants = append(variants, toVariantDetails(v))
		}
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, toProductDetails(body), variants)
	if err != nil {
		return err
	}

	if err = s.commands.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: productID.Google()})
}

// UpdateProduct handles PATCH /api/v1/products/{productId}.
func (s *Server) UpdateProduct(ctx echo.Context, productId openapi_types.UUID) error {
	id, err := pathID("productId", productId)
	if err != nil {
		return err
	}

	var body servers.UpdateProductJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	changes := make([]product.VariantChange, 0)
	if body.Variants != nil {
		for _, v := range *body.Variants {
			change := product.VariantChange{Details: toVariantDetails(v)}
			if v.Id != nil {
				variantID, idErr := pathID("variantId", *v.Id)
				if idErr != nil {
					return idErr
				}
				change.ID = &variantID
			}
			changes = append(changes, change)
		}
	}

	cmd, err := commands.NewUpdateProductCommand(id, toProductDetails(body), changes)
	if err != nil {
		return err
	}

	if err = s.commands.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/{productId}.
func (s *Server) DeleteProduct(ctx echo.Context, productId openapi_types.UUID) error {
	id, err := pathID("productId", productId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - newest first.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var status *string
	if params.Status != nil {
		v := string(*params.Status)
		status = &v
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetOrdersQuery(status, limit)
	if err != nil {
		return err
	}

	orders, err := s.queries.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	items := make([]commands.OrderItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		in, err := toOrderItemInput(item)
		if err != nil {
			return err
		}
		items = append(items, in)
	}

	var kind string
	if body.Kind != nil {
		kind = string(*body.Kind)
	}
	var method *string
	if body.PaymentMethod != nil {
		m := string(*body.PaymentMethod)
		method = &m
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, body.CustomerName, kind, method, items)
	if err != nil {
		return err
	}

	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.Google()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := pathID("orderId", orderId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	o, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrder handles PATCH /api/v1/orders/{orderId} - status and payment method.
func (s *Server) UpdateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := pathID("orderId", orderId)
	if err != nil {
		return err
	}

	var body servers.UpdateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	var status, action *string
	if body.Status != nil {
		v := string(*body.Status)
		status = &v
	}
	if body.Action != nil {
		v := string(*body.Action)
		action = &v
	}

	cmd, err := commands.NewUpdateOrderCommand(id, status, action, body.PaymentMethod.Set, body.PaymentMethod.Value)
	if err != nil {
		return err
	}

	if err = s.commands.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddOrderItem(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := pathID("orderId", orderId)
	if err != nil {
		return err
	}

	var body servers.AddOrderItemJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	item, err := toOrderItemInput(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddOrderItemCommand(id, item)
	if err != nil {
		return err
	}

	if err = s.commands.AddOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: item.ItemID().Google()})
}

// RemoveOrderItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) RemoveOrderItem(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error {
	id, err := pathID("orderId", orderId)
	if err != nil {
		return err
	}
	item, err := pathID("itemId", itemId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveOrderItemCommand(id, item)
	if err != nil {
		return err
	}

	if err = s.commands.RemoveOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderTicket handles GET /api/v1/orders/{orderId}/ticket - the kitchen view.
func (s *Server) GetOrderTicket(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := pathID("orderId", orderId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderTicketQuery(id)
	if err != nil {
		return err
	}

	ticket, err := s.queries.GetOrderTicket.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	plates := make([]servers.TicketPlate, len(ticket.Plates))
	for i, p := range ticket.Plates {
		plates[i] = servers.TicketPlate{
			Number:        p.Number,
			Items:         toOrderItems(p.Items),
			TotalQuantity: p.TotalQuantity,
			TotalPrice:    p.TotalPrice,
		}
	}

	return ctx.JSON(http.StatusOK, servers.Ticket{Order: toOrder(ticket.Order), Plates: plates})
}

// GetCashClose handles GET /api/v1/reports/cash-close.
func (s *Server) GetCashClose(ctx echo.Context, params servers.GetCashCloseParams) error {
	view, err := s.queries.GetCashClose.Handle(ctx.Request().Context(),
		queries.NewGetCashCloseQuery(reportDate(params.Date)))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.CashClose{
		Date:     openapi_types.Date{Time: view.Date},
		Totals:   view.Totals,
		DayTotal: view.DayTotal,
	})
}

// GetDailySales handles GET /api/v1/reports/sales.
func (s *Server) GetDailySales(ctx echo.Context, params servers.GetDailySalesParams) error {
	days := 0
	if params.Days != nil {
		days = *params.Days
	}

	query, err := queries.NewGetDailySalesQuery(days)
	if err != nil {
		return err
	}

	sales, err := s.queries.GetDailySales.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.DailySales, len(sales))
	for i, d := range sales {
		response[i] = servers.DailySales{
			Date:   openapi_types.Date{Time: d.Date},
			Orders: d.Orders,
			Total:  d.Total,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProductMargins handles GET /api/v1/reports/products.
func (s *Server) GetProductMargins(ctx echo.Context, params servers.GetProductMarginsParams) error {
	report, err := s.queries.GetProductMargins.Handle(ctx.Request().Context(),
		queries.NewGetProductMarginsQuery(reportDate(params.Date)))
	if err != nil {
		return err
	}

	response := make([]servers.ProductMargin, len(report))
	for i, p := range report {
		response[i] = servers.ProductMargin{
			ProductId: p.ProductID.Google(),
			Name:      p.Name,
			Quantity:  p.Quantity,
			Revenue:   p.Revenue,
			Cost:      p.Cost,
			Margin:    p.Margin,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeadStock handles GET /api/v1/reports/dead-stock.
func (s *Server) GetDeadStock(ctx echo.Context, params servers.GetDeadStockParams) error {
	report, err := s.queries.GetDeadStock.Handle(ctx.Request().Context(),
		queries.NewGetDeadStockQuery(reportDate(params.Date)))
	if err != nil {
		return err
	}

	response := make([]servers.DeadStockProduct, len(report))
	for i, p := range report {
		response[i] = servers.DeadStockProduct{
			ProductId: p.ProductID.Google(),
			Name:      p.Name,
			Price:     p.Price,
			Cost:      p.Cost,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func reportDate(d *servers.ReportDate) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

func toProductDetails(body servers.ProductInput) product.Details {
	return product.Details{
		Name:     body.Name,
		Price:    body.Price,
		Cost:     body.Cost,
		ImageURL: deref(body.ImageUrl),
	}
}

func toVariantDetails(v servers.VariantInput) product.VariantDetails {
	active := true
	if v.Active != nil {
		active = *v.Active
	}
	return product.VariantDetails{
		Name:     v.Name,
		Price:    v.Price,
		Cost:     v.Cost,
		SKU:      deref(v.Sku),
		ImageURL: deref(v.ImageUrl),
		Active:   active,
	}
}

func toOrderItemInput(item servers.NewOrderItem) (commands.OrderItemInput, error) {
	productID, err := pathID("productId", item.ProductId)
	if err != nil {
		return commands.OrderItemInput{}, err
	}

	var variantID *kernel.UUID
	if item.VariantId != nil {
		id, idErr := pathID("variantId", *item.VariantId)
		if idErr != nil {
			return commands.OrderItemInput{}, idErr
		}
		variantID = &id
	}

	plateNumber := 0
	if item.PlateNumber != nil {
		plateNumber = *item.PlateNumber
	}

	return commands.NewOrderItemInput(kernel.NewUUID(), productID, variantID, item.Quantity, deref(item.Note), plateNumber)
}

func toProduct(p queries.ProductView) servers.Product {
	variants := make([]servers.Variant, len(p.Variants))
	for i, v := range p.Variants {
		variants[i] = servers.Variant{
			Id:       v.ID.Google(),
			Name:     v.Name,
			Price:    v.Price,
			Cost:     v.Cost,
			Sku:      v.SKU,
			ImageUrl: v.ImageURL,
		}
	}
	return servers.Product{
		Id:       p.ID.Google(),
		Name:     p.Name,
		Price:    p.Price,
		Cost:     p.Cost,
		ImageUrl: p.ImageURL,
		Variants: variants,
	}
}

func toOrder(o queries.OrderView) servers.Order {
	var method *servers.PaymentMethod
	if o.PaymentMethod != nil {
		m := servers.PaymentMethod(*o.PaymentMethod)
		method = &m
	}
	return servers.Order{
		Id:            o.ID.Google(),
		CustomerName:  o.CustomerName,
		Kind:          servers.OrderKind(o.Kind),
		Status:        servers.OrderStatus(o.Status),
		PaymentMethod: method,
		Total:         o.Total,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Items:         toOrderItems(o.Items),
	}
}

func toOrderItems(items []queries.OrderItemView) []servers.OrderItem {
	response := make([]servers.OrderItem, len(items))
	for i, item := range items {
		var variantID *openapi_types.UUID
		if item.VariantID != nil {
			id := item.VariantID.Google()
			variantID = &id
		}
		response[i] = servers.OrderItem{
			Id:          item.ID.Google(),
			ProductId:   item.ProductID.Google(),
			ProductName: item.ProductName,
			VariantId:   variantID,
			VariantName: optional(item.VariantName),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
			Note:        optional(item.Note),
			PlateNumber: item.PlateNumber,
		}
	}
	return response
}

// pathID converts a bound UUID parameter; the nil UUID is rejected.
func pathID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	u, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}, invalidParam(name, err)
	}
	return u, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
