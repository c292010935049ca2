// Package servers holds the HTTP contract of the restaurant API: the wire
// types, the ServerInterface an adapter implements, and the echo routing that
// binds path and query parameters before calling it. openapi.yaml is the
// source of truth for everything here.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

const (
	CookieAuthScopes = "cookieAuth.Scopes"
)

// Defines values for LoginResponseRole.
const (
	LoginResponseRoleADMIN LoginResponseRole = "ADMIN"
	LoginResponseRoleSTAFF LoginResponseRole = "STAFF"
)

// Defines values for OrderKind.
const (
	OrderKindDELIVERY OrderKind = "DELIVERY"
	OrderKindDINEIN   OrderKind = "DINE_IN"
	OrderKindTAKEOUT  OrderKind = "TAKEOUT"
)

// Defines values for OrderStatus.
const (
	OrderStatusCANCELED  OrderStatus = "CANCELED"
	OrderStatusDELIVERED OrderStatus = "DELIVERED"
	OrderStatusPREPARING OrderStatus = "PREPARING"
	OrderStatusREADY     OrderStatus = "READY"
	OrderStatusRECEIVED  OrderStatus = "RECEIVED"
)

// Defines values for OrderUpdateAction.
const (
	OrderUpdateActionAdvance OrderUpdateAction = "advance"
	OrderUpdateActionCancel  OrderUpdateAction = "cancel"
	OrderUpdateActionRevert  OrderUpdateAction = "revert"
)

// Defines values for PaymentMethod.
const (
	PaymentMethodCARD     PaymentMethod = "CARD"
	PaymentMethodCASH     PaymentMethod = "CASH"
	PaymentMethodTRANSFER PaymentMethod = "TRANSFER"
)

// CashClose defines model for CashClose.
type CashClose struct {
	Date     openapi_types.Date         `json:"date"`
	DayTotal decimal.Decimal            `json:"dayTotal"`
	Totals   map[string]decimal.Decimal `json:"totals"`
}

// Created defines model for Created.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// DailySales defines model for DailySales.
type DailySales struct {
	Date   openapi_types.Date `json:"date"`
	Orders int                `json:"orders"`
	Total  decimal.Decimal    `json:"total"`
}

// DeadStockProduct defines model for DeadStockProduct.
type DeadStockProduct struct {
	Cost      decimal.Decimal    `json:"cost"`
	Name      string             `json:"name"`
	Price     decimal.Decimal    `json:"price"`
	ProductId openapi_types.UUID `json:"productId"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse defines model for LoginResponse.
type LoginResponse struct {
	Email     string             `json:"email"`
	ExpiresAt time.Time          `json:"expiresAt"`
	Role      LoginResponseRole  `json:"role"`
	UserId    openapi_types.UUID `json:"userId"`
}

// LoginResponseRole defines model for LoginResponse.Role.
type LoginResponseRole string

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CustomerName  string         `json:"customerName"`
	Items         []NewOrderItem `json:"items"`
	Kind          *OrderKind     `json:"kind,omitempty"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	Note *string `json:"note,omitempty"`

	// PlateNumber Requested plate. Missing or below 1 means the next free plate.
	PlateNumber *int                `json:"plateNumber,omitempty"`
	ProductId   openapi_types.UUID  `json:"productId"`
	Quantity    int                 `json:"quantity"`
	VariantId   *openapi_types.UUID `json:"variantId,omitempty"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt     time.Time          `json:"createdAt"`
	CustomerName  string             `json:"customerName"`
	Id            openapi_types.UUID `json:"id"`
	Items         []OrderItem        `json:"items"`
	Kind          OrderKind          `json:"kind"`
	PaymentMethod *PaymentMethod     `json:"paymentMethod,omitempty"`
	Status        OrderStatus        `json:"status"`
	Total         decimal.Decimal    `json:"total"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Id          openapi_types.UUID  `json:"id"`
	Note        *string             `json:"note,omitempty"`
	PlateNumber int                 `json:"plateNumber"`
	ProductId   openapi_types.UUID  `json:"productId"`
	ProductName string              `json:"productName"`
	Quantity    int                 `json:"quantity"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	UnitPrice   decimal.Decimal     `json:"unitPrice"`
	VariantId   *openapi_types.UUID `json:"variantId,omitempty"`
	VariantName *string             `json:"variantName,omitempty"`
}

// OrderKind defines model for OrderKind.
type OrderKind string

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// OrderUpdate status and action are mutually exclusive. A null paymentMethod clears it.
type OrderUpdate struct {
	Action        *OrderUpdateAction `json:"action,omitempty"`
	PaymentMethod OptionalString     `json:"paymentMethod"`
	Status        *OrderStatus       `json:"status,omitempty"`
}

// OrderUpdateAction defines model for OrderUpdate.Action.
type OrderUpdateAction string

// PaymentMethod defines model for PaymentMethod.
type PaymentMethod string

// Product defines model for Product.
type Product struct {
	Cost     decimal.Decimal    `json:"cost"`
	Id       openapi_types.UUID `json:"id"`
	ImageUrl string             `json:"imageUrl"`
	Name     string             `json:"name"`
	Price    decimal.Decimal    `json:"price"`
	Variants []Variant          `json:"variants"`
}

// ProductInput defines model for ProductInput.
type ProductInput struct {
	Cost     decimal.Decimal `json:"cost"`
	ImageUrl *string         `json:"imageUrl,omitempty"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Variants *[]VariantInput `json:"variants,omitempty"`
}

// ProductMargin defines model for ProductMargin.
type ProductMargin struct {
	Cost      decimal.Decimal    `json:"cost"`
	Margin    decimal.Decimal    `json:"margin"`
	Name      string             `json:"name"`
	ProductId openapi_types.UUID `json:"productId"`
	Quantity  int                `json:"quantity"`
	Revenue   decimal.Decimal    `json:"revenue"`
}

// Ticket defines model for Ticket.
type Ticket struct {
	Order  Order         `json:"order"`
	Plates []TicketPlate `json:"plates"`
}

// TicketPlate defines model for TicketPlate.
type TicketPlate struct {
	Items         []OrderItem     `json:"items"`
	Number        int             `json:"number"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	TotalQuantity int             `json:"totalQuantity"`
}

// Variant defines model for Variant.
type Variant struct {
	Cost     decimal.Decimal    `json:"cost"`
	Id       openapi_types.UUID `json:"id"`
	ImageUrl string             `json:"imageUrl"`
	Name     string             `json:"name"`
	Price    decimal.Decimal    `json:"price"`
	Sku      string             `json:"sku"`
}

// VariantInput defines model for VariantInput.
type VariantInput struct {
	Active   *bool               `json:"active,omitempty"`
	Cost     decimal.Decimal     `json:"cost"`
	Id       *openapi_types.UUID `json:"id,omitempty"`
	ImageUrl *string             `json:"imageUrl,omitempty"`
	Name     string              `json:"name"`
	Price    decimal.Decimal     `json:"price"`
	Sku      *string             `json:"sku,omitempty"`
}

// ReportDate defines model for ReportDate.
type ReportDate = openapi_types.Date

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
	Limit  *int         `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetCashCloseParams defines parameters for GetCashClose.
type GetCashCloseParams struct {
	// Date UTC calendar day, today when omitted.
	Date *ReportDate `form:"date,omitempty" json:"date,omitempty"`
}

// GetDeadStockParams defines parameters for GetDeadStock.
type GetDeadStockParams struct {
	// Date UTC calendar day, today when omitted.
	Date *ReportDate `form:"date,omitempty" json:"date,omitempty"`
}

// GetProductMarginsParams defines parameters for GetProductMargins.
type GetProductMarginsParams struct {
	// Date UTC calendar day, today when omitted.
	Date *ReportDate `form:"date,omitempty" json:"date,omitempty"`
}

// GetDailySalesParams defines parameters for GetDailySales.
type GetDailySalesParams struct {
	Days *int `form:"days,omitempty" json:"days,omitempty"`
}

// LoginJSONRequestBody defines body for Login for application/json ContentType.
type LoginJSONRequestBody = LoginRequest

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrderJSONRequestBody defines body for UpdateOrder for application/json ContentType.
type UpdateOrderJSONRequestBody = OrderUpdate

// AddOrderItemJSONRequestBody defines body for AddOrderItem for application/json ContentType.
type AddOrderItemJSONRequestBody = NewOrderItem

// CreateProductJSONRequestBody defines body for CreateProduct for application/json ContentType.
type CreateProductJSONRequestBody = ProductInput

// UpdateProductJSONRequestBody defines body for UpdateProduct for application/json ContentType.
type UpdateProductJSONRequestBody = ProductInput
