// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored in the orders table and its line items in order_items; the
// item position keeps the order in which items were taken.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerName  string          `gorm:"type:varchar(120);not null"`
	Kind          string          `gorm:"type:varchar(16);not null"`
	Status        string          `gorm:"type:varchar(16);not null;index"`
	PaymentMethod *string         `gorm:"type:varchar(16)"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	UpdatedAt     time.Time       `gorm:"not null"`
	Items         []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Product and variant names are copies
// taken when the line was created; product_id carries no foreign key so that
// menu edits never rewrite past orders.
type OrderItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"type:int;not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	VariantID   *uuid.UUID      `gorm:"type:uuid"`
	VariantName string          `gorm:"type:varchar(255);not null;default:''"`
	Quantity    int             `gorm:"type:int;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Note        string          `gorm:"type:text;not null;default:''"`
	PlateNumber int             `gorm:"type:int;not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Google()

	var paymentMethod *string
	if m := o.PaymentMethod(); m != nil {
		s := string(*m)
		paymentMethod = &s
	}

	items := o.Items()
	dtoItems := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		var variantID *uuid.UUID
		if v := item.VariantID(); v != nil {
			raw := v.Google()
			variantID = &raw
		}

		dtoItems = append(dtoItems, OrderItemDTO{
			ID:          item.ID().Google(),
			OrderID:     orderID,
			Position:    i,
			ProductID:   item.ProductID().Google(),
			ProductName: item.ProductName(),
			VariantID:   variantID,
			VariantName: item.VariantName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Note:        item.Note(),
			PlateNumber: item.PlateNumber(),
		})
	}

	return OrderDTO{
		ID:            orderID,
		CustomerName:  o.CustomerName(),
		Kind:          string(o.Kind()),
		Status:        o.Status().String(),
		PaymentMethod: paymentMethod,
		Total:         o.Total(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		Items:         dtoItems,
	}
}

// toDomain rebuilds an order aggregate. An unknown stored status surfaces as
// *order.InvalidStateError.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	kind, err := order.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	var paymentMethod *order.PaymentMethod
	if dto.PaymentMethod != nil {
		m, pmErr := order.ParsePaymentMethod(*dto.PaymentMethod)
		if pmErr != nil {
			return nil, pmErr
		}
		paymentMethod = &m
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.State{
		ID:            id,
		CustomerName:  dto.CustomerName,
		Kind:          kind,
		Status:        status,
		PaymentMethod: paymentMethod,
		Total:         dto.Total,
		Items:         items,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
}

func itemToDomain(dto OrderItemDTO) (order.LineItem, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return order.LineItem{}, err
	}

	productID, err := kernel.UUIDFromGoogle(dto.ProductID)
	if err != nil {
		return order.LineItem{}, err
	}

	var variantID *kernel.UUID
	if dto.VariantID != nil {
		v, vErr := kernel.UUIDFromGoogle(*dto.VariantID)
		if vErr != nil {
			return order.LineItem{}, vErr
		}
		variantID = &v
	}

	return order.RestoreLineItem(id, order.ItemSource{
		ProductID:   productID,
		ProductName: dto.ProductName,
		VariantID:   variantID,
		VariantName: dto.VariantName,
		UnitPrice:   dto.UnitPrice,
	}, dto.Quantity, dto.Note, dto.PlateNumber)
}
