package queries

import (
	"context"

	"restaurant/internal/core/domain/model/plate"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TicketView is an order laid out for the kitchen.
type TicketView struct {
	Order  OrderView
	Plates []TicketPlateView
}

// TicketPlateView is one plate of a ticket.
type TicketPlateView struct {
	Number        int
	Items         []OrderItemView
	TotalQuantity int
	TotalPrice    decimal.Decimal
}

// ticketLine adapts OrderItemView to plate.Line.
type ticketLine struct{ item OrderItemView }

func (l ticketLine) PlateNumber() int           { return l.item.PlateNumber }
func (l ticketLine) Quantity() int              { return l.item.Quantity }
func (l ticketLine) UnitPrice() decimal.Decimal { return l.item.UnitPrice }

type GetOrderTicketQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderTicketQueryHandler(db *gorm.DB) GetOrderTicketQueryHandler {
	return GetOrderTicketQueryHandler{db: db}
}

func (h GetOrderTicketQueryHandler) Handle(ctx context.Context, query GetOrderTicketQuery) (TicketView, error) {
	if err := query.Validate(); err != nil {
		return TicketView{}, err
	}

	o, err := loadOrder(ctx, h.db, query.OrderID())
	if err != nil {
		return TicketView{}, err
	}

	lines := make([]ticketLine, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, ticketLine{item: item})
	}

	groups := plate.Group(lines)
	plates := make([]TicketPlateView, 0, len(groups))
	for _, g := range groups {
		items := make([]OrderItemView, 0, len(g.Items))
		for _, l := range g.Items {
			items = append(items, l.item)
		}
		plates = append(plates, TicketPlateView{
			Number:        g.Number,
			Items:         items,
			TotalQuantity: g.TotalQuantity,
			TotalPrice:    g.TotalPrice,
		})
	}

	return TicketView{Order: o, Plates: plates}, nil
}
