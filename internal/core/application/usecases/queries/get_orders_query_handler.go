package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders with their items for the staff board.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if s := query.Status(); s != nil {
		return loadOrders(ctx, h.db, `WHERE status = ? ORDER BY created_at DESC, id LIMIT ?`, s.String(), query.Limit())
	}
	return loadOrders(ctx, h.db, `ORDER BY created_at DESC, id LIMIT ?`, query.Limit())
}
