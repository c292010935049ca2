package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderTotalMismatchView pairs the stored total of an order with the total
// recomputed from its lines.
type OrderTotalMismatchView struct {
	OrderID    kernel.UUID
	Status     string
	Stored     decimal.Decimal
	Recomputed decimal.Decimal
}

type GetOrderTotalMismatchesQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderTotalMismatchesQueryHandler(db *gorm.DB) GetOrderTotalMismatchesQueryHandler {
	return GetOrderTotalMismatchesQueryHandler{db: db}
}

func (h GetOrderTotalMismatchesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTotalMismatchesQuery,
) ([]OrderTotalMismatchView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.status, o.total, COALESCE(SUM(i.quantity * i.unit_price), 0) AS recomputed
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status = ANY(?)
		GROUP BY o.id, o.status, o.total
		HAVING o.total <> COALESCE(SUM(i.quantity * i.unit_price), 0)
		ORDER BY o.created_at
	`, pq.Array(statusNames(order.Received, order.Preparing, order.Ready))).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mismatches := make([]OrderTotalMismatchView, 0)
	for rows.Next() {
		var view OrderTotalMismatchView
		var id uuid.UUID

		if err = rows.Scan(&id, &view.Status, &view.Stored, &view.Recomputed); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		mismatches = append(mismatches, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return mismatches, nil
}
