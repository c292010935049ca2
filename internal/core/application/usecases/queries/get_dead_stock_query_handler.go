package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeadStockView is a product with no sales on the report day.
type DeadStockView struct {
	ProductID kernel.UUID
	Name      string
	Price     decimal.Decimal
	Cost      decimal.Decimal
}

type GetDeadStockQueryHandler struct {
	db *gorm.DB
}

func NewGetDeadStockQueryHandler(db *gorm.DB) GetDeadStockQueryHandler {
	return GetDeadStockQueryHandler{db: db}
}

func (h GetDeadStockQueryHandler) Handle(ctx context.Context, query GetDeadStockQuery) ([]DeadStockView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.price,
			p.cost
		FROM products p
		WHERE NOT EXISTS (
			SELECT 1
			FROM order_items i
			JOIN orders o ON o.id = i.order_id
			WHERE i.product_id = p.id
				AND o.created_at >= ? AND o.created_at < ?
				AND o.status = ANY(?)
		)
		ORDER BY p.name, p.id
	`, query.Day(), query.Day().AddDate(0, 0, 1), pq.Array(settledStatuses())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]DeadStockView, 0)
	for rows.Next() {
		var view DeadStockView
		var id uuid.UUID

		if err = rows.Scan(&id, &view.Name, &view.Price, &view.Cost); err != nil {
			return nil, err
		}
		if view.ProductID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		report = append(report, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
