package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductMarginView is one row of the product report.
type ProductMarginView struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
	Revenue   decimal.Decimal
	Cost      decimal.Decimal
	Margin    decimal.Decimal
}

type GetProductMarginsQueryHandler struct {
	db *gorm.DB
}

func NewGetProductMarginsQueryHandler(db *gorm.DB) GetProductMarginsQueryHandler {
	return GetProductMarginsQueryHandler{db: db}
}

// Handle uses the price captured on each line for revenue and the current
// variant or product cost for cost.
func (h GetProductMarginsQueryHandler) Handle(
	ctx context.Context,
	query GetProductMarginsQuery,
) ([]ProductMarginView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			SUM(i.quantity),
			SUM(i.quantity * i.unit_price) AS revenue,
			SUM(i.quantity * COALESCE(v.cost, p.cost))
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		JOIN products p ON p.id = i.product_id
		LEFT JOIN product_variants v ON v.id = i.variant_id
		WHERE o.created_at >= ? AND o.created_at < ?
			AND o.status = ANY(?)
		GROUP BY p.id, p.name
		ORDER BY revenue DESC, p.name
		LIMIT ?
	`, query.Day(), query.Day().AddDate(0, 0, 1), pq.Array(settledStatuses()), ProductMarginsLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]ProductMarginView, 0)
	for rows.Next() {
		var view ProductMarginView
		var id uuid.UUID

		if err = rows.Scan(&id, &view.Name, &view.Quantity, &view.Revenue, &view.Cost); err != nil {
			return nil, err
		}
		if view.ProductID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		view.Margin = view.Revenue.Sub(view.Cost)
		report = append(report, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
