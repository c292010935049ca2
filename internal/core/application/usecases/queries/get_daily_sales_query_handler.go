package queries

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailySalesView is the sales total of one day. Days without sales are omitted.
type DailySalesView struct {
	Date   time.Time
	Orders int
	Total  decimal.Decimal
}

type GetDailySalesQueryHandler struct {
	db *gorm.DB
}

func NewGetDailySalesQueryHandler(db *gorm.DB) GetDailySalesQueryHandler {
	return GetDailySalesQueryHandler{db: db}
}

func (h GetDailySalesQueryHandler) Handle(ctx context.Context, query GetDailySalesQuery) ([]DailySalesView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	since := reportDay(time.Time{}).AddDate(0, 0, -query.Days())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			(created_at AT TIME ZONE 'UTC')::date AS day,
			COUNT(*),
			SUM(total)
		FROM orders
		WHERE created_at >= ?
			AND status = ANY(?)
		GROUP BY day
		ORDER BY day
	`, since, pq.Array(billableStatuses())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]DailySalesView, 0)
	for rows.Next() {
		var view DailySalesView
		if err = rows.Scan(&view.Date, &view.Orders, &view.Total); err != nil {
			return nil, err
		}
		view.Date = reportDay(view.Date)
		sales = append(sales, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}
