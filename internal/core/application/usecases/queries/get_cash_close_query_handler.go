package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UnspecifiedPaymentMethod keys the total of orders without a payment method.
const UnspecifiedPaymentMethod = "UNSPECIFIED"

// CashCloseView is the end-of-day cash report. Totals holds every payment
// method, zero when unused, plus UnspecifiedPaymentMethod.
type CashCloseView struct {
	Date     time.Time
	Totals   map[string]decimal.Decimal
	DayTotal decimal.Decimal
}

type GetCashCloseQueryHandler struct {
	db *gorm.DB
}

func NewGetCashCloseQueryHandler(db *gorm.DB) GetCashCloseQueryHandler {
	return GetCashCloseQueryHandler{db: db}
}

func (h GetCashCloseQueryHandler) Handle(ctx context.Context, query GetCashCloseQuery) (CashCloseView, error) {
	if err := query.Validate(); err != nil {
		return CashCloseView{}, err
	}

	view := CashCloseView{
		Date:     query.Day(),
		Totals:   map[string]decimal.Decimal{UnspecifiedPaymentMethod: decimal.Zero},
		DayTotal: decimal.Zero,
	}
	for _, m := range order.PaymentMethods() {
		view.Totals[string(m)] = decimal.Zero
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(payment_method, ?),
			SUM(total)
		FROM orders
		WHERE created_at >= ? AND created_at < ?
			AND status = ANY(?)
		GROUP BY payment_method
	`, UnspecifiedPaymentMethod, query.Day(), query.Day().AddDate(0, 0, 1), pq.Array(billableStatuses())).Rows()
	if err != nil {
		return CashCloseView{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var method string
		var total decimal.Decimal
		if err = rows.Scan(&method, &total); err != nil {
			return CashCloseView{}, err
		}
		view.Totals[method] = total
		view.DayTotal = view.DayTotal.Add(total)
	}

	if err = rows.Err(); err != nil {
		return CashCloseView{}, err
	}

	return view, nil
}
