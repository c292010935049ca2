package queries

import (
	"errors"
	"time"

	"restaurant/internal/pkg/guard"
)

var ErrGetCashCloseQueryIsNotConstructed = errors.New(
	"GetCashCloseQuery must be created via NewGetCashCloseQuery constructor",
)

// GetCashCloseQuery totals one day's non-canceled orders per payment method.
type GetCashCloseQuery struct {
	day time.Time

	guard guard.ConstructorGuard
}

// NewGetCashCloseQuery reports on the UTC day containing date; a zero date means today.
func NewGetCashCloseQuery(date time.Time) GetCashCloseQuery {
	return GetCashCloseQuery{day: reportDay(date), guard: guard.NewConstructorGuard()}
}

func (q GetCashCloseQuery) Validate() error {
	return q.guard.Validate(ErrGetCashCloseQueryIsNotConstructed)
}

func (q GetCashCloseQuery) Day() time.Time {
	return q.day
}
