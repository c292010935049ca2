package queries

import (
	"errors"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

const (
	DefaultSalesDays = 7
	MaxSalesDays     = 366
)

var ErrGetDailySalesQueryIsNotConstructed = errors.New(
	"GetDailySalesQuery must be created via NewGetDailySalesQuery constructor",
)

// GetDailySalesQuery totals non-canceled orders per UTC day, from `days` days
// ago through today.
type GetDailySalesQuery struct {
	days int

	guard guard.ConstructorGuard
}

// NewGetDailySalesQuery accepts 1..MaxSalesDays; 0 means DefaultSalesDays.
func NewGetDailySalesQuery(days int) (GetDailySalesQuery, error) {
	if days == 0 {
		days = DefaultSalesDays
	}
	if days < 1 || days > MaxSalesDays {
		return GetDailySalesQuery{}, errs.NewValueIsOutOfRangeError("days", days, 1, MaxSalesDays)
	}
	return GetDailySalesQuery{days: days, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDailySalesQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySalesQueryIsNotConstructed)
}

func (q GetDailySalesQuery) Days() int {
	return q.days
}
