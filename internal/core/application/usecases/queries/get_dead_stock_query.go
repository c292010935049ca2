package queries

import (
	"errors"
	"time"

	"restaurant/internal/pkg/guard"
)

var ErrGetDeadStockQueryIsNotConstructed = errors.New(
	"GetDeadStockQuery must be created via NewGetDeadStockQuery constructor",
)

// GetDeadStockQuery lists the products that sold nothing on one day.
// Only delivered orders count as sales.
type GetDeadStockQuery struct {
	day time.Time

	guard guard.ConstructorGuard
}

func NewGetDeadStockQuery(date time.Time) GetDeadStockQuery {
	return GetDeadStockQuery{day: reportDay(date), guard: guard.NewConstructorGuard()}
}

func (q GetDeadStockQuery) Validate() error {
	return q.guard.Validate(ErrGetDeadStockQueryIsNotConstructed)
}

func (q GetDeadStockQuery) Day() time.Time {
	return q.day
}
