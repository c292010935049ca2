package queries

import (
	"errors"
	"time"

	"restaurant/internal/pkg/guard"
)

// ProductMarginsLimit caps the product report.
const ProductMarginsLimit = 20

var ErrGetProductMarginsQueryIsNotConstructed = errors.New(
	"GetProductMarginsQuery must be created via NewGetProductMarginsQuery constructor",
)

// GetProductMarginsQuery ranks the products sold on one day by revenue and
// reports their cost and margin. Only delivered orders count.
type GetProductMarginsQuery struct {
	day time.Time

	guard guard.ConstructorGuard
}

func NewGetProductMarginsQuery(date time.Time) GetProductMarginsQuery {
	return GetProductMarginsQuery{day: reportDay(date), guard: guard.NewConstructorGuard()}
}

func (q GetProductMarginsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductMarginsQueryIsNotConstructed)
}

func (q GetProductMarginsQuery) Day() time.Time {
	return q.day
}
