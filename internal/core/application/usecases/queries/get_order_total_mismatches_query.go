package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetOrderTotalMismatchesQueryIsNotConstructed = errors.New(
	"GetOrderTotalMismatchesQuery must be created via NewGetOrderTotalMismatchesQuery constructor",
)

// GetOrderTotalMismatchesQuery finds open orders whose stored total differs
// from the sum of their lines.
type GetOrderTotalMismatchesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderTotalMismatchesQuery() GetOrderTotalMismatchesQuery {
	return GetOrderTotalMismatchesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderTotalMismatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTotalMismatchesQueryIsNotConstructed)
}
