package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

const (
	DefaultOrdersLimit = 100
	MaxOrdersLimit     = 500
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders newest first, optionally narrowed to one status.
//
// Example:
//
//	status := "PREPARING"
//	query, err := NewGetOrdersQuery(&status, 0)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	status *order.Status
	limit  int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery validates the filter. A limit of 0 means DefaultOrdersLimit.
func NewGetOrdersQuery(status *string, limit int) (GetOrdersQuery, error) {
	q := GetOrdersQuery{limit: limit, guard: guard.NewConstructorGuard()}

	if status != nil && *status != "" {
		s, err := order.ParseStatus(*status)
		if err != nil {
			return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
		q.status = &s
	}

	if q.limit == 0 {
		q.limit = DefaultOrdersLimit
	}
	if q.limit < 1 || q.limit > MaxOrdersLimit {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxOrdersLimit)
	}

	return q, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

func (q GetOrdersQuery) Limit() int {
	return q.limit
}
