package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrderTicketQueryIsNotConstructed = errors.New(
	"GetOrderTicketQuery must be created via NewGetOrderTicketQuery constructor",
)

// GetOrderTicketQuery builds the kitchen ticket of an order: its lines grouped
// by plate in ascending plate order.
type GetOrderTicketQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderTicketQuery(orderID kernel.UUID) (GetOrderTicketQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTicketQuery{}, err
	}
	return GetOrderTicketQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderTicketQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTicketQueryIsNotConstructed)
}

func (q GetOrderTicketQuery) OrderID() kernel.UUID {
	return q.orderID
}
