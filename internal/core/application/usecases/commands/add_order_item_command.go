package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand appends a line to an order that is still open.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	item    OrderItemInput

	guard guard.ConstructorGuard
}

func NewAddOrderItemCommand(orderID kernel.UUID, item OrderItemInput) (AddOrderItemCommand, error) {
	if err := errors.Join(orderID.Validate(), item.Validate()); err != nil {
		return AddOrderItemCommand{}, err
	}
	return AddOrderItemCommand{
		orderID: orderID,
		item:    item,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderItemCommand) Item() OrderItemInput {
	return c.item
}
