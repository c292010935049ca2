package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer placing a new order.
//
// Example:
//
//	item, _ := NewOrderItemInput(kernel.NewUUID(), tacoID, nil, 3, "sin cebolla", 0)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Mesa 4", "DINE_IN", nil, []OrderItemInput{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	kind          order.Kind
	paymentMethod *order.PaymentMethod
	items         []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. kind may be empty (dine-in),
// paymentMethod may be nil, and at least one item is required.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	kind string,
	paymentMethod *string,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setKind(kind),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

func (c CreateOrderCommand) Kind() order.Kind {
	return c.kind
}

func (c CreateOrderCommand) PaymentMethod() *order.PaymentMethod {
	return c.paymentMethod
}

func (c CreateOrderCommand) Items() []OrderItemInput {
	return append([]OrderItemInput(nil), c.items...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setKind(kind string) error {
	k, err := order.ParseKind(kind)
	if err != nil {
		return err
	}
	c.kind = k
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method *string) error {
	if method == nil || *method == "" {
		return nil
	}
	m, err := order.ParsePaymentMethod(*method)
	if err != nil {
		return err
	}
	c.paymentMethod = &m
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = append([]OrderItemInput(nil), items...)
	return nil
}
