package commands

import (
	"errors"
	"slices"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand moves an order through its lifecycle and/or records its
// payment method. The status change is either an explicit target status or
// one of the actions advance, revert and cancel, never both.
//
// Example:
//
//	action := "advance"
//	cmd, err := NewUpdateOrderCommand(orderID, nil, &action, false, nil)
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	targetStatus     *order.Status
	action           string
	paymentMethodSet bool
	paymentMethod    *order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates the request. paymentMethodSet tells an
// explicit null (clear the payment method) apart from an absent field.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	status *string,
	action *string,
	paymentMethodSet bool,
	paymentMethod *string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		paymentMethodSet: paymentMethodSet,
		guard:            guard.NewConstructorGuard(),
	}

	if status == nil && action == nil && !paymentMethodSet {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("status, action or paymentMethod")
	}
	if status != nil && action != nil {
		return UpdateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("action",
			errors.New("status and action are mutually exclusive"))
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTargetStatus(status),
		cmd.setAction(action),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus is nil unless an explicit status was requested.
func (c UpdateOrderCommand) TargetStatus() *order.Status {
	return c.targetStatus
}

// Action is empty unless an action was requested.
func (c UpdateOrderCommand) Action() string {
	return c.action
}

func (c UpdateOrderCommand) PaymentMethodSet() bool {
	return c.paymentMethodSet
}

func (c UpdateOrderCommand) PaymentMethod() *order.PaymentMethod {
	return c.paymentMethod
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

// setTargetStatus reports an unknown status from a client as a bad request.
// The *order.InvalidStateError is kept as the cause.
func (c *UpdateOrderCommand) setTargetStatus(status *string) error {
	if status == nil {
		return nil
	}
	s, err := order.ParseStatus(*status)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	c.targetStatus = &s
	return nil
}

func (c *UpdateOrderCommand) setAction(action *string) error {
	if action == nil {
		return nil
	}
	if !slices.Contains([]string{order.ActionAdvance, order.ActionRevert, order.ActionCancel}, *action) {
		return errs.NewValueIsInvalidErrorWithCause("action",
			errors.New("must be one of advance, revert, cancel"))
	}
	c.action = *action
	return nil
}

func (c *UpdateOrderCommand) setPaymentMethod(method *string) error {
	if !c.paymentMethodSet || method == nil {
		return nil
	}
	m, err := order.ParsePaymentMethod(*method)
	if err != nil {
		return err
	}
	c.paymentMethod = &m
	return nil
}
