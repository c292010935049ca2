package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"go.uber.org/zap"
)

// UpdateOrderCommandHandler applies status and payment changes.
//
// The order is read with a row lock, so a cancel and an advance racing on the
// same order are applied one after the other: the second one sees the first
// one's result and is rejected if the order became terminal.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *zap.Logger
}

func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *zap.Logger,
) UpdateOrderCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	previous := o.Status()

	switch {
	case cmd.TargetStatus() != nil:
		err = o.ChangeStatus(*cmd.TargetStatus())
	case cmd.Action() != "":
		err = o.ApplyAction(cmd.Action())
	}
	if err != nil {
		return err
	}

	if cmd.PaymentMethodSet() {
		if err = o.SetPaymentMethod(cmd.PaymentMethod()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	var events []order.Event
	if o.Status() != previous {
		event := order.NewEvent(order.EventStatusChanged, o)
		event.PreviousStatus = previous.String()
		events = append(events, event)
	}
	if cmd.PaymentMethodSet() {
		events = append(events, order.NewEvent(order.EventPaymentSet, o))
	}
	publishCommitted(ctx, h.publisher, h.logger, events...)
	return nil
}
