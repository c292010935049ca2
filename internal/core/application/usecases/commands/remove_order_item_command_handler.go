package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"go.uber.org/zap"
)

// RemoveOrderItemCommandHandler removes a line under the same row lock as
// AddOrderItemCommandHandler. The remaining plates are compacted.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *zap.Logger
}

func NewRemoveOrderItemCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *zap.Logger,
) RemoveOrderItemCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
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
	if err = o.RemoveItem(cmd.ItemID()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := order.NewEvent(order.EventItemRemoved, o)
	event.ItemID = cmd.ItemID().String()
	publishCommitted(ctx, h.publisher, h.logger, event)
	return nil
}
