package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"go.uber.org/zap"
)

// AddOrderItemCommandHandler adds a line to an existing order.
//
// The order row is locked for the whole transaction, so two concurrent additions
// cannot both pass the open-order check against a stale status, and the stored
// total always matches the stored items.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *zap.Logger
}

func NewAddOrderItemCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *zap.Logger,
) AddOrderItemCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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
	if err = o.Status().ValidateMutateLineItems(); err != nil {
		return err
	}

	item, err := priceLineItem(ctx, uow.ProductRepository(), cmd.Item())
	if err != nil {
		return err
	}
	if err = o.AddItem(item); err != nil {
		return err
	}
	o.CompactPlates()

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := order.NewEvent(order.EventItemAdded, o)
	event.ItemID = item.ID().String()
	publishCommitted(ctx, h.publisher, h.logger, event)
	return nil
}
