package commands_test

import (
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddOrderItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	taco := newTaco(t)
	o := newStoredOrder(t, order.Preparing, taco)
	in := newItemInput(t, taco.ID(), 1, 0)
	cmd, err := commands.NewAddOrderItemCommand(o.ID(), in)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Get", ctx, taco.ID()).Return(taco, nil).Once(),
		orders.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	publisher.On("Publish", ctx, mock.MatchedBy(func(events []order.Event) bool {
		return len(events) == 1 &&
			events[0].Type == order.EventItemAdded &&
			events[0].ItemID == in.ItemID().String()
	})).Return(nil).Once()

	h := commands.NewAddOrderItemCommandHandler(factory, publisher, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Len(t, o.Items(), 2)
	added, ok := o.Item(in.ItemID())
	require.True(t, ok)
	assert.Equal(t, 2, added.PlateNumber())
	assert.True(t, decimal.RequireFromString("7.50").Equal(o.Total()))

	orders.AssertExpectations(t)
	products.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_OrderClosed(t *testing.T) {
	ctx := t.Context()
	taco := newTaco(t)

	for _, status := range []order.Status{order.Ready, order.Delivered, order.Canceled} {
		t.Run(status.String(), func(t *testing.T) {
			o := newStoredOrder(t, status, taco)
			cmd, _ := commands.NewAddOrderItemCommand(o.ID(), newItemInput(t, taco.ID(), 1, 0))

			orders := new(MockOrderRepository)
			uow := new(MockOrderUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(orders).Once(),
				orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewAddOrderItemCommandHandler(factory, nil, nil)
			err := h.Handle(ctx, cmd)

			var illegal *order.IllegalTransitionError
			require.ErrorAs(t, err, &illegal)
			assert.Equal(t, status, illegal.From)
			assert.Len(t, o.Items(), 1)
			orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertExpectations(t)
		})
	}
}

func TestAddOrderItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	taco := newTaco(t)
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewAddOrderItemCommand(orderID, newItemInput(t, taco.ID(), 1, 0))

	orders := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory, nil, nil)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	taco := newTaco(t)
	o := newStoredOrder(t, order.Received, taco)
	cmd, _ := commands.NewAddOrderItemCommand(o.ID(), newItemInput(t, taco.ID(), 1, 1))

	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Get", ctx, taco.ID()).Return(taco, nil).Once(),
		orders.On("Update", ctx, o).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	h := commands.NewAddOrderItemCommandHandler(factory, publisher, nil)
	require.EqualError(t, h.Handle(ctx, cmd), "update error")
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
