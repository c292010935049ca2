package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItemInput(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		in, err := commands.NewOrderItemInput(kernel.NewUUID(), productID, nil, 2, "sin cebolla", 0)
		require.NoError(t, err)
		require.NoError(t, in.Validate())
		assert.Equal(t, 2, in.Quantity())
		assert.Equal(t, 0, in.PlateNumber())
		assert.Nil(t, in.VariantID())
	})

	t.Run("quantity out of range", func(t *testing.T) {
		for _, q := range []int{0, -1, order.MaxQuantity + 1} {
			_, err := commands.NewOrderItemInput(kernel.NewUUID(), productID, nil, q, "", 0)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "quantity %d", q)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := commands.NewOrderItemInput(kernel.NewUUID(), kernel.UUID{}, nil, 1, "", 0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value", func(t *testing.T) {
		require.ErrorIs(t, commands.OrderItemInput{}.Validate(), commands.ErrOrderItemInputIsNotConstructed)
	})
}

func TestNewCreateOrderCommand(t *testing.T) {
	item := newItemInput(t, kernel.NewUUID(), 1, 0)

	t.Run("defaults", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Ana", "", nil, []commands.OrderItemInput{item})
		require.NoError(t, err)
		assert.Equal(t, order.DineIn, cmd.Kind())
		assert.Nil(t, cmd.PaymentMethod())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("payment method", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Ana", "DELIVERY", ptr("TRANSFER"), []commands.OrderItemInput{item})
		require.NoError(t, err)
		assert.Equal(t, order.Delivery, cmd.Kind())
		require.NotNil(t, cmd.PaymentMethod())
		assert.Equal(t, order.Transfer, *cmd.PaymentMethod())
	})

	t.Run("no items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Ana", "", nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown kind and payment", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Ana", "DRIVE_THRU", ptr("BITCOIN"), []commands.OrderItemInput{item})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "kind")
		assert.Contains(t, err.Error(), "paymentMethod")
	})

	t.Run("unconstructed item", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Ana", "", nil, []commands.OrderItemInput{{}})
		require.ErrorIs(t, err, commands.ErrOrderItemInputIsNotConstructed)
	})
}

func TestNewUpdateOrderCommand(t *testing.T) {
	id := kernel.NewUUID()

	tests := []struct {
		name             string
		status           *string
		action           *string
		paymentMethodSet bool
		paymentMethod    *string
		wantErr          error
	}{
		{name: "status", status: ptr("PREPARING")},
		{name: "action", action: ptr("cancel")},
		{name: "clear payment", paymentMethodSet: true},
		{name: "set payment", paymentMethodSet: true, paymentMethod: ptr("CASH")},
		{name: "empty", wantErr: errs.ErrValueIsRequired},
		{name: "status and action", status: ptr("READY"), action: ptr("advance"), wantErr: errs.ErrValueIsInvalid},
		{name: "unknown status", status: ptr("COOKING"), wantErr: errs.ErrValueIsInvalid},
		{name: "unknown action", action: ptr("teleport"), wantErr: errs.ErrValueIsInvalid},
		{name: "unknown payment", paymentMethodSet: true, paymentMethod: ptr("IOU"), wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewUpdateOrderCommand(id, tt.status, tt.action, tt.paymentMethodSet, tt.paymentMethod)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
			assert.Equal(t, tt.paymentMethodSet, cmd.PaymentMethodSet())
		})
	}

	t.Run("unknown status keeps the state error", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(id, ptr("COOKING"), nil, false, nil)
		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, err, &invalid)
		require.ErrorIs(t, invalid.Cause, order.ErrInvalidState)
	})
}

func TestNewLoginCommand(t *testing.T) {
	cmd, err := commands.NewLoginCommand(" Ana@Example.COM", "pw")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", cmd.Email())

	_, err = commands.NewLoginCommand("", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "password")
}

func TestNewCreateUserCommand(t *testing.T) {
	_, err := commands.NewCreateUserCommand(kernel.NewUUID(), "a@example.com", "long-enough", user.Role("OWNER"))
	require.Error(t, err)

	_, err = commands.NewCreateUserCommand(kernel.UUID{}, "a@example.com", "long-enough", user.Staff)
	require.Error(t, err)
}

func TestCommands_ZeroValueIsRejected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"create order", commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed},
		{"add item", commands.AddOrderItemCommand{}.Validate(), commands.ErrAddOrderItemCommandIsNotConstructed},
		{"remove item", commands.RemoveOrderItemCommand{}.Validate(), commands.ErrRemoveOrderItemCommandIsNotConstructed},
		{"update order", commands.UpdateOrderCommand{}.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed},
		{"create product", commands.CreateProductCommand{}.Validate(), commands.ErrCreateProductCommandIsNotConstructed},
		{"update product", commands.UpdateProductCommand{}.Validate(), commands.ErrUpdateProductCommandIsNotConstructed},
		{"delete product", commands.DeleteProductCommand{}.Validate(), commands.ErrDeleteProductCommandIsNotConstructed},
		{"login", commands.LoginCommand{}.Validate(), commands.ErrLoginCommandIsNotConstructed},
		{"create user", commands.CreateUserCommand{}.Validate(), commands.ErrCreateUserCommandIsNotConstructed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.want)
		})
	}
}
