package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTaco(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), product.Details{
		Name:  "Taco al pastor",
		Price: decimal.RequireFromString("2.50"),
		Cost:  decimal.RequireFromString("0.90"),
	}, nil)
	require.NoError(t, err)
	return p
}

func newItemInput(t *testing.T, productID kernel.UUID, quantity, plateNumber int) commands.OrderItemInput {
	t.Helper()
	in, err := commands.NewOrderItemInput(kernel.NewUUID(), productID, nil, quantity, "", plateNumber)
	require.NoError(t, err)
	return in
}

// newStoredOrder builds an order in the given status holding one taco on plate 1.
func newStoredOrder(t *testing.T, status order.Status, taco *product.Product) *order.Order {
	t.Helper()
	item, err := order.RestoreLineItem(kernel.NewUUID(), order.ItemSource{
		ProductID:   taco.ID(),
		ProductName: taco.Name(),
		UnitPrice:   taco.Price(),
	}, 2, "", 1)
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.State{
		ID:           kernel.NewUUID(),
		CustomerName: "Mesa 4",
		Kind:         order.DineIn,
		Status:       status,
		Total:        decimal.RequireFromString("5.00"),
		Items:        []order.LineItem{item},
	})
	require.NoError(t, err)
	return o
}
