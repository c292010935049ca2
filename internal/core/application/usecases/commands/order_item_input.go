package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrOrderItemInputIsNotConstructed = errors.New(
	"OrderItemInput must be created via NewOrderItemInput constructor",
)

// OrderItemInput is one requested order line: what to serve, how many, and
// optionally on which plate. The price is never taken from the request.
type OrderItemInput struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	productID   kernel.UUID
	variantID   *kernel.UUID
	quantity    int
	note        string
	plateNumber int

	guard guard.ConstructorGuard
}

// NewOrderItemInput validates a requested line. plateNumber ≤ 0 means "no preference".
func NewOrderItemInput(
	itemID, productID kernel.UUID,
	variantID *kernel.UUID,
	quantity int,
	note string,
	plateNumber int,
) (OrderItemInput, error) {
	in := OrderItemInput{
		note:        note,
		plateNumber: plateNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		in.setItemID(itemID),
		in.setProductID(productID),
		in.setVariantID(variantID),
		in.setQuantity(quantity),
	); err != nil {
		return OrderItemInput{}, err
	}

	return in, nil
}

func (i OrderItemInput) Validate() error {
	return i.guard.Validate(ErrOrderItemInputIsNotConstructed)
}

func (i OrderItemInput) ItemID() kernel.UUID     { return i.itemID }
func (i OrderItemInput) ProductID() kernel.UUID  { return i.productID }
func (i OrderItemInput) VariantID() *kernel.UUID { return i.variantID }
func (i OrderItemInput) Quantity() int           { return i.quantity }
func (i OrderItemInput) Note() string            { return i.note }
func (i OrderItemInput) PlateNumber() int        { return i.plateNumber }

func (i *OrderItemInput) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.itemID = id
	return nil
}

func (i *OrderItemInput) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	i.productID = id
	return nil
}

func (i *OrderItemInput) setVariantID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("variantId", err)
	}
	v := *id
	i.variantID = &v
	return nil
}

func (i *OrderItemInput) setQuantity(quantity int) error {
	if quantity < 1 || quantity > order.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, order.MaxQuantity)
	}
	i.quantity = quantity
	return nil
}

// priceLineItem turns a requested line into a line item priced from the current menu.
// A product the request refers to but the menu lacks is the client's mistake,
// so not-found is reported as an invalid value.
func priceLineItem(ctx context.Context, products ports.ProductRepository, in OrderItemInput) (order.LineItem, error) {
	p, err := products.Get(ctx, in.ProductID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return order.LineItem{}, errs.NewValueIsInvalidErrorWithCause("productId", err)
		}
		return order.LineItem{}, err
	}

	quote, err := p.Quote(in.VariantID())
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(in.ItemID(), order.ItemSource{
		ProductID:   quote.ProductID,
		ProductName: quote.ProductName,
		VariantID:   quote.VariantID,
		VariantName: quote.VariantName,
		UnitPrice:   quote.UnitPrice,
	}, in.Quantity(), in.Note(), in.PlateNumber())
}
