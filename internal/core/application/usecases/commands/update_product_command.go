package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand replaces a product's details and synchronizes its variants.
// Past order lines keep the prices and names they were created with.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	details   product.Details
	variants  []product.VariantChange

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(
	productID kernel.UUID,
	details product.Details,
	variants []product.VariantChange,
) (UpdateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}
	return UpdateProductCommand{
		productID: productID,
		details:   details,
		variants:  append([]product.VariantChange(nil), variants...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID            { return c.productID }
func (c UpdateProductCommand) Details() product.Details          { return c.details }
func (c UpdateProductCommand) Variants() []product.VariantChange { return c.variants }
