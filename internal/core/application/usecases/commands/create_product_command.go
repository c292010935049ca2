package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product and its variants to the menu.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	details   product.Details
	variants  []product.VariantDetails

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	productID kernel.UUID,
	details product.Details,
	variants []product.VariantDetails,
) (CreateProductCommand, error) {
	var nameErr error
	if strings.TrimSpace(details.Name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(productID.Validate(), nameErr); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		productID: productID,
		details:   details,
		variants:  append([]product.VariantDetails(nil), variants...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID             { return c.productID }
func (c CreateProductCommand) Details() product.Details           { return c.details }
func (c CreateProductCommand) Variants() []product.VariantDetails { return c.variants }
