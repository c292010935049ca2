package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for menu products and their variants.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists the product details and replaces its variant set.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product with all of its variants, active or not.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Delete removes a product and its variants.
	Delete(ctx context.Context, id kernel.UUID) error

	// IsReferenced reports whether any order line points at the product.
	IsReferenced(ctx context.Context, id kernel.UUID) (bool, error)
}
