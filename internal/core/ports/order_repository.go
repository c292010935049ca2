// Package ports defines the contracts between the restaurant domain and its
// infrastructure: repositories, the unit of work, the event publisher and the
// session issuer. Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always loaded and saved together with their line items.
type OrderRepository interface {
	// Add persists a new order with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, payment method, total and the full item set of an
	// existing order. Items no longer on the aggregate are deleted.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock on the order held until the surrounding
	// transaction ends. Concurrent item changes and status changes on the same
	// order serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
