package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes to other systems
// (kitchen displays, printers). Publishing happens after the transaction
// commits; a failure is logged by the caller and never undoes the change.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
