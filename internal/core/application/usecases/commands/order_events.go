package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"go.uber.org/zap"
)

// publishCommitted announces changes that are already committed. Delivery is
// best effort: a broker outage is logged and the command still succeeds.
func publishCommitted(ctx context.Context, publisher ports.OrderEventPublisher, logger *zap.Logger, events ...order.Event) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.Warn("failed to publish order events",
			zap.String("orderId", events[0].OrderID),
			zap.Int("count", len(events)),
			zap.Error(err),
		)
	}
}
