package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType names an order event on the message bus. The value doubles as the routing key.
type EventType string

const (
	EventCreated       EventType = "order.created"
	EventItemAdded     EventType = "order.item_added"
	EventItemRemoved   EventType = "order.item_removed"
	EventStatusChanged EventType = "order.status_changed"
	EventPaymentSet    EventType = "order.payment_method_set"
)

// Event is a snapshot of an order taken right after a committed change.
type Event struct {
	Type           EventType       `json:"type"`
	OrderID        string          `json:"orderId"`
	Status         string          `json:"status"`
	PreviousStatus string          `json:"previousStatus,omitempty"`
	Total          decimal.Decimal `json:"total"`
	ItemID         string          `json:"itemId,omitempty"`
	OccurredAt     time.Time       `json:"occurredAt"`
}

// NewEvent captures o for the given event type.
func NewEvent(t EventType, o *Order) Event {
	return Event{
		Type:       t,
		OrderID:    o.ID().String(),
		Status:     o.Status().String(),
		Total:      o.Total(),
		OccurredAt: o.UpdatedAt(),
	}
}
