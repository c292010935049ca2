package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"restaurant/internal/adapters/out/events"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	_ ports.OrderEventPublisher = (*events.AMQPPublisher)(nil)
	_ ports.OrderEventPublisher = events.NopPublisher{}
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func newEvent(t order.EventType, status string) order.Event {
	return order.Event{
		Type:       t,
		OrderID:    "6f1c3a52-7d3e-4d8e-9a47-0b6f2a8a9e10",
		Status:     status,
		Total:      decimal.RequireFromString("12.50"),
		OccurredAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestAMQPPublisher_Publish_RoutesByEventType(t *testing.T) {
	ctx := t.Context()
	ch := &MockChannel{}
	created := newEvent(order.EventCreated, "RECEIVED")
	changed := newEvent(order.EventStatusChanged, "PREPARING")
	changed.PreviousStatus = "RECEIVED"

	var sent []amqp.Publishing
	ch.On("PublishWithContext", ctx, "kitchen", mock.Anything, false, false, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = append(sent, args.Get(5).(amqp.Publishing))
		}).
		Return(nil).Twice()

	publisher, err := events.NewAMQPPublisher(ch, "kitchen", zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(ctx, created, changed))

	ch.AssertCalled(t, "PublishWithContext", ctx, "kitchen", "order.created", false, false, mock.Anything)
	ch.AssertCalled(t, "PublishWithContext", ctx, "kitchen", "order.status_changed", false, false, mock.Anything)
	require.Len(t, sent, 2)

	msg := sent[1]
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, created.OrderID, msg.Headers["orderId"])

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, "order.status_changed", body["type"])
	assert.Equal(t, "PREPARING", body["status"])
	assert.Equal(t, "RECEIVED", body["previousStatus"])
	assert.Equal(t, "12.5", body["total"])
}

func TestAMQPPublisher_Publish_StopsAtFirstFailure(t *testing.T) {
	ctx := t.Context()
	ch := &MockChannel{}
	brokerErr := errors.New("channel closed")
	ch.On("PublishWithContext", ctx, events.DefaultExchange, "order.item_added", false, false, mock.Anything).
		Return(brokerErr).Once()

	publisher, err := events.NewAMQPPublisher(ch, "", nil)
	require.NoError(t, err)

	err = publisher.Publish(ctx,
		newEvent(order.EventItemAdded, "RECEIVED"),
		newEvent(order.EventItemRemoved, "RECEIVED"),
	)
	require.ErrorIs(t, err, brokerErr)
	ch.AssertNumberOfCalls(t, "PublishWithContext", 1)
}

func TestNewAMQPPublisher_RequiresChannel(t *testing.T) {
	_, err := events.NewAMQPPublisher(nil, "", zap.NewNop())
	require.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, events.NopPublisher{}.Publish(t.Context(), newEvent(order.EventCreated, "RECEIVED")))
}
