// Package events delivers committed order events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"restaurant/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// DefaultExchange is the topic exchange order events go to. Routing keys are
// event types, so a kitchen display can bind "order.*" and a printer only
// "order.created".
const DefaultExchange = "orders_topic"

// Channel is the subset of *amqp.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPPublisher implements ports.OrderEventPublisher on an AMQP channel.
// A channel is not safe for concurrent publishing, so calls are serialized.
type AMQPPublisher struct {
	ch       Channel
	exchange string
	logger   *zap.Logger

	mu sync.Mutex
}

func NewAMQPPublisher(ch Channel, exchange string, logger *zap.Logger) (*AMQPPublisher, error) {
	if ch == nil {
		return nil, errors.New("amqp channel is required")
	}
	if exchange == "" {
		exchange = DefaultExchange
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AMQPPublisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With(zap.String("component", "order_event_publisher")),
	}, nil
}

// Publish sends every event as a persistent JSON message. It stops at the
// first failure; events already sent stay sent.
func (p *AMQPPublisher) Publish(ctx context.Context, events ...order.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range events {
		body, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode %s event: %w", e.Type, err)
		}

		err = p.ch.PublishWithContext(ctx, p.exchange, string(e.Type), false, false, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    time.Now().UTC(),
			Type:         string(e.Type),
			Headers:      amqp.Table{"orderId": e.OrderID},
			Body:         body,
		})
		if err != nil {
			return fmt.Errorf("publish %s event for order %s: %w", e.Type, e.OrderID, err)
		}

		p.logger.Debug("order event published",
			zap.String("type", string(e.Type)),
			zap.String("orderId", e.OrderID),
		)
	}

	return nil
}

// Connection owns the broker connection behind an AMQPPublisher.
type Connection struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Dial connects to url and declares exchange as a durable topic exchange.
func Dial(url, exchange string) (*Connection, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &Connection{conn: conn, ch: ch}, nil
}

func (c *Connection) Channel() *amqp.Channel {
	return c.ch
}

func (c *Connection) Close() error {
	if c == nil {
		return nil
	}
	var chErr error
	if c.ch != nil {
		chErr = c.ch.Close()
	}
	var connErr error
	if c.conn != nil {
		connErr = c.conn.Close()
	}
	return errors.Join(chErr, connErr)
}

// NopPublisher drops events. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...order.Event) error {
	return nil
}
