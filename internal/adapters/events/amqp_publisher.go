package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	portsevents "github.com/SscSPs/money_tracker_app/internal/core/ports/events"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// publishChannel is the part of *amqp091.Channel the publisher needs.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPPublisher publishes transaction change messages to a direct exchange.
type AMQPPublisher struct {
	mu           sync.Mutex // amqp channels must not be used for concurrent publishes
	conn         *amqp091.Connection
	channel      publishChannel
	exchangeName string
	queueName    string
}

var _ portsevents.TransactionEventPublisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher dials url and declares the exchange, queue and binding.
func NewAMQPPublisher(url, exchangeName, queueName string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(channel, exchangeName, queueName); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return &AMQPPublisher{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}, nil
}

func declareTopology(channel *amqp091.Channel, exchangeName, queueName string) error {
	err := channel.ExchangeDeclare(
		exchangeName, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// routing key is the queue name on a direct exchange
	if err := channel.QueueBind(queueName, queueName, exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// PublishTransactionEvent publishes a persistent JSON message for event.
func (p *AMQPPublisher) PublishTransactionEvent(ctx context.Context, event domain.TransactionEvent) error {
	body, err := NewTransactionChangedMessage(event).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName, // exchange
		p.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Type:         string(event.Kind),
			Body:         body,
		},
	)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.DebugContext(ctx, "Published transaction event",
		slog.String("event", string(event.Kind)),
		slog.String("transaction_id", event.TransactionID),
		slog.String("exchange", p.exchangeName))
	return nil
}

// Close closes the channel and the connection.
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher drops every event. Used when AMQP_URL is not configured.
type NoopPublisher struct{}

var _ portsevents.TransactionEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishTransactionEvent(context.Context, domain.TransactionEvent) error {
	return nil
}
