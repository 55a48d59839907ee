// Package rabbitmq publishes committed debit card events to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	portsevents "github.com/SscSPs/debit_card_app/internal/core/ports/events"
	"github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of *amqp091.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher sends committed events to a durable topic exchange, routed by event subject.
type Publisher struct {
	conn     *amqp091.Connection
	channel  Channel
	exchange string
}

var _ portsevents.EventPublisher = (*Publisher)(nil)

// sanitizeAMQPURL trims quotes and whitespace and, when no vhost is given, selects the
// default vhost "/". An explicit vhost is left as is.
func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	if u.Path == "" && u.RawQuery == "" {
		clean += "/"
	}
	return clean, nil
}

// Dial connects to RabbitMQ and returns a publisher bound to exchange.
func Dial(amqpURL, exchange string) (*Publisher, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp091.Dial(cleanURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	publisher, err := NewPublisher(channel, exchange)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}
	publisher.conn = conn
	return publisher, nil
}

// NewPublisher declares the exchange on channel and returns a publisher for it.
func NewPublisher(channel Channel, exchange string) (*Publisher, error) {
	err := channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &Publisher{channel: channel, exchange: exchange}, nil
}

// Publish sends each event as a persistent JSON message routed by its subject.
// It stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, events []portsevents.CommittedEvent) error {
	for _, event := range events {
		body, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to encode event for card %s: %w", event.CardUUID, err)
		}

		err = p.channel.PublishWithContext(ctx,
			p.exchange,      // exchange
			event.Subject(), // routing key
			false,           // mandatory
			false,           // immediate
			amqp091.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp091.Persistent,
				Timestamp:    event.OccurredAt,
				Type:         string(event.Event.Type),
				Body:         body,
			})
		if err != nil {
			return fmt.Errorf("failed to publish %s to exchange %s: %w", event.Subject(), p.exchange, err)
		}
	}
	return nil
}

// Close closes the channel and, when the publisher owns it, the connection.
func (p *Publisher) Close() error {
	var errs []error
	if p.channel != nil {
		errs = append(errs, p.channel.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}
