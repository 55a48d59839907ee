// Package nats publishes committed debit card events to NATS subjects.
package nats

import (
	"context"
	"encoding/json"
	"fmt"

	portsevents "github.com/SscSPs/debit_card_app/internal/core/ports/events"
	"github.com/nats-io/nats.go"
)

// Conn is the subset of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
	Drain() error
}

// Publisher sends each committed event to "<prefix>.debit_card.<EventType>".
type Publisher struct {
	conn   Conn
	prefix string
}

var _ portsevents.EventPublisher = (*Publisher)(nil)

// Connect dials the NATS server at url.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Name("debit-card-backend"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats at %s: %w", url, err)
	}
	return nc, nil
}

// NewPublisher creates a publisher on an open connection.
func NewPublisher(conn Conn, subjectPrefix string) *Publisher {
	return &Publisher{conn: conn, prefix: subjectPrefix}
}

func (p *Publisher) subject(event portsevents.CommittedEvent) string {
	if p.prefix == "" {
		return event.Subject()
	}
	return p.prefix + "." + event.Subject()
}

// Publish sends the events in order and flushes so that a nil error means the server has them.
func (p *Publisher) Publish(ctx context.Context, events []portsevents.CommittedEvent) error {
	if len(events) == 0 {
		return nil
	}
	for _, event := range events {
		data, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to encode event for card %s: %w", event.CardUUID, err)
		}
		if err := p.conn.Publish(p.subject(event), data); err != nil {
			return fmt.Errorf("failed to publish %s: %w", p.subject(event), err)
		}
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("failed to flush nats connection: %w", err)
	}
	return nil
}

// Close drains the connection, delivering anything still buffered.
func (p *Publisher) Close() error {
	return p.conn.Drain()
}
