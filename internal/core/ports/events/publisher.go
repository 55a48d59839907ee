package events

import (
	"context"
	"time"

	"github.com/SscSPs/debit_card_app/internal/core/domain"
	"github.com/google/uuid"
)

// CommittedEvent is a debit card event that has been durably saved.
type CommittedEvent struct {
	CardUUID   uuid.UUID          `json:"cardUUID"`
	Version    int64              `json:"version"`
	Event      domain.EventRecord `json:"event"`
	OccurredAt time.Time          `json:"occurredAt"`
}

// Subject returns the routing suffix for the event, e.g. "debit_card.TransactionAccepted".
func (e CommittedEvent) Subject() string {
	return "debit_card." + string(e.Event.Type)
}

// EventPublisher ships committed events to an external bus.
type EventPublisher interface {
	Publish(ctx context.Context, events []CommittedEvent) error
	Close() error
}
