package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// EventType is the stable name of a debit card event, used for storage and the event bus.
type EventType string

const (
	EventLimitAssigned       EventType = "LimitAssigned"
	EventTransactionAccepted EventType = "TransactionAccepted"
	EventTransactionRejected EventType = "TransactionRejected"
	EventCardBlocked         EventType = "CardBlocked"
	EventCardBlockedRejected EventType = "CardBlockedRejected"
	EventCardUnblocked       EventType = "CardUnblocked"
)

// DebitCardEvent is an immutable fact produced by applying a command to a DebitCard.
// The set of implementations is closed to this package.
type DebitCardEvent interface {
	Type() EventType
	// Rejection reports whether the event records a refused command.
	Rejection() bool
	isDebitCardEvent()
}

// LimitAssigned records the one-time assignment of a debit limit.
type LimitAssigned struct {
	Limit Money `json:"limit"`
}

// TransactionAccepted records a transaction applied to the balance.
// Value is the signed delta: negative for a charge, positive for a pay-off.
type TransactionAccepted struct {
	TransactionID uuid.UUID `json:"uuid"`
	Value         Money     `json:"value"`
}

// TransactionRejected records a refused transaction; the balance is unchanged.
type TransactionRejected struct {
	TransactionID uuid.UUID `json:"uuid"`
	Value         Money     `json:"value"`
}

// CardBlocked records a transition from unblocked to blocked.
type CardBlocked struct{}

// CardBlockedRejected records an attempt to block an already blocked card.
type CardBlockedRejected struct{}

// CardUnblocked records a transition from blocked to unblocked.
type CardUnblocked struct{}

func (LimitAssigned) Type() EventType       { return EventLimitAssigned }
func (TransactionAccepted) Type() EventType { return EventTransactionAccepted }
func (TransactionRejected) Type() EventType { return EventTransactionRejected }
func (CardBlocked) Type() EventType         { return EventCardBlocked }
func (CardBlockedRejected) Type() EventType { return EventCardBlockedRejected }
func (CardUnblocked) Type() EventType       { return EventCardUnblocked }

func (LimitAssigned) Rejection() bool       { return false }
func (TransactionAccepted) Rejection() bool { return false }
func (TransactionRejected) Rejection() bool { return true }
func (CardBlocked) Rejection() bool         { return false }
func (CardBlockedRejected) Rejection() bool { return true }
func (CardUnblocked) Rejection() bool       { return false }

func (LimitAssigned) isDebitCardEvent()       {}
func (TransactionAccepted) isDebitCardEvent() {}
func (TransactionRejected) isDebitCardEvent() {}
func (CardBlocked) isDebitCardEvent()         {}
func (CardBlockedRejected) isDebitCardEvent() {}
func (CardUnblocked) isDebitCardEvent()       {}

// EventRecord is the serialized envelope of an event: its type plus a JSON body.
type EventRecord struct {
	Type EventType       `json:"type"`
	Body json.RawMessage `json:"body"`
}

// ToEventRecord serializes an event into its storage envelope.
func ToEventRecord(event DebitCardEvent) (EventRecord, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return EventRecord{}, fmt.Errorf("failed to marshal %s event: %w", event.Type(), err)
	}
	return EventRecord{Type: event.Type(), Body: body}, nil
}

// ToEvent decodes the envelope back into a typed event.
func (r EventRecord) ToEvent() (DebitCardEvent, error) {
	var (
		event DebitCardEvent
		err   error
	)
	switch r.Type {
	case EventLimitAssigned:
		var e LimitAssigned
		err = r.decode(&e)
		event = e
	case EventTransactionAccepted:
		var e TransactionAccepted
		err = r.decode(&e)
		event = e
	case EventTransactionRejected:
		var e TransactionRejected
		err = r.decode(&e)
		event = e
	case EventCardBlocked:
		event = CardBlocked{}
	case EventCardBlockedRejected:
		event = CardBlockedRejected{}
	case EventCardUnblocked:
		event = CardUnblocked{}
	default:
		return nil, fmt.Errorf("unknown debit card event type %q", r.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s event: %w", r.Type, err)
	}
	return event, nil
}

func (r EventRecord) decode(target any) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("empty event body")
	}
	return json.Unmarshal(r.Body, target)
}
