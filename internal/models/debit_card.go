package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebitCard is a row of the debit_cards table: the latest state of a card.
type DebitCard struct {
	CardID    uuid.UUID           `json:"cardID"`  // Primary Key
	Version   int64               `json:"version"` // incremented once per successful save
	Balance   decimal.Decimal     `json:"balance"`
	CardLimit decimal.NullDecimal `json:"cardLimit"` // NULL until a limit is assigned
	Blocked   bool                `json:"blocked"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// DebitCardEvent is a row of the append-only debit_card_events table.
type DebitCardEvent struct {
	CardID     uuid.UUID `json:"cardID"`
	Version    int64     `json:"version"` // version of the save that recorded the event
	Seq        int       `json:"seq"`     // position within that save
	EventType  string    `json:"eventType"`
	Body       []byte    `json:"body"` // JSONB
	RecordedAt time.Time `json:"recordedAt"`
}
