package domain

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// TransactionKind tells whether a transaction takes money from the card or returns it.
type TransactionKind string

const (
	Charge TransactionKind = "CHARGE"
	PayOff TransactionKind = "PAY_OFF"
)

// TransactionCommand is a transaction ready to be applied to a card.
// Amount is a magnitude; the kind decides the sign of the resulting delta.
type TransactionCommand struct {
	Kind          TransactionKind
	TransactionID uuid.UUID
	Amount        Money
}

// ChargeTransaction builds a charge of the given magnitude.
func ChargeTransaction(transactionID uuid.UUID, amount Money) TransactionCommand {
	return TransactionCommand{Kind: Charge, TransactionID: transactionID, Amount: amount}
}

// PayOffTransaction builds a pay-off of the given magnitude.
func PayOffTransaction(transactionID uuid.UUID, amount Money) TransactionCommand {
	return TransactionCommand{Kind: PayOff, TransactionID: transactionID, Amount: amount}
}

// Delta returns the signed balance change: negative for a charge, positive for a pay-off.
func (t TransactionCommand) Delta() Money {
	if t.Kind == Charge {
		return t.Amount.Abs().Neg()
	}
	return t.Amount.Abs()
}

// DebitCard is the account aggregate. It is a value: every command returns a new
// DebitCard carrying the extended pending event log and leaves the receiver untouched.
type DebitCard struct {
	id      uuid.UUID
	version int64
	pending []DebitCardEvent
	limit   *Money
	balance Money
	blocked bool
}

// NewDebitCard creates an unsaved card with a fresh random identifier.
func NewDebitCard() DebitCard {
	return NewDebitCardWithID(uuid.New())
}

// NewDebitCardWithID creates an unsaved card: zero balance, no limit, unblocked, version 0.
func NewDebitCardWithID(id uuid.UUID) DebitCard {
	return DebitCard{id: id, balance: ZeroMoney}
}

// RestoreDebitCard rebuilds a card from a persisted snapshot.
func RestoreDebitCard(id uuid.UUID, version int64, balance Money, limit *Money, blocked bool) DebitCard {
	return DebitCard{
		id:      id,
		version: version,
		limit:   copyMoney(limit),
		balance: balance,
		blocked: blocked,
	}
}

// DebitCardFromEvents replays a committed event log on top of a new card.
func DebitCardFromEvents(id uuid.UUID, version int64, events []DebitCardEvent) (DebitCard, error) {
	card := NewDebitCardWithID(id)
	card.version = version
	for i, event := range events {
		if event == nil {
			return DebitCard{}, fmt.Errorf("nil event at position %d for card %s", i, id)
		}
		card = card.apply(event)
	}
	return card.FlushChanges(), nil
}

func (c DebitCard) ID() uuid.UUID  { return c.id }
func (c DebitCard) Version() int64 { return c.version }
func (c DebitCard) Balance() Money { return c.balance }
func (c DebitCard) Blocked() bool  { return c.blocked }
func (c DebitCard) HasLimit() bool { return c.limit != nil }
func (c DebitCard) Limit() *Money  { return copyMoney(c.limit) }
func (c DebitCard) IsNew() bool    { return c.version == 0 }

// PendingChanges returns the events produced since the card was loaded, in emission order.
func (c DebitCard) PendingChanges() []DebitCardEvent {
	return slices.Clone(c.pending)
}

// FlushChanges returns the same state with an empty pending log.
func (c DebitCard) FlushChanges() DebitCard {
	c.pending = nil
	return c
}

// MarkSaved is called by repositories once a save is confirmed: pending is flushed and
// the version advances by exactly one.
func (c DebitCard) MarkSaved() DebitCard {
	c = c.FlushChanges()
	c.version++
	return c
}

// AssignLimit sets the write-once limit. A card that already has a limit is returned unchanged.
func (c DebitCard) AssignLimit(limit Money) DebitCard {
	if c.limit != nil {
		return c
	}
	return c.apply(LimitAssigned{Limit: limit})
}

// ApplyTransaction accepts or rejects a charge or pay-off.
func (c DebitCard) ApplyTransaction(tx TransactionCommand) DebitCard {
	delta := tx.Delta()
	if tx.Kind == Charge && !c.canCharge(delta) {
		return c.apply(TransactionRejected{TransactionID: tx.TransactionID, Value: delta})
	}
	return c.apply(TransactionAccepted{TransactionID: tx.TransactionID, Value: delta})
}

// Charge is shorthand for ApplyTransaction(ChargeTransaction(...)).
func (c DebitCard) Charge(transactionID uuid.UUID, amount Money) DebitCard {
	return c.ApplyTransaction(ChargeTransaction(transactionID, amount))
}

// PayOff is shorthand for ApplyTransaction(PayOffTransaction(...)).
func (c DebitCard) PayOff(transactionID uuid.UUID, amount Money) DebitCard {
	return c.ApplyTransaction(PayOffTransaction(transactionID, amount))
}

// Block blocks the card, or records a rejection if it is already blocked.
func (c DebitCard) Block() DebitCard {
	if c.blocked {
		return c.apply(CardBlockedRejected{})
	}
	return c.apply(CardBlocked{})
}

// Unblock unblocks a blocked card. Unblocking an unblocked card emits nothing.
func (c DebitCard) Unblock() DebitCard {
	if !c.blocked {
		return c
	}
	return c.apply(CardUnblocked{})
}

// ToSummary derives the read projection.
func (c DebitCard) ToSummary() DebitCardSummary {
	return DebitCardSummary{
		CardUUID: c.id,
		Balance:  c.balance,
		Limit:    copyMoney(c.limit),
		Blocked:  c.blocked,
	}
}

// canCharge checks a negative delta against the blocked flag and the limit.
// A blocked card never consults the limit.
func (c DebitCard) canCharge(delta Money) bool {
	if c.blocked {
		return false
	}
	if c.limit == nil {
		return true
	}
	return !c.balance.Add(delta).LessThan(*c.limit)
}

// apply mutates state for one event and appends it to a private copy of pending.
func (c DebitCard) apply(event DebitCardEvent) DebitCard {
	switch e := event.(type) {
	case LimitAssigned:
		limit := e.Limit
		c.limit = &limit
	case TransactionAccepted:
		c.balance = c.balance.Add(e.Value)
	case TransactionRejected, CardBlockedRejected:
		// state unchanged
	case CardBlocked:
		c.blocked = true
	case CardUnblocked:
		c.blocked = false
	}
	pending := make([]DebitCardEvent, len(c.pending), len(c.pending)+1)
	copy(pending, c.pending)
	c.pending = append(pending, event)
	return c
}
