package domain

import (
	"fmt"

	"github.com/SscSPs/debit_card_app/internal/apperrors"
	"github.com/google/uuid"
)

// CardCommand is implemented by every command addressed to a single debit card.
type CardCommand interface {
	CardID() uuid.UUID
	Validate() error
}

// AssignLimitCommand sets the card's write-once limit.
type AssignLimitCommand struct {
	CardUUID uuid.UUID `json:"cardUUID"`
	Limit    Money     `json:"limit"`
}

// ChargeCardCommand takes Amount from the card.
type ChargeCardCommand struct {
	CardUUID        uuid.UUID `json:"cardUUID"`
	TransactionUUID uuid.UUID `json:"transactionUUID"`
	Amount          Money     `json:"amount"` // magnitude, must be positive
}

// PayOffCardCommand returns Amount to the card.
type PayOffCardCommand struct {
	CardUUID        uuid.UUID `json:"cardUUID"`
	TransactionUUID uuid.UUID `json:"transactionUUID"`
	Amount          Money     `json:"amount"` // magnitude, must be positive
}

// BlockCardCommand blocks the card.
type BlockCardCommand struct {
	CardUUID uuid.UUID `json:"cardUUID"`
}

// UnblockCardCommand unblocks the card.
type UnblockCardCommand struct {
	CardUUID uuid.UUID `json:"cardUUID"`
}

func (c AssignLimitCommand) CardID() uuid.UUID { return c.CardUUID }
func (c ChargeCardCommand) CardID() uuid.UUID  { return c.CardUUID }
func (c PayOffCardCommand) CardID() uuid.UUID  { return c.CardUUID }
func (c BlockCardCommand) CardID() uuid.UUID   { return c.CardUUID }
func (c UnblockCardCommand) CardID() uuid.UUID { return c.CardUUID }

func (c AssignLimitCommand) Validate() error {
	return validateCardID(c.CardUUID)
}

func (c ChargeCardCommand) Validate() error {
	return validateTransaction(c.CardUUID, c.TransactionUUID, c.Amount)
}

func (c PayOffCardCommand) Validate() error {
	return validateTransaction(c.CardUUID, c.TransactionUUID, c.Amount)
}

func (c BlockCardCommand) Validate() error {
	return validateCardID(c.CardUUID)
}

func (c UnblockCardCommand) Validate() error {
	return validateCardID(c.CardUUID)
}

func validateCardID(id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: card UUID is required", apperrors.ErrValidation)
	}
	return nil
}

func validateTransaction(cardID, transactionID uuid.UUID, amount Money) error {
	if err := validateCardID(cardID); err != nil {
		return err
	}
	if transactionID == uuid.Nil {
		return fmt.Errorf("%w: transaction UUID is required", apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	return nil
}
