package dto

import (
	"github.com/SscSPs/debit_card_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssignLimitRequest defines the body of PUT /debit-cards/{cardUUID}/limit.
type AssignLimitRequest struct {
	Limit *decimal.Decimal `json:"limit" binding:"required" swaggertype:"string" example:"-20"`
}

// TransactionRequest defines the body of the charge and pay-off endpoints.
type TransactionRequest struct {
	TransactionUUID string           `json:"transactionUUID" binding:"required,uuid"`
	Amount          *decimal.Decimal `json:"amount" binding:"required,positive_decimal" swaggertype:"string" example:"15"`
}

// CreateDebitCardResponse is returned when a card is created.
type CreateDebitCardResponse struct {
	CardUUID uuid.UUID `json:"cardUUID"`
}

// DebitCardSummaryResponse is the public view of a card.
type DebitCardSummaryResponse struct {
	CardUUID uuid.UUID        `json:"cardUUID"`
	Balance  decimal.Decimal  `json:"balance" swaggertype:"string"`
	Limit    *decimal.Decimal `json:"limit" swaggertype:"string"`
	Blocked  bool             `json:"blocked"`
}

// DebitCardErrorResponse reports a rejected command together with the command itself.
type DebitCardErrorResponse struct {
	Type    string `json:"type" example:"CannotChargeError"`
	Command any    `json:"command"`
}

// ToDebitCardSummaryResponse converts a domain summary to its response DTO.
func ToDebitCardSummaryResponse(summary *domain.DebitCardSummary) DebitCardSummaryResponse {
	return DebitCardSummaryResponse{
		CardUUID: summary.CardUUID,
		Balance:  summary.Balance,
		Limit:    summary.Limit,
		Blocked:  summary.Blocked,
	}
}

// ToAssignLimitCommand builds the command for cardUUID from a bound request.
func (r AssignLimitRequest) ToAssignLimitCommand(cardUUID uuid.UUID) domain.AssignLimitCommand {
	return domain.AssignLimitCommand{CardUUID: cardUUID, Limit: *r.Limit}
}

// ToChargeCommand builds a charge command. The request must already be bound.
func (r TransactionRequest) ToChargeCommand(cardUUID uuid.UUID) domain.ChargeCardCommand {
	return domain.ChargeCardCommand{
		CardUUID:        cardUUID,
		TransactionUUID: uuid.MustParse(r.TransactionUUID),
		Amount:          *r.Amount,
	}
}

// ToPayOffCommand builds a pay-off command. The request must already be bound.
func (r TransactionRequest) ToPayOffCommand(cardUUID uuid.UUID) domain.PayOffCardCommand {
	return domain.PayOffCardCommand{
		CardUUID:        cardUUID,
		TransactionUUID: uuid.MustParse(r.TransactionUUID),
		Amount:          *r.Amount,
	}
}
