package services

import (
	"context"

	"github.com/SscSPs/debit_card_app/internal/core/domain"
	"github.com/google/uuid"
)

// DebitCardReaderSvc defines read operations for debit cards.
type DebitCardReaderSvc interface {
	// GetSummary returns the card summary, or apperrors.ErrNotFound.
	GetSummary(ctx context.Context, cardUUID uuid.UUID) (*domain.DebitCardSummary, error)
}

// DebitCardCommandSvc defines the command operations on debit cards.
//
// Rule violations and unknown cards are reported inside the OperationResult. The error
// return is reserved for invalid commands (apperrors.ErrValidation), concurrent
// modification (apperrors.ErrStaleWrite) and infrastructure failures.
type DebitCardCommandSvc interface {
	CreateNewCard(ctx context.Context) (uuid.UUID, error)
	AssignLimitToCard(ctx context.Context, cmd domain.AssignLimitCommand) (domain.OperationResult[domain.AssignLimitCommand], error)
	ChargeCard(ctx context.Context, cmd domain.ChargeCardCommand) (domain.OperationResult[domain.ChargeCardCommand], error)
	PayOffCard(ctx context.Context, cmd domain.PayOffCardCommand) (domain.OperationResult[domain.PayOffCardCommand], error)
	BlockCard(ctx context.Context, cmd domain.BlockCardCommand) (domain.OperationResult[domain.BlockCardCommand], error)
	UnblockCard(ctx context.Context, cmd domain.UnblockCardCommand) (domain.OperationResult[domain.UnblockCardCommand], error)
}

// DebitCardSvcFacade combines all debit card service interfaces.
type DebitCardSvcFacade interface {
	DebitCardReaderSvc
	DebitCardCommandSvc
}
