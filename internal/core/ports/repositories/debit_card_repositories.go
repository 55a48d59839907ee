package repositories

import (
	"context"

	"github.com/SscSPs/debit_card_app/internal/core/domain"
	"github.com/google/uuid"
)

// DebitCardReader defines read operations for debit cards.
type DebitCardReader interface {
	// GetByUUID loads the full aggregate, including the version it was stored with.
	// Returns apperrors.ErrNotFound when the card does not exist.
	GetByUUID(ctx context.Context, cardUUID uuid.UUID) (domain.DebitCard, error)

	// GetSummaryByUUID returns the projection of the last successfully saved state.
	// Returns apperrors.ErrNotFound when the card does not exist.
	GetSummaryByUUID(ctx context.Context, cardUUID uuid.UUID) (*domain.DebitCardSummary, error)
}

// DebitCardWriter defines write operations for debit cards.
type DebitCardWriter interface {
	// Save persists the card only if the stored version still equals card.Version().
	// A card with version 0 is inserted. On success the returned card has its pending
	// changes flushed and its version incremented by one. On a version mismatch the
	// store is untouched and apperrors.ErrStaleWrite is returned.
	Save(ctx context.Context, card domain.DebitCard) (domain.DebitCard, error)
}

// DebitCardRepositoryFacade combines all debit card repository interfaces.
type DebitCardRepositoryFacade interface {
	DebitCardReader
	DebitCardWriter
}
