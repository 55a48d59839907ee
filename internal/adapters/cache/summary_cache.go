// Package cache keeps card summaries in Redis in front of the authoritative repository.
package cache

import (
	"context"
	"errors"

	"github.com/SscSPs/debit_card_app/internal/core/domain"
	"github.com/google/uuid"
)

// ErrCacheMiss is returned by SummaryCache.Get when no entry is cached for a card.
var ErrCacheMiss = errors.New("summary not found in cache")

// SummaryCache stores summaries tagged with the card version they were derived from.
// Put must never replace an entry with an older version.
type SummaryCache interface {
	Get(ctx context.Context, cardUUID uuid.UUID) (*domain.DebitCardSummary, error)
	Put(ctx context.Context, version int64, summary domain.DebitCardSummary) error
}
