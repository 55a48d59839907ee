package cache

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/debit_card_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debit_card_app/internal/core/ports/repositories"
	"github.com/SscSPs/debit_card_app/internal/middleware"
	"github.com/google/uuid"
)

// CachedDebitCardRepository serves summaries from a SummaryCache and refreshes it after
// every successful save. Aggregate loads and saves always go to the wrapped repository.
type CachedDebitCardRepository struct {
	inner portsrepo.DebitCardRepositoryFacade
	cache SummaryCache
}

// NewCachedDebitCardRepository wraps inner with a summary cache.
func NewCachedDebitCardRepository(inner portsrepo.DebitCardRepositoryFacade, cache SummaryCache) *CachedDebitCardRepository {
	return &CachedDebitCardRepository{inner: inner, cache: cache}
}

var _ portsrepo.DebitCardRepositoryFacade = (*CachedDebitCardRepository)(nil)

func (r *CachedDebitCardRepository) GetByUUID(ctx context.Context, cardUUID uuid.UUID) (domain.DebitCard, error) {
	return r.inner.GetByUUID(ctx, cardUUID)
}

func (r *CachedDebitCardRepository) GetSummaryByUUID(ctx context.Context, cardUUID uuid.UUID) (*domain.DebitCardSummary, error) {
	summary, err := r.cache.Get(ctx, cardUUID)
	if err == nil {
		return summary, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		middleware.GetLoggerFromCtx(ctx).Warn("Summary cache read failed",
			slog.String("card_uuid", cardUUID.String()),
			slog.String("error", err.Error()))
	}

	card, err := r.inner.GetByUUID(ctx, cardUUID)
	if err != nil {
		return nil, err
	}
	fresh := card.ToSummary()
	r.refresh(ctx, card.Version(), fresh)
	return &fresh, nil
}

func (r *CachedDebitCardRepository) Save(ctx context.Context, card domain.DebitCard) (domain.DebitCard, error) {
	saved, err := r.inner.Save(ctx, card)
	if err != nil {
		return domain.DebitCard{}, err
	}
	r.refresh(ctx, saved.Version(), saved.ToSummary())
	return saved, nil
}

// refresh is best effort; the next read falls back to the repository on failure.
func (r *CachedDebitCardRepository) refresh(ctx context.Context, version int64, summary domain.DebitCardSummary) {
	if err := r.cache.Put(ctx, version, summary); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Summary cache write failed",
			slog.String("card_uuid", summary.CardUUID.String()),
			slog.Int64("version", version),
			slog.String("error", err.Error()))
	}
}
