package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/debit_card_app/internal/apperrors"
	"github.com/SscSPs/debit_card_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debit_card_app/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// versionedEvents is the stored form of one card: its committed event log and version.
type versionedEvents struct {
	version int64
	events  []domain.DebitCardEvent
}

// DebitCardRepository is an event-sourced in-memory store. Cards are rebuilt from their
// event log on every read and saves are compare-and-swap on the version.
type DebitCardRepository struct {
	mu    sync.RWMutex
	cards map[uuid.UUID]versionedEvents
}

// NewDebitCardRepository creates an empty in-memory repository.
func NewDebitCardRepository() *DebitCardRepository {
	return &DebitCardRepository{cards: make(map[uuid.UUID]versionedEvents)}
}

var _ portsrepo.DebitCardRepositoryFacade = (*DebitCardRepository)(nil)

// Clean removes every stored card.
func (r *DebitCardRepository) Clean() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards = make(map[uuid.UUID]versionedEvents)
}

func (r *DebitCardRepository) GetByUUID(_ context.Context, cardUUID uuid.UUID) (domain.DebitCard, error) {
	r.mu.RLock()
	stored, ok := r.cards[cardUUID]
	r.mu.RUnlock()
	if !ok {
		return domain.DebitCard{}, apperrors.ErrNotFound
	}
	card, err := domain.DebitCardFromEvents(cardUUID, stored.version, stored.events)
	if err != nil {
		return domain.DebitCard{}, fmt.Errorf("failed to rebuild debit card %s: %w", cardUUID, err)
	}
	return card, nil
}

func (r *DebitCardRepository) GetSummaryByUUID(ctx context.Context, cardUUID uuid.UUID) (*domain.DebitCardSummary, error) {
	card, err := r.GetByUUID(ctx, cardUUID)
	if err != nil {
		return nil, err
	}
	summary := card.ToSummary()
	return &summary, nil
}

func (r *DebitCardRepository) Save(_ context.Context, card domain.DebitCard) (domain.DebitCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.cards[card.ID()]
	switch {
	case card.IsNew() && exists:
		return domain.DebitCard{}, fmt.Errorf("%w: debit card %s already exists", apperrors.ErrStaleWrite, card.ID())
	case !card.IsNew() && !exists:
		return domain.DebitCard{}, fmt.Errorf("debit card %s: %w", card.ID(), apperrors.ErrNotFound)
	case exists && stored.version != card.Version():
		return domain.DebitCard{}, fmt.Errorf("%w: debit card %s is at version %d, save was based on %d",
			apperrors.ErrStaleWrite, card.ID(), stored.version, card.Version())
	}

	// the stored slice is never appended to in place, so earlier readers keep a stable view
	events := slices.Concat(stored.events, card.PendingChanges())
	r.cards[card.ID()] = versionedEvents{version: card.Version() + 1, events: events}

	return card.MarkSaved(), nil
}
