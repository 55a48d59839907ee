package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/debit_card_app/internal/apperrors"
	"github.com/SscSPs/debit_card_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debit_card_app/internal/core/ports/repositories"
	"github.com/SscSPs/debit_card_app/internal/models"
	"github.com/SscSPs/debit_card_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PgxDebitCardRepository stores a snapshot row per card in debit_cards and appends
// every saved event to debit_card_events. Both writes share one transaction.
type PgxDebitCardRepository struct {
	BaseRepository
}

// NewPgxDebitCardRepository creates a repository over pool.
func NewPgxDebitCardRepository(pool PgxPool) *PgxDebitCardRepository {
	return &PgxDebitCardRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxDebitCardRepository implements portsrepo.DebitCardRepositoryFacade
var _ portsrepo.DebitCardRepositoryFacade = (*PgxDebitCardRepository)(nil)

func (r *PgxDebitCardRepository) GetByUUID(ctx context.Context, cardUUID uuid.UUID) (domain.DebitCard, error) {
	query := `
		SELECT card_id, version, balance, card_limit, blocked, created_at, updated_at
		FROM debit_cards
		WHERE card_id = $1;
	`
	var row models.DebitCard
	err := r.Pool.QueryRow(ctx, query, cardUUID).Scan(
		&row.CardID,
		&row.Version,
		&row.Balance,
		&row.CardLimit,
		&row.Blocked,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DebitCard{}, apperrors.ErrNotFound
		}
		return domain.DebitCard{}, fmt.Errorf("failed to find debit card %s: %w", cardUUID, err)
	}

	return mapping.ToDomainDebitCard(row), nil
}

func (r *PgxDebitCardRepository) GetSummaryByUUID(ctx context.Context, cardUUID uuid.UUID) (*domain.DebitCardSummary, error) {
	card, err := r.GetByUUID(ctx, cardUUID)
	if err != nil {
		return nil, err
	}
	summary := card.ToSummary()
	return &summary, nil
}

func (r *PgxDebitCardRepository) Save(ctx context.Context, card domain.DebitCard) (domain.DebitCard, error) {
	nextVersion := card.Version() + 1
	row := mapping.ToModelDebitCard(card, nextVersion)
	eventRows, err := mapping.ToModelDebitCardEvents(card, nextVersion)
	if err != nil {
		return domain.DebitCard{}, err
	}

	err = r.InTx(ctx, func(tx pgx.Tx) error {
		if card.IsNew() {
			if err := r.insertCard(ctx, tx, row); err != nil {
				return err
			}
		} else if err := r.updateCard(ctx, tx, row, card.Version()); err != nil {
			return err
		}
		return r.appendEvents(ctx, tx, eventRows)
	})
	if err != nil {
		return domain.DebitCard{}, err
	}
	return card.MarkSaved(), nil
}

func (r *PgxDebitCardRepository) insertCard(ctx context.Context, tx pgx.Tx, row models.DebitCard) error {
	query := `
		INSERT INTO debit_cards (card_id, version, balance, card_limit, blocked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW());
	`
	_, err := tx.Exec(ctx, query, row.CardID, row.Version, row.Balance, row.CardLimit, row.Blocked)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: debit card %s already exists", apperrors.ErrStaleWrite, row.CardID)
		}
		return fmt.Errorf("failed to insert debit card %s: %w", row.CardID, err)
	}
	return nil
}

// updateCard writes row only if the stored version is still expectedVersion.
func (r *PgxDebitCardRepository) updateCard(ctx context.Context, tx pgx.Tx, row models.DebitCard, expectedVersion int64) error {
	query := `
		UPDATE debit_cards
		SET version = $2, balance = $3, card_limit = $4, blocked = $5, updated_at = NOW()
		WHERE card_id = $1 AND version = $6;
	`
	tag, err := tx.Exec(ctx, query, row.CardID, row.Version, row.Balance, row.CardLimit, row.Blocked, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update debit card %s: %w", row.CardID, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM debit_cards WHERE card_id = $1);`, row.CardID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check debit card %s: %w", row.CardID, err)
	}
	if !exists {
		return fmt.Errorf("%w: debit card %s", apperrors.ErrNotFound, row.CardID)
	}
	return fmt.Errorf("%w: debit card %s is no longer at version %d", apperrors.ErrStaleWrite, row.CardID, expectedVersion)
}

func (r *PgxDebitCardRepository) appendEvents(ctx context.Context, tx pgx.Tx, eventRows []models.DebitCardEvent) error {
	query := `
		INSERT INTO debit_card_events (card_id, version, seq, event_type, body, recorded_at)
		VALUES ($1, $2, $3, $4, $5, NOW());
	`
	for _, row := range eventRows {
		_, err := tx.Exec(ctx, query, row.CardID, row.Version, row.Seq, row.EventType, string(row.Body))
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: events of debit card %s at version %d already exist", apperrors.ErrStaleWrite, row.CardID, row.Version)
			}
			return fmt.Errorf("failed to append %s event of debit card %s: %w", row.EventType, row.CardID, err)
		}
	}
	return nil
}
