package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/debit_card_app/internal/apperrors"
	"github.com/SscSPs/debit_card_app/internal/core/domain"
	portsevents "github.com/SscSPs/debit_card_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/debit_card_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/debit_card_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// debitCardServiceImpl implements the DebitCardSvcFacade interface
type debitCardServiceImpl struct {
	BaseService
	repo      portsrepo.DebitCardRepositoryFacade
	publisher portsevents.EventPublisher
	now       func() time.Time
}

// ServiceOption is a functional option for configuring the debit card service
type ServiceOption func(*debitCardServiceImpl)

// WithEventPublisher publishes committed events after every successful save.
func WithEventPublisher(publisher portsevents.EventPublisher) ServiceOption {
	return func(s *debitCardServiceImpl) {
		s.publisher = publisher
	}
}

// WithClock overrides the clock used to stamp published events.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *debitCardServiceImpl) {
		s.now = now
	}
}

// NewDebitCardService creates a new debit card service with the provided options
func NewDebitCardService(repo portsrepo.DebitCardRepositoryFacade, options ...ServiceOption) portssvc.DebitCardSvcFacade {
	svc := &debitCardServiceImpl{
		repo: repo,
		now:  time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure debitCardServiceImpl implements the DebitCardSvcFacade interface
var _ portssvc.DebitCardSvcFacade = (*debitCardServiceImpl)(nil)

func (s *debitCardServiceImpl) GetSummary(ctx context.Context, cardUUID uuid.UUID) (*domain.DebitCardSummary, error) {
	summary, err := s.repo.GetSummaryByUUID(ctx, cardUUID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get debit card summary",
				slog.String("card_uuid", cardUUID.String()))
		}
		return nil, err
	}
	return summary, nil
}

func (s *debitCardServiceImpl) CreateNewCard(ctx context.Context) (uuid.UUID, error) {
	card := domain.NewDebitCard()

	if _, err := s.repo.Save(ctx, card); err != nil {
		s.LogError(ctx, err, "Failed to save new debit card",
			slog.String("card_uuid", card.ID().String()))
		return uuid.Nil, fmt.Errorf("failed to create debit card: %w", err)
	}

	s.LogInfo(ctx, "Debit card created", slog.String("card_uuid", card.ID().String()))
	return card.ID(), nil
}

func (s *debitCardServiceImpl) AssignLimitToCard(ctx context.Context, cmd domain.AssignLimitCommand) (domain.OperationResult[domain.AssignLimitCommand], error) {
	return runCardOperation(ctx, s, cmd, "assign_limit",
		func(card domain.DebitCard) domain.DebitCard { return card.AssignLimit(cmd.Limit) },
		assignLimitOutcome,
	)
}

func (s *debitCardServiceImpl) ChargeCard(ctx context.Context, cmd domain.ChargeCardCommand) (domain.OperationResult[domain.ChargeCardCommand], error) {
	return runCardOperation(ctx, s, cmd, "charge",
		func(card domain.DebitCard) domain.DebitCard {
			return card.ApplyTransaction(domain.ChargeTransaction(cmd.TransactionUUID, cmd.Amount))
		},
		transactionOutcome(domain.CannotChargeError{}),
	)
}

func (s *debitCardServiceImpl) PayOffCard(ctx context.Context, cmd domain.PayOffCardCommand) (domain.OperationResult[domain.PayOffCardCommand], error) {
	return runCardOperation(ctx, s, cmd, "pay_off",
		func(card domain.DebitCard) domain.DebitCard {
			return card.ApplyTransaction(domain.PayOffTransaction(cmd.TransactionUUID, cmd.Amount))
		},
		transactionOutcome(domain.CannotPayOffError{}),
	)
}

func (s *debitCardServiceImpl) BlockCard(ctx context.Context, cmd domain.BlockCardCommand) (domain.OperationResult[domain.BlockCardCommand], error) {
	return runCardOperation(ctx, s, cmd, "block",
		func(card domain.DebitCard) domain.DebitCard { return card.Block() },
		blockOutcome,
	)
}

func (s *debitCardServiceImpl) UnblockCard(ctx context.Context, cmd domain.UnblockCardCommand) (domain.OperationResult[domain.UnblockCardCommand], error) {
	return runCardOperation(ctx, s, cmd, "unblock",
		func(card domain.DebitCard) domain.DebitCard { return card.Unblock() },
		unblockOutcome,
	)
}

// outcomeFunc maps the events emitted by one command to its failure, or nil on success.
type outcomeFunc func(emitted []domain.DebitCardEvent) domain.DebitCardError

// runCardOperation is the load, apply, classify, save sequence shared by every command.
// It is a function rather than a method because it is generic over the command type.
func runCardOperation[C domain.CardCommand](
	ctx context.Context,
	s *debitCardServiceImpl,
	cmd C,
	operation string,
	apply func(domain.DebitCard) domain.DebitCard,
	outcome outcomeFunc,
) (domain.OperationResult[C], error) {
	logAttrs := []any{
		slog.String("operation", operation),
		slog.String("card_uuid", cmd.CardID().String()),
	}

	if err := cmd.Validate(); err != nil {
		s.LogDebug(ctx, "Rejected invalid debit card command", append(logAttrs, slog.String("error", err.Error()))...)
		return domain.OperationResult[C]{}, err
	}

	card, err := s.repo.GetByUUID(ctx, cmd.CardID())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Debit card not found", logAttrs...)
			return domain.Failed[C](cmd, domain.CardNotFoundError{}), nil
		}
		s.LogError(ctx, err, "Failed to load debit card", logAttrs...)
		return domain.OperationResult[C]{}, fmt.Errorf("failed to load debit card %s: %w", cmd.CardID(), err)
	}

	changed := apply(card)
	emitted := changed.PendingChanges()[len(card.PendingChanges()):]
	failure := outcome(emitted)

	// rejections are domain facts and are persisted like any other event;
	// a command that emitted nothing has nothing to write
	if len(emitted) > 0 {
		saved, err := s.repo.Save(ctx, changed)
		if err != nil {
			s.LogError(ctx, err, "Failed to save debit card", append(logAttrs, slog.Int64("version", changed.Version()))...)
			return domain.OperationResult[C]{}, fmt.Errorf("failed to save debit card %s: %w", cmd.CardID(), err)
		}
		s.publishCommitted(ctx, saved, emitted)
	}

	if failure != nil {
		s.LogInfo(ctx, "Debit card command rejected", append(logAttrs, slog.String("reason", failure.Name()))...)
		return domain.Failed[C](cmd, failure), nil
	}
	s.LogInfo(ctx, "Debit card command applied", logAttrs...)
	return domain.Succeeded[C](cmd), nil
}

// publishCommitted forwards saved events to the bus. The save is already durable, so a
// publish failure is logged and does not change the command outcome.
func (s *debitCardServiceImpl) publishCommitted(ctx context.Context, saved domain.DebitCard, emitted []domain.DebitCardEvent) {
	if s.publisher == nil {
		return
	}
	occurredAt := s.now().UTC()
	committed := make([]portsevents.CommittedEvent, 0, len(emitted))
	for _, event := range emitted {
		record, err := domain.ToEventRecord(event)
		if err != nil {
			s.LogError(ctx, err, "Failed to encode committed event", slog.String("card_uuid", saved.ID().String()))
			return
		}
		committed = append(committed, portsevents.CommittedEvent{
			CardUUID:   saved.ID(),
			Version:    saved.Version(),
			Event:      record,
			OccurredAt: occurredAt,
		})
	}
	if err := s.publisher.Publish(ctx, committed); err != nil {
		s.LogWarn(ctx, "Failed to publish committed events",
			slog.String("error", err.Error()),
			slog.String("card_uuid", saved.ID().String()),
			slog.Int64("version", saved.Version()))
	}
}

func lastEvent(emitted []domain.DebitCardEvent) domain.DebitCardEvent {
	if len(emitted) == 0 {
		return nil
	}
	return emitted[len(emitted)-1]
}

// assignLimitOutcome: the limit is write-once, so a silent no-op means it was already set.
func assignLimitOutcome(emitted []domain.DebitCardEvent) domain.DebitCardError {
	switch lastEvent(emitted).(type) {
	case domain.LimitAssigned:
		return nil
	default:
		return domain.LimitAlreadyAssigned{}
	}
}

func transactionOutcome(rejected domain.DebitCardError) outcomeFunc {
	return func(emitted []domain.DebitCardEvent) domain.DebitCardError {
		switch lastEvent(emitted).(type) {
		case domain.TransactionAccepted:
			return nil
		default:
			return rejected
		}
	}
}

func blockOutcome(emitted []domain.DebitCardEvent) domain.DebitCardError {
	switch lastEvent(emitted).(type) {
	case domain.CardBlocked:
		return nil
	default:
		return domain.CannotBlockCardError{}
	}
}

// unblockOutcome: unblocking an unblocked card is an idempotent success.
func unblockOutcome([]domain.DebitCardEvent) domain.DebitCardError {
	return nil
}
