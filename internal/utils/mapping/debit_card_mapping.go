package mapping

import (
	"fmt"

	"github.com/SscSPs/debit_card_app/internal/core/domain"
	"github.com/SscSPs/debit_card_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelDebitCard converts a domain DebitCard to the row stored for version.
func ToModelDebitCard(d domain.DebitCard, version int64) models.DebitCard {
	m := models.DebitCard{
		CardID:  d.ID(),
		Version: version,
		Balance: d.Balance(),
		Blocked: d.Blocked(),
	}
	if d.HasLimit() {
		m.CardLimit = decimal.NewNullDecimal(*d.Limit())
	}
	return m
}

// ToDomainDebitCard converts a stored row back to a domain DebitCard
func ToDomainDebitCard(m models.DebitCard) domain.DebitCard {
	var limit *domain.Money
	if m.CardLimit.Valid {
		limit = &m.CardLimit.Decimal
	}
	return domain.RestoreDebitCard(m.CardID, m.Version, m.Balance, limit, m.Blocked)
}

// ToModelDebitCardEvents converts the pending changes of d to event rows recorded at version.
func ToModelDebitCardEvents(d domain.DebitCard, version int64) ([]models.DebitCardEvent, error) {
	pending := d.PendingChanges()
	rows := make([]models.DebitCardEvent, len(pending))
	for i, event := range pending {
		record, err := domain.ToEventRecord(event)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s event of debit card %s: %w", event.Type(), d.ID(), err)
		}
		rows[i] = models.DebitCardEvent{
			CardID:    d.ID(),
			Version:   version,
			Seq:       i,
			EventType: string(record.Type),
			Body:      record.Body,
		}
	}
	return rows, nil
}
