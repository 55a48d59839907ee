package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/debit_card_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRecord_PreservesDecimalPrecision(t *testing.T) {
	event := domain.TransactionAccepted{TransactionID: uuid.New(), Value: bd("-0.1000000000000000000001")}

	record, err := domain.ToEventRecord(event)
	require.NoError(t, err)
	assert.Equal(t, domain.EventTransactionAccepted, record.Type)

	decoded, err := record.ToEvent()
	require.NoError(t, err)
	accepted, ok := decoded.(domain.TransactionAccepted)
	require.True(t, ok)
	assert.Equal(t, event.TransactionID, accepted.TransactionID)
	assert.True(t, event.Value.Equal(accepted.Value))
}

func TestEventRecord_UnknownType(t *testing.T) {
	_, err := domain.EventRecord{Type: "CardStolen", Body: json.RawMessage(`{}`)}.ToEvent()

	assert.ErrorContains(t, err, "unknown debit card event type")
}

func TestEventRecord_MissingBody(t *testing.T) {
	_, err := domain.EventRecord{Type: domain.EventLimitAssigned}.ToEvent()

	assert.Error(t, err)
}

func TestDebitCardEvent_Rejection(t *testing.T) {
	assert.True(t, domain.TransactionRejected{}.Rejection())
	assert.True(t, domain.CardBlockedRejected{}.Rejection())
	assert.False(t, domain.TransactionAccepted{}.Rejection())
	assert.False(t, domain.LimitAssigned{}.Rejection())
	assert.False(t, domain.CardBlocked{}.Rejection())
	assert.False(t, domain.CardUnblocked{}.Rejection())
}
