package domain

import "github.com/google/uuid"

// DebitCardSummary is the read-only projection of a card's public state.
// It is always derived from the aggregate and never stored on its own.
type DebitCardSummary struct {
	CardUUID uuid.UUID `json:"cardUUID"`
	Balance  Money     `json:"balance"`
	Limit    *Money    `json:"limit"` // null when no limit has been assigned
	Blocked  bool      `json:"blocked"`
}

// Equal compares two summaries numerically, so "15" and "15.00" are the same balance.
func (s DebitCardSummary) Equal(other DebitCardSummary) bool {
	if s.CardUUID != other.CardUUID || s.Blocked != other.Blocked || !s.Balance.Equal(other.Balance) {
		return false
	}
	if s.Limit == nil || other.Limit == nil {
		return s.Limit == nil && other.Limit == nil
	}
	return s.Limit.Equal(*other.Limit)
}
