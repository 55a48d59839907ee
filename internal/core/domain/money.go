package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is the arbitrary-precision decimal used for balances, limits and amounts.
type Money = decimal.Decimal

// ZeroMoney is the starting balance of every card.
var ZeroMoney = decimal.Zero

// ParseMoney parses an exact decimal string such as "-20" or "15.005".
func ParseMoney(value string) (Money, error) {
	m, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid money value %q: %w", value, err)
	}
	return m, nil
}

// NewMoneyFromInt creates a Money from a whole number.
func NewMoneyFromInt(value int64) Money {
	return decimal.NewFromInt(value)
}

// copyMoney returns a pointer to a private copy so aggregate values never share state.
func copyMoney(m *Money) *Money {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
