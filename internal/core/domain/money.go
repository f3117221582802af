package domain

import (
	"fmt"

	"github.com/desafiodev/cnab_import_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Money is a non-negative monetary amount held in integer minor units
// (cents), avoiding floating-point drift. Construct via NewMoneyFromCents or
// NewMoneyFromDecimal.
type Money struct {
	cents int64
}

// NewMoneyFromCents builds a Money from a raw CNAB amount in cents.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, fmt.Errorf("%w: money value cannot be negative", apperrors.ErrValidation)
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromDecimal builds a Money from a major-unit decimal amount.
// Sub-cent precision is truncated, not rounded: 123.456 becomes 12345 cents.
func NewMoneyFromDecimal(value decimal.Decimal) (Money, error) {
	if value.IsNegative() {
		return Money{}, fmt.Errorf("%w: money value cannot be negative", apperrors.ErrValidation)
	}
	cents := value.Mul(decimal.NewFromInt(100)).Truncate(0).IntPart()
	return Money{cents: cents}, nil
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Decimal returns the exact major-unit representation (cents / 100).
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}
