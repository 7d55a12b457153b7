package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// maxCents is the largest amount, in cents, that fits the store's integer column.
var maxCents = decimal.NewFromInt(math.MaxInt64)

// ParseAmount parses a user-entered amount such as "12.50" or "12,50".
// The value is rounded half away from zero to cents. Negative values and
// values too large to hold as integer cents are rejected.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	d = d.Round(2)
	if d.Shift(2).GreaterThan(maxCents) {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, s)
	}
	return d.InexactFloat64(), nil
}

// ToCents converts an amount to integer cents, rounding half away from zero.
// Non-finite amounts and amounts outside the int64 range are rejected.
func ToCents(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	cents := decimal.NewFromFloat(amount).Round(2).Shift(2)
	if cents.Abs().GreaterThan(maxCents) {
		return 0, fmt.Errorf("%w: %v is too large", ErrInvalidAmount, amount)
	}
	return cents.IntPart(), nil
}

// FromCents converts integer cents back to an amount.
func FromCents(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}
