package pricing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// DefaultDecimalPlaces is the precision used for currency amounts (centavos).
const DefaultDecimalPlaces = 2

// Round rounds value to decimalPlaces decimal places.
//
// Ties are resolved with round-half-to-even (banker's rounding). Whether a value
// sits exactly on a midpoint is judged on the shortest decimal representation of
// the float64, not on its binary expansion:
//
//	Round(2.675, 2) // 2.68
//	Round(2.665, 2) // 2.66
//	Round(2.5, 0)   // 2
//
// Returns ErrInvalidInput for NaN, ±Inf or a negative decimalPlaces.
func Round(value float64, decimalPlaces int) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: cannot round non-finite value %v", ErrInvalidInput, value)
	}
	if decimalPlaces < 0 || decimalPlaces > math.MaxInt32 {
		return 0, fmt.Errorf("%w: decimal places must be non-negative, got %d", ErrInvalidInput, decimalPlaces)
	}

	f, _ := RoundDecimal(decimal.NewFromFloat(value), int32(decimalPlaces)).Float64()
	return f, nil
}

// Round2 rounds value to DefaultDecimalPlaces.
func Round2(value float64) (float64, error) {
	return Round(value, DefaultDecimalPlaces)
}

// RoundDecimal applies the same half-to-even rule to a decimal.
func RoundDecimal(d decimal.Decimal, places int32) decimal.Decimal {
	return d.RoundBank(places)
}

// Format rounds value and renders it with exactly decimalPlaces digits after the point.
func Format(value float64, decimalPlaces int) (string, error) {
	if _, err := Round(value, decimalPlaces); err != nil {
		return "", err
	}
	places := int32(decimalPlaces)
	return RoundDecimal(decimal.NewFromFloat(value), places).StringFixed(places), nil
}
