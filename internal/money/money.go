// Package money implements currency arithmetic for invoice computation.
// All derived monetary fields pass through Round2 exactly once; raw
// subtotals are kept at full decimal precision until the tax step so the
// result is stable to the cent regardless of how the inputs were
// represented as floats.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Round2 rounds a currency amount to 2 decimal places, half away from
// zero on the cent boundary. Amounts are non-negative in practice, so
// this is round-half-up.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Extend returns the exact line extension quantity x rate without
// floating-point drift.
func Extend(qty, rate float64) float64 {
	return decimal.NewFromFloat(qty).Mul(decimal.NewFromFloat(rate)).InexactFloat64()
}

// Sum returns the exact decimal sum of the given amounts.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.InexactFloat64()
}

// Tax computes round2(max(subtotal-discount, 0) * rate / 100). Tax is
// charged on the discounted base and never goes negative. Rounding
// happens here and only here; rounding the subtotal first can move the
// final total by a cent.
func Tax(subtotal, discount, rate float64) float64 {
	base := decimal.NewFromFloat(subtotal).Sub(decimal.NewFromFloat(discount))
	if base.IsNegative() {
		base = decimal.Zero
	}
	return base.Mul(decimal.NewFromFloat(rate)).Div(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}

// Total computes round2(subtotal - discount + tax).
func Total(subtotal, discount, tax float64) float64 {
	return decimal.NewFromFloat(subtotal).
		Sub(decimal.NewFromFloat(discount)).
		Add(decimal.NewFromFloat(tax)).
		Round(2).InexactFloat64()
}

// Format renders an amount with its currency code, e.g. "CAD 226.00".
func Format(amount float64, currency string) string {
	return fmt.Sprintf("%s %s", currency, decimal.NewFromFloat(amount).StringFixed(2))
}
