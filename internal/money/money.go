// Package money converts between decimal amount strings used at the API edge
// and the int64 minor units (kobo) used everywhere internally. Balances and
// transaction amounts never travel as floats.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrMalformedAmount indicates an amount string that is not a decimal number.
var ErrMalformedAmount = errors.New("amount is not a valid decimal number")

// ErrTooPrecise indicates an amount with sub-kobo precision.
var ErrTooPrecise = errors.New("amount has more than two decimal places")

var hundred = decimal.NewFromInt(100)

// ParseMinor parses a decimal amount string such as "1200.00" into minor
// units (120000). Amounts with more than two fractional digits are rejected
// rather than rounded.
func ParseMinor(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrMalformedAmount
	}
	if d.Exponent() < -2 {
		return 0, ErrTooPrecise
	}
	minor := d.Mul(hundred)
	if !minor.IsInteger() {
		return 0, ErrTooPrecise
	}
	return minor.IntPart(), nil
}

// FormatMinor renders minor units as a two-decimal string, e.g. 120000 ->
// "1200.00".
func FormatMinor(minor int64) string {
	return decimal.NewFromInt(minor).Div(hundred).StringFixed(2)
}

// FormatNaira renders minor units with the currency symbol for notification
// messages, e.g. 120000 -> "₦1200.00".
func FormatNaira(minor int64) string {
	return fmt.Sprintf("₦%s", FormatMinor(minor))
}
