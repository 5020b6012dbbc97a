package domain

import (
	"regexp"  // Amount format check
	"strings" // Separator normalization

	"github.com/shopspring/decimal" // Exact decimal arithmetic
)

// amountPattern accepts plain digits with an optional dot or comma fraction
var amountPattern = regexp.MustCompile(`^\d+([.,]\d+)?$`)

// MaxAmount is the largest value a decimal(12,2) column holds
var MaxAmount = decimal.RequireFromString("9999999999.99")

// ParseAmount reads a user-typed amount. Both "12.34" and "12,34" are
// accepted; values are rounded half-up to cents and must fit decimal(12,2).
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return decimal.Zero, ErrInvalidAmount // Signs, exponents, letters
	}
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	d = d.Round(2)
	if d.GreaterThan(MaxAmount) {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatAmount renders an amount with two decimals, as shown to users
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
