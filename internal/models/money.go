package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMoney converts user input into a money amount.
// Blank input means zero, the same as clearing the money field.
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	return amount, nil
}
