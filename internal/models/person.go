package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Person represents one individual tracked in a ledger.
type Person struct {
	// ID is derived from the creation time in Unix milliseconds and is unique
	// within a ledger.
	ID int64

	// Name is the display name. Names are unique within a ledger,
	// compared case-insensitively.
	Name string

	// Money is the person's balance. It may be negative.
	Money decimal.Decimal

	// Difference is Money minus the ledger mean, rounded to one decimal.
	// Positive = above the average, Negative = below it.
	Difference decimal.Decimal
}

// SameName reports whether the person's name matches name, ignoring case.
func (p Person) SameName(name string) bool {
	return strings.EqualFold(p.Name, strings.TrimSpace(name))
}
