// Package display defines the surfaces a ledger is shown on.
package display

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/evenup/internal/models"
)

// Display receives ledger updates.
type Display interface {
	// RenderList redraws every person.
	RenderList(l models.Ledger)

	// UpdateDifference refreshes one person's difference without a full redraw.
	UpdateDifference(id int64, difference decimal.Decimal)

	// ShowCount shows how many people are in the ledger.
	ShowCount(n int)

	// ShowTransientMessage shows text for roughly d, without blocking.
	ShowTransientMessage(text string, d time.Duration)
}

// Tone classifies a difference for coloring.
type Tone int

const (
	// Positive covers zero and above (green).
	Positive Tone = iota
	// Negative is below the average (red).
	Negative
)

// ToneOf returns the tone a difference is shown in. It looks at the value
// FormatDifference prints, so -0.04 is "0.0" and Positive.
func ToneOf(d decimal.Decimal) Tone {
	if d.Round(1).IsNegative() {
		return Negative
	}
	return Positive
}

// FormatDifference renders a difference with one decimal and an explicit
// plus sign for positive values: "+50.0", "-50.0", "0.0".
func FormatDifference(d decimal.Decimal) string {
	s := d.StringFixed(1)
	if d.Round(1).IsPositive() {
		return "+" + s
	}
	return s
}

// Nop discards everything.
type Nop struct{}

func (Nop) RenderList(models.Ledger) {}
func (Nop) UpdateDifference(int64, decimal.Decimal) {}
func (Nop) ShowCount(int) {}
func (Nop) ShowTransientMessage(string, time.Duration) {}
