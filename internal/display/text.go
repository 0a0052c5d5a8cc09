package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/mmynk/evenup/internal/models"
)

// Styles holds the lipgloss styles shared by the text and terminal displays.
type Styles struct {
	Name     lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Money    lipgloss.Style
	Muted    lipgloss.Style
	Message  lipgloss.Style
}

// DefaultStyles returns the standard palette: green above average, red below.
func DefaultStyles() Styles {
	return Styles{
		Name:     lipgloss.NewStyle().Bold(true),
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Money:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Muted:    lipgloss.NewStyle().Faint(true),
		Message:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	}
}

// Difference renders d in the style for its tone.
func (s Styles) Difference(d decimal.Decimal) string {
	if ToneOf(d) == Negative {
		return s.Negative.Render(FormatDifference(d))
	}
	return s.Positive.Render(FormatDifference(d))
}

// Text writes each update as lines of text. It is used by one-shot CLI commands.
type Text struct {
	w      io.Writer
	styles Styles
}

// NewText returns a Text display writing to w.
func NewText(w io.Writer, styles Styles) *Text {
	return &Text{w: w, styles: styles}
}

// RenderList writes one row per person.
func (t *Text) RenderList(l models.Ledger) {
	people := l.People()
	width := 0
	for _, p := range people {
		width = max(width, lipgloss.Width(p.Name))
	}

	for _, p := range people {
		name := p.Name + strings.Repeat(" ", width-lipgloss.Width(p.Name))
		fmt.Fprintf(t.w, "%-14d  %s  %8s  %s\n",
			p.ID,
			t.styles.Name.Render(name),
			t.styles.Difference(p.Difference),
			t.styles.Money.Render(p.Money.String()),
		)
	}
}

// UpdateDifference writes the new difference for one person.
func (t *Text) UpdateDifference(id int64, difference decimal.Decimal) {
	fmt.Fprintf(t.w, "%-14d  %s\n", id, t.styles.Difference(difference))
}

// ShowCount writes the number of people.
func (t *Text) ShowCount(n int) {
	noun := "people"
	if n == 1 {
		noun = "person"
	}
	fmt.Fprintln(t.w, t.styles.Muted.Render(fmt.Sprintf("%d %s", n, noun)))
}

// ShowTransientMessage writes the message. A one-shot command exits right
// after, so the duration does not apply.
func (t *Text) ShowTransientMessage(text string, _ time.Duration) {
	fmt.Fprintln(t.w, t.styles.Message.Render(text))
}
