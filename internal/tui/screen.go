package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/mmynk/evenup/internal/display"
	"github.com/mmynk/evenup/internal/models"
)

var _ display.Display = (*Screen)(nil)

// Screen is the display the board draws on while the terminal UI runs.
// It is only touched from the bubbletea update loop, so it needs no locking.
type Screen struct {
	people []models.Person
	count  int

	message  string
	seq      int
	duration time.Duration
	// timer is the pending expiry for the latest message, collected by the model.
	timer tea.Cmd
}

// NewScreen returns an empty screen. messageDuration is used for messages the
// UI raises itself, such as unparseable money input.
func NewScreen(messageDuration time.Duration) *Screen {
	return &Screen{duration: messageDuration}
}

// clearMessageMsg expires the transient message with the same sequence number.
type clearMessageMsg struct{ seq int }

func (s *Screen) RenderList(l models.Ledger) {
	s.people = l.People()
}

func (s *Screen) UpdateDifference(id int64, difference decimal.Decimal) {
	for i := range s.people {
		if s.people[i].ID == id {
			s.people[i].Difference = difference
			return
		}
	}
}

func (s *Screen) ShowCount(n int) { s.count = n }

func (s *Screen) ShowTransientMessage(text string, d time.Duration) {
	s.seq++
	s.message = text
	seq := s.seq
	s.timer = tea.Tick(d, func(time.Time) tea.Msg { return clearMessageMsg{seq: seq} })
}

// setMoney mirrors a committed money edit; the board only pushes differences.
func (s *Screen) setMoney(id int64, money decimal.Decimal) {
	for i := range s.people {
		if s.people[i].ID == id {
			s.people[i].Money = money
			return
		}
	}
}

// takeTimer returns and forgets the pending message expiry, if any.
func (s *Screen) takeTimer() tea.Cmd {
	cmd := s.timer
	s.timer = nil
	return cmd
}

func (s *Screen) expire(seq int) {
	if seq == s.seq {
		s.message = ""
	}
}
