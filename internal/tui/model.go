// Package tui is the interactive terminal front end: a bubbletea program that
// turns key presses into ledger events and draws the board's display calls.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/evenup/internal/display"
	"github.com/mmynk/evenup/internal/models"
	"github.com/mmynk/evenup/internal/service"
)

type focus int

const (
	focusName focus = iota
	focusList
	focusMoney
)

// watchFailedMsg reports that external changes to the data file will not be seen.
type watchFailedMsg struct{ err error }

// ReloadMsg asks the model to replace its ledger with the stored one,
// e.g. after another process changed the data file.
type ReloadMsg struct{}

// Model is the bubbletea model.
type Model struct {
	ctx    context.Context
	board  *service.Board
	screen *Screen
	styles display.Styles

	input   textinput.Model
	focus   focus
	cursor  int
	editing int64
	width   int
}

// New creates the model. The board must already be started with screen as its display.
func New(ctx context.Context, board *service.Board, screen *Screen, styles display.Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "Add a person..."
	ti.Prompt = "│ "
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	return Model{
		ctx:    ctx,
		board:  board,
		screen: screen,
		styles: styles,
		input:  ti,
		focus:  focusName,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case clearMessageMsg:
		m.screen.expire(msg.seq)
		return m, nil

	case watchFailedMsg:
		m.screen.ShowTransientMessage("Not watching data file: "+msg.err.Error(), m.screen.duration)
		return m, m.screen.takeTimer()

	case ReloadMsg:
		m.board.Reload(m.ctx)
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.focus {
		case focusName:
			return m.updateName(msg)
		case focusList:
			return m.updateList(msg)
		case focusMoney:
			return m.updateMoney(msg)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		err := m.board.Handle(m.ctx, models.AddRequested{Name: m.input.Value()})
		if err == nil {
			m.input.Reset()
			m.cursor = len(m.screen.people) - 1
		}
		return m, m.screen.takeTimer()
	case "tab", "esc":
		if len(m.screen.people) > 0 {
			m.focus = focusList
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.screen.people)-1 {
			m.cursor++
		}
	case "tab", "a":
		m.focus = focusName
		m.input.Reset()
		m.input.Placeholder = "Add a person..."
		cmd := m.input.Focus()
		return m, cmd
	case "enter", "e":
		p, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.focus = focusMoney
		m.editing = p.ID
		m.input.Placeholder = "Money for " + p.Name
		m.input.SetValue(p.Money.String())
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd
	case "d", "delete":
		p, ok := m.selected()
		if !ok {
			return m, nil
		}
		_ = m.board.Handle(m.ctx, models.RemoveRequested{ID: p.ID})
		m.clampCursor()
		if len(m.screen.people) == 0 {
			m.focus = focusName
			cmd := m.input.Focus()
			return m, cmd
		}
		return m, m.screen.takeTimer()
	case "C":
		_ = m.board.Handle(m.ctx, models.ClearAllRequested{})
		m.cursor = 0
		m.focus = focusName
		m.input.Reset()
		m.input.Placeholder = "Add a person..."
		cmd := m.input.Focus()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMoney(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		money, err := models.ParseMoney(m.input.Value())
		if err != nil {
			m.screen.ShowTransientMessage(service.Message(err), m.screen.duration)
			return m, m.screen.takeTimer()
		}
		if err := m.board.Handle(m.ctx, models.MoneyChanged{ID: m.editing, Money: money}); err == nil {
			m.screen.setMoney(m.editing, money)
		}
		m.leaveMoney()
		return m, m.screen.takeTimer()
	case "esc":
		m.leaveMoney()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) leaveMoney() {
	m.focus = focusList
	m.editing = 0
	m.input.Reset()
	m.input.Placeholder = "Add a person..."
	m.input.Blur()
}

func (m Model) selected() (models.Person, bool) {
	if m.cursor < 0 || m.cursor >= len(m.screen.people) {
		return models.Person{}, false
	}
	return m.screen.people[m.cursor], true
}

func (m *Model) clampCursor() {
	m.cursor = min(m.cursor, len(m.screen.people)-1)
	m.cursor = max(m.cursor, 0)
}

// View renders the model.
func (m Model) View() string {
	var sb strings.Builder

	noun := "people"
	if m.screen.count == 1 {
		noun = "person"
	}
	sb.WriteString(m.styles.Name.Render("evenup"))
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %d %s", m.screen.count, noun)))
	sb.WriteString("\n\n")

	width := 0
	for _, p := range m.screen.people {
		width = max(width, lipgloss.Width(p.Name))
	}
	for i, p := range m.screen.people {
		marker := "  "
		if m.focus != focusName && i == m.cursor {
			marker = "> "
		}
		name := p.Name + strings.Repeat(" ", width-lipgloss.Width(p.Name))
		diff := fmt.Sprintf("%7s", display.FormatDifference(p.Difference))
		if display.ToneOf(p.Difference) == display.Negative {
			diff = m.styles.Negative.Render(diff)
		} else {
			diff = m.styles.Positive.Render(diff)
		}
		fmt.Fprintf(&sb, "%s%s  %s  %s\n", marker, m.styles.Name.Render(name), diff, m.styles.Money.Render(p.Money.String()))
	}
	if len(m.screen.people) == 0 {
		sb.WriteString(m.styles.Muted.Render("  nobody yet"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.screen.message != "" {
		sb.WriteString(m.styles.Message.Render(m.screen.message))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(m.helpLine()))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) helpLine() string {
	switch m.focus {
	case focusList:
		return "↑/↓ select • e edit money • d remove • C clear all • a add • q quit"
	case focusMoney:
		return "enter save • esc cancel"
	default:
		return "enter add • tab list • ctrl+c quit"
	}
}
