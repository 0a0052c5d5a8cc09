package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"

	"github.com/mmynk/evenup/internal/display"
	"github.com/mmynk/evenup/internal/models"
	"github.com/mmynk/evenup/internal/service"
	"github.com/mmynk/evenup/internal/storage/memory"
)

func setupModel(t *testing.T) (Model, *service.Board, *memory.Store) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	ctx := context.Background()
	store := memory.New()
	screen := NewScreen(time.Second)
	board := service.NewBoard(store, screen)
	board.Start(ctx)
	return New(ctx, board, screen, display.DefaultStyles()), board, store
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func TestAddPeopleFromInput(t *testing.T) {
	m, board, store := setupModel(t)

	m, _ = send(t, m, typed("Max"), key(tea.KeyEnter), typed("Ann"), key(tea.KeyEnter))

	if board.Ledger().Len() != 2 {
		t.Fatalf("ledger has %d people, want 2", board.Ledger().Len())
	}
	if store.Saves() != 2 {
		t.Errorf("saves = %d, want 2", store.Saves())
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared after add: %q", m.input.Value())
	}

	view := m.View()
	for _, want := range []string{"2 people", "Max", "Ann", "0.0"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDuplicateShowsMessageThenExpires(t *testing.T) {
	m, board, _ := setupModel(t)
	m, _ = send(t, m, typed("Max"), key(tea.KeyEnter))

	m, cmd := send(t, m, typed("MAX"), key(tea.KeyEnter))
	if board.Ledger().Len() != 1 {
		t.Errorf("duplicate was added")
	}
	if cmd == nil {
		t.Fatal("expected a timer to clear the message")
	}
	if !strings.Contains(m.View(), "That name is already on the list") {
		t.Errorf("message not shown:\n%s", m.View())
	}
	if m.input.Value() != "MAX" {
		t.Errorf("rejected input cleared: %q", m.input.Value())
	}

	m, _ = send(t, m, clearMessageMsg{seq: m.screen.seq})
	if strings.Contains(m.View(), "That name is already on the list") {
		t.Error("message still shown after expiry")
	}
}

func TestEditMoneyAndRemove(t *testing.T) {
	m, board, _ := setupModel(t)
	m, _ = send(t, m, typed("Max"), key(tea.KeyEnter), typed("Ann"), key(tea.KeyEnter))

	// to the list, select Max, edit money to 100
	m, _ = send(t, m, key(tea.KeyTab), key(tea.KeyUp), typed("e"))
	if m.focus != focusMoney {
		t.Fatalf("focus = %v, want money", m.focus)
	}
	m.input.SetValue("")
	m, _ = send(t, m, typed("100"), key(tea.KeyEnter))

	max, _ := board.Ledger().FindByName("Max")
	if !max.Money.Equal(decimal.NewFromInt(100)) || !max.Difference.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Max = %s money / %s difference, want 100 / 50", max.Money, max.Difference)
	}
	view := m.View()
	if !strings.Contains(view, "+50.0") || !strings.Contains(view, "-50.0") {
		t.Errorf("view missing updated differences:\n%s", view)
	}

	m, _ = send(t, m, typed("d"))
	if _, ok := board.Ledger().FindByName("Max"); ok {
		t.Error("Max not removed")
	}
	if board.Ledger().Len() != 1 {
		t.Errorf("ledger has %d people, want 1", board.Ledger().Len())
	}
}

func TestInvalidMoneyKeepsLedger(t *testing.T) {
	m, board, store := setupModel(t)
	m, _ = send(t, m, typed("Max"), key(tea.KeyEnter), key(tea.KeyTab), typed("e"))
	m.input.SetValue("lots")
	saves := store.Saves()

	m, cmd := send(t, m, key(tea.KeyEnter))
	if cmd == nil {
		t.Error("expected a message timer")
	}
	if store.Saves() != saves {
		t.Error("invalid money was saved")
	}
	if max, _ := board.Ledger().FindByName("Max"); !max.Money.IsZero() {
		t.Errorf("money changed to %s", max.Money)
	}
	if !strings.Contains(m.View(), "Money must be a number") {
		t.Errorf("message not shown:\n%s", m.View())
	}
}

func TestClearAllAndReload(t *testing.T) {
	m, board, store := setupModel(t)
	m, _ = send(t, m, typed("Max"), key(tea.KeyEnter), key(tea.KeyTab), typed("C"))

	if !board.Ledger().IsEmpty() {
		t.Errorf("ledger has %d people after clear", board.Ledger().Len())
	}
	if m.focus != focusName {
		t.Errorf("focus = %v, want name input", m.focus)
	}

	other, _, _ := models.Ledger{}.Add("Zed", decimal.NewFromInt(5), time.Now())
	if err := store.Save(context.Background(), other); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	m, _ = send(t, m, ReloadMsg{})
	if !strings.Contains(m.View(), "Zed") {
		t.Errorf("reloaded person not shown:\n%s", m.View())
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := setupModel(t)
	_, cmd := send(t, m, key(tea.KeyCtrlC))
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not quit")
	}
}
