package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/evenup/internal/display"
	"github.com/mmynk/evenup/internal/service"
)

// Run starts the terminal UI and blocks until the user quits or ctx is done.
// If watch is not nil it is started with a callback that reloads the ledger.
func Run(ctx context.Context, board *service.Board, screen *Screen, watch func(ctx context.Context, onChange func()) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(ctx, board, screen, display.DefaultStyles()), tea.WithAltScreen(), tea.WithContext(ctx))

	if watch != nil {
		go func() {
			if err := watch(ctx, func() { p.Send(ReloadMsg{}) }); err != nil {
				p.Send(watchFailedMsg{err: err})
			}
		}()
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
