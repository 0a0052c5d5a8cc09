package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mmynk/evenup/internal/display"
	"github.com/mmynk/evenup/internal/models"
	"github.com/mmynk/evenup/internal/service"
)

var addMoney string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show everybody with their difference from the average",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBoard(cmd, func(*service.Board) error { return nil })
	},
}

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a person",
	Long: `Adds a person to the list. Names are unique, ignoring case.

Example:
  evenup add Max --money 100`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		money, err := models.ParseMoney(addMoney)
		if err != nil {
			return err
		}
		return handle(cmd, models.AddRequested{Name: args[0], Money: money})
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a person by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return handle(cmd, models.RemoveRequested{ID: id})
	},
}

var setCmd = &cobra.Command{
	Use:   "set ID AMOUNT",
	Short: "Set a person's money",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		money, err := models.ParseMoney(args[1])
		if err != nil {
			return err
		}
		return handle(cmd, models.MoneyChanged{ID: id, Money: money})
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove everybody",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handle(cmd, models.ClearAllRequested{})
	},
}

func init() {
	addCmd.Flags().StringVar(&addMoney, "money", "", "starting money (default 0)")
}

// withBoard opens the store, starts a board that prints to stdout and runs fn.
func withBoard(cmd *cobra.Command, fn func(*service.Board) error) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	out := display.NewText(cmd.OutOrStdout(), display.DefaultStyles())
	board := service.NewBoard(store, out, service.WithMessageDuration(cfg.MessageDuration))
	board.Start(cmd.Context())
	return fn(board)
}

// handle runs a single event. Only the output caused by the event is printed:
// the updated list, or just the refreshed differences for a money change.
func handle(cmd *cobra.Command, ev models.Event) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	out := &muted{Display: display.NewText(cmd.OutOrStdout(), display.DefaultStyles())}
	board := service.NewBoard(store, out, service.WithMessageDuration(cfg.MessageDuration))
	board.Start(cmd.Context())
	out.live = true

	if err := board.Handle(cmd.Context(), ev); err != nil {
		if models.IsValidation(err) {
			// the board already printed the reason
			return fmt.Errorf("%s not applied", ev.Kind())
		}
		return err
	}
	return nil
}

// muted drops display calls until live is set.
type muted struct {
	display.Display
	live bool
}

func (m *muted) RenderList(l models.Ledger) {
	if m.live {
		m.Display.RenderList(l)
	}
}

func (m *muted) UpdateDifference(id int64, d decimal.Decimal) {
	if m.live {
		m.Display.UpdateDifference(id, d)
	}
}

func (m *muted) ShowCount(n int) {
	if m.live {
		m.Display.ShowCount(n)
	}
}

func (m *muted) ShowTransientMessage(text string, d time.Duration) {
	if m.live {
		m.Display.ShowTransientMessage(text, d)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
