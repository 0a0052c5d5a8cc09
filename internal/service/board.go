// Package service coordinates the ledger with its store and display.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/evenup/internal/display"
	"github.com/mmynk/evenup/internal/metrics"
	"github.com/mmynk/evenup/internal/models"
	"github.com/mmynk/evenup/internal/storage"
)

// DefaultMessageDuration is how long validation messages stay visible.
const DefaultMessageDuration = 3 * time.Second

var errNilEvent = errors.New("nil event")

// Board owns the current ledger. Every event flows through Handle:
// apply, recompute, push to the display, then persist.
type Board struct {
	mu      sync.Mutex
	ledger  models.Ledger
	store   storage.Store
	display display.Display

	now         func() time.Time
	messageTime time.Duration
}

// Option configures a Board.
type Option func(*Board)

// WithClock overrides the time source used for new person ids.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// WithMessageDuration sets how long transient messages are shown.
func WithMessageDuration(d time.Duration) Option {
	return func(b *Board) { b.messageTime = d }
}

// NewBoard creates a Board with an empty ledger. Call Start to load it.
func NewBoard(store storage.Store, disp display.Display, opts ...Option) *Board {
	if disp == nil {
		disp = display.Nop{}
	}
	b := &Board{
		store:       store,
		display:     disp,
		now:         time.Now,
		messageTime: DefaultMessageDuration,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Start loads the persisted ledger and renders it. Unreadable or corrupt data
// is logged and replaced by an empty ledger. Nothing is saved.
func (b *Board) Start(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ledger = b.load(ctx)
	slog.Info("Ledger loaded", "people", b.ledger.Len())
	b.render()
}

// Reload fully replaces the ledger with what the store holds now.
func (b *Board) Reload(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ledger = b.load(ctx)
	slog.Debug("Ledger reloaded", "people", b.ledger.Len())
	b.render()
}

// Ledger returns the current ledger.
func (b *Board) Ledger() models.Ledger {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ledger
}

// Handle applies ev. A validation failure is shown as a transient message and
// returned; the ledger, display and store are left as they were. Save failures
// are logged only.
func (b *Board) Handle(ctx context.Context, ev models.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.handle(ctx, ev)
}

// Add handles an AddRequested event and returns the person it created.
func (b *Board) Add(ctx context.Context, name string, money decimal.Decimal) (models.Person, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.handle(ctx, models.AddRequested{Name: name, Money: money}); err != nil {
		return models.Person{}, err
	}
	// names are unique, and the lock is still held
	p, _ := b.ledger.FindByName(name)
	return p, nil
}

func (b *Board) handle(ctx context.Context, ev models.Event) error {
	if ev == nil {
		return errNilEvent
	}

	next, err := models.Apply(b.ledger, ev, b.now())
	if err != nil {
		if models.IsValidation(err) {
			metrics.Events.WithLabelValues(ev.Kind(), "rejected").Inc()
			slog.Info("Event rejected", "kind", ev.Kind(), "reason", err)
			b.display.ShowTransientMessage(Message(err), b.messageTime)
		} else {
			metrics.Events.WithLabelValues(ev.Kind(), "error").Inc()
			slog.Error("Event failed", "kind", ev.Kind(), "error", err)
		}
		return err
	}

	b.ledger = next
	metrics.Events.WithLabelValues(ev.Kind(), "ok").Inc()
	slog.Debug("Event applied", "kind", ev.Kind(), "people", next.Len())

	if _, ok := ev.(models.MoneyChanged); ok {
		for _, p := range next.People() {
			b.display.UpdateDifference(p.ID, p.Difference)
		}
	} else {
		b.render()
	}

	b.save(ctx)
	return nil
}

func (b *Board) render() {
	b.display.RenderList(b.ledger)
	b.display.ShowCount(b.ledger.Len())
	metrics.People.Set(float64(b.ledger.Len()))
}

func (b *Board) load(ctx context.Context) models.Ledger {
	l, err := b.store.Load(ctx)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("load").Inc()
		slog.Warn("Failed to load ledger, starting empty", "error", err, "corrupt", errors.Is(err, storage.ErrCorrupt))
		return models.Ledger{}
	}
	return l.Recompute()
}

func (b *Board) save(ctx context.Context) {
	if err := b.store.Save(ctx, b.ledger); err != nil {
		metrics.StoreErrors.WithLabelValues("save").Inc()
		slog.Error("Failed to save ledger", "error", err)
	}
}

// Message turns a validation error into text for the user.
func Message(err error) string {
	switch {
	case errors.Is(err, models.ErrBlankName):
		return "Enter a name first"
	case errors.Is(err, models.ErrDuplicateName):
		return "That name is already on the list"
	case errors.Is(err, models.ErrInvalidMoney):
		return "Money must be a number"
	case errors.Is(err, models.ErrUnknownPerson):
		return "That person is no longer on the list"
	default:
		return err.Error()
	}
}
