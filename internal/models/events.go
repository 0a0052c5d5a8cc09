package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Event is a user request against the ledger.
type Event interface {
	// Kind is a short stable name used in logs and metrics.
	Kind() string
}

// AddRequested asks to add a person.
type AddRequested struct {
	Name  string
	Money decimal.Decimal
}

// RemoveRequested asks to remove the person with ID.
type RemoveRequested struct {
	ID int64
}

// MoneyChanged carries a new money value for the person with ID.
type MoneyChanged struct {
	ID    int64
	Money decimal.Decimal
}

// ClearAllRequested asks to remove everybody.
type ClearAllRequested struct{}

func (AddRequested) Kind() string      { return "add" }
func (RemoveRequested) Kind() string   { return "remove" }
func (MoneyChanged) Kind() string      { return "set_money" }
func (ClearAllRequested) Kind() string { return "clear" }

// Apply returns the ledger that results from ev, with differences recomputed.
// On a validation error the original ledger is returned along with the error.
func Apply(l Ledger, ev Event, now time.Time) (Ledger, error) {
	var (
		next Ledger
		err  error
	)
	switch e := ev.(type) {
	case AddRequested:
		next, _, err = l.Add(e.Name, e.Money, now)
	case RemoveRequested:
		next = l.Remove(e.ID)
	case MoneyChanged:
		next, err = l.SetMoney(e.ID, e.Money)
	case ClearAllRequested:
		next = l.Clear()
	default:
		return l, fmt.Errorf("unsupported event %T", ev)
	}
	if err != nil {
		return l, err
	}
	return next.Recompute(), nil
}
