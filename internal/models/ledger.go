package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/evenup/internal/calculator"
)

// Ledger is the ordered collection of people. Insertion order is preserved.
// The zero value is an empty ledger.
type Ledger struct {
	people []Person
}

// Restore builds a ledger from previously persisted people, keeping their
// order and ids. Differences are recomputed so they agree with money.
func Restore(people []Person) Ledger {
	return Ledger{people: slices.Clone(people)}.Recompute()
}

// Len returns the number of people in the ledger.
func (l Ledger) Len() int { return len(l.people) }

// IsEmpty reports whether the ledger has no people.
func (l Ledger) IsEmpty() bool { return len(l.people) == 0 }

// People returns a copy of the people in insertion order.
func (l Ledger) People() []Person { return slices.Clone(l.people) }

// Find returns the person with the given id.
func (l Ledger) Find(id int64) (Person, bool) {
	if i := l.index(id); i >= 0 {
		return l.people[i], true
	}
	return Person{}, false
}

// FindByName returns the person whose name matches, ignoring case.
func (l Ledger) FindByName(name string) (Person, bool) {
	for _, p := range l.people {
		if p.SameName(name) {
			return p, true
		}
	}
	return Person{}, false
}

// Mean returns the mean money of everyone in the ledger.
func (l Ledger) Mean() (decimal.Decimal, error) {
	mean, err := calculator.Mean(moneyOf(l.people))
	if errors.Is(err, calculator.ErrNoAmounts) {
		return decimal.Zero, ErrEmptyLedger
	}
	return mean, err
}

// Add appends a new person with the given starting money.
// The new person's difference is zero until the ledger is recomputed.
func (l Ledger) Add(name string, money decimal.Decimal, now time.Time) (Ledger, Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return l, Person{}, ErrBlankName
	}
	if existing, ok := l.FindByName(name); ok {
		return l, Person{}, fmt.Errorf("%w: %q matches %q", ErrDuplicateName, name, existing.Name)
	}

	p := Person{
		ID:    l.nextID(now),
		Name:  name,
		Money: money,
	}
	people := make([]Person, len(l.people), len(l.people)+1)
	copy(people, l.people)
	return Ledger{people: append(people, p)}, p, nil
}

// Remove returns the ledger without the person with the given id.
// Removing an id that is not present returns the ledger unchanged.
func (l Ledger) Remove(id int64) Ledger {
	if l.index(id) < 0 {
		return l
	}
	return Ledger{people: slices.DeleteFunc(slices.Clone(l.people), func(p Person) bool {
		return p.ID == id
	})}
}

// SetMoney updates one person's money. Differences are not recomputed.
func (l Ledger) SetMoney(id int64, money decimal.Decimal) (Ledger, error) {
	i := l.index(id)
	if i < 0 {
		return l, fmt.Errorf("%w: %d", ErrUnknownPerson, id)
	}
	people := slices.Clone(l.people)
	people[i].Money = money
	return Ledger{people: people}, nil
}

// Clear returns an empty ledger.
func (l Ledger) Clear() Ledger { return Ledger{} }

// Recompute returns the ledger with every difference brought up to date.
// An empty ledger has nothing to recompute and is returned as is.
func (l Ledger) Recompute() Ledger {
	if l.IsEmpty() {
		return l
	}
	people, err := ComputeDifferences(l.people)
	if err != nil {
		return l
	}
	return Ledger{people: people}
}

// ComputeDifferences sets each person's difference from the mean money of all
// people. It returns a new slice; the input is not modified.
func ComputeDifferences(people []Person) ([]Person, error) {
	diffs, err := calculator.Differences(moneyOf(people))
	if errors.Is(err, calculator.ErrNoAmounts) {
		return nil, ErrEmptyLedger
	}
	if err != nil {
		return nil, err
	}

	out := slices.Clone(people)
	for i := range out {
		out[i].Difference = diffs[i]
	}
	return out, nil
}

func (l Ledger) index(id int64) int {
	return slices.IndexFunc(l.people, func(p Person) bool { return p.ID == id })
}

// nextID derives an id from now, bumping past the largest existing id so ids
// stay unique and increasing even when two people are added in the same millisecond.
func (l Ledger) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, p := range l.people {
		if p.ID >= id {
			id = p.ID + 1
		}
	}
	return id
}

func moneyOf(people []Person) []decimal.Decimal {
	amounts := make([]decimal.Decimal, len(people))
	for i, p := range people {
		amounts[i] = p.Money
	}
	return amounts
}
