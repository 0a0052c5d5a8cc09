package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestApply(t *testing.T) {
	l, err := Apply(Ledger{}, AddRequested{Name: "Max", Money: decimal.NewFromInt(100)}, epoch)
	if err != nil {
		t.Fatalf("add Max: %v", err)
	}
	l, err = Apply(l, AddRequested{Name: "Ann"}, epoch)
	if err != nil {
		t.Fatalf("add Ann: %v", err)
	}
	max, _ := l.FindByName("Max")
	ann, _ := l.FindByName("Ann")
	if !ann.Difference.Equal(decimal.NewFromInt(-50)) {
		t.Errorf("Ann difference = %s, want -50", ann.Difference)
	}

	l, err = Apply(l, MoneyChanged{ID: ann.ID, Money: decimal.NewFromInt(300)}, epoch)
	if err != nil {
		t.Fatalf("set money: %v", err)
	}
	max, _ = l.Find(max.ID)
	if !max.Difference.Equal(decimal.NewFromInt(-100)) {
		t.Errorf("Max difference after edit = %s, want -100", max.Difference)
	}

	unchanged, err := Apply(l, AddRequested{Name: "ANN"}, epoch)
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("duplicate add error = %v, want ErrDuplicateName", err)
	}
	if unchanged.Len() != l.Len() {
		t.Errorf("ledger length after rejected add = %d, want %d", unchanged.Len(), l.Len())
	}

	l, err = Apply(l, RemoveRequested{ID: ann.ID}, epoch)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	max, _ = l.Find(max.ID)
	if !max.Difference.IsZero() {
		t.Errorf("sole person difference = %s, want 0", max.Difference)
	}

	l, err = Apply(l, ClearAllRequested{}, epoch)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if !l.IsEmpty() {
		t.Errorf("ledger has %d people after clear", l.Len())
	}
}

func TestEventKinds(t *testing.T) {
	kinds := map[string]Event{
		"add":       AddRequested{},
		"remove":    RemoveRequested{},
		"set_money": MoneyChanged{},
		"clear":     ClearAllRequested{},
	}
	for want, ev := range kinds {
		if got := ev.Kind(); got != want {
			t.Errorf("%T.Kind() = %q, want %q", ev, got, want)
		}
	}
}
