package models

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var epoch = time.UnixMilli(1_700_000_000_000)

// decimalComparer lets cmp treat 50 and 50.0 as the same amount.
var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func mustAdd(t *testing.T, l Ledger, name string, money int64) Ledger {
	t.Helper()
	next, _, err := l.Add(name, decimal.NewFromInt(money), epoch)
	if err != nil {
		t.Fatalf("Add(%q) failed: %v", name, err)
	}
	return next
}

func TestAddThenRecompute(t *testing.T) {
	l := mustAdd(t, Ledger{}, "Max", 100)
	l = mustAdd(t, l, "Ann", 0).Recompute()

	mean, err := l.Mean()
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	if !mean.Equal(decimal.NewFromInt(50)) {
		t.Errorf("mean = %s, want 50", mean)
	}

	want := []Person{
		{ID: epoch.UnixMilli(), Name: "Max", Money: decimal.NewFromInt(100), Difference: decimal.NewFromInt(50)},
		{ID: epoch.UnixMilli() + 1, Name: "Ann", Money: decimal.Zero, Difference: decimal.NewFromInt(-50)},
	}
	if diff := cmp.Diff(want, l.People(), decimalComparer); diff != "" {
		t.Errorf("people mismatch (-want +got):\n%s", diff)
	}
}

func TestAddValidation(t *testing.T) {
	base := mustAdd(t, Ledger{}, "Max", 100)

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty name", input: "", wantErr: ErrBlankName},
		{name: "whitespace name", input: "   \t", wantErr: ErrBlankName},
		{name: "exact duplicate", input: "Max", wantErr: ErrDuplicateName},
		{name: "duplicate in other case", input: "mAX", wantErr: ErrDuplicateName},
		{name: "duplicate with padding", input: "  max ", wantErr: ErrDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := base.Add(tt.input, decimal.Zero, epoch)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if !IsValidation(err) {
				t.Errorf("IsValidation(%v) = false, want true", err)
			}
			if diff := cmp.Diff(base.People(), got.People(), decimalComparer); diff != "" {
				t.Errorf("ledger changed on rejected add (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddTrimsName(t *testing.T) {
	_, p, err := Ledger{}.Add("  Ann  ", decimal.Zero, epoch)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if p.Name != "Ann" {
		t.Errorf("name = %q, want %q", p.Name, "Ann")
	}
}

func TestAddGeneratesIncreasingIDs(t *testing.T) {
	l := Ledger{}
	var last int64
	for _, name := range []string{"a", "b", "c", "d"} {
		var p Person
		var err error
		// same timestamp for every add
		l, p, err = l.Add(name, decimal.Zero, epoch)
		if err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
		if p.ID <= last {
			t.Errorf("id for %q = %d, want > %d", name, p.ID, last)
		}
		last = p.ID
	}

	// a clock that went backwards still yields a fresh id
	_, p, err := l.Add("e", decimal.Zero, epoch.Add(-time.Hour))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if p.ID <= last {
		t.Errorf("id after clock skew = %d, want > %d", p.ID, last)
	}
}

func TestAddDoesNotAliasReceiver(t *testing.T) {
	base := mustAdd(t, Ledger{}, "Max", 100)
	a := mustAdd(t, base, "Ann", 0)
	b := mustAdd(t, base, "Bob", 0)

	if base.Len() != 1 {
		t.Errorf("base length = %d, want 1", base.Len())
	}
	if got := a.People()[1].Name; got != "Ann" {
		t.Errorf("a[1] = %q, want Ann", got)
	}
	if got := b.People()[1].Name; got != "Bob" {
		t.Errorf("b[1] = %q, want Bob", got)
	}
}

func TestRemove(t *testing.T) {
	l := mustAdd(t, Ledger{}, "Max", 100)
	l = mustAdd(t, l, "Ann", 0)
	ann, _ := l.FindByName("ann")

	t.Run("absent id is a no-op", func(t *testing.T) {
		got := l.Remove(12345)
		if diff := cmp.Diff(l.People(), got.People(), decimalComparer); diff != "" {
			t.Errorf("ledger changed (-want +got):\n%s", diff)
		}
	})

	t.Run("removes matching id and keeps order", func(t *testing.T) {
		l3 := mustAdd(t, l, "Cid", 5)
		got := l3.Remove(ann.ID)
		if got.Len() != 2 {
			t.Fatalf("length = %d, want 2", got.Len())
		}
		if _, ok := got.Find(ann.ID); ok {
			t.Error("removed person still present")
		}
		names := []string{got.People()[0].Name, got.People()[1].Name}
		if diff := cmp.Diff([]string{"Max", "Cid"}, names); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
		if l3.Len() != 3 {
			t.Errorf("receiver modified: length = %d, want 3", l3.Len())
		}
	})
}

func TestSetMoney(t *testing.T) {
	l := mustAdd(t, Ledger{}, "Max", 100)
	max, _ := l.FindByName("Max")

	got, err := l.SetMoney(max.ID, decimal.NewFromInt(7))
	if err != nil {
		t.Fatalf("SetMoney failed: %v", err)
	}
	p, _ := got.Find(max.ID)
	if !p.Money.Equal(decimal.NewFromInt(7)) {
		t.Errorf("money = %s, want 7", p.Money)
	}
	if orig, _ := l.Find(max.ID); !orig.Money.Equal(decimal.NewFromInt(100)) {
		t.Errorf("receiver modified: money = %s, want 100", orig.Money)
	}

	if _, err := l.SetMoney(-1, decimal.Zero); !errors.Is(err, ErrUnknownPerson) {
		t.Errorf("SetMoney unknown id error = %v, want ErrUnknownPerson", err)
	}
}

func TestClear(t *testing.T) {
	l := mustAdd(t, Ledger{}, "Max", 100)
	if got := l.Clear(); !got.IsEmpty() {
		t.Errorf("Clear left %d people", got.Len())
	}
	if l.Len() != 1 {
		t.Errorf("receiver modified: length = %d, want 1", l.Len())
	}
}

func TestComputeDifferences(t *testing.T) {
	people := []Person{
		{ID: 1, Name: "a", Money: decimal.NewFromInt(10)},
		{ID: 2, Name: "b", Money: decimal.NewFromInt(0)},
		{ID: 3, Name: "c", Money: decimal.NewFromInt(0)},
	}

	once, err := ComputeDifferences(people)
	if err != nil {
		t.Fatalf("ComputeDifferences failed: %v", err)
	}
	twice, err := ComputeDifferences(once)
	if err != nil {
		t.Fatalf("ComputeDifferences failed: %v", err)
	}
	if diff := cmp.Diff(once, twice, decimalComparer); diff != "" {
		t.Errorf("not idempotent (-once +twice):\n%s", diff)
	}

	sum := decimal.Zero
	for _, p := range once {
		sum = sum.Add(p.Difference)
	}
	if sum.Abs().GreaterThan(decimal.NewFromFloat(0.15)) {
		t.Errorf("sum of differences = %s, want about 0", sum)
	}

	if !people[0].Difference.IsZero() {
		t.Error("input slice was modified")
	}

	if _, err := ComputeDifferences(nil); !errors.Is(err, ErrEmptyLedger) {
		t.Errorf("empty error = %v, want ErrEmptyLedger", err)
	}
	if _, err := (Ledger{}).Mean(); !errors.Is(err, ErrEmptyLedger) {
		t.Errorf("empty Mean error = %v, want ErrEmptyLedger", err)
	}
	if got := (Ledger{}).Recompute(); !got.IsEmpty() {
		t.Error("Recompute on empty ledger produced people")
	}
}

func TestRestoreDifferencesSumToZero(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := range 100 {
		people := make([]Person, 1+rng.IntN(20))
		for j := range people {
			money := decimal.New(rng.Int64N(200_001)-100_000, -2)
			if j%3 == 0 {
				money = money.Div(decimal.NewFromInt(3))
			}
			people[j] = Person{ID: int64(j + 1), Name: fmt.Sprintf("p%d", j), Money: money}
		}

		l := Restore(people)
		mean, err := l.Mean()
		if err != nil {
			t.Fatalf("ledger %d: Mean failed: %v", i, err)
		}
		sum := decimal.Zero
		for _, p := range l.People() {
			if want := p.Money.Sub(mean).Round(1); !p.Difference.Equal(want) {
				t.Errorf("ledger %d: %s difference = %s, want %s", i, p.Name, p.Difference, want)
			}
			sum = sum.Add(p.Difference)
		}
		tolerance := decimal.NewFromFloat(0.05).Mul(decimal.NewFromInt(int64(l.Len()))).Add(decimal.New(1, -9))
		if sum.Abs().GreaterThan(tolerance) {
			t.Errorf("ledger %d: sum of %d differences = %s, want within %s of 0", i, l.Len(), sum, tolerance)
		}
		if l.Len() == 1 && !l.People()[0].Difference.IsZero() {
			t.Errorf("ledger %d: single person difference = %s, want 0", i, l.People()[0].Difference)
		}
	}
}

func TestRestoreRecomputes(t *testing.T) {
	stale := []Person{
		{ID: 1, Name: "Max", Money: decimal.NewFromInt(100), Difference: decimal.NewFromInt(999)},
		{ID: 2, Name: "Ann", Money: decimal.Zero},
	}
	l := Restore(stale)
	p, _ := l.Find(1)
	if !p.Difference.Equal(decimal.NewFromInt(50)) {
		t.Errorf("difference = %s, want 50", p.Difference)
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "", want: "0"},
		{input: "  ", want: "0"},
		{input: "100", want: "100"},
		{input: "-12.5", want: "-12.5"},
		{input: " 3.25 ", want: "3.25"},
		{input: "abc", wantErr: true},
		{input: "1,5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMoney) {
					t.Errorf("ParseMoney(%q) error = %v, want ErrInvalidMoney", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoney(%q) failed: %v", tt.input, err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ParseMoney(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
