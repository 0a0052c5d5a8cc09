package storage

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/evenup/internal/models"
)

// Record is the serialized form of one person.
// Amounts are written as JSON numbers; quoted numbers are accepted on read.
type Record struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Money      json.Number `json:"money"`
	Difference json.Number `json:"difference"`
}

// Encode serializes the ledger as a JSON array of records.
func Encode(l models.Ledger) ([]byte, error) {
	people := l.People()
	records := make([]Record, len(people))
	for i, p := range people {
		records[i] = Record{
			ID:         p.ID,
			Name:       p.Name,
			Money:      json.Number(p.Money.String()),
			Difference: json.Number(p.Difference.StringFixed(1)),
		}
	}
	return json.Marshal(records)
}

// Decode parses a JSON array of records. Empty input is an empty ledger.
// Any parse failure is reported as ErrCorrupt.
func Decode(data []byte) (models.Ledger, error) {
	if len(data) == 0 {
		return models.Ledger{}, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return models.Ledger{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	people := make([]models.Person, len(records))
	for i, r := range records {
		money, err := amount(r.Money)
		if err != nil {
			return models.Ledger{}, fmt.Errorf("%w: record %d money: %v", ErrCorrupt, i, err)
		}
		people[i] = models.Person{ID: r.ID, Name: r.Name, Money: money}
	}
	return models.Restore(people), nil
}

func amount(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(n.String())
}
