package httpapi

import (
	"bytes"
	"encoding/json"

	"github.com/mmynk/evenup/internal/display"
	"github.com/mmynk/evenup/internal/models"
)

type personResponse struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Money      json.Number `json:"money"`
	Difference json.Number `json:"difference"`
	// Display is the difference as the widget shows it, e.g. "+50.0".
	Display string `json:"display"`
}

type ledgerResponse struct {
	People []personResponse `json:"people"`
	Count  int              `json:"count"`
	// Mean is omitted for an empty ledger.
	Mean *json.Number `json:"mean,omitempty"`
}

type addPersonRequest struct {
	Name string `json:"name"`
	// Money is a string or number; missing means zero.
	Money moneyField `json:"money,omitempty"`
}

type setMoneyRequest struct {
	Money moneyField `json:"money"`
}

// moneyField holds money as sent, a JSON number or string, so that
// models.ParseMoney decides whether it is valid.
type moneyField string

func (m *moneyField) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = moneyField(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*m = moneyField(n)
	return nil
}

func toPersonResponse(p models.Person) personResponse {
	return personResponse{
		ID:         p.ID,
		Name:       p.Name,
		Money:      json.Number(p.Money.String()),
		Difference: json.Number(p.Difference.StringFixed(1)),
		Display:    display.FormatDifference(p.Difference),
	}
}

func toLedgerResponse(l models.Ledger) ledgerResponse {
	people := l.People()
	resp := ledgerResponse{
		People: make([]personResponse, len(people)),
		Count:  len(people),
	}
	for i, p := range people {
		resp.People[i] = toPersonResponse(p)
	}
	if mean, err := l.Mean(); err == nil {
		n := json.Number(mean.Round(2).String())
		resp.Mean = &n
	}
	return resp
}
