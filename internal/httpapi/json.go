package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mmynk/evenup/internal/models"
	"github.com/mmynk/evenup/internal/service"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// toJSON writes a JSON response with status code.
func toJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
	toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, msg, "bad_request")
}

// writeDomainErr maps ledger errors onto HTTP statuses.
func writeDomainErr(w http.ResponseWriter, err error) {
	msg := service.Message(err)
	switch {
	case errors.Is(err, models.ErrBlankName):
		writeErr(w, http.StatusUnprocessableEntity, msg, "blank_name")
	case errors.Is(err, models.ErrInvalidMoney):
		writeErr(w, http.StatusUnprocessableEntity, msg, "invalid_money")
	case errors.Is(err, models.ErrDuplicateName):
		writeErr(w, http.StatusConflict, msg, "duplicate_name")
	case errors.Is(err, models.ErrUnknownPerson):
		writeErr(w, http.StatusNotFound, msg, "unknown_person")
	default:
		writeErr(w, http.StatusInternalServerError, "internal error", "internal")
	}
}

// decode reads a JSON body, rejecting unknown fields.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
