package httpapi

import (
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"github.com/mmynk/evenup/internal/models"
)

func (s *Server) listPeople(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, toLedgerResponse(s.board.Ledger()))
}

func (s *Server) addPerson(w http.ResponseWriter, r *http.Request) {
	var req addPersonRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	money, err := models.ParseMoney(string(req.Money))
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	p, err := s.board.Add(r.Context(), req.Name, money)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, toPersonResponse(p))
}

func (s *Server) setMoney(w http.ResponseWriter, r *http.Request) {
	id, ok := personID(w, r)
	if !ok {
		return
	}
	var req setMoneyRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	money, err := models.ParseMoney(string(req.Money))
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	if err := s.board.Handle(r.Context(), models.MoneyChanged{ID: id, Money: money}); err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toLedgerResponse(s.board.Ledger()))
}

func (s *Server) removePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := personID(w, r)
	if !ok {
		return
	}
	if err := s.board.Handle(r.Context(), models.RemoveRequested{ID: id}); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearAll(w http.ResponseWriter, r *http.Request) {
	if err := s.board.Handle(r.Context(), models.ClearAllRequested{}); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, map[string]any{"status": "ok", "people": s.board.Ledger().Len()})
}

func personID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		badRequest(w, "invalid person id")
		return 0, false
	}
	return id, true
}
