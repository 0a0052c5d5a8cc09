// Package httpapi exposes the board over HTTP with JSON bodies.
// Handlers stay thin: every change goes through service.Board.Handle.
package httpapi

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/evenup/internal/middleware"
	"github.com/mmynk/evenup/internal/service"
)

// Server wires handlers and middleware using Chi.
type Server struct {
	board *service.Board
	rt    *chi.Mux
}

// New constructs the HTTP server around a started board.
func New(board *service.Board) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS)

	s := &Server{board: board, rt: r}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

func (s *Server) routes() {
	s.rt.Get("/v1/people", s.listPeople)
	s.rt.Post("/v1/people", s.addPerson)
	s.rt.Delete("/v1/people", s.clearAll)
	s.rt.Delete("/v1/people/{id}", s.removePerson)
	s.rt.Put("/v1/people/{id}/money", s.setMoney)

	s.rt.Get("/healthz", s.healthz)
	s.rt.Handle("/metrics", promhttp.Handler())
}
