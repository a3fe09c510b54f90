package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter mounts the API routes behind the standard middleware stack.
// {team} accepts a team id, abbreviation or name.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/teams/{team}", func(r chi.Router) {
			r.Get("/lineups/drafted", h.GetDraftedLineups)
			r.Get("/lineups/actual", h.GetActualLineups)
			r.Get("/weeks/{week}/lineup", h.GetWeeklyLineup)
		})
		r.Get("/weeks/{week}/efficiency", h.GetEfficiency)
	})

	return r
}
