package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/omarshaarawi/ffwrapped/internal/api/espn"
	"github.com/omarshaarawi/ffwrapped/internal/lineup"
	"github.com/omarshaarawi/ffwrapped/internal/models"
	"github.com/omarshaarawi/ffwrapped/internal/service"
)

// requestTimeout bounds a single lineup request. A cold season lineup fans
// out to 17 box-score fetches.
const requestTimeout = 25 * time.Second

// LineupService is the subset of service.LineupService the HTTP API serves.
type LineupService interface {
	ResolveTeam(ctx context.Context, query string) (models.FantasyTeam, error)
	BestDrafted(ctx context.Context, teamID int) (*models.SeasonLineup, error)
	BestActual(ctx context.Context, teamID int, mode lineup.Mode) (*models.SeasonLineup, error)
	WeeklyLineup(ctx context.Context, teamID, week int, mode lineup.Mode) (*lineup.Result, error)
	Efficiency(ctx context.Context, week int) ([]models.TeamEfficiency, error)
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	svc    LineupService
	checks map[string]HealthCheck
}

// NewHandler creates a handler. checks are run by the health endpoint, keyed
// by dependency name.
func NewHandler(svc LineupService, checks map[string]HealthCheck) *Handler {
	return &Handler{svc: svc, checks: checks}
}

// HealthCheck returns the health of the service and its dependencies
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			slog.Error("Health check failed", "dependency", name, "error", err)
			deps[name] = "unhealthy"
			healthy = false
			continue
		}
		deps[name] = "healthy"
	}

	status, code := "healthy", http.StatusOK
	if !healthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}
	respondJSON(w, code, map[string]interface{}{
		"status":       status,
		"service":      "ffwrapped",
		"timestamp":    time.Now().UTC(),
		"dependencies": deps,
	})
}

// GetDraftedLineups returns the best lineups a team's drafted roster could
// have started every week.
func (h *Handler) GetDraftedLineups(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	team, ok := h.team(ctx, w, r)
	if !ok {
		return
	}

	season, err := h.svc.BestDrafted(ctx, team.ID)
	if err != nil {
		respondServiceError(w, "failed to build drafted lineups", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"team":   team,
		"season": season,
	})
}

// GetActualLineups returns a team's lineups built from the rosters it really
// carried. Query params: mode (optimal, actual)
func (h *Handler) GetActualLineups(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	mode, err := lineup.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	team, ok := h.team(ctx, w, r)
	if !ok {
		return
	}

	season, err := h.svc.BestActual(ctx, team.ID, mode)
	if err != nil {
		respondServiceError(w, "failed to build actual lineups", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"team":   team,
		"season": season,
	})
}

// GetWeeklyLineup returns one week's lineup for a team.
// Query params: mode (optimal, actual)
func (h *Handler) GetWeeklyLineup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid week", err)
		return
	}
	mode, err := lineup.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	team, ok := h.team(ctx, w, r)
	if !ok {
		return
	}

	result, err := h.svc.WeeklyLineup(ctx, team.ID, week, mode)
	if err != nil {
		respondServiceError(w, "failed to build lineup", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"team":   team,
		"mode":   mode,
		"lineup": result,
	})
}

// GetEfficiency ranks every team by points left on the bench in a week.
func (h *Handler) GetEfficiency(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil || week < 1 || week > lineup.SeasonLength {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("week must be between 1 and %d", lineup.SeasonLength), err)
		return
	}

	report, err := h.svc.Efficiency(ctx, week)
	if err != nil {
		respondServiceError(w, "failed to build efficiency report", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"week":  week,
		"teams": report,
		"count": len(report),
	})
}

// team resolves the {team} URL param, writing the error response itself when
// it cannot.
func (h *Handler) team(ctx context.Context, w http.ResponseWriter, r *http.Request) (models.FantasyTeam, bool) {
	team, err := h.svc.ResolveTeam(ctx, chi.URLParam(r, "team"))
	if err != nil {
		respondServiceError(w, "failed to resolve team", err)
		return models.FantasyTeam{}, false
	}
	return team, true
}

// respondServiceError maps the service error taxonomy onto status codes.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	var (
		cfgErr    *lineup.ConfigurationError
		matchErr  *lineup.AmbiguousMatchError
		lookupErr *service.TeamLookupError
		espnErr   *espn.StatusError
	)

	switch {
	case errors.As(err, &cfgErr):
		respondError(w, http.StatusBadRequest, cfgErr.Error(), nil)
	case errors.As(err, &lookupErr):
		status := http.StatusConflict
		if len(lookupErr.Candidates) == 0 {
			status = http.StatusNotFound
		}
		respondError(w, status, lookupErr.Error(), nil)
	case errors.As(err, &matchErr):
		status := http.StatusConflict
		if matchErr.Matches == 0 {
			status = http.StatusNotFound
		}
		respondError(w, status, matchErr.Error(), nil)
	case errors.Is(err, service.ErrNoDraft):
		respondError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, service.ErrNoStore):
		respondError(w, http.StatusServiceUnavailable, err.Error(), nil)
	case errors.As(err, &espnErr):
		respondError(w, http.StatusBadGateway, espnErr.Error(), err)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, message, err)
	default:
		respondError(w, http.StatusInternalServerError, message, err)
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		slog.Error(message, "status", status, "error", err)
	}

	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
