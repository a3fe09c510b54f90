package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/omarshaarawi/ffwrapped/internal/lineup"
	"github.com/omarshaarawi/ffwrapped/internal/models"
	"github.com/omarshaarawi/ffwrapped/internal/scoring"
	"github.com/omarshaarawi/ffwrapped/internal/stats"
)

// weekConcurrency caps concurrent week assemblies (and their fetches).
const weekConcurrency = 4

// Engine scores raw stat records and assembles weekly lineups for one
// league's configuration.
type Engine struct {
	Registry *stats.Registry
	Scoring  scoring.Config
	Roster   lineup.RosterConfig
	// DisplayOrder is passed through to lineup.Assemble.
	DisplayOrder []string
	SkillOnly    bool
}

// NewEngine validates the scoring and roster configuration up front.
func NewEngine(registry *stats.Registry, cfg scoring.Config, roster lineup.RosterConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &lineup.ConfigurationError{Field: "scoring", Reason: err.Error()}
	}
	if err := roster.Validate(); err != nil {
		return nil, err
	}
	if registry == nil {
		registry = stats.DefaultRegistry()
	}
	return &Engine{Registry: registry, Scoring: cfg, Roster: roster}, nil
}

// ScorePlayers scores each player's record for week. Players without a
// record are reported as warnings and left out, except in ModeActual where a
// player who was started keeps the slot at 0 points.
func (e *Engine) ScorePlayers(week int, players []models.RosteredPlayer, mode lineup.Mode) ([]lineup.PlayerScore, []lineup.MissingDataWarning, error) {
	scored := make([]lineup.PlayerScore, 0, len(players))
	var warnings []lineup.MissingDataWarning

	for _, p := range players {
		if p.Record == nil {
			w := lineup.MissingDataWarning{PlayerID: p.PlayerID, Name: p.Name, Week: week}
			slog.Warn("Missing stat record", "player", p.PlayerID, "name", p.Name, "week", week)
			warnings = append(warnings, w)
			if mode == lineup.ModeActual && p.Started {
				scored = append(scored, lineup.PlayerScore{ID: p.PlayerID, Name: p.Name, Position: p.Position, Started: true})
			}
			continue
		}

		canonical, err := e.Registry.NormalizeRecord(*p.Record)
		if err != nil {
			return nil, nil, fmt.Errorf("normalizing player %d week %d: %w", p.PlayerID, week, err)
		}

		scored = append(scored, lineup.PlayerScore{
			ID:       p.PlayerID,
			Name:     p.Name,
			Position: p.Position,
			Points:   scoring.Score(canonical, e.Scoring),
			Started:  p.Started,
		})
	}
	return scored, warnings, nil
}

// Week builds one week's lineup.
func (e *Engine) Week(week int, players []models.RosteredPlayer, mode lineup.Mode) (*lineup.Result, error) {
	scored, warnings, err := e.ScorePlayers(week, players, mode)
	if err != nil {
		return nil, err
	}

	result, err := lineup.Assemble(scored, e.Roster, lineup.Options{
		GroupOptions: lineup.GroupOptions{SortKeys: mode.SortKeys(), SkillOnly: e.SkillOnly},
		DisplayOrder: e.DisplayOrder,
	})
	if err != nil {
		return nil, err
	}

	result.Week = week
	result.Warnings = warnings
	return result, nil
}

// WeekFetcher returns the rostered players for one week.
type WeekFetcher func(ctx context.Context, week int) ([]models.RosteredPlayer, error)

// Season assembles weeks concurrently. Results are in week order and the
// first failure cancels the rest.
func (e *Engine) Season(ctx context.Context, weeks []int, mode lineup.Mode, fetch WeekFetcher) ([]lineup.Result, float64, error) {
	results := make([]lineup.Result, len(weeks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(weekConcurrency)

	for i, week := range weeks {
		g.Go(func() error {
			players, err := fetch(ctx, week)
			if err != nil {
				return err
			}
			result, err := e.Week(week, players, mode)
			if err != nil {
				return fmt.Errorf("week %d: %w", week, err)
			}
			results[i] = *result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	var total float64
	for _, r := range results {
		total += r.Starters.Points()
	}
	return results, scoring.Round(total), nil
}

// Weeks returns 1..n.
func Weeks(n int) []int {
	weeks := make([]int, n)
	for i := range weeks {
		weeks[i] = i + 1
	}
	return weeks
}
