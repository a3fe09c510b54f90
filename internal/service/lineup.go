package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/omarshaarawi/ffwrapped/internal/api/fantasy"
	"github.com/omarshaarawi/ffwrapped/internal/cache"
	"github.com/omarshaarawi/ffwrapped/internal/lineup"
	"github.com/omarshaarawi/ffwrapped/internal/models"
	"github.com/omarshaarawi/ffwrapped/internal/repository/memory"
	"github.com/omarshaarawi/ffwrapped/internal/scoring"
	"github.com/omarshaarawi/ffwrapped/internal/stats"
)

// Lineup sources.
const (
	SourceDrafted = "drafted"
	SourceActual  = "actual"
)

// playerCardBatch caps the ids sent in one player card request.
const playerCardBatch = 50

// ErrNoStore is returned by operations that need the relational store when
// none is configured.
var ErrNoStore = errors.New("no database configured")

// ErrNoDraft is returned when a team has no stored draft.
var ErrNoDraft = errors.New("no drafted roster")

type LeagueAPI interface {
	League() memory.LeagueKey
	GetLeagueMetadata(ctx context.Context) (*models.LeagueMetadata, error)
	GetLeagueSettings(ctx context.Context) (*models.LeagueSettings, error)
	GetTeams(ctx context.Context) ([]models.FantasyTeam, error)
	GetBoxScores(ctx context.Context, week int) ([]models.TeamBoxScore, error)
	GetDraft(ctx context.Context) ([]models.DraftPick, error)
	GetPlayerSeasons(ctx context.Context, ids []int) ([]models.PlayerSeason, error)
}

type MetadataRepository interface {
	SaveMetadata(metadata *models.LeagueMetadata)
	GetMetadata() *models.LeagueMetadata
}

type Store interface {
	SaveDraft(ctx context.Context, leagueID, season int, players []models.DraftedPlayer) error
	DraftedPlayers(ctx context.Context, leagueID, season, teamID int) ([]models.DraftedPlayer, error)
	SaveStatRecords(ctx context.Context, records []stats.Record) error
	StatRecords(ctx context.Context, season int, playerIDs []int) ([]stats.Record, error)
	SaveLeagueSettings(ctx context.Context, settings *models.LeagueSettings) error
	LeagueSettings(ctx context.Context, leagueID, season int) (*models.LeagueSettings, error)
}

type ResultCache interface {
	Get(ctx context.Context, key cache.Key) (*models.SeasonLineup, bool, error)
	Set(ctx context.Context, key cache.Key, season *models.SeasonLineup) error
	Invalidate(ctx context.Context, leagueID, season int) error
}

type Option func(*LineupService)

// WithStore enables drafted-roster lineups and settings persistence.
func WithStore(store Store) Option {
	return func(s *LineupService) { s.store = store }
}

// WithCache caches season lineups.
func WithCache(c ResultCache) Option {
	return func(s *LineupService) { s.cache = c }
}

func WithRegistry(r *stats.Registry) Option {
	return func(s *LineupService) { s.registry = r }
}

type LineupService struct {
	api      LeagueAPI
	repo     MetadataRepository
	store    Store
	cache    ResultCache
	registry *stats.Registry
}

func NewLineupService(api LeagueAPI, repo MetadataRepository, opts ...Option) *LineupService {
	s := &LineupService{api: api, repo: repo, registry: stats.DefaultRegistry()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LineupService) GetCurrentWeek(ctx context.Context) (int, error) {
	metadata, err := s.getLeagueMetadata(ctx)
	if err != nil {
		return 0, err
	}

	slog.Info("Current week", "week", metadata.CurrentWeek)
	return metadata.CurrentWeek, nil
}

func (s *LineupService) getLeagueMetadata(ctx context.Context) (*models.LeagueMetadata, error) {
	metadata := s.repo.GetMetadata()
	if metadata == nil || time.Since(metadata.LastUpdated) > 24*time.Hour {
		newMetadata, err := s.api.GetLeagueMetadata(ctx)
		if err != nil {
			return nil, err
		}
		s.repo.SaveMetadata(newMetadata)
		return newMetadata, nil
	}
	return metadata, nil
}

// LastCompletedWeek is the week before the current one, or 1 early in the
// season.
func (s *LineupService) LastCompletedWeek(ctx context.Context) (int, error) {
	week, err := s.GetCurrentWeek(ctx)
	if err != nil {
		return 0, err
	}
	if week > 1 {
		week--
	}
	return week, nil
}

// seasonWeeks stops at the current scoring period while the season is live.
func (s *LineupService) seasonWeeks(ctx context.Context) ([]int, error) {
	metadata, err := s.getLeagueMetadata(ctx)
	if err != nil {
		return nil, err
	}
	last := lineup.SeasonLength
	if metadata.IsActive && metadata.CurrentScoringPeriod > 0 && metadata.CurrentScoringPeriod < last {
		last = metadata.CurrentScoringPeriod
	}
	return Weeks(last), nil
}

// Settings loads league settings from ESPN, falling back to the store when
// ESPN is unavailable.
func (s *LineupService) Settings(ctx context.Context) (*models.LeagueSettings, error) {
	settings, err := s.api.GetLeagueSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if s.store == nil {
		return nil, fmt.Errorf("error fetching league settings: %w", err)
	}

	key := s.api.League()
	stored, storeErr := s.store.LeagueSettings(ctx, key.LeagueID, key.Season)
	if storeErr != nil {
		return nil, fmt.Errorf("error fetching league settings: %w", errors.Join(err, storeErr))
	}
	slog.Warn("Using stored league settings", "league", key.LeagueID, "season", key.Season, "error", err)
	return stored, nil
}

func (s *LineupService) engine(ctx context.Context) (*Engine, *models.LeagueSettings, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, nil, err
	}
	engine, err := NewEngine(s.registry, settings.Scoring, settings.Roster)
	if err != nil {
		return nil, nil, err
	}
	engine.DisplayOrder = lineup.DefaultDisplayOrder
	return engine, settings, nil
}

func (s *LineupService) cached(ctx context.Context, key cache.Key) *models.SeasonLineup {
	if s.cache == nil {
		return nil
	}
	season, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		slog.Error("Error reading lineup cache", "key", key.String(), "error", err)
		return nil
	}
	if ok {
		slog.Debug("Lineup cache hit", "key", key.String())
	}
	return season
}

func (s *LineupService) saveCached(ctx context.Context, key cache.Key, season *models.SeasonLineup) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, season); err != nil {
		slog.Error("Error writing lineup cache", "key", key.String(), "error", err)
	}
}

// BestActual builds teamID's lineups from the rosters the team really
// carried each week.
func (s *LineupService) BestActual(ctx context.Context, teamID int, mode lineup.Mode) (*models.SeasonLineup, error) {
	engine, settings, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}

	weeks, err := s.seasonWeeks(ctx)
	if err != nil {
		return nil, err
	}

	key := cache.Key{LeagueID: settings.LeagueID, Season: settings.Season, TeamID: teamID, Source: SourceActual, Mode: mode, Through: len(weeks)}
	if season := s.cached(ctx, key); season != nil {
		return season, nil
	}

	results, total, err := engine.Season(ctx, weeks, mode, func(ctx context.Context, week int) ([]models.RosteredPlayer, error) {
		boxScores, err := s.api.GetBoxScores(ctx, week)
		if err != nil {
			return nil, err
		}
		box, err := fantasy.SelectTeamLineup(boxScores, teamID, week)
		if err != nil {
			return nil, err
		}
		return box.Players, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error building actual lineups for team %d: %w", teamID, err)
	}

	season := &models.SeasonLineup{
		LeagueID: settings.LeagueID,
		Season:   settings.Season,
		TeamID:   teamID,
		Source:   SourceActual,
		Mode:     mode,
		Total:    total,
		Weeks:    results,
	}
	s.saveCached(ctx, key, season)
	return season, nil
}

// BestDrafted builds teamID's lineups as if it had kept its drafted roster
// all season.
func (s *LineupService) BestDrafted(ctx context.Context, teamID int) (*models.SeasonLineup, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}

	engine, settings, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}

	key := cache.Key{LeagueID: settings.LeagueID, Season: settings.Season, TeamID: teamID, Source: SourceDrafted, Mode: lineup.ModeOptimal, Through: lineup.SeasonLength}
	if season := s.cached(ctx, key); season != nil {
		return season, nil
	}

	drafted, err := s.store.DraftedPlayers(ctx, settings.LeagueID, settings.Season, teamID)
	if err != nil {
		return nil, fmt.Errorf("error fetching drafted players: %w", err)
	}
	if len(drafted) == 0 {
		return nil, fmt.Errorf("team %d: %w", teamID, ErrNoDraft)
	}

	ids := make([]int, len(drafted))
	for i, p := range drafted {
		ids[i] = p.PlayerID
	}
	records, err := s.store.StatRecords(ctx, settings.Season, ids)
	if err != nil {
		return nil, fmt.Errorf("error fetching stat records: %w", err)
	}
	byWeek := stats.NewRecordIndex(records)

	results, total, err := engine.Season(ctx, Weeks(lineup.SeasonLength), lineup.ModeOptimal, func(ctx context.Context, week int) ([]models.RosteredPlayer, error) {
		players := make([]models.RosteredPlayer, len(drafted))
		for i, p := range drafted {
			players[i] = models.RosteredPlayer{
				PlayerID: p.PlayerID,
				Name:     p.Name,
				Position: p.Position,
				Record:   byWeek.Get(p.PlayerID, week),
			}
		}
		return players, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error building drafted lineups for team %d: %w", teamID, err)
	}

	season := &models.SeasonLineup{
		LeagueID: settings.LeagueID,
		Season:   settings.Season,
		TeamID:   teamID,
		Source:   SourceDrafted,
		Mode:     lineup.ModeOptimal,
		Total:    total,
		Weeks:    results,
	}
	s.saveCached(ctx, key, season)
	return season, nil
}

// WeeklyLineup builds teamID's lineup for one week from its box score.
func (s *LineupService) WeeklyLineup(ctx context.Context, teamID, week int, mode lineup.Mode) (*lineup.Result, error) {
	if week < 1 || week > lineup.SeasonLength {
		return nil, &lineup.ConfigurationError{Field: "week", Reason: fmt.Sprintf("must be between 1 and %d", lineup.SeasonLength)}
	}

	engine, _, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}

	boxScores, err := s.api.GetBoxScores(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("error fetching box scores: %w", err)
	}
	box, err := fantasy.SelectTeamLineup(boxScores, teamID, week)
	if err != nil {
		return nil, err
	}
	return engine.Week(week, box.Players, mode)
}

// Efficiency compares every team's set lineup with its optimal one for
// week, most points left on the bench first.
func (s *LineupService) Efficiency(ctx context.Context, week int) ([]models.TeamEfficiency, error) {
	engine, _, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}

	boxScores, err := s.api.GetBoxScores(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("error fetching box scores: %w", err)
	}

	teams, err := s.api.GetTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching teams: %w", err)
	}
	names := make(map[int]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}

	report := make([]models.TeamEfficiency, 0, len(boxScores))
	for _, box := range boxScores {
		optimal, err := engine.Week(week, box.Players, lineup.ModeOptimal)
		if err != nil {
			return nil, fmt.Errorf("team %d: %w", box.TeamID, err)
		}
		actual, err := engine.Week(week, box.Players, lineup.ModeActual)
		if err != nil {
			return nil, fmt.Errorf("team %d: %w", box.TeamID, err)
		}

		name, ok := names[box.TeamID]
		if !ok {
			name = fmt.Sprintf("Team %d", box.TeamID)
		}
		report = append(report, models.TeamEfficiency{
			TeamID:      box.TeamID,
			TeamName:    name,
			Week:        week,
			Actual:      actual.Starters.Points(),
			Optimal:     optimal.Starters.Points(),
			LeftOnBench: scoring.Round(optimal.Starters.Points() - actual.Starters.Points()),
		})
	}

	sort.SliceStable(report, func(i, j int) bool {
		if report[i].LeftOnBench != report[j].LeftOnBench {
			return report[i].LeftOnBench > report[j].LeftOnBench
		}
		return report[i].TeamID < report[j].TeamID
	})
	return report, nil
}

// SyncDraft stores the league's draft, every drafted player's season stat
// lines and the league settings. It returns the number of drafted players.
func (s *LineupService) SyncDraft(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, ErrNoStore
	}

	settings, err := s.api.GetLeagueSettings(ctx)
	if err != nil {
		return 0, fmt.Errorf("error fetching league settings: %w", err)
	}

	picks, err := s.api.GetDraft(ctx)
	if err != nil {
		return 0, fmt.Errorf("error fetching draft: %w", err)
	}

	ids := make([]int, len(picks))
	for i, pick := range picks {
		ids[i] = pick.PlayerID
	}

	players := make(map[int]models.PlayerSeason, len(ids))
	var records []stats.Record
	for start := 0; start < len(ids); start += playerCardBatch {
		end := min(start+playerCardBatch, len(ids))
		seasons, err := s.api.GetPlayerSeasons(ctx, ids[start:end])
		if err != nil {
			return 0, fmt.Errorf("error fetching player cards: %w", err)
		}
		for _, ps := range seasons {
			players[ps.PlayerID] = ps
			records = append(records, ps.Records...)
		}
	}

	drafted := make([]models.DraftedPlayer, 0, len(picks))
	for _, pick := range picks {
		ps, ok := players[pick.PlayerID]
		if !ok {
			slog.Warn("No player card for drafted player", "player", pick.PlayerID, "team", pick.TeamID)
			continue
		}
		drafted = append(drafted, models.DraftedPlayer{
			PlayerID: pick.PlayerID,
			TeamID:   pick.TeamID,
			Name:     ps.Name,
			Position: ps.Position,
			Round:    pick.Round,
			Pick:     pick.Pick,
		})
	}

	if err := s.store.SaveLeagueSettings(ctx, settings); err != nil {
		return 0, fmt.Errorf("error saving league settings: %w", err)
	}
	if err := s.store.SaveDraft(ctx, settings.LeagueID, settings.Season, drafted); err != nil {
		return 0, fmt.Errorf("error saving draft: %w", err)
	}
	if err := s.store.SaveStatRecords(ctx, records); err != nil {
		return 0, fmt.Errorf("error saving stat records: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, settings.LeagueID, settings.Season); err != nil {
			slog.Error("Error invalidating lineup cache", "error", err)
		}
	}

	slog.Info("Synced draft", "league", settings.LeagueID, "season", settings.Season, "players", len(drafted), "records", len(records))
	return len(drafted), nil
}
