package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/omarshaarawi/ffwrapped/internal/lineup"
	"github.com/omarshaarawi/ffwrapped/internal/models"
	"github.com/omarshaarawi/ffwrapped/internal/scoring"
	"github.com/omarshaarawi/ffwrapped/internal/stats"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Store persists drafted rosters, raw weekly stat records and league
// settings.
type Store struct {
	db *sql.DB
}

// New opens a pooled connection to dsn and verifies it.
func New(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewWithDB(db), nil
}

func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate creates the tables when they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SaveDraft replaces the league season's draft with players.
func (s *Store) SaveDraft(ctx context.Context, leagueID, season int, players []models.DraftedPlayer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	playerQuery := `
		INSERT INTO players (player_id, name, position)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id) DO UPDATE SET
			name = EXCLUDED.name,
			position = EXCLUDED.position
	`
	pickQuery := `
		INSERT INTO draft_picks (league_id, season, team_id, player_id, round, pick)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if _, err := tx.ExecContext(ctx, `DELETE FROM draft_picks WHERE league_id = $1 AND season = $2`, leagueID, season); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}

	for _, p := range players {
		if _, err := tx.ExecContext(ctx, playerQuery, p.PlayerID, p.Name, p.Position); err != nil {
			return fmt.Errorf("failed to upsert player %d: %w", p.PlayerID, err)
		}
		if _, err := tx.ExecContext(ctx, pickQuery, leagueID, season, p.TeamID, p.PlayerID, p.Round, p.Pick); err != nil {
			return fmt.Errorf("failed to insert pick for player %d: %w", p.PlayerID, err)
		}
	}

	return tx.Commit()
}

// DraftedPlayers returns the players teamID drafted, in pick order.
func (s *Store) DraftedPlayers(ctx context.Context, leagueID, season, teamID int) ([]models.DraftedPlayer, error) {
	query := `
		SELECT d.player_id, d.team_id, p.name, p.position, d.round, d.pick
		FROM draft_picks d
		JOIN players p ON p.player_id = d.player_id
		WHERE d.league_id = $1 AND d.season = $2 AND d.team_id = $3
		ORDER BY d.pick
	`

	rows, err := s.db.QueryContext(ctx, query, leagueID, season, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []models.DraftedPlayer
	for rows.Next() {
		var p models.DraftedPlayer
		if err := rows.Scan(&p.PlayerID, &p.TeamID, &p.Name, &p.Position, &p.Round, &p.Pick); err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	return players, rows.Err()
}

// SaveStatRecords upserts raw records keyed by player, season, week and
// source.
func (s *Store) SaveStatRecords(ctx context.Context, records []stats.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO stat_records (player_id, season, week, source, fields, recorded_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (player_id, season, week, source) DO UPDATE SET
			fields = EXCLUDED.fields,
			recorded_at = EXCLUDED.recorded_at
	`

	for _, rec := range records {
		fields, err := encodeFields(rec.Fields)
		if err != nil {
			return fmt.Errorf("encoding player %d week %d: %w", rec.PlayerID, rec.Week, err)
		}
		if _, err := tx.ExecContext(ctx, query, rec.PlayerID, rec.Season, rec.Week, rec.Source, fields); err != nil {
			return fmt.Errorf("failed to upsert player %d week %d: %w", rec.PlayerID, rec.Week, err)
		}
	}

	return tx.Commit()
}

// StatRecords returns every stored record for playerIDs in season.
func (s *Store) StatRecords(ctx context.Context, season int, playerIDs []int) ([]stats.Record, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT player_id, season, week, source, fields
		FROM stat_records
		WHERE season = $1 AND player_id = ANY($2)
		ORDER BY week, player_id, source
	`

	ids := make([]int64, len(playerIDs))
	for i, id := range playerIDs {
		ids[i] = int64(id)
	}

	rows, err := s.db.QueryContext(ctx, query, season, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []stats.Record
	for rows.Next() {
		var rec stats.Record
		var fields []byte
		if err := rows.Scan(&rec.PlayerID, &rec.Season, &rec.Week, &rec.Source, &fields); err != nil {
			return nil, err
		}
		if rec.Fields, err = decodeFields(fields); err != nil {
			return nil, fmt.Errorf("decoding player %d week %d: %w", rec.PlayerID, rec.Week, err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (s *Store) SaveLeagueSettings(ctx context.Context, settings *models.LeagueSettings) error {
	scoringJSON, err := json.Marshal(settings.Scoring)
	if err != nil {
		return fmt.Errorf("encoding scoring: %w", err)
	}
	rosterJSON, err := json.Marshal(settings.Roster)
	if err != nil {
		return fmt.Errorf("encoding roster: %w", err)
	}

	query := `
		INSERT INTO league_settings (league_id, season, name, scoring, roster, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (league_id, season) DO UPDATE SET
			name = EXCLUDED.name,
			scoring = EXCLUDED.scoring,
			roster = EXCLUDED.roster,
			updated_at = EXCLUDED.updated_at
	`

	_, err = s.db.ExecContext(ctx, query, settings.LeagueID, settings.Season, settings.Name, scoringJSON, rosterJSON)
	return err
}

func (s *Store) LeagueSettings(ctx context.Context, leagueID, season int) (*models.LeagueSettings, error) {
	query := `
		SELECT name, scoring, roster
		FROM league_settings
		WHERE league_id = $1 AND season = $2
	`

	var name string
	var scoringJSON, rosterJSON []byte
	err := s.db.QueryRowContext(ctx, query, leagueID, season).Scan(&name, &scoringJSON, &rosterJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return decodeSettings(leagueID, season, name, scoringJSON, rosterJSON)
}

func decodeSettings(leagueID, season int, name string, scoringJSON, rosterJSON []byte) (*models.LeagueSettings, error) {
	settings := &models.LeagueSettings{LeagueID: leagueID, Season: season, Name: name}
	var cfg scoring.Config
	if err := json.Unmarshal(scoringJSON, &cfg); err != nil {
		return nil, fmt.Errorf("decoding scoring: %w", err)
	}
	var roster lineup.RosterConfig
	if err := json.Unmarshal(rosterJSON, &roster); err != nil {
		return nil, fmt.Errorf("decoding roster: %w", err)
	}
	settings.Scoring = cfg
	settings.Roster = roster
	return settings, nil
}

func encodeFields(fields map[string]float64) ([]byte, error) {
	if fields == nil {
		fields = map[string]float64{}
	}
	return json.Marshal(fields)
}

func decodeFields(data []byte) (map[string]float64, error) {
	fields := map[string]float64{}
	if len(data) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
