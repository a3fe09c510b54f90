package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/omarshaarawi/ffwrapped/internal/cache"
	"github.com/omarshaarawi/ffwrapped/internal/lineup"
	"github.com/omarshaarawi/ffwrapped/internal/models"
	"github.com/omarshaarawi/ffwrapped/internal/repository/memory"
	"github.com/omarshaarawi/ffwrapped/internal/scoring"
	"github.com/omarshaarawi/ffwrapped/internal/stats"
)

var errESPNDown = errors.New("espn unavailable")

// fakeAPI implements LeagueAPI from fixed data.
type fakeAPI struct {
	mu          sync.Mutex
	settings    *models.LeagueSettings
	settingsErr error
	metadata    *models.LeagueMetadata
	teams       []models.FantasyTeam
	boxScores   func(week int) []models.TeamBoxScore
	draft       []models.DraftPick
	seasons     map[int]models.PlayerSeason

	metadataCalls int
	boxScoreCalls int
}

func (f *fakeAPI) League() memory.LeagueKey {
	return memory.LeagueKey{LeagueID: 99, Season: 2023}
}

func (f *fakeAPI) GetLeagueMetadata(ctx context.Context) (*models.LeagueMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.metadataCalls++
	return f.metadata, nil
}

func (f *fakeAPI) GetLeagueSettings(ctx context.Context) (*models.LeagueSettings, error) {
	if f.settingsErr != nil {
		return nil, f.settingsErr
	}
	return f.settings, nil
}

func (f *fakeAPI) GetTeams(ctx context.Context) ([]models.FantasyTeam, error) {
	return f.teams, nil
}

func (f *fakeAPI) GetBoxScores(ctx context.Context, week int) ([]models.TeamBoxScore, error) {
	f.mu.Lock()
	f.boxScoreCalls++
	f.mu.Unlock()
	return f.boxScores(week), nil
}

func (f *fakeAPI) GetDraft(ctx context.Context) ([]models.DraftPick, error) {
	return f.draft, nil
}

func (f *fakeAPI) GetPlayerSeasons(ctx context.Context, ids []int) ([]models.PlayerSeason, error) {
	var out []models.PlayerSeason
	for _, id := range ids {
		if ps, ok := f.seasons[id]; ok {
			out = append(out, ps)
		}
	}
	return out, nil
}

// fakeStore implements Store in memory.
type fakeStore struct {
	drafted  []models.DraftedPlayer
	records  []stats.Record
	settings *models.LeagueSettings
}

func (f *fakeStore) SaveDraft(ctx context.Context, leagueID, season int, players []models.DraftedPlayer) error {
	f.drafted = players
	return nil
}

func (f *fakeStore) DraftedPlayers(ctx context.Context, leagueID, season, teamID int) ([]models.DraftedPlayer, error) {
	var out []models.DraftedPlayer
	for _, p := range f.drafted {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) SaveStatRecords(ctx context.Context, records []stats.Record) error {
	f.records = append(f.records, records...)
	return nil
}

func (f *fakeStore) StatRecords(ctx context.Context, season int, playerIDs []int) ([]stats.Record, error) {
	return f.records, nil
}

func (f *fakeStore) SaveLeagueSettings(ctx context.Context, settings *models.LeagueSettings) error {
	f.settings = settings
	return nil
}

func (f *fakeStore) LeagueSettings(ctx context.Context, leagueID, season int) (*models.LeagueSettings, error) {
	if f.settings == nil {
		return nil, errors.New("not found")
	}
	return f.settings, nil
}

// fakeCache implements ResultCache in memory.
type fakeCache struct {
	mu          sync.Mutex
	entries     map[string]*models.SeasonLineup
	invalidated int
}

func (f *fakeCache) Get(ctx context.Context, key cache.Key) (*models.SeasonLineup, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	season, ok := f.entries[key.String()]
	return season, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key cache.Key, season *models.SeasonLineup) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.entries == nil {
		f.entries = make(map[string]*models.SeasonLineup)
	}
	f.entries[key.String()] = season
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context, leagueID, season int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated++
	f.entries = nil
	return nil
}

// fakeRepo implements MetadataRepository.
type fakeRepo struct {
	metadata *models.LeagueMetadata
}

func (f *fakeRepo) SaveMetadata(metadata *models.LeagueMetadata) { f.metadata = metadata }
func (f *fakeRepo) GetMetadata() *models.LeagueMetadata { return f.metadata }

func testSettings() *models.LeagueSettings {
	return &models.LeagueSettings{
		LeagueID: 99,
		Season:   2023,
		Scoring: scoring.Config{
			stats.PassYds: 0.04,
			stats.PassTD:  4,
			stats.RushYds: 0.1,
			stats.RushTD:  6,
			stats.Rec:     1,
			stats.RecYds:  0.1,
		},
		Roster: lineup.RosterConfig{
			{Label: lineup.QB, Count: 1},
			{Label: lineup.RB, Count: 1},
			{Label: lineup.WR, Count: 1},
			{Label: "RB/WR/TE", Count: 1},
			{Label: "BE", Count: 3},
		},
	}
}

func espnRecord(playerID, week int, fields map[string]float64) *stats.Record {
	return &stats.Record{PlayerID: playerID, Week: week, Season: 2023, Source: "espn", Fields: fields}
}

// teamOneRoster scores Alice 18, Bob 5, Carl 18, Dana 11, Eve 3; Finn has
// no stats. The set lineup started Bob over Carl.
func teamOneRoster(week int) []models.RosteredPlayer {
	return []models.RosteredPlayer{
		{PlayerID: 1, Name: "Alice", Position: lineup.QB, Started: true,
			Record: espnRecord(1, week, map[string]float64{"passingYards": 250, "passingTouchdowns": 2})},
		{PlayerID: 2, Name: "Bob", Position: lineup.RB, Started: true,
			Record: espnRecord(2, week, map[string]float64{"rushingYards": 50})},
		{PlayerID: 3, Name: "Carl", Position: lineup.RB,
			Record: espnRecord(3, week, map[string]float64{"rushingYards": 120, "rushingTouchdowns": 1})},
		{PlayerID: 4, Name: "Dana", Position: lineup.WR, Started: true,
			Record: espnRecord(4, week, map[string]float64{"receivingReceptions": 5, "receivingYards": 60})},
		{PlayerID: 5, Name: "Eve", Position: lineup.WR, Started: true,
			Record: espnRecord(5, week, map[string]float64{"receivingReceptions": 2, "receivingYards": 10})},
		{PlayerID: 6, Name: "Finn", Position: lineup.TE},
	}
}

// teamTwoRoster started its best players.
func teamTwoRoster(week int) []models.RosteredPlayer {
	return []models.RosteredPlayer{
		{PlayerID: 11, Name: "Gus", Position: lineup.QB, Started: true,
			Record: espnRecord(11, week, map[string]float64{"passingYards": 200})},
		{PlayerID: 12, Name: "Hal", Position: lineup.RB, Started: true,
			Record: espnRecord(12, week, map[string]float64{"rushingYards": 40})},
		{PlayerID: 13, Name: "Ike", Position: lineup.WR, Started: true,
			Record: espnRecord(13, week, map[string]float64{"receivingReceptions": 1})},
	}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		settings: testSettings(),
		metadata: &models.LeagueMetadata{LeagueID: 99, SeasonID: 2023, CurrentWeek: 3, CurrentScoringPeriod: 3, LastUpdated: time.Now()},
		teams: []models.FantasyTeam{
			{ID: 1, Name: "Coach Dad", Abbreviation: "DAD"},
			{ID: 2, Name: "Beyond Cursed", Abbreviation: "CURS"},
			{ID: 3, Name: "Stairway to Evans", Abbreviation: "STE"},
		},
		boxScores: func(week int) []models.TeamBoxScore {
			return []models.TeamBoxScore{
				{TeamID: 1, Week: week, Players: teamOneRoster(week)},
				{TeamID: 2, Week: week, Players: teamTwoRoster(week)},
			}
		},
	}
}
