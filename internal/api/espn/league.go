package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/omarshaarawi/ffwrapped/internal/lineup"
	"github.com/omarshaarawi/ffwrapped/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) leagueEndpoint() string {
	return fmt.Sprintf("/seasons/%s/segments/0/leagues/%s", a.client.Config.Year, a.client.Config.LeagueID)
}

func (a *API) season() int {
	year, _ := strconv.Atoi(a.client.Config.Year)
	return year
}

func filterHeader(filter map[string]interface{}) (map[string]string, error) {
	filterJSON, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("error marshalling filters: %w", err)
	}
	return map[string]string{"x-fantasy-filter": string(filterJSON)}, nil
}

func (a *API) GetLeagueMetadata(ctx context.Context) (*models.LeagueMetadata, error) {
	var espnResponse models.LeagueResponse
	params := map[string]string{
		"view": "mSettings",
	}

	if err := a.client.Get(ctx, a.leagueEndpoint(), params, nil, &espnResponse); err != nil {
		return nil, fmt.Errorf("fetching league metadata: %w", err)
	}

	metadata := &models.LeagueMetadata{
		LeagueID:             espnResponse.ID,
		Name:                 espnResponse.Settings.Name,
		CurrentWeek:          espnResponse.Status.CurrentMatchupPeriod,
		CurrentScoringPeriod: espnResponse.ScoringPeriodID,
		SeasonID:             espnResponse.SeasonID,
		FirstWeek:            espnResponse.Status.FirstScoringPeriod,
		LastWeek:             espnResponse.Status.FinalScoringPeriod,
		IsActive:             espnResponse.Status.IsActive,
		LastUpdated:          time.Now(),
	}

	return metadata, nil
}

// GetLeagueSettings translates the league's scoring items and lineup slot
// counts into engine configuration.
func (a *API) GetLeagueSettings(ctx context.Context) (*models.LeagueSettings, error) {
	var espnResponse models.LeagueResponse
	params := map[string]string{
		"view": "mSettings",
	}

	if err := a.client.Get(ctx, a.leagueEndpoint(), params, nil, &espnResponse); err != nil {
		return nil, fmt.Errorf("fetching league settings: %w", err)
	}

	cfg, unmapped := scoringConfig(espnResponse.Settings.ScoringSettings.ScoringItems)
	if len(unmapped) > 0 {
		slog.Debug("Unscored ESPN stat ids", "statIds", unmapped)
	}

	settings := &models.LeagueSettings{
		LeagueID: espnResponse.ID,
		Season:   espnResponse.SeasonID,
		Name:     espnResponse.Settings.Name,
		Scoring:  cfg,
		Roster:   rosterConfig(espnResponse.Settings.RosterSettings.LineupSlotCounts),
	}
	if settings.Season == 0 {
		settings.Season = a.season()
	}

	return settings, nil
}

func (a *API) GetTeams(ctx context.Context) ([]models.FantasyTeam, error) {
	var leagueResponse models.LeagueResponse
	params := map[string]string{
		"view": "mTeam",
	}

	if err := a.client.Get(ctx, a.leagueEndpoint(), params, nil, &leagueResponse); err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}

	teams := make([]models.FantasyTeam, len(leagueResponse.Teams))
	for i, team := range leagueResponse.Teams {
		teams[i] = models.FantasyTeam{
			ID:           team.ID,
			Name:         teamName(team),
			Abbreviation: team.Abbreviation,
		}
	}
	return teams, nil
}

// Older seasons only carry location and nickname.
func teamName(team models.Team) string {
	if team.Name != "" {
		return team.Name
	}
	return strings.TrimSpace(team.Location + " " + team.Nickname)
}

// GetBoxScores returns every team's roster for week with each player's actual
// stat line. Both sides of every matchup are included; a bye has one.
func (a *API) GetBoxScores(ctx context.Context, week int) ([]models.TeamBoxScore, error) {
	var scoreboardResponse models.ScoreboardResponse

	params := map[string]string{
		"view":            "mBoxscore,mMatchupScore",
		"scoringPeriodId": strconv.Itoa(week),
	}

	headers, err := filterHeader(map[string]interface{}{
		"schedule": map[string]interface{}{
			"filterMatchupPeriodIds": map[string]interface{}{
				"value": []int{week},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	if err := a.client.Get(ctx, a.leagueEndpoint(), params, headers, &scoreboardResponse); err != nil {
		return nil, fmt.Errorf("fetching week %d box scores: %w", week, err)
	}

	season := a.season()
	var boxScores []models.TeamBoxScore
	for _, match := range scoreboardResponse.Schedule {
		if match.MatchupPeriodID != 0 && match.MatchupPeriodID != week {
			continue
		}
		boxScores = append(boxScores, teamBoxScore(match.Home, season, week))
		if match.Away != nil {
			boxScores = append(boxScores, teamBoxScore(*match.Away, season, week))
		}
	}
	return boxScores, nil
}

func teamBoxScore(side models.TeamScore, season, week int) models.TeamBoxScore {
	box := models.TeamBoxScore{
		TeamID:  side.TeamID,
		Week:    week,
		Players: make([]models.RosteredPlayer, 0, len(side.RosterForCurrentScoringPeriod.Entries)),
	}

	for _, entry := range side.RosterForCurrentScoringPeriod.Entries {
		player := entry.PlayerPoolEntry.Player
		playerID := entry.PlayerID
		if playerID == 0 {
			playerID = player.ID
		}

		rostered := models.RosteredPlayer{
			PlayerID:   playerID,
			Name:       player.FullName,
			Position:   getPositionString(player.DefaultPositionID),
			LineupSlot: getLineupSlotString(entry.LineupSlotID),
			Started:    isStartingLineup(entry.LineupSlotID),
		}
		if stat, ok := actualWeek(player, week); ok {
			rec := toRecord(playerID, season, week, stat.Stats)
			rostered.Record = &rec
		}
		box.Players = append(box.Players, rostered)
	}
	return box
}

func (a *API) GetDraft(ctx context.Context) ([]models.DraftPick, error) {
	var leagueResponse models.LeagueResponse
	params := map[string]string{
		"view": "mDraftDetail",
	}

	if err := a.client.Get(ctx, a.leagueEndpoint(), params, nil, &leagueResponse); err != nil {
		return nil, fmt.Errorf("fetching draft: %w", err)
	}

	if !leagueResponse.DraftDetail.Drafted {
		return nil, fmt.Errorf("league %s has not drafted for %s", a.client.Config.LeagueID, a.client.Config.Year)
	}

	picks := make([]models.DraftPick, len(leagueResponse.DraftDetail.Picks))
	for i, pick := range leagueResponse.DraftDetail.Picks {
		picks[i] = models.DraftPick{
			PlayerID: pick.PlayerID,
			TeamID:   pick.TeamID,
			Round:    pick.RoundID,
			Pick:     pick.OverallPickNumber,
		}
	}
	return picks, nil
}

// GetPlayerSeasons fetches player cards for ids with every actual weekly stat
// line of the season.
func (a *API) GetPlayerSeasons(ctx context.Context, ids []int) ([]models.PlayerSeason, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var cardResponse models.PlayerCardResponse
	params := map[string]string{
		"view": "kona_playercard",
	}

	headers, err := filterHeader(map[string]interface{}{
		"players": map[string]interface{}{
			"filterIds": map[string]interface{}{
				"value": ids,
			},
			"filterStatsForTopScoringPeriodIds": map[string]interface{}{
				"value":           lineup.SeasonLength,
				"additionalValue": []string{"00" + a.client.Config.Year},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	if err := a.client.Get(ctx, a.leagueEndpoint(), params, headers, &cardResponse); err != nil {
		return nil, fmt.Errorf("fetching player cards: %w", err)
	}

	season := a.season()
	seasons := make([]models.PlayerSeason, 0, len(cardResponse.Players))
	for _, entry := range cardResponse.Players {
		player := entry.Player
		ps := models.PlayerSeason{
			PlayerID: player.ID,
			Name:     player.FullName,
			Position: getPositionString(player.DefaultPositionID),
		}
		for week := 1; week <= lineup.SeasonLength; week++ {
			if stat, ok := actualWeek(player, week); ok {
				ps.Records = append(ps.Records, toRecord(player.ID, season, week, stat.Stats))
			}
		}
		seasons = append(seasons, ps)
	}
	return seasons, nil
}

// League returns the configured league id and season.
func (a *API) League() (leagueID, season int) {
	leagueID, _ = strconv.Atoi(a.client.Config.LeagueID)
	return leagueID, a.season()
}
