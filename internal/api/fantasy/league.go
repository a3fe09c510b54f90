package fantasy

import (
	"context"
	"log/slog"

	"github.com/omarshaarawi/ffwrapped/internal/api/espn"
	"github.com/omarshaarawi/ffwrapped/internal/lineup"
	"github.com/omarshaarawi/ffwrapped/internal/models"
	"github.com/omarshaarawi/ffwrapped/internal/repository/memory"
)

type API struct {
	espnAPI *espn.API
	repo    *memory.Repository
}

func NewAPI(espnAPI *espn.API, repo *memory.Repository) *API {
	return &API{espnAPI: espnAPI, repo: repo}
}

func (a *API) League() memory.LeagueKey {
	leagueID, season := a.espnAPI.League()
	return memory.LeagueKey{LeagueID: leagueID, Season: season}
}

func (a *API) GetLeagueMetadata(ctx context.Context) (*models.LeagueMetadata, error) {
	return a.espnAPI.GetLeagueMetadata(ctx)
}

// GetLeagueSettings serves from the league cache and fetches on a miss.
func (a *API) GetLeagueSettings(ctx context.Context) (*models.LeagueSettings, error) {
	key := a.League()
	if settings, ok := a.repo.GetSettings(key); ok {
		return settings, nil
	}

	settings, err := a.espnAPI.GetLeagueSettings(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded league settings", "league", settings.LeagueID, "season", settings.Season, "slots", len(settings.Roster))
	a.repo.SaveSettings(settings)
	return settings, nil
}

func (a *API) GetTeams(ctx context.Context) ([]models.FantasyTeam, error) {
	return a.espnAPI.GetTeams(ctx)
}

func (a *API) GetBoxScores(ctx context.Context, week int) ([]models.TeamBoxScore, error) {
	return a.espnAPI.GetBoxScores(ctx, week)
}

func (a *API) GetDraft(ctx context.Context) ([]models.DraftPick, error) {
	return a.espnAPI.GetDraft(ctx)
}

func (a *API) GetPlayerSeasons(ctx context.Context, ids []int) ([]models.PlayerSeason, error) {
	return a.espnAPI.GetPlayerSeasons(ctx, ids)
}

// SelectTeamLineup picks teamID's box score for week. Anything other than
// exactly one match is an *lineup.AmbiguousMatchError.
func SelectTeamLineup(boxScores []models.TeamBoxScore, teamID, week int) (*models.TeamBoxScore, error) {
	var match *models.TeamBoxScore
	matches := 0
	for i := range boxScores {
		if boxScores[i].TeamID == teamID {
			match = &boxScores[i]
			matches++
		}
	}
	if matches != 1 {
		return nil, &lineup.AmbiguousMatchError{TeamID: teamID, Week: week, Matches: matches}
	}
	return match, nil
}
