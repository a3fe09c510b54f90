package models

import (
	"time"

	"github.com/omarshaarawi/ffwrapped/internal/lineup"
	"github.com/omarshaarawi/ffwrapped/internal/scoring"
	"github.com/omarshaarawi/ffwrapped/internal/stats"
)

type LeagueMetadata struct {
	LeagueID             int
	Name                 string
	CurrentWeek          int
	CurrentScoringPeriod int
	SeasonID             int
	FirstWeek            int
	LastWeek             int
	IsActive             bool
	LastUpdated          time.Time
}

// LeagueSettings is a league's scoring and roster setup for one season.
type LeagueSettings struct {
	LeagueID int                 `json:"leagueId" yaml:"leagueId"`
	Season   int                 `json:"season" yaml:"season"`
	Name     string              `json:"name,omitempty" yaml:"name,omitempty"`
	Scoring  scoring.Config      `json:"scoring" yaml:"scoring"`
	Roster   lineup.RosterConfig `json:"roster" yaml:"roster"`
}

type FantasyTeam struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// RosteredPlayer is a player on a fantasy roster for one week. Record is nil
// when no actual stat line exists for the week.
type RosteredPlayer struct {
	PlayerID   int
	Name       string
	Position   string
	LineupSlot string
	Started    bool
	Record     *stats.Record
}

// TeamBoxScore is one fantasy team's roster for a scoring period.
type TeamBoxScore struct {
	TeamID  int
	Week    int
	Players []RosteredPlayer
}

type DraftPick struct {
	PlayerID int
	TeamID   int
	Round    int
	Pick     int
}

// DraftedPlayer is a drafted player with the identity needed to score them.
type DraftedPlayer struct {
	PlayerID int    `json:"playerId" yaml:"playerId"`
	TeamID   int    `json:"teamId" yaml:"teamId"`
	Name     string `json:"name" yaml:"name"`
	Position string `json:"position" yaml:"position"`
	Round    int    `json:"round,omitempty" yaml:"round,omitempty"`
	Pick     int    `json:"pick,omitempty" yaml:"pick,omitempty"`
}

// PlayerSeason is a player's identity and every actual weekly stat line.
type PlayerSeason struct {
	PlayerID int
	Name     string
	Position string
	Records  []stats.Record
}

// SeasonLineup is a team's lineup for every week of a season.
type SeasonLineup struct {
	LeagueID int             `json:"leagueId" yaml:"leagueId"`
	Season   int             `json:"season" yaml:"season"`
	TeamID   int             `json:"teamId" yaml:"teamId"`
	Source   string          `json:"source" yaml:"source"`
	Mode     lineup.Mode     `json:"mode" yaml:"mode"`
	Total    float64         `json:"total" yaml:"total"`
	Weeks    []lineup.Result `json:"weeks" yaml:"weeks"`
}

// TeamEfficiency compares the lineup a team set with its best possible one.
type TeamEfficiency struct {
	TeamID      int     `json:"teamId"`
	TeamName    string  `json:"teamName"`
	Week        int     `json:"week"`
	Actual      float64 `json:"actual"`
	Optimal     float64 `json:"optimal"`
	LeftOnBench float64 `json:"leftOnBench"`
}
