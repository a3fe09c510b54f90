package models

type LeagueResponse struct {
	ID              int            `json:"id"`
	ScoringPeriodID int            `json:"scoringPeriodId"`
	SeasonID        int            `json:"seasonId"`
	SegmentID       int            `json:"segmentId"`
	Status          Status         `json:"status"`
	Teams           []Team         `json:"teams"`
	Settings        Settings       `json:"settings"`
	DraftDetail     DraftDetail    `json:"draftDetail"`
	Schedule        []MatchupScore `json:"schedule"`
}

type Settings struct {
	Name            string          `json:"name"`
	Size            int             `json:"size"`
	ScoringSettings ScoringSettings `json:"scoringSettings"`
	RosterSettings  RosterSettings  `json:"rosterSettings"`
}

type ScoringSettings struct {
	ScoringItems []ScoringItem `json:"scoringItems"`
}

type ScoringItem struct {
	StatID          int                `json:"statId"`
	Points          float64            `json:"points"`
	PointsOverrides map[string]float64 `json:"pointsOverrides"`
}

// RosterSettings.LineupSlotCounts is keyed by the lineup slot id as a string.
type RosterSettings struct {
	LineupSlotCounts map[string]int `json:"lineupSlotCounts"`
}

type Status struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	FinalScoringPeriod   int  `json:"finalScoringPeriod"`
	FirstScoringPeriod   int  `json:"firstScoringPeriod"`
	IsActive             bool `json:"isActive"`
}

type Team struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbrev"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Nickname     string `json:"nickname"`
	Roster       Roster `json:"roster"`
}

type Roster struct {
	Entries []RosterEntry `json:"entries"`
}

type DraftDetail struct {
	Drafted bool            `json:"drafted"`
	Picks   []DraftPickInfo `json:"picks"`
}

type DraftPickInfo struct {
	PlayerID          int `json:"playerId"`
	TeamID            int `json:"teamId"`
	RoundID           int `json:"roundId"`
	OverallPickNumber int `json:"overallPickNumber"`
}

type ScoreboardResponse struct {
	Schedule []MatchupScore `json:"schedule"`
}

// MatchupScore.Away is nil on a bye.
type MatchupScore struct {
	ID              int        `json:"id"`
	MatchupPeriodID int        `json:"matchupPeriodId"`
	Away            *TeamScore `json:"away"`
	Home            TeamScore  `json:"home"`
	Winner          string     `json:"winner"`
}

type TeamScore struct {
	TeamID                        int             `json:"teamId"`
	TotalPoints                   float64         `json:"totalPoints"`
	RosterForCurrentScoringPeriod RosterForPeriod `json:"rosterForCurrentScoringPeriod"`
}

type RosterForPeriod struct {
	Entries []RosterEntry `json:"entries"`
}

type RosterEntry struct {
	PlayerID        int             `json:"playerId"`
	LineupSlotID    int             `json:"lineupSlotId"`
	PlayerPoolEntry PlayerPoolEntry `json:"playerPoolEntry"`
}

type PlayerCardResponse struct {
	Players []PlayerPoolEntry `json:"players"`
}

type PlayerPoolEntry struct {
	ID       int    `json:"id"`
	OnTeamID int    `json:"onTeamId"`
	Player   Player `json:"player"`
}

type Player struct {
	ID                int    `json:"id"`
	FullName          string `json:"fullName"`
	DefaultPositionID int    `json:"defaultPositionId"`
	ProTeamID         int    `json:"proTeamId"`
	Stats             []Stat `json:"stats"`
	InjuryStatus      string `json:"injuryStatus"`
}

// Stat is one stat line for a player. StatSourceID 0 is actual, 1 projected;
// StatSplitTypeID 1 is a single scoring period. Stats is keyed by stat id.
type Stat struct {
	StatSourceID    int                `json:"statSourceId"`
	StatSplitTypeID int                `json:"statSplitTypeId"`
	ScoringPeriodID int                `json:"scoringPeriodId"`
	SeasonID        int                `json:"seasonId"`
	AppliedTotal    float64            `json:"appliedTotal"`
	Stats           map[string]float64 `json:"stats"`
}
