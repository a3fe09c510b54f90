package lineup

import "fmt"

// ConfigurationError is a fatal problem with a roster, scoring or sort
// configuration. No lineup is computed when one is returned.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %q: %s", e.Field, e.Reason)
}

// MissingDataWarning records a rostered player that had no stat record for
// the requested week. The player is left out of that week's lineup.
type MissingDataWarning struct {
	PlayerID int    `json:"playerId" yaml:"playerId"`
	Name     string `json:"name" yaml:"name"`
	Week     int    `json:"week" yaml:"week"`
}

func (w MissingDataWarning) Error() string {
	return fmt.Sprintf("no stat record for player %d (%s) in week %d", w.PlayerID, w.Name, w.Week)
}

// AmbiguousMatchError is returned when a team lookup against a week's box
// scores finds no entry or more than one.
type AmbiguousMatchError struct {
	TeamID  int
	Week    int
	Matches int
}

func (e *AmbiguousMatchError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("team %d not found in week %d box scores", e.TeamID, e.Week)
	}
	return fmt.Sprintf("team %d matched %d box score entries in week %d", e.TeamID, e.Matches, e.Week)
}
