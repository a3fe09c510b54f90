package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/omarshaarawi/ffwrapped/internal/lineup"
)

const testLeague = `leagueId: 7
season: 2023
scoring:
  pass_yds: 0.04
  pass_td: 4
  rush_yds: 0.1
  rec: 1
  rec_yds: 0.1
roster:
  QB: 1
  RB: 1
  WR: 1
  RB/WR/TE: 1
  K: 1
  BE: 2
players:
  - {id: 1, name: Alice, position: QB, started: true}
  - {id: 2, name: Bob, position: RB, started: true}
  - {id: 3, name: Carl, position: RB}
  - {id: 4, name: Dana, position: WR, started: true}
  - {id: 5, name: Kim, position: K, started: true}
`

const testStats = `- {playerId: 1, week: 1, season: 2023, source: espn, fields: {passingYards: 250, passingTouchdowns: 2}}
- {playerId: 2, week: 1, season: 2023, source: espn, fields: {rushingYards: 50}}
- {playerId: 3, week: 1, season: 2023, source: pfref, fields: {Rush_Yds: 120}}
- {playerId: 4, week: 1, season: 2023, source: espn, fields: {receivingReceptions: 5, receivingYards: 60}}
`

type weekOutput struct {
	Week     int                             `yaml:"week"`
	Starters map[string][]lineup.PlayerScore `yaml:"starters"`
	Warnings []lineup.MissingDataWarning     `yaml:"warnings"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func runLineup(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	return runLineupWithStats(t, testStats, args...)
}

func runLineupWithStats(t *testing.T, statsYAML string, args ...string) ([]byte, error) {
	t.Helper()
	dir := t.TempDir()
	leaguePath := writeFile(t, dir, "league.yaml", testLeague)
	statsPath := writeFile(t, dir, "stats.yaml", statsYAML)

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	argv := append([]string{"ffwrapped", "lineup", "--league", leaguePath, "--stats", statsPath}, args...)
	err := app.Run(argv)
	return out.Bytes(), err
}

func TestLineupCommand_Week(t *testing.T) {
	out, err := runLineup(t, "--week", "1")
	if err != nil {
		t.Fatalf("lineup error = %v", err)
	}

	var got weekOutput
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out)
	}

	if got.Week != 1 {
		t.Errorf("week = %d, want 1", got.Week)
	}
	want := map[string]string{
		lineup.QB:           "Alice",
		lineup.RB:           "Carl",
		lineup.WR:           "Dana",
		lineup.FlexLabel(1): "Bob",
	}
	for label, name := range want {
		players := got.Starters[label]
		if len(players) != 1 || players[0].Name != name {
			t.Errorf("%s = %v, want %s", label, players, name)
		}
	}
	if k, ok := got.Starters[lineup.K]; !ok || len(k) != 0 {
		t.Errorf("K = %v, want an empty slot", k)
	}
	if len(got.Warnings) != 1 || got.Warnings[0].Name != "Kim" {
		t.Errorf("warnings = %v, want Kim", got.Warnings)
	}
}

func TestLineupCommand_ActualMode(t *testing.T) {
	out, err := runLineup(t, "--week", "1", "--mode", "actual")
	if err != nil {
		t.Fatalf("lineup error = %v", err)
	}

	var got weekOutput
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if rb := got.Starters[lineup.RB]; len(rb) != 1 || rb[0].Name != "Bob" {
		t.Errorf("RB = %v, want the started Bob", rb)
	}
}

func TestLineupCommand_SkillOnly(t *testing.T) {
	out, err := runLineup(t, "--week", "1", "--skill-only")
	if err != nil {
		t.Fatalf("lineup error = %v", err)
	}

	var got weekOutput
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(got.Starters[lineup.K]) != 0 {
		t.Errorf("K = %v, want no kickers", got.Starters[lineup.K])
	}
}

func TestLineupCommand_PrefersESPNRecord(t *testing.T) {
	statsYAML := testStats + `- {playerId: 2, week: 1, season: 2023, source: pfref, fields: {Rush_Yds: 200}}
`
	out, err := runLineupWithStats(t, statsYAML, "--week", "1")
	if err != nil {
		t.Fatalf("lineup error = %v", err)
	}

	var got weekOutput
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if rb := got.Starters[lineup.RB]; len(rb) != 1 || rb[0].Name != "Carl" {
		t.Errorf("RB = %v, want Carl", rb)
	}
	if flex := got.Starters[lineup.FlexLabel(1)]; len(flex) != 1 || flex[0].Name != "Bob" || flex[0].Points != 5 {
		t.Errorf("FLEX-1 = %v, want Bob scored from the espn line", flex)
	}
}

func TestLineupCommand_Season(t *testing.T) {
	out, err := runLineup(t)
	if err != nil {
		t.Fatalf("lineup error = %v", err)
	}

	var got struct {
		LeagueID int          `yaml:"leagueId"`
		Source   string       `yaml:"source"`
		Total    float64      `yaml:"total"`
		Weeks    []weekOutput `yaml:"weeks"`
	}
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if got.LeagueID != 7 || got.Source != sourceFile {
		t.Errorf("identity = %d/%s", got.LeagueID, got.Source)
	}
	if len(got.Weeks) != lineup.SeasonLength {
		t.Errorf("weeks = %d, want %d", len(got.Weeks), lineup.SeasonLength)
	}
	if got.Total != 46 {
		t.Errorf("total = %v, want 46", got.Total)
	}
}

func TestLineupCommand_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{"bad mode", []string{"--mode", "best"}, "mode"},
		{"bad week", []string{"--week", "18"}, "week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runLineup(t, tt.args...)
			var cfgErr *lineup.ConfigurationError
			if !errors.As(err, &cfgErr) || cfgErr.Field != tt.field {
				t.Errorf("error = %v, want *lineup.ConfigurationError on %s", err, tt.field)
			}
		})
	}
}
