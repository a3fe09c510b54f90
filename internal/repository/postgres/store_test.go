package postgres

import (
	"errors"
	"reflect"
	"testing"

	"github.com/omarshaarawi/ffwrapped/internal/lineup"
)

func TestDecodeSettings_KeepsRosterOrder(t *testing.T) {
	settings, err := decodeSettings(7, 2023, "Gridiron",
		[]byte(`{"pass_yds": 0.04, "rec": 1}`),
		[]byte(`{"WR": 2, "QB": 1, "RB/WR/TE": 1}`),
	)
	if err != nil {
		t.Fatalf("decodeSettings() error = %v", err)
	}

	want := lineup.RosterConfig{
		{Label: lineup.WR, Count: 2},
		{Label: lineup.QB, Count: 1},
		{Label: "RB/WR/TE", Count: 1},
	}
	if !reflect.DeepEqual(settings.Roster, want) {
		t.Errorf("Roster = %v, want %v", settings.Roster, want)
	}
	if settings.Scoring["pass_yds"] != 0.04 || settings.LeagueID != 7 || settings.Season != 2023 {
		t.Errorf("settings = %+v", settings)
	}
}

func TestDecodeSettings_BadRoster(t *testing.T) {
	_, err := decodeSettings(7, 2023, "", []byte(`{}`), []byte(`{"QB": -1}`))
	var cfgErr *lineup.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("decodeSettings() error = %v, want *lineup.ConfigurationError", err)
	}
}

func TestFieldsCodec(t *testing.T) {
	data, err := encodeFields(nil)
	if err != nil {
		t.Fatalf("encodeFields(nil) error = %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("encodeFields(nil) = %s, want {}", data)
	}

	fields, err := decodeFields([]byte(`{"Pass_Yds": 0, "Rush_TD": 2}`))
	if err != nil {
		t.Fatalf("decodeFields() error = %v", err)
	}
	if v, ok := fields["Pass_Yds"]; !ok || v != 0 {
		t.Errorf("observed zero lost: %v", fields)
	}

	empty, err := decodeFields(nil)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("decodeFields(nil) = %v, %v", empty, err)
	}
}
