package fantasy

import (
	"errors"
	"testing"

	"github.com/omarshaarawi/ffwrapped/internal/lineup"
	"github.com/omarshaarawi/ffwrapped/internal/models"
)

func TestSelectTeamLineup(t *testing.T) {
	boxScores := []models.TeamBoxScore{
		{TeamID: 1, Week: 3},
		{TeamID: 2, Week: 3},
		{TeamID: 2, Week: 3},
	}

	got, err := SelectTeamLineup(boxScores, 1, 3)
	if err != nil {
		t.Fatalf("SelectTeamLineup(1) error = %v", err)
	}
	if got.TeamID != 1 {
		t.Errorf("SelectTeamLineup(1).TeamID = %d", got.TeamID)
	}

	tests := []struct {
		name    string
		teamID  int
		matches int
	}{
		{"missing", 9, 0},
		{"duplicated", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SelectTeamLineup(boxScores, tt.teamID, 3)
			var ambiguous *lineup.AmbiguousMatchError
			if !errors.As(err, &ambiguous) {
				t.Fatalf("SelectTeamLineup() error = %v, want *lineup.AmbiguousMatchError", err)
			}
			if ambiguous.Matches != tt.matches || ambiguous.Week != 3 {
				t.Errorf("AmbiguousMatchError = %+v", ambiguous)
			}
		})
	}
}
