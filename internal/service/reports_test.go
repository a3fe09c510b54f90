package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/omarshaarawi/ffwrapped/internal/models"
)

func assertContains(t *testing.T, report string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(report, w) {
			t.Errorf("report missing %q:\n%s", w, report)
		}
	}
}

func TestLineupReport(t *testing.T) {
	svc := NewLineupService(newFakeAPI(), &fakeRepo{})

	report, err := svc.LineupReport(context.Background(), "dad")
	if err != nil {
		t.Fatalf("LineupReport() error = %v", err)
	}
	assertContains(t, report,
		"📋 *Coach Dad's Best Week 2 Lineup*",
		"▫️ QB Alice - 18.00 pts",
		"▫️ RB Carl - 18.00 pts",
		"▫️ FLEX-1 Bob - 5.00 pts",
		"*Total:* 52.00 pts",
		"_No stats:_ Finn",
	)
	if strings.Index(report, "QB Alice") > strings.Index(report, "FLEX-1 Bob") {
		t.Errorf("flex listed before fixed positions:\n%s", report)
	}
}

func TestLineupReport_UnknownTeam(t *testing.T) {
	svc := NewLineupService(newFakeAPI(), &fakeRepo{})

	_, err := svc.LineupReport(context.Background(), "zzz")
	var lookupErr *TeamLookupError
	if !errors.As(err, &lookupErr) {
		t.Errorf("LineupReport() error = %v, want *TeamLookupError", err)
	}
}

func TestBenchReport(t *testing.T) {
	svc := NewLineupService(newFakeAPI(), &fakeRepo{})

	report, err := svc.BenchReport(context.Background(), "Coach Dad")
	if err != nil {
		t.Fatalf("BenchReport() error = %v", err)
	}
	assertContains(t, report,
		"🪑 *Coach Dad's Week 2 Bench*",
		"▫️ RB Carl - 18.00 pts",
		"Started: 37.00 pts",
		"Best possible: 52.00 pts",
		"Left on bench: *15.00 pts*",
	)

	report, err = svc.BenchReport(context.Background(), "CURS")
	if err != nil {
		t.Fatalf("BenchReport() error = %v", err)
	}
	assertContains(t, report, "Nobody on the bench.", "Perfect lineup! 🎯")
}

func TestEfficiencyReport(t *testing.T) {
	svc := NewLineupService(newFakeAPI(), &fakeRepo{})

	report, err := svc.EfficiencyReport(context.Background())
	if err != nil {
		t.Fatalf("EfficiencyReport() error = %v", err)
	}
	assertContains(t, report,
		"📉 *Week 2 Lineup Efficiency*",
		"1. *Coach Dad*",
		"   37.00 of 52.00 pts (71.2%)",
		"2. *Beyond Cursed*",
		"   13.00 of 13.00 pts (100.0%)",
		"🤦 *Bench Warmer of the Week:* Coach Dad (15.00 pts)",
	)
}

func TestFormatEfficiencyReport(t *testing.T) {
	if got := formatEfficiencyReport(4, nil); !strings.HasSuffix(got, "No box scores for this week.") {
		t.Errorf("empty report = %q", got)
	}

	perfect := []models.TeamEfficiency{{TeamID: 1, TeamName: "Coach Dad", Actual: 0, Optimal: 0}}
	got := formatEfficiencyReport(4, perfect)
	if strings.Contains(got, "Bench Warmer") {
		t.Errorf("perfect week named a bench warmer:\n%s", got)
	}
	assertContains(t, got, "0.00 of 0.00 pts (100.0%)")
}

func TestSeasonReport(t *testing.T) {
	api := newFakeAPI()
	svc := NewLineupService(api, &fakeRepo{})

	report, err := svc.SeasonReport(context.Background(), "Coach Dad")
	if err != nil {
		t.Fatalf("SeasonReport() error = %v", err)
	}
	assertContains(t, report,
		"🎁 *Coach Dad's Season Wrapped*",
		"Scored: 629.00 pts",
		"Best possible: 884.00 pts",
		"Left on bench: 255.00 pts",
		"*Worst week:* Week 1 (15.00 pts on the bench)",
	)
	if strings.Contains(report, "Draft-day") {
		t.Errorf("drafted line without a store:\n%s", report)
	}
}

func TestSeasonReport_Drafted(t *testing.T) {
	store := &fakeStore{drafted: []models.DraftedPlayer{{PlayerID: 1, TeamID: 2, Name: "Alice", Position: "QB"}}}
	svc := NewLineupService(newFakeAPI(), &fakeRepo{}, WithStore(store))

	report, err := svc.SeasonReport(context.Background(), "CURS")
	if err != nil {
		t.Fatalf("SeasonReport() error = %v", err)
	}
	assertContains(t, report, "Scored: 221.00 pts", "Draft-day roster at its best: 0.00 pts")
	if strings.Contains(report, "Worst week") {
		t.Errorf("perfect season named a worst week:\n%s", report)
	}
}
