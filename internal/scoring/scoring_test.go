package scoring

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/omarshaarawi/ffwrapped/internal/stats"
)

func TestScore_PassingBonus(t *testing.T) {
	rec := stats.Record{Source: "espn", Fields: map[string]float64{"passingYards": 320}}

	normalized, err := stats.Normalize(rec, stats.ESPN)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	derived := stats.Derive(normalized)

	cfg := Config{stats.PassYds: 0.04, stats.PassYdsBonus300To399: 3}
	if got := Score(derived, cfg); got != 15.80 {
		t.Errorf("Score() = %v, want 15.80", got)
	}
}

func TestScore_ZeroRushingYards(t *testing.T) {
	rec := stats.Record{Source: "espn", Fields: map[string]float64{"rushingYards": 0, "receivingYards": 40}}

	normalized, err := stats.Normalize(rec, stats.ESPN)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	derived := stats.Derive(normalized)

	if derived.Has(stats.RushYdsBonus100To199) || derived.Has(stats.RushYdsBonus200) {
		t.Errorf("Derive() fired a rushing bonus for 0 yards: %v", derived)
	}

	cfg := Config{stats.RushYds: 0.1, stats.RecYds: 0.1}
	if got := Score(derived, cfg); got != 4 {
		t.Errorf("Score() = %v, want 4", got)
	}
}

func TestScore_DisjointKeys(t *testing.T) {
	s := stats.Stats{stats.PassTD: 2, "unscored_stat": 9}
	cfg := Config{stats.PassTD: 4, stats.DefSack: 1}

	if got := Score(s, cfg); got != 8 {
		t.Errorf("Score() = %v, want 8", got)
	}
	if got := Score(stats.Stats{}, cfg); got != 0 {
		t.Errorf("Score(empty) = %v, want 0", got)
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := stats.Stats{}
	cfg := Config{}
	for i, k := range []string{stats.PassYds, stats.RushYds, stats.RecYds, stats.Rec, stats.PassTD, stats.RushTD, stats.RecTD, stats.FumLost} {
		s[k] = float64(i)*13.37 + 0.1
		cfg[k] = 0.1 * float64(i+1)
	}

	first := Score(s, cfg)
	for i := 0; i < 50; i++ {
		if got := Score(s, cfg); math.Float64bits(got) != math.Float64bits(first) {
			t.Fatalf("Score() run %d = %v, first run = %v", i, got, first)
		}
	}
}

func TestRound_HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.125, 0.13},
		{-0.125, -0.13},
		{2.5, 2.5},
		{15.799999999, 15.8},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScore_RoundsTies(t *testing.T) {
	cfg := Config{stats.FGMissed: -0.125}
	if got := Score(stats.Stats{stats.FGMissed: 1}, cfg); got != -0.13 {
		t.Errorf("Score() = %v, want -0.13", got)
	}
}

func TestConfig_UnmarshalJSON(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(`{"pass_yds": 0.04, "pass_td": 4, "custom_stat": -1}`), &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(cfg) != 3 || cfg["custom_stat"] != -1 {
		t.Errorf("Unmarshal() = %v", cfg)
	}

	err := json.Unmarshal([]byte(`{"pass_yds": "lots"}`), &cfg)
	var invalid *InvalidWeightError
	if !errors.As(err, &invalid) {
		t.Fatalf("Unmarshal() error = %v, want *InvalidWeightError", err)
	}
	if invalid.Key != "pass_yds" {
		t.Errorf("InvalidWeightError.Key = %s, want pass_yds", invalid.Key)
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := (Config{"pass_td": 4}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := (Config{"pass_td": math.NaN()}).Validate(); err == nil {
		t.Error("Validate() accepted NaN weight")
	}
	if err := (Config{"pass_td": math.Inf(1)}).Validate(); err == nil {
		t.Error("Validate() accepted Inf weight")
	}
}
