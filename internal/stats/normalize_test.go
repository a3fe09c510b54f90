package stats

import (
	"errors"
	"testing"
)

func TestNormalize_ESPN(t *testing.T) {
	rec := Record{
		PlayerID: 3139477,
		Week:     4,
		Season:   2024,
		Source:   "espn",
		Fields: map[string]float64{
			"passingYards":      320,
			"passingTouchdowns": 2,
			"rushingYards":      0,
			"someNewStat":       7,
		},
	}

	got, err := Normalize(rec, ESPN)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	want := Stats{PassYds: 320, PassTD: 2, RushYds: 0}
	if len(got) != len(want) {
		t.Fatalf("Normalize() = %v, want %v", got, want)
	}
	for k, v := range want {
		if gv, ok := got[k]; !ok || gv != v {
			t.Errorf("Normalize()[%s] = %v (present %v), want %v", k, gv, ok, v)
		}
	}
}

func TestNormalize_ZeroIsPresent(t *testing.T) {
	rec := Record{Source: "espn", Fields: map[string]float64{"rushingYards": 0}}

	got, err := Normalize(rec, ESPN)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !got.Has(RushYds) {
		t.Fatalf("Normalize() dropped observed zero rushingYards: %v", got)
	}
}

func TestNormalize_PFRef(t *testing.T) {
	rec := Record{
		Source: "pfref",
		Fields: map[string]float64{
			"Pass_Yds": 251,
			"Rec":      6,
			"Fmb":      2,
			"FL":       1,
			"FantPt":   18.3,
		},
	}

	got, err := Normalize(rec, PFRef)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	tests := []struct {
		key  string
		want float64
	}{
		{PassYds, 251},
		{Rec, 6},
		{Fum, 2},
		{FumLost, 1},
	}
	for _, tt := range tests {
		if got[tt.key] != tt.want {
			t.Errorf("Normalize()[%s] = %v, want %v", tt.key, got[tt.key], tt.want)
		}
	}
	if len(got) != len(tests) {
		t.Errorf("Normalize() kept unmapped fields: %v", got)
	}
}

func TestNormalize_Conflict(t *testing.T) {
	legacy := &tableSource{tag: "legacy", fields: map[string]string{"Fmb": FumLost, "FL": FumLost}}
	rec := Record{
		PlayerID: 12,
		Week:     3,
		Source:   "legacy",
		Fields:   map[string]float64{"Fmb": 1, "FL": 1},
	}

	_, err := Normalize(rec, legacy)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Normalize() error = %v, want *ConflictError", err)
	}
	if conflict.Canonical != FumLost {
		t.Errorf("ConflictError.Canonical = %s, want %s", conflict.Canonical, FumLost)
	}
	if conflict.Fields != [2]string{"FL", "Fmb"} {
		t.Errorf("ConflictError.Fields = %v, want [FL Fmb]", conflict.Fields)
	}
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	if got := r.Tags(); len(got) != 2 || got[0] != "espn" || got[1] != "pfref" {
		t.Errorf("Tags() = %v, want [espn pfref]", got)
	}
	if err := r.Register(ESPN); err == nil {
		t.Error("Register() duplicate tag returned nil error")
	}
	if _, ok := r.Get("yahoo"); ok {
		t.Error("Get(yahoo) found a source")
	}
}

func TestRegistry_NormalizeRecord(t *testing.T) {
	r := DefaultRegistry()

	got, err := r.NormalizeRecord(Record{Source: "espn", Fields: map[string]float64{"passingYards": 320}})
	if err != nil {
		t.Fatalf("NormalizeRecord() error = %v", err)
	}
	if got[PassYdsBonus300To399] != 1 {
		t.Errorf("NormalizeRecord() missing derived bonus: %v", got)
	}

	if _, err := r.NormalizeRecord(Record{Source: "sleeper"}); err == nil {
		t.Error("NormalizeRecord() unknown source returned nil error")
	}
}
