package lineup

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		keys []SortKey
	}{
		{"", ModeOptimal, DefaultSortKeys},
		{"optimal", ModeOptimal, DefaultSortKeys},
		{"actual", ModeActual, ActualSortKeys},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Fatalf("ParseMode(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
		if !reflect.DeepEqual(got.SortKeys(), tt.keys) {
			t.Errorf("%s.SortKeys() = %v, want %v", got, got.SortKeys(), tt.keys)
		}
	}

	_, err := ParseMode("best")
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "mode" {
		t.Errorf("ParseMode(best) error = %v, want *ConfigurationError on mode", err)
	}
}
