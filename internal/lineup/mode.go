package lineup

import "fmt"

// Mode selects how a lineup is ranked.
type Mode string

const (
	// ModeOptimal starts the highest scorers.
	ModeOptimal Mode = "optimal"
	// ModeActual reproduces the lineup that was really set.
	ModeActual Mode = "actual"
)

// ParseMode accepts "optimal", "actual" or empty (optimal).
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeOptimal:
		return ModeOptimal, nil
	case ModeActual:
		return ModeActual, nil
	default:
		return "", &ConfigurationError{Field: "mode", Reason: fmt.Sprintf("unknown mode %q", s)}
	}
}

// SortKeys returns the ranking keys for the mode.
func (m Mode) SortKeys() []SortKey {
	if m == ModeActual {
		return ActualSortKeys
	}
	return DefaultSortKeys
}
