package stats

import (
	"fmt"
	"sort"
)

// ConflictError is returned when two raw fields of one record translate to
// the same canonical key.
type ConflictError struct {
	Source    string
	PlayerID  int
	Week      int
	Canonical string
	Fields    [2]string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("source %s player %d week %d: fields %q and %q both map to %s",
		e.Source, e.PlayerID, e.Week, e.Fields[0], e.Fields[1], e.Canonical)
}

// Normalize translates every present raw field of rec through src. Fields the
// source does not map are dropped. Values are copied as-is, so an observed 0
// stays present.
func Normalize(rec Record, src Source) (Stats, error) {
	fields := make([]string, 0, len(rec.Fields))
	for field := range rec.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make(Stats, len(fields))
	origin := make(map[string]string, len(fields))
	for _, field := range fields {
		key, ok := src.Canonical(field)
		if !ok {
			continue
		}
		if prev, dup := origin[key]; dup {
			return nil, &ConflictError{
				Source:    src.Tag(),
				PlayerID:  rec.PlayerID,
				Week:      rec.Week,
				Canonical: key,
				Fields:    [2]string{prev, field},
			}
		}
		origin[key] = field
		out[key] = rec.Fields[field]
	}
	return out, nil
}
