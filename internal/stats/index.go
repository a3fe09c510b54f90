package stats

type indexKey struct {
	playerID int
	week     int
}

// RecordIndex looks up one record per player and week. When sources
// disagree, the ESPN line wins.
type RecordIndex map[indexKey]*Record

func NewRecordIndex(records []Record) RecordIndex {
	out := make(RecordIndex, len(records))
	for i := range records {
		rec := &records[i]
		k := indexKey{rec.PlayerID, rec.Week}
		if existing, ok := out[k]; ok && existing.Source == ESPN.Tag() {
			continue
		}
		out[k] = rec
	}
	return out
}

// Get returns the record for playerID in week, or nil.
func (x RecordIndex) Get(playerID, week int) *Record {
	return x[indexKey{playerID, week}]
}
