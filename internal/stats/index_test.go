package stats

import "testing"

func TestRecordIndex_PrefersESPN(t *testing.T) {
	records := []Record{
		{PlayerID: 1, Week: 1, Source: "pfref", Fields: map[string]float64{"Rush_Yds": 40}},
		{PlayerID: 1, Week: 1, Source: "espn", Fields: map[string]float64{"rushingYards": 50}},
		{PlayerID: 1, Week: 1, Source: "pfref", Fields: map[string]float64{"Rush_Yds": 60}},
		{PlayerID: 1, Week: 2, Source: "pfref", Fields: map[string]float64{"Rush_Yds": 70}},
	}

	idx := NewRecordIndex(records)

	if got := idx.Get(1, 1); got == nil || got.Source != "espn" {
		t.Errorf("Get(1, 1) = %+v, want the espn record", got)
	}
	if got := idx.Get(1, 2); got == nil || got.Fields["Rush_Yds"] != 70 {
		t.Errorf("Get(1, 2) = %+v, want the pfref record", got)
	}
	if got := idx.Get(2, 1); got != nil {
		t.Errorf("Get(2, 1) = %+v, want nil", got)
	}
}
