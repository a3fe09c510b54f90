package stats

import "math"

// band is a half-open [min, max) range; max of +Inf means open ended.
type band struct {
	min, max float64
	key      string
}

var passYardBands = []band{
	{300, 400, PassYdsBonus300To399},
	{400, math.Inf(1), PassYdsBonus400},
}

var rushYardBands = []band{
	{100, 200, RushYdsBonus100To199},
	{200, math.Inf(1), RushYdsBonus200},
}

var recYardBands = []band{
	{100, 200, RecYdsBonus100To199},
	{200, math.Inf(1), RecYdsBonus200},
}

// Inclusive integer ranges 0, 1-6, 7-13 ... expressed as half-open bands so
// fractional and negative inputs still land in exactly one band.
var pointsAllowedBands = []band{
	{math.Inf(-1), 1, DefPA0},
	{1, 7, DefPA1To6},
	{7, 14, DefPA7To13},
	{14, 18, DefPA14To17},
	{18, 22, DefPA18To21},
	{22, 28, DefPA22To27},
	{28, 35, DefPA28To34},
	{35, 46, DefPA35To45},
	{46, math.Inf(1), DefPA46Plus},
}

var yardsAllowedBands = []band{
	{math.Inf(-1), 100, DefYA0To99},
	{100, 200, DefYA100To199},
	{200, 300, DefYA200To299},
	{300, 350, DefYA300To349},
	{350, 400, DefYA350To399},
	{400, 450, DefYA400To449},
	{450, 500, DefYA450To499},
	{500, 550, DefYA500To549},
	{550, math.Inf(1), DefYA550Plus},
}

type fgBucket struct {
	made, att string
}

var fieldGoalBuckets = []fgBucket{
	{FGMade0To39, FGAtt0To39},
	{FGMade40To49, FGAtt40To49},
	{FGMade50To59, FGAtt50To59},
	{FGMade60Plus, FGAtt60Plus},
}

// Derive returns a copy of s with the threshold indicators added. Each family
// is computed only when its source stat is present; a band that does not
// fire is left absent rather than set to 0.
func Derive(s Stats) Stats {
	out := make(Stats, len(s)+4)
	for k, v := range s {
		out[k] = v
	}

	applyBands(out, s, PassYds, passYardBands)
	applyBands(out, s, RushYds, rushYardBands)
	applyBands(out, s, RecYds, recYardBands)
	applyBands(out, s, DefPointsAllowed, pointsAllowedBands)
	applyBands(out, s, DefYardsAllowed, yardsAllowedBands)

	if missed, ok := missedFieldGoals(s); ok {
		out[FGMissed] = missed
	}
	return out
}

func applyBands(out, s Stats, key string, bands []band) {
	v, ok := s[key]
	if !ok {
		return
	}
	for _, b := range bands {
		if v >= b.min && v < b.max {
			out[b.key] = 1
			return
		}
	}
}

func missedFieldGoals(s Stats) (float64, bool) {
	var missed float64
	observed := false
	for _, b := range fieldGoalBuckets {
		att, ok := s[b.att]
		if !ok {
			continue
		}
		observed = true
		missed += att - s[b.made]
	}
	return missed, observed
}
