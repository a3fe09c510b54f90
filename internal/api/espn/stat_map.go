package espn

import (
	"log/slog"
	"strconv"

	"github.com/omarshaarawi/ffwrapped/internal/lineup"
	"github.com/omarshaarawi/ffwrapped/internal/models"
	"github.com/omarshaarawi/ffwrapped/internal/scoring"
	"github.com/omarshaarawi/ffwrapped/internal/stats"
)

// statNames resolves ESPN's numeric stat ids to the breakdown names the
// stats.ESPN source understands.
var statNames = map[int]string{
	0:   "passingAttempts",
	1:   "passingCompletions",
	3:   "passingYards",
	4:   "passingTouchdowns",
	15:  "passing40PlusYardTD",
	16:  "passing50PlusYardTD",
	19:  "passing2PtConversions",
	20:  "passingInterceptions",
	64:  "passingTimesSacked",
	23:  "rushingAttempts",
	24:  "rushingYards",
	25:  "rushingTouchdowns",
	26:  "rushing2PtConversions",
	35:  "rushing40PlusYardTD",
	36:  "rushing50PlusYardTD",
	53:  "receivingReceptions",
	42:  "receivingYards",
	43:  "receivingTouchdowns",
	44:  "receiving2PtConversions",
	45:  "receiving40PlusYardTD",
	46:  "receiving50PlusYardTD",
	58:  "receivingTargets",
	63:  "fumbleRecoveredForTD",
	68:  "fumbles",
	72:  "lostFumbles",
	80:  "madeFieldGoalsFromUnder40",
	81:  "attemptedFieldGoalsFromUnder40",
	77:  "madeFieldGoalsFrom40To49",
	78:  "attemptedFieldGoalsFrom40To49",
	198: "madeFieldGoalsFrom50To59",
	199: "attemptedFieldGoalsFrom50To59",
	201: "madeFieldGoalsFrom60Plus",
	202: "attemptedFieldGoalsFrom60Plus",
	83:  "madeFieldGoals",
	84:  "attemptedFieldGoals",
	86:  "madeExtraPoints",
	87:  "attemptedExtraPoints",
	88:  "missedExtraPoints",
	93:  "defensiveBlockedKickForTouchdowns",
	94:  "defensiveTouchdowns",
	95:  "defensiveInterceptions",
	96:  "defensiveFumbles",
	97:  "defensiveBlockedKicks",
	98:  "defensiveSafeties",
	99:  "defensiveSacks",
	101: "kickoffReturnTouchdowns",
	102: "puntReturnTouchdowns",
	103: "interceptionReturnTouchdowns",
	104: "fumbleReturnTouchdowns",
	106: "defensiveForcedFumbles",
	120: "defensivePointsAllowed",
	127: "defensiveYardsAllowed",
	206: "defensive2PtReturns",
}

// derivedStatKeys are scoring items for stats the engine derives itself, so
// they never appear in raw box score lines. 74 and 75 cover both 50+ buckets.
var derivedStatKeys = map[int][]string{
	17:  {stats.PassYdsBonus300To399},
	18:  {stats.PassYdsBonus400},
	37:  {stats.RushYdsBonus100To199},
	38:  {stats.RushYdsBonus200},
	56:  {stats.RecYdsBonus100To199},
	57:  {stats.RecYdsBonus200},
	74:  {stats.FGMade50To59, stats.FGMade60Plus},
	75:  {stats.FGAtt50To59, stats.FGAtt60Plus},
	85:  {stats.FGMissed},
	89:  {stats.DefPA0},
	90:  {stats.DefPA1To6},
	91:  {stats.DefPA7To13},
	92:  {stats.DefPA14To17},
	121: {stats.DefPA18To21},
	122: {stats.DefPA22To27},
	123: {stats.DefPA28To34},
	124: {stats.DefPA35To45},
	125: {stats.DefPA46Plus},
	128: {stats.DefYA0To99},
	129: {stats.DefYA100To199},
	130: {stats.DefYA200To299},
	131: {stats.DefYA300To349},
	132: {stats.DefYA350To399},
	133: {stats.DefYA400To449},
	134: {stats.DefYA450To499},
	135: {stats.DefYA500To549},
	136: {stats.DefYA550Plus},
}

// lineupSlots maps ESPN lineup slot ids to roster labels. Slot 7 is ESPN's
// OP (offensive player) slot.
var lineupSlots = map[int]string{
	0:  lineup.QB,
	2:  lineup.RB,
	3:  "RB/WR",
	4:  lineup.WR,
	5:  "WR/TE",
	6:  lineup.TE,
	7:  "QB/RB/WR/TE",
	16: lineup.DST,
	17: lineup.K,
	20: "BE",
	21: "IR",
	23: "RB/WR/TE",
}

// slotOrder is the order lineup slots appear in a RosterConfig. Narrow flex
// slots come before wide ones so the greedy resolver fills them first.
var slotOrder = []int{0, 2, 4, 6, 16, 17, 3, 5, 23, 7, 20, 21}

var positions = map[int]string{
	1: lineup.QB, 2: lineup.RB, 3: lineup.WR, 4: lineup.TE, 5: lineup.K, 16: lineup.DST,
}

func getPositionString(positionID int) string {
	if pos, ok := positions[positionID]; ok {
		return pos
	}
	return "Unknown"
}

func getLineupSlotString(slotID int) string {
	if label, ok := lineupSlots[slotID]; ok {
		return label
	}
	return "Unknown"
}

func isStartingLineup(slotID int) bool {
	switch slotID {
	case 20, 21:
		return false
	}
	_, ok := lineupSlots[slotID]
	return ok
}

func scoringKeysFor(statID int) []string {
	if name, ok := statNames[statID]; ok {
		if key, ok := stats.ESPN.Canonical(name); ok {
			return []string{key}
		}
	}
	return derivedStatKeys[statID]
}

// scoringConfig turns ESPN scoring items into weights. Items covering several
// keys never override a key set by a more specific item. Ids the engine does
// not score are returned.
func scoringConfig(items []models.ScoringItem) (scoring.Config, []int) {
	cfg := scoring.Config{}
	var wide []models.ScoringItem
	var unmapped []int

	for _, item := range items {
		keys := scoringKeysFor(item.StatID)
		switch len(keys) {
		case 0:
			unmapped = append(unmapped, item.StatID)
		case 1:
			cfg[keys[0]] = item.Points
		default:
			wide = append(wide, item)
		}
	}

	for _, item := range wide {
		for _, key := range scoringKeysFor(item.StatID) {
			if _, set := cfg[key]; !set {
				cfg[key] = item.Points
			}
		}
	}
	return cfg, unmapped
}

func rosterConfig(counts map[string]int) lineup.RosterConfig {
	roster := lineup.RosterConfig{}
	known := make(map[string]bool, len(slotOrder))
	for _, id := range slotOrder {
		key := strconv.Itoa(id)
		known[key] = true
		if n := counts[key]; n > 0 {
			roster = append(roster, lineup.Slot{Label: lineupSlots[id], Count: n})
		}
	}
	for key, n := range counts {
		if !known[key] && n > 0 {
			slog.Debug("Skipping unsupported lineup slot", "slotId", key, "count", n)
		}
	}
	return roster
}

// toRecord converts an ESPN stat map into a raw record. Stat ids outside
// statNames are dropped.
func toRecord(playerID, season, week int, raw map[string]float64) stats.Record {
	fields := make(map[string]float64, len(raw))
	for id, value := range raw {
		n, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		if name, ok := statNames[n]; ok {
			fields[name] = value
		}
	}
	return stats.Record{
		PlayerID: playerID,
		Week:     week,
		Season:   season,
		Source:   stats.ESPN.Tag(),
		Fields:   fields,
	}
}

// actualWeek finds the actual single-week stat line for week.
func actualWeek(player models.Player, week int) (models.Stat, bool) {
	for _, stat := range player.Stats {
		if stat.ScoringPeriodID == week && stat.StatSourceID == 0 && stat.StatSplitTypeID == 1 {
			return stat, true
		}
	}
	return models.Stat{}, false
}
