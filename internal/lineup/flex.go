package lineup

import (
	"fmt"
	"log/slog"
)

// FlexLabel is the output key for the n-th flex slot (1-based).
func FlexLabel(n int) string {
	return fmt.Sprintf("FLEX-%d", n)
}

// resolveFlex fills the flex slots one label at a time in configuration
// order. Each label takes the best remaining players across its component
// positions; a pick is removed from its native pool so neither that pool nor
// a later flex label can use it again. An earlier label may take a player a
// later label needed more.
func resolveFlex(roster RosterConfig, pools *Pools, keys []SortKey) Groups {
	slots := roster.FlexSlots()
	if len(slots) == 0 {
		return nil
	}

	out := make(Groups, 0, len(slots))
	for i, slot := range slots {
		components := slot.Components()

		var eligible []PlayerScore
		for _, pos := range components {
			eligible = append(eligible, pools.Players(pos)...)
		}
		sortDescending(eligible, keys)

		n := slot.Count
		if n > len(eligible) {
			n = len(eligible)
		}
		picked := make([]PlayerScore, 0, n)
		for _, player := range eligible[:n] {
			pools.remove(player.Position, player.ID)
			picked = append(picked, player)
		}

		slog.Debug("Resolved flex slot", "label", slot.Label, "positions", components, "picked", len(picked), "wanted", slot.Count)
		out = append(out, Group{Label: FlexLabel(i + 1), Players: picked})
	}
	return out
}
