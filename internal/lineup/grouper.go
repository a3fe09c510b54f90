package lineup

import (
	"fmt"
	"sort"
)

// PlayerScore is one player's scored week.
type PlayerScore struct {
	ID       int     `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Position string  `json:"position" yaml:"position"`
	Points   float64 `json:"points" yaml:"points"`
	Started  bool    `json:"started" yaml:"started"`
}

// SortKey names a PlayerScore attribute used for ranking.
type SortKey string

const (
	SortByPoints  SortKey = "points"
	SortByStarted SortKey = "started"
)

// DefaultSortKeys ranks purely by points. ActualSortKeys puts the players
// who really started first, which reproduces a historical lineup.
var (
	DefaultSortKeys = []SortKey{SortByPoints}
	ActualSortKeys  = []SortKey{SortByStarted, SortByPoints}
)

func (k SortKey) value(p PlayerScore) float64 {
	switch k {
	case SortByStarted:
		if p.Started {
			return 1
		}
		return 0
	default:
		return p.Points
	}
}

func validateSortKeys(keys []SortKey) error {
	for _, k := range keys {
		if k != SortByPoints && k != SortByStarted {
			return &ConfigurationError{Field: "sortKeys", Reason: fmt.Sprintf("unknown sort key %q", k)}
		}
	}
	return nil
}

// sortDescending orders players by keys, highest first. Ties keep their
// input order.
func sortDescending(players []PlayerScore, keys []SortKey) {
	sort.SliceStable(players, func(i, j int) bool {
		for _, k := range keys {
			vi, vj := k.value(players[i]), k.value(players[j])
			if vi != vj {
				return vi > vj
			}
		}
		return false
	})
}

// GroupOptions controls how players are bucketed and ranked.
type GroupOptions struct {
	// SortKeys defaults to DefaultSortKeys when empty.
	SortKeys []SortKey
	// SkillOnly leaves D/ST and K players out of the grouping.
	SkillOnly bool
}

func (o GroupOptions) sortKeys() []SortKey {
	if len(o.SortKeys) == 0 {
		return DefaultSortKeys
	}
	return o.SortKeys
}

// Pools holds per-position player lists. Assembly consumes them, so every
// call must build its own.
type Pools struct {
	order []string
	byPos map[string][]PlayerScore
}

// GroupPlayers buckets players by position and ranks each bucket. Positions
// are kept in the order they are first seen.
func GroupPlayers(players []PlayerScore, opts GroupOptions) (*Pools, error) {
	keys := opts.sortKeys()
	if err := validateSortKeys(keys); err != nil {
		return nil, err
	}

	p := &Pools{byPos: make(map[string][]PlayerScore)}
	for _, player := range players {
		if opts.SkillOnly && (player.Position == DST || player.Position == K) {
			continue
		}
		if _, ok := p.byPos[player.Position]; !ok {
			p.order = append(p.order, player.Position)
		}
		p.byPos[player.Position] = append(p.byPos[player.Position], player)
	}

	for _, pos := range p.order {
		sortDescending(p.byPos[pos], keys)
	}
	return p, nil
}

// Positions returns the grouped positions in first-seen order.
func (p *Pools) Positions() []string {
	return append([]string(nil), p.order...)
}

// Players returns the players still pooled at pos, best first.
func (p *Pools) Players(pos string) []PlayerScore {
	return p.byPos[pos]
}

// take pops up to n players from the front of pos.
func (p *Pools) take(pos string, n int) []PlayerScore {
	pool := p.byPos[pos]
	if n > len(pool) {
		n = len(pool)
	}
	out := append([]PlayerScore(nil), pool[:n]...)
	p.byPos[pos] = pool[n:]
	return out
}

// remove drops the first pooled player at pos with the given id.
func (p *Pools) remove(pos string, id int) {
	pool := p.byPos[pos]
	for i, player := range pool {
		if player.ID == id {
			p.byPos[pos] = append(pool[:i:i], pool[i+1:]...)
			return
		}
	}
}
