package lineup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/omarshaarawi/ffwrapped/internal/scoring"
)

// SeasonLength is the number of regular-season weeks lineups are built for.
const SeasonLength = 17

// DefaultDisplayOrder is the usual order starters are shown in.
var DefaultDisplayOrder = []string{QB, RB, WR, TE, FlexLabel(1), FlexLabel(2), DST, K}

// Group is one labelled list of players in a lineup.
type Group struct {
	Label   string
	Players []PlayerScore
}

// Groups is an ordered label -> players mapping. It encodes as a JSON object
// or YAML mapping with keys in slice order.
type Groups []Group

// Get returns the players under label, or nil.
func (g Groups) Get(label string) []PlayerScore {
	for _, grp := range g {
		if grp.Label == label {
			return grp.Players
		}
	}
	return nil
}

// Labels returns the labels in order.
func (g Groups) Labels() []string {
	labels := make([]string, len(g))
	for i, grp := range g {
		labels[i] = grp.Label
	}
	return labels
}

// Len counts every player across all groups.
func (g Groups) Len() int {
	n := 0
	for _, grp := range g {
		n += len(grp.Players)
	}
	return n
}

// Points sums and rounds the points of every player.
func (g Groups) Points() float64 {
	var total float64
	for _, grp := range g {
		for _, p := range grp.Players {
			total += p.Points
		}
	}
	return scoring.Round(total)
}

func (g Groups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, grp := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(grp.Label)
		if err != nil {
			return nil, err
		}
		players := grp.Players
		if players == nil {
			players = []PlayerScore{}
		}
		val, err := json.Marshal(players)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (g *Groups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("lineup groups must be an object")
	}

	out := Groups{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		label, _ := keyTok.(string)
		var players []PlayerScore
		if err := dec.Decode(&players); err != nil {
			return fmt.Errorf("decoding lineup group %s: %w", label, err)
		}
		out = append(out, Group{Label: label, Players: players})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*g = out
	return nil
}

func (g Groups) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, grp := range g {
		var val yaml.Node
		players := grp.Players
		if players == nil {
			players = []PlayerScore{}
		}
		if err := val.Encode(players); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: grp.Label},
			&val,
		)
	}
	return node, nil
}

// Result is a week's lineup: who starts in which slot and who sits.
type Result struct {
	Week     int                  `json:"week,omitempty" yaml:"week,omitempty"`
	Starters Groups               `json:"starters" yaml:"starters"`
	Bench    Groups               `json:"bench" yaml:"bench"`
	Warnings []MissingDataWarning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Options controls a lineup assembly.
type Options struct {
	GroupOptions
	// DisplayOrder, when set, reorders Starters and Bench labels. Labels not
	// listed keep their relative order after the listed ones.
	DisplayOrder []string
}

// Assemble partitions players into starters and bench for roster. Fixed
// positions are filled first in roster order, then flex slots, and whatever
// is left becomes the bench. Slots are never backfilled from other
// positions, so a thin roster produces short starter lists.
func Assemble(players []PlayerScore, roster RosterConfig, opts Options) (*Result, error) {
	if err := roster.Validate(); err != nil {
		return nil, err
	}

	pools, err := GroupPlayers(players, opts.GroupOptions)
	if err != nil {
		return nil, err
	}
	keys := opts.sortKeys()

	var starters Groups
	for _, slot := range roster {
		if !IsFixed(slot.Label) || slot.Count == 0 {
			continue
		}
		starters = append(starters, Group{Label: slot.Label, Players: pools.take(slot.Label, slot.Count)})
	}

	flex := resolveFlex(roster, pools, keys)
	if len(flex) > 0 {
		slog.Debug("Flex positions", "labels", flex.Labels())
	}
	starters = append(starters, flex...)

	var bench Groups
	for _, pos := range pools.Positions() {
		if left := pools.Players(pos); len(left) > 0 {
			bench = append(bench, Group{Label: pos, Players: append([]PlayerScore(nil), left...)})
		}
	}

	if len(opts.DisplayOrder) > 0 {
		starters = reorder(starters, opts.DisplayOrder)
		bench = reorder(bench, opts.DisplayOrder)
	}

	if starters == nil {
		starters = Groups{}
	}
	if bench == nil {
		bench = Groups{}
	}
	return &Result{Starters: starters, Bench: bench}, nil
}

func reorder(groups Groups, order []string) Groups {
	listed := make(map[string]bool, len(order))
	out := make(Groups, 0, len(groups))
	for _, label := range order {
		if listed[label] {
			continue
		}
		listed[label] = true
		for _, grp := range groups {
			if grp.Label == label {
				out = append(out, grp)
			}
		}
	}
	for _, grp := range groups {
		if !listed[grp.Label] {
			out = append(out, grp)
		}
	}
	return out
}
