package lineup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fixed roster positions. Any other label is either a flex label or inert.
const (
	QB  = "QB"
	RB  = "RB"
	WR  = "WR"
	TE  = "TE"
	DST = "D/ST"
	K   = "K"
)

var fixedPositions = map[string]bool{QB: true, RB: true, WR: true, TE: true, DST: true, K: true}

// IsFixed reports whether label is one of the base positions.
func IsFixed(label string) bool {
	return fixedPositions[label]
}

// Slot is one roster label and its capacity.
type Slot struct {
	Label string
	Count int
}

// Components splits a flex label into its positions, dropping blanks and
// repeats.
func (s Slot) Components() []string {
	seen := make(map[string]bool)
	var out []string
	for _, part := range strings.Split(s.Label, "/") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}

// IsFlex reports whether the slot takes players from several positions.
func (s Slot) IsFlex() bool {
	return strings.Contains(s.Label, "/") && s.Count > 0 && !IsFixed(s.Label)
}

// RosterConfig is an ordered label -> count table. Labels that are neither
// fixed nor flex (bench, IR, ...) are kept but never filled.
type RosterConfig []Slot

// Count returns the configured count for label, or 0.
func (r RosterConfig) Count(label string) int {
	for _, s := range r {
		if s.Label == label {
			return s.Count
		}
	}
	return 0
}

// FlexSlots returns the flex slots in configuration order.
func (r RosterConfig) FlexSlots() []Slot {
	var out []Slot
	for _, s := range r {
		if s.IsFlex() {
			out = append(out, s)
		}
	}
	return out
}

// Validate rejects negative counts and repeated labels.
func (r RosterConfig) Validate() error {
	seen := make(map[string]bool, len(r))
	for _, s := range r {
		if s.Count < 0 {
			return &ConfigurationError{Field: s.Label, Reason: fmt.Sprintf("slot count %d is negative", s.Count)}
		}
		if seen[s.Label] {
			return &ConfigurationError{Field: s.Label, Reason: "label appears more than once"}
		}
		seen[s.Label] = true
	}
	return nil
}

// MarshalJSON writes the config as an object, preserving slot order.
func (r RosterConfig) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(s.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of integer counts in document order. Values
// that are not integers are rejected with a *ConfigurationError.
func (r *RosterConfig) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding roster config: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return &ConfigurationError{Field: "roster", Reason: "must be an object of position counts"}
	}

	var out RosterConfig
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding roster config: %w", err)
		}
		label, _ := keyTok.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("decoding roster count for %s: %w", label, err)
		}
		num, ok := v.(json.Number)
		if !ok {
			return &ConfigurationError{Field: label, Reason: fmt.Sprintf("count must be an integer, got %T", v)}
		}
		count, err := parseCount(label, num.String())
		if err != nil {
			return err
		}
		out = append(out, Slot{Label: label, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding roster config: %w", err)
	}

	if err := out.Validate(); err != nil {
		return err
	}
	*r = out
	return nil
}

// MarshalYAML writes the config as a mapping, preserving slot order.
func (r RosterConfig) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, s := range r {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Label},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(s.Count)},
		)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping of integer counts in document order.
func (r *RosterConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return &ConfigurationError{Field: "roster", Reason: "must be a mapping of position counts"}
	}

	out := make(RosterConfig, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		label := value.Content[i].Value
		v := value.Content[i+1]
		if v.Kind != yaml.ScalarNode || (v.Tag != "!!int" && v.Tag != "!!float") {
			return &ConfigurationError{Field: label, Reason: fmt.Sprintf("count must be an integer, got %q", v.Value)}
		}
		count, err := parseCount(label, v.Value)
		if err != nil {
			return err
		}
		out = append(out, Slot{Label: label, Count: count})
	}

	if err := out.Validate(); err != nil {
		return err
	}
	*r = out
	return nil
}

// parseCount accepts integral numbers such as "2" or "2.0".
func parseCount(label, s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, &ConfigurationError{Field: label, Reason: fmt.Sprintf("slot count %d is negative", n)}
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, &ConfigurationError{Field: label, Reason: fmt.Sprintf("count %s is not an integer", s)}
	}
	if f < 0 {
		return 0, &ConfigurationError{Field: label, Reason: fmt.Sprintf("slot count %s is negative", s)}
	}
	return int(f), nil
}
