package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/omarshaarawi/ffwrapped/internal/stats"
)

// Config maps canonical stat keys to point weights. Keys that never appear
// in a player's stats are inert.
type Config map[string]float64

// InvalidWeightError reports a weight that is not a finite number.
type InvalidWeightError struct {
	Key    string
	Reason string
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("scoring weight %q: %s", e.Key, e.Reason)
}

// Validate rejects NaN and infinite weights.
func (c Config) Validate() error {
	for _, key := range c.keys() {
		w := c[key]
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return &InvalidWeightError{Key: key, Reason: "not a finite number"}
		}
	}
	return nil
}

// UnmarshalJSON accepts any object of numeric weights and reports the first
// non-numeric value by key.
func (c *Config) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding scoring config: %w", err)
	}

	out := make(Config, len(raw))
	for key, msg := range raw {
		var w float64
		if err := json.Unmarshal(msg, &w); err != nil {
			return &InvalidWeightError{Key: key, Reason: fmt.Sprintf("want number, got %s", msg)}
		}
		out[key] = w
	}
	*c = out
	return nil
}

func (c Config) keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Score sums weight*value over keys present in both s and c. Keys are
// visited in sorted order so the float sum is identical across calls.
func Score(s stats.Stats, c Config) float64 {
	keys := make([]string, 0, len(s))
	for k := range s {
		if _, ok := c[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var total float64
	for _, k := range keys {
		total += c[k] * s[k]
	}
	return Round(total)
}

// Round rounds to two decimals, halves away from zero.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
