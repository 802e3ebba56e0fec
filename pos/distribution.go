package pos

import (
	"encoding/json"
	"sort"
)

// Distribution is a normalized probability row. Outcomes are kept in
// lexicographic order; every enumeration and tie-break in this package
// follows that order.
type Distribution struct {
	outcomes []string
	probs    map[string]float64
}

type counts map[string]int

func newDistribution(c counts) Distribution {
	total := 0
	for _, n := range c {
		total += n
	}

	d := Distribution{
		outcomes: make([]string, 0, len(c)),
		probs:    make(map[string]float64, len(c)),
	}
	for outcome, n := range c {
		d.outcomes = append(d.outcomes, outcome)
		if total > 0 {
			d.probs[outcome] = float64(n) / float64(total)
		} else {
			d.probs[outcome] = 0.0
		}
	}
	sort.Strings(d.outcomes)
	return d
}

func (d Distribution) Outcomes() []string {
	return d.outcomes
}

func (d Distribution) Len() int {
	return len(d.outcomes)
}

func (d Distribution) Has(outcome string) bool {
	_, ok := d.probs[outcome]
	return ok
}

// Prob returns 0 for outcomes the row does not carry.
func (d Distribution) Prob(outcome string) float64 {
	return d.probs[outcome]
}

func (d Distribution) Sum() float64 {
	sum := 0.0
	for _, outcome := range d.outcomes {
		sum += d.probs[outcome]
	}
	return sum
}

func (d Distribution) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.probs)
}
