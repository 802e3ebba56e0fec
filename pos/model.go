package pos

import (
	"text2phenotype.com/postag/types"
)

// StartTag stands in as the previous tag of a sentence-initial token.
const StartTag = "<S>"

// Model holds the tables estimated from a tagged corpus. Both conditional
// tables run "backwards" relative to a textbook HMM:
//
//	Emissions[word][tag]      = P(tag | word)
//	Transitions[tag][prevTag] = P(prevTag | tag)
//
// The decoder scores paths with exactly these quantities. A Model is never
// modified after Estimate returns.
type Model struct {
	Emissions   map[string]Distribution `json:"emissions"`
	Transitions map[string]Distribution `json:"transitions"`
	Marginals   Distribution            `json:"marginals"`
	TokenCount  int                     `json:"token_count"`
}

type table map[string]counts

func (t table) add(key, outcome string) {
	row, ok := t[key]
	if !ok {
		row = make(counts)
		t[key] = row
	}
	row[outcome]++
}

func (t table) normalize() map[string]Distribution {
	res := make(map[string]Distribution, len(t))
	for key, row := range t {
		res[key] = newDistribution(row)
	}
	return res
}

func Estimate(sents []types.Sentence) *Model {
	emissions := make(table)
	transitions := make(table)
	marginals := make(counts)
	tokenCount := 0

	for _, sent := range sents {
		for n, token := range sent.Tokens {
			prevTag := StartTag
			if n > 0 {
				prevTag = sent.Tokens[n-1].Tag
			}

			transitions.add(token.Tag, prevTag)
			emissions.add(token.Word, token.Tag)
			marginals[token.Tag]++
			tokenCount++
		}
	}

	// Every current tag gets an explicit entry for every possible previous
	// tag, zero when the pair was never seen.
	for _, row := range transitions {
		if _, ok := row[StartTag]; !ok {
			row[StartTag] = 0
		}
		for tag := range marginals {
			if _, ok := row[tag]; !ok {
				row[tag] = 0
			}
		}
	}

	return &Model{
		Emissions:   emissions.normalize(),
		Transitions: transitions.normalize(),
		Marginals:   newDistribution(marginals),
		TokenCount:  tokenCount,
	}
}

func (m *Model) IsEmpty() bool {
	return m.TokenCount == 0
}

// Tags returns the tag vocabulary in lexicographic order.
func (m *Model) Tags() []string {
	return m.Marginals.Outcomes()
}

// Transition returns P(prevTag | tag), 0 for tags never seen in training.
func (m *Model) Transition(tag, prevTag string) float64 {
	row, ok := m.Transitions[tag]
	if !ok {
		return 0.0
	}
	return row.Prob(prevTag)
}
