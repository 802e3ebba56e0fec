package pos

import (
	"text2phenotype.com/postag/types"
	"sort"
)

// Baseline tags every known word with the tag it carried most often in
// training and every other word with the most frequent tag overall.
type Baseline struct {
	mftForWord map[string]string
	mft        string
}

func NewBaseline(sents []types.Sentence) (*Baseline, error) {
	wordTagFreqs := make(table)
	tagFreqs := make(counts)
	for _, sent := range sents {
		for _, token := range sent.Tokens {
			wordTagFreqs.add(token.Word, token.Tag)
			tagFreqs[token.Tag]++
		}
	}
	if len(tagFreqs) == 0 {
		return nil, ErrEmptyModel
	}

	b := &Baseline{
		mftForWord: make(map[string]string, len(wordTagFreqs)),
		mft:        mostFrequent(tagFreqs),
	}
	for word, freqs := range wordTagFreqs {
		b.mftForWord[word] = mostFrequent(freqs)
	}
	return b, nil
}

// mostFrequent breaks ties by taking the lexicographically first outcome.
func mostFrequent(c counts) string {
	outcomes := make([]string, 0, len(c))
	for outcome := range c {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)

	best := ""
	bestFreq := -1
	for _, outcome := range outcomes {
		if c[outcome] > bestFreq {
			best, bestFreq = outcome, c[outcome]
		}
	}
	return best
}

func (b *Baseline) MostFrequentTag() string {
	return b.mft
}

func (b *Baseline) Tag(words []string) []string {
	tags := make([]string, len(words))
	for i, word := range words {
		tag, ok := b.mftForWord[word]
		if !ok {
			tag = b.mft
		}
		tags[i] = tag
	}
	return tags
}
