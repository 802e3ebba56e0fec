package pipeline

import (
	"text2phenotype.com/postag/corpus"
	"text2phenotype.com/postag/types"
)

type Accuracy struct {
	CorrectTokens    int `json:"correct_tokens"`
	TotalTokens      int `json:"total_tokens"`
	CorrectSentences int `json:"correct_sentences"`
	TotalSentences   int `json:"total_sentences"`
}

// add compares predicted tags with the gold tags of sent. Missing predictions
// count as errors; empty sentences are not counted.
func (acc *Accuracy) add(sent types.Sentence, tags []string) {
	if sent.Len() == 0 {
		return
	}
	correct := 0
	for i, gold := range sent.Tags() {
		if i < len(tags) && tags[i] == gold {
			correct++
		}
	}
	acc.CorrectTokens += correct
	acc.TotalTokens += sent.Len()
	acc.TotalSentences++
	if correct == sent.Len() {
		acc.CorrectSentences++
	}
}

func (acc Accuracy) TokenAccuracy() float64 {
	if acc.TotalTokens == 0 {
		return 0.0
	}
	return float64(acc.CorrectTokens) / float64(acc.TotalTokens)
}

func (acc Accuracy) SentenceAccuracy() float64 {
	if acc.TotalSentences == 0 {
		return 0.0
	}
	return float64(acc.CorrectSentences) / float64(acc.TotalSentences)
}

// NewAccuracyStage scores sentences against their gold tags when acc is not
// nil and passes them on in writer form.
func NewAccuracyStage(acc *Accuracy) func(in <-chan taggedSentence) <-chan corpus.TaggedSentence {
	return func(in <-chan taggedSentence) <-chan corpus.TaggedSentence {
		out := make(chan corpus.TaggedSentence)
		go func() {
			defer close(out)
			for res := range in {
				if acc != nil {
					acc.add(res.sent, res.tags)
				}
				out <- corpus.TaggedSentence{Words: res.sent.Words(), Tags: res.tags}
			}
		}()
		return out
	}
}
