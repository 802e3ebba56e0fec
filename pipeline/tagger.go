package pipeline

import (
	"text2phenotype.com/postag/pos"
	"text2phenotype.com/postag/types"
	"text2phenotype.com/postag/utils"
	"github.com/rs/zerolog"
	"strconv"
)

type taggedSentence struct {
	sent types.Sentence
	tags []string
}

func sentenceID(h types.Hashable) string {
	return strconv.FormatUint(h.GetHashCode(), 16)
}

// NewTaggingStage tags sentences one at a time, in order, on a single
// goroutine: taggers keep per-run state that is not safe to share. A panic
// while tagging is reported on errCh, which must have room for one value,
// and the rest of the input is drained.
func NewTaggingStage(tagger pos.Tagger, log zerolog.Logger, errCh chan<- error) func(in <-chan types.Sentence) <-chan taggedSentence {
	return func(in <-chan types.Sentence) <-chan taggedSentence {
		out := make(chan taggedSentence)
		go func() {
			defer close(out)
			err := tagAll(tagger, log, in, out)
			if err != nil {
				for range in {
				}
			}
			errCh <- err
		}()
		return out
	}
}

func tagAll(tagger pos.Tagger, log zerolog.Logger, in <-chan types.Sentence, out chan<- taggedSentence) (err error) {
	defer utils.RecoverWithError(&err)
	for sent := range in {
		tags := tagger(sent.Words())
		if len(tags) != sent.Len() {
			log.Warn().
				Str("sentence_id", sentenceID(sent)).
				Int("words", sent.Len()).
				Int("tags", len(tags)).
				Msg("Tag path is shorter than the sentence")
		} else {
			log.Debug().
				Str("sentence_id", sentenceID(sent)).
				Int("words", sent.Len()).
				Msg("Tagged sentence")
		}
		out <- taggedSentence{sent: sent, tags: tags}
	}
	return nil
}
