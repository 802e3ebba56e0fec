package pos

import (
	"text2phenotype.com/postag/types"
	"errors"
	"fmt"
)

var (
	ErrUnknownTagger = errors.New("unknown tagger")
	ErrEmptyModel    = errors.New("training corpus has no tokens")
)

// Tagger returns one tag per word. Taggers built here keep per-run state and
// must be called from one goroutine at a time.
type Tagger func(words []string) []string

func CheckTaggerName(name string) error {
	switch name {
	case types.BaselineTagger, types.HMMTagger:
		return nil
	}
	return fmt.Errorf("%w: %q, please select either %s or %s",
		ErrUnknownTagger, name, types.BaselineTagger, types.HMMTagger)
}

func NewBaselineTagger(sents []types.Sentence) (Tagger, error) {
	b, err := NewBaseline(sents)
	if err != nil {
		return nil, err
	}
	return b.Tag, nil
}

// NewSequenceTagger decodes every sentence within session, so the unseen-word
// cache lives as long as the returned Tagger.
func NewSequenceTagger(session *Session, cfg types.DecoderConfig) Tagger {
	terminal := cfg.Terminal
	return func(words []string) []string {
		return session.Tag(words, terminal)
	}
}

func NewTagger(name string, sents []types.Sentence, cfg types.DecoderConfig) (Tagger, error) {
	if err := CheckTaggerName(name); err != nil {
		return nil, err
	}
	if name == types.BaselineTagger {
		return NewBaselineTagger(sents)
	}
	model := Estimate(sents)
	if model.IsEmpty() {
		return nil, ErrEmptyModel
	}
	return NewSequenceTagger(model.NewSession(), cfg), nil
}
