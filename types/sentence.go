package types

import "text2phenotype.com/postag/utils"

type Sentence struct {
	Tokens []Token
}

func NewSentence(words []string) Sentence {
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{Word: w}
	}
	return Sentence{Tokens: tokens}
}

func (sent Sentence) Len() int {
	return len(sent.Tokens)
}

func (sent Sentence) Words() []string {
	words := make([]string, len(sent.Tokens))
	for i, token := range sent.Tokens {
		words[i] = token.Word
	}
	return words
}

func (sent Sentence) Tags() []string {
	tags := make([]string, len(sent.Tokens))
	for i, token := range sent.Tokens {
		tags[i] = token.Tag
	}
	return tags
}

// GetHashCode identifies a sentence by its words only, so a gold sentence and
// its untagged copy share an id in logs.
func (sent Sentence) GetHashCode() uint64 {
	return utils.HashStrings(sent.Words())
}
