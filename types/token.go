package types

import "text2phenotype.com/postag/utils"

// Token is a word observed in a corpus together with its tag. Test corpora
// carry words only, so Tag is empty there.
type Token struct {
	Word string
	Tag  string
}

func (token Token) IsTagged() bool {
	return len(token.Tag) > 0
}

func (token Token) GetHashCode() uint64 {
	return utils.HashStrings([]string{token.Word, token.Tag})
}
