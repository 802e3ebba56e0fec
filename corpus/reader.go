package corpus

import (
	"bufio"
	"text2phenotype.com/postag/types"
	"text2phenotype.com/postag/utils"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrMalformedLine = errors.New("malformed corpus line")

// ReadSentences parses one token per line, "word<TAB>tag" when tagged is set
// and a bare word otherwise. A blank line ends the current sentence, so two
// blank lines in a row produce an empty sentence; end of input ends the last
// non-empty one. Columns beyond the ones needed are ignored. Strings are
// interned in store when it is not nil.
func ReadSentences(r io.Reader, tagged bool, store utils.StringStore) ([]types.Sentence, error) {
	intern := func(s string) string { return s }
	if store != nil {
		intern = store.Intern
	}

	var sents []types.Sentence
	var curr []types.Token
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			sents = append(sents, types.Sentence{Tokens: curr})
			curr = nil
			continue
		}

		columns := utils.SplitColumns(line)
		token := types.Token{Word: intern(columns[0])}
		if tagged {
			if len(columns) < 2 || len(columns[1]) == 0 {
				return nil, fmt.Errorf("%w: line %d: expected word and tag separated by a tab", ErrMalformedLine, lineNo)
			}
			token.Tag = intern(columns[1])
		}
		curr = append(curr, token)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(curr) > 0 {
		sents = append(sents, types.Sentence{Tokens: curr})
	}
	return sents, nil
}

// NewSentenceReader streams sents in order and closes the channel after the last one.
func NewSentenceReader(sents []types.Sentence) <-chan types.Sentence {
	out := make(chan types.Sentence)
	go func() {
		defer close(out)
		for _, sent := range sents {
			out <- sent
		}
	}()
	return out
}
