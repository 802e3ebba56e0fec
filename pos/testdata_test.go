package pos

import "text2phenotype.com/postag/types"

func sentence(pairs ...string) types.Sentence {
	var sent types.Sentence
	for i := 0; i+1 < len(pairs); i += 2 {
		sent.Tokens = append(sent.Tokens, types.Token{Word: pairs[i], Tag: pairs[i+1]})
	}
	return sent
}

func dogCorpus() []types.Sentence {
	return []types.Sentence{
		sentence("the", "DET", "dog", "NOUN", "barks", "VERB"),
	}
}

func mixedCorpus() []types.Sentence {
	return []types.Sentence{
		sentence("the", "DET", "dog", "NOUN", "barks", "VERB"),
		sentence("a", "DET", "dog", "NOUN", "runs", "VERB", "home", "NOUN"),
		sentence("dogs", "NOUN", "dog", "VERB", "the", "DET", "cat", "NOUN"),
		sentence("the", "DET", "big", "ADJ", "dog", "NOUN", "sleeps", "VERB"),
		sentence("run", "VERB"),
		sentence("the", "DET", "run", "NOUN"),
	}
}

// "x" is tagged A only sentence-initially and B only after a determiner, so
// after "the" the lexicographically first candidate A scores 0 while B wins.
func terminalCorpus() []types.Sentence {
	return []types.Sentence{
		sentence("x", "A"),
		sentence("the", "DET", "x", "B"),
	}
}
