package pos

// Session is one decoding run over a trained Model. It owns the fallback
// rows installed for words the model has never seen: the first time such a
// word shows up it is given the tag marginals as its emission row, and that
// row is reused for the rest of the session. The model itself stays frozen.
//
// A Session is not safe for concurrent use.
type Session struct {
	model    *Model
	fallback map[string]Distribution
}

func (m *Model) NewSession() *Session {
	return &Session{
		model:    m,
		fallback: make(map[string]Distribution),
	}
}

func (s *Session) Model() *Model {
	return s.model
}

// Emission returns the P(tag | word) row for word.
func (s *Session) Emission(word string) Distribution {
	if row, ok := s.model.Emissions[word]; ok {
		return row
	}
	if row, ok := s.fallback[word]; ok {
		return row
	}
	s.fallback[word] = s.model.Marginals
	return s.model.Marginals
}

// Fallbacks is the number of unseen words cached so far.
func (s *Session) Fallbacks() int {
	return len(s.fallback)
}
