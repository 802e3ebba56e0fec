package pos

import (
	"text2phenotype.com/postag/types"
	"math"
)

// Cell is the best way found to reach Tag at one position: the tag chosen
// at the previous position and the score of that path.
type Cell struct {
	Tag         string
	Backpointer string
	Score       float64
}

// Column holds one cell per candidate tag of a word, in the order of the
// word's emission row.
type Column struct {
	Word  string
	Cells []Cell
	index map[string]int
}

func newColumn(word string, size int) Column {
	return Column{
		Word:  word,
		Cells: make([]Cell, 0, size),
		index: make(map[string]int, size),
	}
}

func (c *Column) add(cell Cell) {
	c.index[cell.Tag] = len(c.Cells)
	c.Cells = append(c.Cells, cell)
}

func (c Column) Find(tag string) (Cell, bool) {
	i, ok := c.index[tag]
	if !ok {
		return Cell{}, false
	}
	return c.Cells[i], true
}

// Score is 0 for tags that are not candidates at this position.
func (c Column) Score(tag string) float64 {
	cell, _ := c.Find(tag)
	return cell.Score
}

func (c Column) First() (Cell, bool) {
	if len(c.Cells) == 0 {
		return Cell{}, false
	}
	return c.Cells[0], true
}

// Best returns the highest scoring cell; the first one wins ties.
func (c Column) Best() (Cell, bool) {
	best, ok := c.First()
	for _, cell := range c.Cells {
		if cell.Score > best.Score {
			best = cell
		}
	}
	return best, ok
}

type Lattice []Column

func pathScore(emission, transition, carryover float64) float64 {
	if emission == 0 || transition == 0 || carryover == 0 {
		return 0.0
	}
	return math.Exp(math.Log(emission) + math.Log(transition) + math.Log(carryover))
}

// Decode fills the lattice left to right. For every candidate tag y of word
// i it keeps the previous candidate z maximizing
//
//	P(y | w_i) * P(z | y) * score(i-1, z)
//
// where z ranges over the emission row of word i-1. Scanning starts from the
// first z with its score, and only a strictly greater score replaces it, so an
// all-zero column still records the first z as backpointer.
func (s *Session) Decode(words []string) Lattice {
	lattice := make(Lattice, 0, len(words))

	for i, word := range words {
		row := s.Emission(word)
		column := newColumn(word, row.Len())

		for _, tag := range row.Outcomes() {
			emission := row.Prob(tag)
			if i == 0 {
				column.add(Cell{
					Tag:         tag,
					Backpointer: StartTag,
					Score:       math.Exp(math.Log(emission)),
				})
				continue
			}

			prev := lattice[i-1]
			best := Cell{Tag: tag}
			for j, prevTag := range s.Emission(words[i-1]).Outcomes() {
				score := pathScore(emission, s.model.Transition(tag, prevTag), prev.Score(prevTag))
				if j == 0 || score > best.Score {
					best.Backpointer = prevTag
					best.Score = score
				}
			}
			column.add(best)
		}

		lattice = append(lattice, column)
	}

	return lattice
}

// Backtrack walks backpointers from a terminal cell of the last column.
// With types.TerminalFirst the terminal cell is the first cell of the column
// (lexicographically first tag) regardless of score; with types.TerminalBest
// it is the highest scoring one. If a backpointer has no matching cell the
// walk stops and the returned path is shorter than the lattice.
func (l Lattice) Backtrack(terminal string) []string {
	if len(l) == 0 {
		return []string{}
	}

	last := l[len(l)-1]
	var cell Cell
	var ok bool
	if terminal == types.TerminalBest {
		cell, ok = last.Best()
	} else {
		cell, ok = last.First()
	}
	if !ok {
		return []string{}
	}

	path := []Cell{cell}
	for i := len(l) - 2; i >= 0; i-- {
		cell, ok = l[i].Find(cell.Backpointer)
		if !ok {
			break
		}
		path = append(path, cell)
	}

	tags := make([]string, len(path))
	for i, c := range path {
		tags[len(path)-1-i] = c.Tag
	}
	return tags
}

// Tag decodes words and backtracks from the terminal cell chosen by terminal.
func (s *Session) Tag(words []string, terminal string) []string {
	return s.Decode(words).Backtrack(terminal)
}
