package seq

import (
	"strconv"
)

// PositionalSequence is derived from another sequence: its alphabet is
// the position range [0, n) of the source sequence, so each position is
// its own symbol and CodeAt(p) == p. It is used together with
// position-specific scoring matrices.
type PositionalSequence struct {
	alphabet *Alphabet
	symbols  []string
}

// NewPositionalSequence creates the positional equivalent of a
// sequence.
func NewPositionalSequence(source Sequence) *PositionalSequence {
	n := source.Len()
	positions := make([]string, n)
	symbols := make([]string, n)
	srcAlphabet := source.Alphabet()
	for p := 0; p < n; p++ {
		positions[p] = strconv.Itoa(p)
		symbols[p], _ = srcAlphabet.Decode(source.CodeAt(p))
	}
	return &PositionalSequence{
		alphabet: MustAlphabet(positions),
		symbols:  symbols,
	}
}

// Alphabet returns the position alphabet.
func (s *PositionalSequence) Alphabet() *Alphabet {
	return s.alphabet
}

// Len returns the sequence length.
func (s *PositionalSequence) Len() int {
	return len(s.symbols)
}

// CodeAt returns pos: every position is its own symbol.
func (s *PositionalSequence) CodeAt(pos int) int {
	return pos
}

// SymbolAt returns the source symbol at a position, for display.
func (s *PositionalSequence) SymbolAt(pos int) string {
	return s.symbols[pos]
}

func (s *PositionalSequence) String() string {
	str := ""
	for _, symbol := range s.symbols {
		str += symbol
	}
	return str
}
