package seq

import (
	"strings"
)

// Sequence is a symbol-coded sequence over an alphabet. CodeAt returns
// the alphabet code of the symbol at a position; positions are
// 0-based.
type Sequence interface {
	Alphabet() *Alphabet
	Len() int
	CodeAt(pos int) int
}

// GeneralSequence stores the codes of a symbol sequence over an
// arbitrary alphabet.
type GeneralSequence struct {
	alphabet *Alphabet
	code     []int
}

// NewGeneralSequence encodes symbols over an alphabet. An
// UnknownSymbolError is returned for the first symbol not present in
// the alphabet.
func NewGeneralSequence(alphabet *Alphabet, symbols []string) (*GeneralSequence, error) {
	code := make([]int, len(symbols))
	for i, s := range symbols {
		c, err := alphabet.Encode(s)
		if err != nil {
			return nil, err
		}
		code[i] = c
	}
	return &GeneralSequence{alphabet: alphabet, code: code}, nil
}

// newLetterSequence encodes a string of single-letter symbols.
func newLetterSequence(alphabet *Alphabet, letters string) (*GeneralSequence, error) {
	symbols := make([]string, 0, len(letters))
	for _, c := range letters {
		symbols = append(symbols, string(c))
	}
	return NewGeneralSequence(alphabet, symbols)
}

// Alphabet returns the sequence alphabet.
func (s *GeneralSequence) Alphabet() *Alphabet {
	return s.alphabet
}

// Len returns the sequence length.
func (s *GeneralSequence) Len() int {
	return len(s.code)
}

// CodeAt returns the code at a position.
func (s *GeneralSequence) CodeAt(pos int) int {
	return s.code[pos]
}

// SymbolAt returns the symbol at a position.
func (s *GeneralSequence) SymbolAt(pos int) string {
	symbol, _ := s.alphabet.Decode(s.code[pos])
	return symbol
}

func (s *GeneralSequence) String() string {
	var b strings.Builder
	for _, c := range s.code {
		symbol, _ := s.alphabet.Decode(c)
		b.WriteString(symbol)
	}
	return b.String()
}
