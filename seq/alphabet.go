// Package seq provides alphabets and symbol-coded sequences.
//
// An Alphabet maps between symbols and their integer codes. Sequences
// store codes, not symbols, so that downstream consumers (e.g. scoring
// matrices) can index dense tables directly.
package seq

import (
	"fmt"
	"strings"
)

// UnknownSymbolError is returned when a symbol is not part of an
// alphabet.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("symbol %q is not in the alphabet", e.Symbol)
}

// Alphabet is an ordered, deduplicated set of symbols. The code of a
// symbol is its index in the symbol list. Alphabets are immutable after
// construction.
type Alphabet struct {
	symbols []string
	codes   map[string]int
}

// NewAlphabet creates an alphabet from an ordered symbol list. An error
// is returned if a symbol occurs more than once.
func NewAlphabet(symbols []string) (*Alphabet, error) {
	a := &Alphabet{
		symbols: make([]string, len(symbols)),
		codes:   make(map[string]int, len(symbols)),
	}
	copy(a.symbols, symbols)
	for i, s := range symbols {
		if _, ok := a.codes[s]; ok {
			return nil, fmt.Errorf("duplicate symbol %q in alphabet", s)
		}
		a.codes[s] = i
	}
	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on error. It is intended
// for statically known symbol lists.
func MustAlphabet(symbols []string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// letterAlphabet creates an alphabet of single-letter symbols.
func letterAlphabet(letters string) *Alphabet {
	symbols := make([]string, 0, len(letters))
	for _, c := range letters {
		symbols = append(symbols, string(c))
	}
	return MustAlphabet(symbols)
}

// Encode returns the code of a symbol.
func (a *Alphabet) Encode(symbol string) (int, error) {
	code, ok := a.codes[symbol]
	if !ok {
		return 0, &UnknownSymbolError{Symbol: symbol}
	}
	return code, nil
}

// Decode returns the symbol for a code.
func (a *Alphabet) Decode(code int) (string, error) {
	if code < 0 || code >= len(a.symbols) {
		return "", fmt.Errorf("code %d outside alphabet of length %d", code, len(a.symbols))
	}
	return a.symbols[code], nil
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns a copy of the symbol list in code order.
func (a *Alphabet) Symbols() []string {
	symbols := make([]string, len(a.symbols))
	copy(symbols, a.symbols)
	return symbols
}

// Equal reports whether two alphabets have element-wise equal symbol
// lists.
func (a *Alphabet) Equal(other *Alphabet) bool {
	if a == other {
		return true
	}
	if other == nil || len(a.symbols) != len(other.symbols) {
		return false
	}
	for i, s := range a.symbols {
		if other.symbols[i] != s {
			return false
		}
	}
	return true
}

func (a *Alphabet) String() string {
	return "[" + strings.Join(a.symbols, " ") + "]"
}
