package seq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNucleotideSequence(t *testing.T) {
	s, err := NewNucleotideSequence("acgu")
	require.NoError(t, err)
	require.Equal(t, 4, s.Len())
	require.Equal(t, "ACGT", s.String())
	require.Equal(t, 3, s.CodeAt(3))
}

func TestProteinSequence(t *testing.T) {
	s, err := NewProteinSequence("BIQTITE")
	require.NoError(t, err)
	require.Equal(t, 7, s.Len())
	require.Equal(t, "BIQTITE", s.String())
	require.Equal(t, "Q", s.SymbolAt(2))
}

func TestGeneralSequenceUnknownSymbol(t *testing.T) {
	a := MustAlphabet([]string{"foo", "bar"})
	_, err := NewGeneralSequence(a, []string{"foo", "baz"})
	var unknownErr *UnknownSymbolError
	require.ErrorAs(t, err, &unknownErr)
	require.Equal(t, "baz", unknownErr.Symbol)
}

func TestPositionalSequence(t *testing.T) {
	s, err := NewProteinSequence("IQLITE")
	require.NoError(t, err)

	p := NewPositionalSequence(s)
	require.Equal(t, s.Len(), p.Len())
	// every position is its own symbol
	require.Equal(t, s.Len(), p.Alphabet().Len())
	for i := 0; i < p.Len(); i++ {
		require.Equal(t, i, p.CodeAt(i))
	}
	// source symbols are kept for display
	require.Equal(t, "IQLITE", p.String())
	require.Equal(t, "L", p.SymbolAt(2))
}

func TestPositionalSequenceAlphabetsDiffer(t *testing.T) {
	s1, err := NewProteinSequence("AA")
	require.NoError(t, err)
	s2, err := NewProteinSequence("AAA")
	require.NoError(t, err)

	p1 := NewPositionalSequence(s1)
	p2 := NewPositionalSequence(s2)
	require.False(t, p1.Alphabet().Equal(p2.Alphabet()))
}
