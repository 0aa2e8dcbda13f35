package seq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphabetEncodeDecode(t *testing.T) {
	a, err := NewAlphabet([]string{"foo", "bar"})
	require.NoError(t, err)
	require.Equal(t, 2, a.Len())

	code, err := a.Encode("bar")
	require.NoError(t, err)
	require.Equal(t, 1, code)

	symbol, err := a.Decode(0)
	require.NoError(t, err)
	require.Equal(t, "foo", symbol)
}

func TestAlphabetUnknownSymbol(t *testing.T) {
	a := MustAlphabet([]string{"A", "C", "G", "T"})
	_, err := a.Encode("U")
	require.Error(t, err)
	var unknownErr *UnknownSymbolError
	require.ErrorAs(t, err, &unknownErr)
	require.Equal(t, "U", unknownErr.Symbol)
}

func TestAlphabetDecodeOutOfRange(t *testing.T) {
	a := MustAlphabet([]string{"A", "C"})
	_, err := a.Decode(2)
	require.Error(t, err)
	_, err = a.Decode(-1)
	require.Error(t, err)
}

func TestAlphabetRejectsDuplicates(t *testing.T) {
	_, err := NewAlphabet([]string{"A", "C", "A"})
	require.Error(t, err)
}

func TestAlphabetEqual(t *testing.T) {
	a := MustAlphabet([]string{"A", "C", "G", "T"})
	b := MustAlphabet([]string{"A", "C", "G", "T"})
	c := MustAlphabet([]string{"T", "G", "C", "A"})

	require.True(t, a.Equal(b))
	require.True(t, a.Equal(a))
	// order matters
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))
}

func TestAlphabetSymbolsIsCopy(t *testing.T) {
	a := MustAlphabet([]string{"A", "C"})
	symbols := a.Symbols()
	symbols[0] = "X"
	code, err := a.Encode("A")
	require.NoError(t, err)
	require.Equal(t, 0, code)
}

func TestStandardAlphabets(t *testing.T) {
	require.Equal(t, 4, NucleotideAlphabet.Len())
	require.Equal(t, 15, NucleotideAlphabetAmb.Len())
	require.Equal(t, 24, ProteinAlphabet.Len())
	require.Equal(t, 20, I3DAlphabet.Len())
	require.Equal(t, 17, ProteinBlocksAlphabet.Len())

	_, err := ProteinBlocksAlphabet.Encode(PBUndefinedSymbol)
	require.NoError(t, err)
}
