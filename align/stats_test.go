package align

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davegrays/biotite/seq"
)

// matchMismatchMatrix builds a +1/-1 matrix over the unambiguous
// nucleotide alphabet.
func matchMismatchMatrix(t *testing.T) *SubstitutionMatrix {
	n := seq.NucleotideAlphabet.Len()
	table := make([][]int, n)
	for i := range table {
		table[i] = make([]int, n)
		for j := range table[i] {
			if i == j {
				table[i][j] = 1
			} else {
				table[i][j] = -1
			}
		}
	}
	sm, err := New(seq.NucleotideAlphabet, seq.NucleotideAlphabet, table)
	require.NoError(t, err)
	return sm
}

func TestExpectedScore(t *testing.T) {
	sm := matchMismatchMatrix(t)
	freq := []float64{0.25, 0.25, 0.25, 0.25}

	// 4 matches of +1 and 12 mismatches of -1, uniformly weighted
	expected, err := ExpectedScore(sm, freq, freq)
	require.NoError(t, err)
	require.InDelta(t, -0.5, expected, 1e-12)
}

func TestExpectedScoreFreqLengthMismatch(t *testing.T) {
	sm := matchMismatchMatrix(t)
	_, err := ExpectedScore(sm, []float64{0.5, 0.5}, []float64{0.25, 0.25, 0.25, 0.25})
	require.Error(t, err)
}

func TestLambda(t *testing.T) {
	sm := matchMismatchMatrix(t)
	freq := []float64{0.25, 0.25, 0.25, 0.25}

	// (4*e^l + 12*e^-l)/16 = 1 has the positive root l = ln 3
	lambda, err := Lambda(sm, freq, freq)
	require.NoError(t, err)
	require.InDelta(t, math.Log(3), lambda, 1e-9)
}

func TestLambdaUndefined(t *testing.T) {
	// all-positive matrix: expected score is positive
	n := seq.NucleotideAlphabet.Len()
	table := make([][]int, n)
	for i := range table {
		table[i] = make([]int, n)
		for j := range table[i] {
			table[i][j] = 1
		}
	}
	sm, err := New(seq.NucleotideAlphabet, seq.NucleotideAlphabet, table)
	require.NoError(t, err)

	freq := []float64{0.25, 0.25, 0.25, 0.25}
	_, err = Lambda(sm, freq, freq)
	require.Error(t, err)
}

func TestRelativeEntropy(t *testing.T) {
	sm := matchMismatchMatrix(t)
	freq := []float64{0.25, 0.25, 0.25, 0.25}

	// with lambda = ln 3 the target frequencies are 3/16 per match
	// and 1/48 per mismatch:
	// H = (4*3/16 - 12/48) * ln 3 / ln 2
	want := (12.0/16.0 - 12.0/48.0) * math.Log(3) / math.Ln2
	h, err := RelativeEntropy(sm, freq, freq)
	require.NoError(t, err)
	require.InDelta(t, want, h, 1e-6)
}

func TestBlosum62Statistics(t *testing.T) {
	sm := StdProteinMatrix()
	m, n := sm.Shape()
	freq1 := make([]float64, m)
	for i := range freq1 {
		freq1[i] = 1 / float64(m)
	}
	freq2 := make([]float64, n)
	for i := range freq2 {
		freq2[i] = 1 / float64(n)
	}

	expected, err := ExpectedScore(sm, freq1, freq2)
	require.NoError(t, err)
	require.Less(t, expected, 0.0)

	lambda, err := Lambda(sm, freq1, freq2)
	require.NoError(t, err)
	require.Greater(t, lambda, 0.0)

	h, err := RelativeEntropy(sm, freq1, freq2)
	require.NoError(t, err)
	require.Greater(t, h, 0.0)
}
