// Package align provides substitution matrices for scoring symbol
// pairings in sequence alignments.
//
// A SubstitutionMatrix maps each pairing of a symbol of a first
// alphabet with a symbol of a second alphabet to an integer score,
// stored in a dense (m x n) int32 table indexed by symbol codes.
// Instances are immutable; all three constructors produce the same
// internal representation.
package align

import (
	"math"

	"github.com/davegrays/biotite/matrixdb"
	"github.com/davegrays/biotite/seq"
)

// Pairings maps (symbol of alphabet 1, symbol of alphabet 2) pairs to
// scores. It is a transient construction input; a matrix built from it
// does not keep a reference.
type Pairings map[[2]string]int

// SubstitutionMatrix is an immutable pairing-score table over two
// alphabets. Entry (i, j) is the score for pairing the symbol with
// code i of alphabet 1 with the symbol with code j of alphabet 2.
type SubstitutionMatrix struct {
	alph1, alph2 *seq.Alphabet
	// row-major, len = alph1.Len() * alph2.Len()
	scores []int32
}

// New creates a matrix from a dense score table of shape
// (alphabet1.Len(), alphabet2.Len()). The table is copied. Scores
// equal to the 32-bit integer extremes are rejected: they are the
// typical result of converting a float table containing infinities.
func New(alphabet1, alphabet2 *seq.Alphabet, table [][]int) (*SubstitutionMatrix, error) {
	m, n := alphabet1.Len(), alphabet2.Len()
	if len(table) != m {
		cols := 0
		if len(table) > 0 {
			cols = len(table[0])
		}
		return nil, &ShapeError{Rows: len(table), Cols: cols, WantRows: m, WantCols: n}
	}
	scores := make([]int32, m*n)
	for i, row := range table {
		if len(row) != n {
			return nil, &ShapeError{Rows: len(table), Cols: len(row), WantRows: m, WantCols: n}
		}
		for j, s := range row {
			if s <= math.MinInt32 || s >= math.MaxInt32 {
				return nil, &ScoreOverflowError{Score: s}
			}
			scores[i*n+j] = int32(s)
		}
	}
	return &SubstitutionMatrix{alph1: alphabet1, alph2: alphabet2, scores: scores}, nil
}

// NewFromPairings creates a matrix from a pairing map. The map must
// contain an entry for every combination of a symbol of alphabet 1
// with a symbol of alphabet 2.
func NewFromPairings(alphabet1, alphabet2 *seq.Alphabet, pairings Pairings) (*SubstitutionMatrix, error) {
	m, n := alphabet1.Len(), alphabet2.Len()
	scores := make([]int32, m*n)
	for i := 0; i < m; i++ {
		sym1, err := alphabet1.Decode(i)
		if err != nil {
			return nil, err
		}
		for j := 0; j < n; j++ {
			sym2, err := alphabet2.Decode(j)
			if err != nil {
				return nil, err
			}
			s, ok := pairings[[2]string{sym1, sym2}]
			if !ok {
				return nil, &MissingPairingError{Symbol1: sym1, Symbol2: sym2}
			}
			if s <= math.MinInt32 || s >= math.MaxInt32 {
				return nil, &ScoreOverflowError{Score: s}
			}
			scores[i*n+j] = int32(s)
		}
	}
	return &SubstitutionMatrix{alph1: alphabet1, alph2: alphabet2, scores: scores}, nil
}

// NewFromName creates a matrix from a named matrix in the embedded
// database (e.g. "BLOSUM62").
func NewFromName(alphabet1, alphabet2 *seq.Alphabet, name string) (*SubstitutionMatrix, error) {
	return NewFromResolver(alphabet1, alphabet2, matrixdb.Default, name)
}

// NewFromResolver is like NewFromName but resolves the name through an
// arbitrary matrix database.
func NewFromResolver(alphabet1, alphabet2 *seq.Alphabet, db matrixdb.Resolver, name string) (*SubstitutionMatrix, error) {
	text, err := db.Read(name)
	if err != nil {
		return nil, err
	}
	pairings, err := ParsePairings(text)
	if err != nil {
		return nil, err
	}
	return NewFromPairings(alphabet1, alphabet2, pairings)
}

// Shape returns the lengths of both alphabets.
func (sm *SubstitutionMatrix) Shape() (int, int) {
	return sm.alph1.Len(), sm.alph2.Len()
}

// Alphabet1 returns the first alphabet.
func (sm *SubstitutionMatrix) Alphabet1() *seq.Alphabet {
	return sm.alph1
}

// Alphabet2 returns the second alphabet.
func (sm *SubstitutionMatrix) Alphabet2() *seq.Alphabet {
	return sm.alph2
}

// ScoreTable returns a copy of the dense score table, row-indexed by
// alphabet-1 codes.
func (sm *SubstitutionMatrix) ScoreTable() [][]int32 {
	m, n := sm.Shape()
	table := make([][]int32, m)
	for i := 0; i < m; i++ {
		table[i] = make([]int32, n)
		copy(table[i], sm.scores[i*n:(i+1)*n])
	}
	return table
}

// ScoreByCode returns the score for two symbols given by their codes.
func (sm *SubstitutionMatrix) ScoreByCode(code1, code2 int) (int, error) {
	m, n := sm.Shape()
	if code1 < 0 || code1 >= m || code2 < 0 || code2 >= n {
		return 0, &IndexError{Code1: code1, Code2: code2, Rows: m, Cols: n}
	}
	return int(sm.scores[code1*n+code2]), nil
}

// Score returns the score for two symbols.
func (sm *SubstitutionMatrix) Score(symbol1, symbol2 string) (int, error) {
	code1, err := sm.alph1.Encode(symbol1)
	if err != nil {
		return 0, err
	}
	code2, err := sm.alph2.Encode(symbol2)
	if err != nil {
		return 0, err
	}
	return sm.ScoreByCode(code1, code2)
}

// Transpose returns a new matrix with the alphabets interchanged and
// the score table transposed.
func (sm *SubstitutionMatrix) Transpose() *SubstitutionMatrix {
	m, n := sm.Shape()
	scores := make([]int32, len(sm.scores))
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			scores[j*m+i] = sm.scores[i*n+j]
		}
	}
	return &SubstitutionMatrix{alph1: sm.alph2, alph2: sm.alph1, scores: scores}
}

// IsSymmetric reports whether both alphabets are equal and the score
// table equals its own transpose.
func (sm *SubstitutionMatrix) IsSymmetric() bool {
	if !sm.alph1.Equal(sm.alph2) {
		return false
	}
	n := sm.alph2.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if sm.scores[i*n+j] != sm.scores[j*n+i] {
				return false
			}
		}
	}
	return true
}

// Equal reports structural equality: pairwise equal alphabets and an
// element-wise equal score table.
func (sm *SubstitutionMatrix) Equal(other *SubstitutionMatrix) bool {
	if other == nil {
		return false
	}
	if !sm.alph1.Equal(other.alph1) || !sm.alph2.Equal(other.alph2) {
		return false
	}
	for i, s := range sm.scores {
		if other.scores[i] != s {
			return false
		}
	}
	return true
}
