package align

import (
	"github.com/davegrays/biotite/seq"
)

// AsPositional transforms the matrix and two sequences into positional
// equivalents. The returned matrix is position-specific: its alphabets
// are the position ranges of the sequences, and its shape is
// (sequence1.Len(), sequence2.Len()). The scores are the same as in
// the original matrix, mapped onto positions:
//
//	pos.ScoreByCode(p, q) == sm.ScoreByCode(sequence1.CodeAt(p), sequence2.CodeAt(q))
//
// The table is a full cross-product expansion of the two code arrays,
// not a view, so alignment code consumes it exactly like any other
// substitution matrix.
func (sm *SubstitutionMatrix) AsPositional(sequence1, sequence2 seq.Sequence) (*SubstitutionMatrix, *seq.PositionalSequence, *seq.PositionalSequence, error) {
	n1, n2 := sequence1.Len(), sequence2.Len()
	m, n := sm.Shape()
	scores := make([]int32, n1*n2)
	for p := 0; p < n1; p++ {
		code1 := sequence1.CodeAt(p)
		if code1 < 0 || code1 >= m {
			return nil, nil, nil, &IndexError{Code1: code1, Code2: 0, Rows: m, Cols: n}
		}
		for q := 0; q < n2; q++ {
			code2 := sequence2.CodeAt(q)
			if code2 < 0 || code2 >= n {
				return nil, nil, nil, &IndexError{Code1: code1, Code2: code2, Rows: m, Cols: n}
			}
			scores[p*n2+q] = sm.scores[code1*n+code2]
		}
	}
	posSequence1 := seq.NewPositionalSequence(sequence1)
	posSequence2 := seq.NewPositionalSequence(sequence2)
	posMatrix := &SubstitutionMatrix{
		alph1:  posSequence1.Alphabet(),
		alph2:  posSequence2.Alphabet(),
		scores: scores,
	}
	return posMatrix, posSequence1, posSequence2, nil
}
