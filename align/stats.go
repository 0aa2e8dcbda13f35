package align

import (
	"errors"
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"
)

// ExpectedScore returns the score expected for aligning a random
// symbol pair, i.e. freq1' * S * freq2, where freq1 and freq2 are
// background frequencies over the two alphabets. For a sensible
// log-odds matrix the expected score is negative.
func ExpectedScore(sm *SubstitutionMatrix, freq1, freq2 []float64) (float64, error) {
	m, n := sm.Shape()
	if len(freq1) != m || len(freq2) != n {
		return 0, fmt.Errorf("background frequencies have lengths (%d, %d), "+
			"but (%d, %d) is required", len(freq1), len(freq2), m, n)
	}
	data := make([]float64, len(sm.scores))
	for i, s := range sm.scores {
		data[i] = float64(s)
	}
	scores := mat64.NewDense(m, n, data)
	p1 := mat64.NewVector(m, freq1)
	p2 := mat64.NewVector(n, freq2)

	var sp2 mat64.Vector
	sp2.MulVec(scores, p2)
	return mat64.Dot(p1, &sp2), nil
}

// Lambda computes the Karlin-Altschul scale of a scoring matrix: the
// unique positive lambda with sum of freq1_i * freq2_j *
// exp(lambda*s_ij) equal to 1. It exists iff the expected score is
// negative and at least one score is positive.
func Lambda(sm *SubstitutionMatrix, freq1, freq2 []float64) (float64, error) {
	expected, err := ExpectedScore(sm, freq1, freq2)
	if err != nil {
		return 0, err
	}
	if expected >= 0 {
		return 0, errors.New("expected score is not negative, lambda is undefined")
	}
	hasPositive := false
	for _, s := range sm.scores {
		if s > 0 {
			hasPositive = true
			break
		}
	}
	if !hasPositive {
		return 0, errors.New("matrix has no positive score, lambda is undefined")
	}

	_, n := sm.Shape()
	// sum of freq1_i * freq2_j * exp(lambda*s_ij) - 1;
	// negative at 0+ (expected score < 0), grows without bound
	f := func(lambda float64) float64 {
		sum := 0.0
		for i := range freq1 {
			for j := range freq2 {
				sum += freq1[i] * freq2[j] * math.Exp(lambda*float64(sm.scores[i*n+j]))
			}
		}
		return sum - 1
	}
	lo, hi := 0.0, 1.0
	for f(hi) < 0 {
		lo = hi
		hi *= 2
	}
	for k := 0; k < 100; k++ {
		mid := (lo + hi) / 2
		if f(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}

// RelativeEntropy returns the information content of the matrix in
// bits per aligned symbol pair, based on the implied target
// frequencies freq1_i * freq2_j * exp(lambda*s_ij).
func RelativeEntropy(sm *SubstitutionMatrix, freq1, freq2 []float64) (float64, error) {
	lambda, err := Lambda(sm, freq1, freq2)
	if err != nil {
		return 0, err
	}
	_, n := sm.Shape()
	h := 0.0
	for i := range freq1 {
		for j := range freq2 {
			s := float64(sm.scores[i*n+j])
			target := freq1[i] * freq2[j] * math.Exp(lambda*s)
			h += target * lambda * s
		}
	}
	return h / math.Ln2, nil
}
