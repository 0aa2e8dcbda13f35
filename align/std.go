package align

import (
	"sync"

	"github.com/davegrays/biotite/matrixdb"
	"github.com/davegrays/biotite/seq"
)

// Default scores patched into the Protein Blocks matrix for pairings
// with the undefined symbol. The values are in the order of magnitude
// of the other PB scores.
const (
	PBUndefinedMatch    = 200
	PBUndefinedMismatch = -200
)

// The standard matrices are built once per process and memoized; all
// callers observe the identical instance.
var (
	stdProteinOnce    sync.Once
	stdProtein        *SubstitutionMatrix
	stdNucleotideOnce sync.Once
	stdNucleotide     *SubstitutionMatrix
	std3DiOnce        sync.Once
	std3Di            *SubstitutionMatrix

	stdPBMu    sync.Mutex
	stdPBCache = map[[2]int]*SubstitutionMatrix{}
)

// StdProteinMatrix returns the default substitution matrix for protein
// sequence alignments, which is BLOSUM62.
func StdProteinMatrix() *SubstitutionMatrix {
	stdProteinOnce.Do(func() {
		stdProtein = mustFromName(seq.ProteinAlphabet, seq.ProteinAlphabet, "BLOSUM62")
	})
	return stdProtein
}

// StdNucleotideMatrix returns the default substitution matrix for DNA
// sequence alignments. It covers the ambiguous nucleotide alphabet.
func StdNucleotideMatrix() *SubstitutionMatrix {
	stdNucleotideOnce.Do(func() {
		stdNucleotide = mustFromName(seq.NucleotideAlphabetAmb, seq.NucleotideAlphabetAmb, "NUC")
	})
	return stdNucleotide
}

// Std3DiMatrix returns the default substitution matrix for 3Di
// structural sequence alignments.
func Std3DiMatrix() *SubstitutionMatrix {
	std3DiOnce.Do(func() {
		std3Di = mustFromName(seq.I3DAlphabet, seq.I3DAlphabet, "3Di")
	})
	return std3Di
}

// StdProteinBlocksMatrix returns the default substitution matrix for
// Protein Blocks sequences. The database matrix covers the defined
// blocks only; pairings with the undefined symbol are patched in with
// the given match and mismatch scores (see PBUndefinedMatch and
// PBUndefinedMismatch for the usual choice). The result is memoized
// per score pair.
func StdProteinBlocksMatrix(undefinedMatch, undefinedMismatch int) *SubstitutionMatrix {
	key := [2]int{undefinedMatch, undefinedMismatch}
	stdPBMu.Lock()
	defer stdPBMu.Unlock()
	if sm, ok := stdPBCache[key]; ok {
		return sm
	}

	text, err := matrixdb.Default.Read("PB")
	if err != nil {
		panic(err)
	}
	pairings, err := ParsePairings(text)
	if err != nil {
		panic(err)
	}
	for _, symbol := range seq.ProteinBlocksAlphabet.Symbols() {
		if symbol == seq.PBUndefinedSymbol {
			continue
		}
		pairings[[2]string{symbol, seq.PBUndefinedSymbol}] = undefinedMismatch
		pairings[[2]string{seq.PBUndefinedSymbol, symbol}] = undefinedMismatch
	}
	pairings[[2]string{seq.PBUndefinedSymbol, seq.PBUndefinedSymbol}] = undefinedMatch
	sm, err := NewFromPairings(seq.ProteinBlocksAlphabet, seq.ProteinBlocksAlphabet, pairings)
	if err != nil {
		panic(err)
	}
	stdPBCache[key] = sm
	return sm
}

// mustFromName builds a matrix from the embedded database and panics
// on failure. The embedded matrices are validated by tests, so a
// failure here means a broken build.
func mustFromName(alphabet1, alphabet2 *seq.Alphabet, name string) *SubstitutionMatrix {
	sm, err := NewFromName(alphabet1, alphabet2, name)
	if err != nil {
		panic(err)
	}
	return sm
}
