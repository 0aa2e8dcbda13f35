package seq

import (
	"strings"
)

var (
	// NucleotideAlphabet contains the four unambiguous DNA bases.
	NucleotideAlphabet = letterAlphabet("ACGT")
	// NucleotideAlphabetAmb additionally contains the IUPAC
	// ambiguity codes.
	NucleotideAlphabetAmb = letterAlphabet("ACGTRYSWKMBDHVN")
	// ProteinAlphabet contains the 20 amino acids, the ambiguity
	// codes B, Z and X and the stop symbol.
	ProteinAlphabet = letterAlphabet("ACDEFGHIKLMNPQRSTVWYBZX*")
	// I3DAlphabet is the 3Di structural alphabet from foldseek.
	I3DAlphabet = letterAlphabet("acdefghiklmnpqrstvwy")
	// ProteinBlocksAlphabet is the Protein Blocks structural
	// alphabet; PBUndefinedSymbol marks unassignable residues.
	ProteinBlocksAlphabet = letterAlphabet("abcdefghijklmnop" + PBUndefinedSymbol)
)

// PBUndefinedSymbol is the placeholder symbol of the Protein Blocks
// alphabet for positions without a defined block.
const PBUndefinedSymbol = "z"

// NewNucleotideSequence encodes a DNA string over the unambiguous
// nucleotide alphabet. Lowercase letters are accepted, U is treated as
// T.
func NewNucleotideSequence(letters string) (*GeneralSequence, error) {
	letters = strings.ReplaceAll(strings.ToUpper(letters), "U", "T")
	return newLetterSequence(NucleotideAlphabet, letters)
}

// NewNucleotideSequenceAmb is like NewNucleotideSequence but permits
// IUPAC ambiguity codes.
func NewNucleotideSequenceAmb(letters string) (*GeneralSequence, error) {
	letters = strings.ReplaceAll(strings.ToUpper(letters), "U", "T")
	return newLetterSequence(NucleotideAlphabetAmb, letters)
}

// NewProteinSequence encodes a protein string over the protein
// alphabet.
func NewProteinSequence(letters string) (*GeneralSequence, error) {
	return newLetterSequence(ProteinAlphabet, strings.ToUpper(letters))
}
