package align

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/davegrays/biotite/seq"
)

// ParsePairings parses matrix text in NCBI format into a pairing map.
//
// The first non-comment line lists the column symbols; every following
// line starts with its row symbol, followed by one integer score per
// column symbol. Empty lines and lines starting with '#' are skipped.
// Symbols of the first alphabet are taken from the left column,
// symbols of the second alphabet from the top row.
//
// Duplicate row or column symbols are not detected; a later duplicate
// overwrites the earlier entry for the same pair.
func ParsePairings(text string) (Pairings, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, &MalformedRowError{Line: "", Reason: "no header line"}
	}
	symbols2 := strings.Fields(lines[0])
	pairings := make(Pairings, (len(lines)-1)*len(symbols2))
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != len(symbols2)+1 {
			return nil, &MalformedRowError{
				Line:   line,
				Reason: fmt.Sprintf("expected %d scores, got %d", len(symbols2), len(fields)-1),
			}
		}
		sym1 := fields[0]
		for j, field := range fields[1:] {
			score, err := strconv.Atoi(field)
			if err != nil {
				return nil, &MalformedRowError{
					Line:   line,
					Reason: fmt.Sprintf("%q is not an integer score", field),
				}
			}
			pairings[[2]string{sym1, symbols2[j]}] = score
		}
	}
	return pairings, nil
}

// ParseMatrix parses matrix text in NCBI format into a matrix whose
// alphabets are taken from the file itself: alphabet 1 from the row
// symbols in file order, alphabet 2 from the header. Unlike
// ParsePairings, duplicate symbols are an error here, since an
// alphabet must be deduplicated.
func ParseMatrix(text string) (*SubstitutionMatrix, error) {
	pairings, err := ParsePairings(text)
	if err != nil {
		return nil, err
	}
	symbols1, symbols2, err := symbolOrder(text)
	if err != nil {
		return nil, err
	}
	alphabet1, err := seq.NewAlphabet(symbols1)
	if err != nil {
		return nil, err
	}
	alphabet2, err := seq.NewAlphabet(symbols2)
	if err != nil {
		return nil, err
	}
	return NewFromPairings(alphabet1, alphabet2, pairings)
}

// symbolOrder extracts the row and column symbols of matrix text in
// file order.
func symbolOrder(text string) (symbols1, symbols2 []string, err error) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if symbols2 == nil {
			symbols2 = strings.Fields(line)
			continue
		}
		symbols1 = append(symbols1, strings.Fields(line)[0])
	}
	if symbols2 == nil {
		return nil, nil, &MalformedRowError{Line: "", Reason: "no header line"}
	}
	return symbols1, symbols2, nil
}

// String renders the matrix in NCBI format: a header line of column
// symbols and one line per row symbol, with scores right-aligned in
// fixed-width fields. There is no trailing line break. Re-parsing the
// output with ParsePairings and rebuilding via NewFromPairings yields
// a structurally equal matrix.
func (sm *SubstitutionMatrix) String() string {
	_, n := sm.Shape()
	width := 3
	for _, symbol := range sm.alph2.Symbols() {
		if len(symbol) > width {
			width = len(symbol)
		}
	}
	for _, s := range sm.scores {
		if l := len(strconv.Itoa(int(s))); l > width {
			width = l
		}
	}

	var b strings.Builder
	b.WriteString(" ")
	for _, symbol := range sm.alph2.Symbols() {
		fmt.Fprintf(&b, " %*s", width, symbol)
	}
	for i, symbol := range sm.alph1.Symbols() {
		b.WriteString("\n")
		b.WriteString(symbol)
		for j := 0; j < n; j++ {
			fmt.Fprintf(&b, " %*d", width, sm.scores[i*n+j])
		}
	}
	return b.String()
}
