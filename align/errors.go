package align

import (
	"fmt"
)

// ShapeError is returned when a score table's dimensions do not match
// the alphabet lengths.
type ShapeError struct {
	Rows, Cols         int
	WantRows, WantCols int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("score table has shape (%d, %d), but (%d, %d) is required",
		e.Rows, e.Cols, e.WantRows, e.WantCols)
}

// ScoreOverflowError is returned when a score equals one of the
// reserved 32-bit extremes or does not fit into 32 bits at all. A
// common cause is converting a float table containing infinities,
// which saturates to the integer extremes.
type ScoreOverflowError struct {
	Score int
}

func (e *ScoreOverflowError) Error() string {
	return fmt.Sprintf("score value %d is too large; "+
		"maybe it was converted from a float matrix containing inf values?", e.Score)
}

// MissingPairingError is returned when a pairing map lacks an entry
// for a symbol combination of the alphabet product.
type MissingPairingError struct {
	Symbol1, Symbol2 string
}

func (e *MissingPairingError) Error() string {
	return fmt.Sprintf("pairing map has no entry for (%q, %q)", e.Symbol1, e.Symbol2)
}

// IndexError is returned for a code lookup outside the table bounds.
type IndexError struct {
	Code1, Code2 int
	Rows, Cols   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("codes (%d, %d) outside matrix of shape (%d, %d)",
		e.Code1, e.Code2, e.Rows, e.Cols)
}

// MalformedRowError is returned when a matrix text row has the wrong
// number of tokens or a token is not a valid integer.
type MalformedRowError struct {
	Line   string
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed matrix row %q: %s", e.Line, e.Reason)
}
