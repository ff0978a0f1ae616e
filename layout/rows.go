package layout

import (
	"github.com/docketlab/factura/model"
)

// DefaultRowTolerance is the vertical distance, in pixels, within which a
// word is considered to lie on the same row as the row's anchor word.
const DefaultRowTolerance = 10

// RowGrouper clusters positioned words into ordered rows by vertical
// proximity.
type RowGrouper struct {
	// Tolerance is the maximum difference between a word's Y position and
	// the row anchor's Y position for the word to join the row.
	Tolerance int
}

// NewRowGrouper creates a row grouper with the default tolerance.
func NewRowGrouper() *RowGrouper {
	return &RowGrouper{Tolerance: DefaultRowTolerance}
}

// Group clusters words into rows. The input is expected to be restricted to
// the detected table region and already confidence-filtered.
//
// Words are sorted ascending by Y (stable, so recognizer order breaks ties),
// then clustered in a single greedy pass: the first word anchors a row, each
// subsequent word joins while |word.Y - anchor.Y| <= Tolerance, and a word
// past the tolerance closes the current row and anchors a new one. Closed
// rows are sorted left to right before emission; the last open row is always
// closed and emitted.
//
// The anchor is fixed per row, not recomputed as members are added, so a
// word within tolerance of later members but past tolerance of the anchor
// still starts a new row. On skewed scans this can split what a reader sees
// as one line; the behavior is kept deliberately for its single-pass cost
// and stable test expectations.
func (g *RowGrouper) Group(words []model.Word) []model.Row {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]model.Word, len(words))
	copy(sorted, words)
	model.SortWordsByY(sorted)

	var rows []model.Row
	current := model.Row{Words: []model.Word{sorted[0]}}
	anchorY := sorted[0].Y

	for _, w := range sorted[1:] {
		if absInt(w.Y-anchorY) <= g.Tolerance {
			current.Words = append(current.Words, w)
			continue
		}

		current.SortWordsByX()
		rows = append(rows, current)

		current = model.Row{Words: []model.Word{w}}
		anchorY = w.Y
	}

	current.SortWordsByX()
	rows = append(rows, current)

	return rows
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
