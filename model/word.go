package model

import (
	"sort"
	"strings"
)

// Word is a single recognized token with its position and the recognizer's
// confidence. Words are produced once per token by the recognition stage and
// are immutable afterwards.
type Word struct {
	// Text is the recognized token text, as reported by the OCR engine.
	Text string

	// X, Y are the top-left corner of the token's bounding box in pixels.
	X, Y int

	// Width, Height are the bounding box dimensions in pixels.
	Width, Height int

	// Confidence is the recognizer's confidence on a 0-100 scale.
	Confidence float64
}

// BBox returns the word's bounding box.
func (w Word) BBox() BBox {
	return BBox{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}

// Row is an ordered sequence of words judged to lie on the same visual line,
// sorted left to right. Rows are transient and rebuilt on every run.
type Row struct {
	Words []Word
}

// AnchorY returns the vertical position of the row's first grouped word.
// Grouping tolerance is measured against this value, not against later
// members (fixed-anchor clustering).
func (r Row) AnchorY() int {
	if len(r.Words) == 0 {
		return 0
	}
	return r.Words[0].Y
}

// Text returns the row's words joined by single spaces, in row order.
func (r Row) Text() string {
	parts := make([]string, len(r.Words))
	for i, w := range r.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// BBox returns the union of all member word boxes.
func (r Row) BBox() BBox {
	if len(r.Words) == 0 {
		return BBox{}
	}
	box := r.Words[0].BBox()
	for _, w := range r.Words[1:] {
		box = box.Union(w.BBox())
	}
	return box
}

// SortWordsByX sorts the row's words ascending by horizontal position.
// The sort is stable so words sharing an X coordinate keep recognizer order.
func (r *Row) SortWordsByX() {
	sort.SliceStable(r.Words, func(i, j int) bool {
		return r.Words[i].X < r.Words[j].X
	})
}

// SortWordsByY stable-sorts words ascending by vertical position, preserving
// recognizer order for words that share a Y coordinate. This is the document
// order the region detector and row grouper both scan in.
func SortWordsByY(words []Word) {
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Y < words[j].Y
	})
}

// ContentBottom returns the maximum bottom edge (top + height) across all
// words, or 0 for an empty stream. The region detector uses this when no end
// anchor is found.
func ContentBottom(words []Word) int {
	bottom := 0
	for _, w := range words {
		if b := w.Y + w.Height; b > bottom {
			bottom = b
		}
	}
	return bottom
}
