package layout

import (
	"testing"

	"github.com/docketlab/factura/model"
)

func TestGroupSingleRow(t *testing.T) {
	g := NewRowGrouper()

	words := []model.Word{
		{Text: "b", X: 60, Y: 102},
		{Text: "a", X: 10, Y: 100},
		{Text: "c", X: 200, Y: 105},
	}

	rows := g.Group(words)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Text() != "a b c" {
		t.Errorf("expected left-to-right order 'a b c', got %q", rows[0].Text())
	}
}

func TestGroupMultipleRowsAscendingY(t *testing.T) {
	g := NewRowGrouper()

	words := []model.Word{
		{Text: "row3", X: 10, Y: 300},
		{Text: "row1", X: 10, Y: 100},
		{Text: "row2", X: 10, Y: 200},
	}

	rows := g.Group(words)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, want := range []string{"row1", "row2", "row3"} {
		if rows[i].Text() != want {
			t.Errorf("row %d: expected %q, got %q", i, want, rows[i].Text())
		}
	}
}

func TestGroupFixedAnchorSemantics(t *testing.T) {
	g := NewRowGrouper()

	// The third word is within tolerance of the second word but past
	// tolerance of the row anchor, so it must start a new row.
	words := []model.Word{
		{Text: "anchor", X: 10, Y: 100},
		{Text: "near", X: 50, Y: 109},
		{Text: "drift", X: 90, Y: 112},
	}

	rows := g.Group(words)
	if len(rows) != 2 {
		t.Fatalf("expected fixed-anchor grouping to produce 2 rows, got %d", len(rows))
	}
	if rows[0].Text() != "anchor near" {
		t.Errorf("expected first row 'anchor near', got %q", rows[0].Text())
	}
	if rows[1].Text() != "drift" {
		t.Errorf("expected second row 'drift', got %q", rows[1].Text())
	}
}

func TestGroupToleranceInvariant(t *testing.T) {
	g := NewRowGrouper()

	words := []model.Word{
		{Text: "a", X: 0, Y: 10},
		{Text: "b", X: 10, Y: 20},
		{Text: "c", X: 20, Y: 14},
		{Text: "d", X: 30, Y: 45},
		{Text: "e", X: 40, Y: 50},
	}

	rows := g.Group(words)

	// Every member word must lie within tolerance of its row's anchor, rows
	// must come out in ascending Y order, and words within a row in
	// ascending X order.
	lastAnchor := -1 << 31
	for _, row := range rows {
		anchor := row.AnchorY()
		if anchor < lastAnchor {
			t.Errorf("rows not in ascending vertical order: %d after %d", anchor, lastAnchor)
		}
		lastAnchor = anchor

		lastX := -1 << 31
		for _, w := range row.Words {
			if absInt(w.Y-anchor) > g.Tolerance {
				t.Errorf("word %q at Y=%d outside tolerance of anchor %d", w.Text, w.Y, anchor)
			}
			if w.X < lastX {
				t.Errorf("word %q at X=%d out of horizontal order", w.Text, w.X)
			}
			lastX = w.X
		}
	}
}

func TestGroupLastRowEmitted(t *testing.T) {
	g := NewRowGrouper()

	words := []model.Word{
		{Text: "only", X: 10, Y: 100},
	}

	rows := g.Group(words)
	if len(rows) != 1 {
		t.Fatalf("expected the last open row to be emitted, got %d rows", len(rows))
	}
}

func TestGroupEmptyInput(t *testing.T) {
	g := NewRowGrouper()
	if rows := g.Group(nil); rows != nil {
		t.Errorf("expected nil rows for empty input, got %v", rows)
	}
}
