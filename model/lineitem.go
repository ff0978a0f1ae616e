package model

import (
	"time"

	"github.com/google/uuid"
)

// TableRegion is the rectangular sub-area of a page hypothesized to contain
// the line-item table. It is derived once per page from the header/footer
// keyword anchors.
//
// Invariant: Width and Height are non-negative and the region encloses every
// word used to compute it.
type TableRegion struct {
	X      int
	Y      int
	Width  int
	Height int

	// Confidence is fixed at 0.8 for every successfully detected region;
	// the detector has no graded confidence model.
	Confidence float64
}

// BBox returns the region as a bounding box.
func (r TableRegion) BBox() BBox {
	return BBox{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// LineItem is one structured record extracted from a single row. Fields that
// no pattern matched are left empty; a LineItem is immutable once created.
type LineItem struct {
	ItemNumber  string `json:"item_number"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`

	// Confidence is the fraction of the five fields that are non-empty,
	// in [0, 1].
	Confidence float64 `json:"confidence"`

	// SourceBBox is the bounding box of the row the item was extracted from.
	SourceBBox BBox `json:"source_bbox"`
}

// FieldCount returns how many of the five fields are non-empty.
func (li LineItem) FieldCount() int {
	n := 0
	for _, f := range []string{li.ItemNumber, li.Description, li.Quantity, li.UnitPrice, li.TotalPrice} {
		if f != "" {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no field was extracted at all. Empty items are
// discarded by the orchestrator rather than emitted with zero confidence.
func (li LineItem) IsEmpty() bool {
	return li.FieldCount() == 0
}

// ExtractionResult is the structured output of one extraction run, consumed
// by the presentation layer. It is never partially populated: a failed run
// produces an error instead.
type ExtractionResult struct {
	// RunID uniquely identifies this extraction run.
	RunID uuid.UUID `json:"run_id"`

	// Vendor is the vendor pattern identifier the run was performed with.
	Vendor string `json:"vendor"`

	// Region is the detected table region.
	Region TableRegion `json:"region"`

	// Items are the extracted line items in top-to-bottom reading order.
	Items []LineItem `json:"items"`

	// Timestamp records when the run completed.
	Timestamp time.Time `json:"timestamp"`

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed"`

	// ProcessingMethod tags the pipeline variant that produced the result.
	ProcessingMethod string `json:"processing_method"`
}

// ItemCount returns the number of extracted line items.
func (r *ExtractionResult) ItemCount() int {
	if r == nil {
		return 0
	}
	return len(r.Items)
}
