// Package layout groups a positioned OCR word stream into visual rows.
//
// This package provides the two stream-shaping stages of the pipeline:
//
//   - [Normalizer] - drops empty and low-confidence detections
//   - [RowGrouper] - clusters the surviving words into ordered rows
//
// # Row Grouping
//
// Grouping is a greedy single pass over the Y-sorted stream: the first word
// of a row fixes the row's anchor, and each subsequent word joins the row
// only while its vertical position stays within a fixed tolerance of that
// anchor. A word that drifts past the tolerance relative to the anchor, even
// if it is close to later members, starts a new row. This is an intentional
// simplification traded for single-pass O(n log n) cost; see RowGrouper for
// the consequences on skewed scans.
package layout
