// Package model provides the data structures shared across the extraction
// pipeline.
//
// This package defines the user-facing types that represent recognized words,
// detected table regions, grouped rows, and extracted line items. All pipeline
// stages ultimately consume or produce these types, making them the primary
// API for hosts that consume extraction results.
//
// # Coordinate System
//
// All positions are integer pixel coordinates with the origin at the top-left
// corner of the page raster, matching the output of the OCR engine. The
// raster is produced at a fixed 2x scale relative to the native page
// resolution (see the raster package), so all coordinates here are in scaled
// pixels.
//
// # Lifetimes
//
// A [Word] is immutable once produced by the recognition stage. Rows and
// line items are transient per-run values owned by the orchestrator; nothing
// in this package persists past a single extraction run.
package model
