package factura

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docketlab/factura/classify"
	"github.com/docketlab/factura/layout"
	"github.com/docketlab/factura/model"
	"github.com/docketlab/factura/ocr"
	"github.com/docketlab/factura/raster"
	"github.com/docketlab/factura/tables"
	"github.com/docketlab/factura/vendors"
)

// ErrRecognitionFailed indicates the run stopped because word recognition
// produced no usable word stream. It is distinct from ErrNoTableRegion,
// which means recognition succeeded but no table was found.
var ErrRecognitionFailed = errors.New("word recognition failed")

// ErrNoTableRegion is returned when no table start anchor was found in the
// recognized words. It aliases the tables package sentinel so callers can
// test either.
var ErrNoTableRegion = tables.ErrNoTableRegion

// Processing methods recorded in extraction results.
const (
	// MethodOCR means words were recognized from a page image in this run.
	MethodOCR = "ocr"
	// MethodWords means pre-recognized words were supplied by the caller.
	MethodWords = "words"
)

// Extractor provides a fluent interface for extracting line items from
// invoice pages. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source (exactly one is used)
	filename  string
	imageData []byte
	words     []model.Word

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning

	// Run progress; advanced by terminal operations
	state RunState
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		imageData: e.imageData,
		words:     e.words,
		options:   e.options.clone(),
		err:       e.err,
		warnings:  append([]Warning(nil), e.warnings...),
		state:     e.state,
	}
}

// State returns how far the most recent terminal operation progressed.
// Before any terminal operation it is StateIdle.
func (e *Extractor) State() RunState {
	return e.state
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Vendor selects the vendor pattern set used for region detection and row
// classification. Unknown vendors fail the run at extraction time; there is
// no silent fallback to the generic pattern.
//
// Example:
//
//	result, _, err := factura.FromImage("invoice.png").Vendor(vendors.Retail).Extract()
func (e *Extractor) Vendor(id vendors.ID) *Extractor {
	newExt := e.clone()
	newExt.options.vendor = id
	return newExt
}

// MinWordConfidence sets the recognizer confidence (0-100 scale) a word must
// strictly exceed to survive normalization.
//
// Example:
//
//	result, _, err := factura.FromImage("invoice.png").MinWordConfidence(40).Extract()
func (e *Extractor) MinWordConfidence(confidence float64) *Extractor {
	newExt := e.clone()
	newExt.options.minWordConfidence = confidence
	return newExt
}

// RowTolerance sets the vertical distance, in pixels, within which words are
// grouped onto the same row.
//
// Example:
//
//	result, _, err := factura.FromImage("invoice.png").RowTolerance(14).Extract()
func (e *Extractor) RowTolerance(pixels int) *Extractor {
	newExt := e.clone()
	newExt.options.rowTolerance = pixels
	return newExt
}

// OCRConfig sets the recognition configuration used by image sources. It has
// no effect when the Extractor was built with FromWords.
//
// Example:
//
//	cfg := ocr.DefaultConfig()
//	cfg.Languages = []string{"eng", "deu"}
//	result, _, err := factura.FromImage("invoice.png").OCRConfig(cfg).Extract()
func (e *Extractor) OCRConfig(config ocr.Config) *Extractor {
	newExt := e.clone()
	newExt.options.ocrConfig = config
	return newExt
}

// RegionConfig sets the table region detector configuration.
func (e *Extractor) RegionConfig(config tables.Config) *Extractor {
	newExt := e.clone()
	newExt.options.regionConfig = config
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Extract runs the full pipeline: recognition (or word intake), confidence
// normalization, table region detection, row grouping, and row
// classification. This is a terminal operation.
//
// Returns the extraction result, any warnings encountered during processing,
// and an error if extraction failed. Warnings indicate non-fatal issues
// (e.g., the table end defaulted to the content bottom) where extraction
// succeeded but results may be imperfect.
//
// On failure the error distinguishes the cause: errors.Is with
// ErrRecognitionFailed for recognition problems, ErrNoTableRegion when no
// table anchor was found, and vendors.ErrUnknownVendor for a bad vendor id.
//
// Example:
//
//	result, warnings, err := factura.FromImage("invoice.png").Extract()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", factura.FormatWarnings(warnings))
//	}
func (e *Extractor) Extract() (*model.ExtractionResult, []Warning, error) {
	if e.err != nil {
		e.state = StateFailed
		return nil, e.warnings, e.err
	}

	start := time.Now()

	pattern, err := vendors.Lookup(e.options.vendor)
	if err != nil {
		return e.fail(err)
	}

	e.state = StateRecognizing
	words, method, err := e.recognize()
	if err != nil {
		return e.fail(fmt.Errorf("%w: %w", ErrRecognitionFailed, err))
	}

	normalizer := &layout.Normalizer{MinConfidence: e.options.minWordConfidence}
	normalized := normalizer.Normalize(words)

	detector := tables.NewRegionDetectorWithConfig(e.options.regionConfig)
	detection, err := detector.Detect(normalized, pattern)
	if err != nil {
		return e.fail(fmt.Errorf("detecting table region: %w", err))
	}
	e.state = StateRegionDetected
	if !detection.EndAnchored {
		e.warn(WarnEndAnchorDefaulted, "no end keyword found; region extended to content bottom")
	}

	grouper := &layout.RowGrouper{Tolerance: e.options.rowTolerance}
	rows := grouper.Group(tables.WordsInRegion(normalized, detection.Region))
	e.state = StateRowsGrouped

	classifier := classify.NewRowClassifier(pattern)
	var items []model.LineItem
	for _, row := range rows {
		item, ok := classifier.Classify(row)
		if !ok {
			continue
		}
		if item.IsEmpty() {
			e.warn(WarnEmptyItemDropped, fmt.Sprintf("row %q matched no fields", row.Text()))
			continue
		}
		items = append(items, item)
	}
	e.state = StateClassified

	result := &model.ExtractionResult{
		RunID:            uuid.New(),
		Vendor:           string(e.options.vendor),
		Region:           detection.Region,
		Items:            items,
		Timestamp:        start,
		Elapsed:          time.Since(start),
		ProcessingMethod: method,
	}
	e.state = StateDone
	return result, e.warnings, nil
}

// Items runs Extract and returns just the line items, discarding warnings.
//
// Example:
//
//	items, err := factura.FromWords(words).Items()
func (e *Extractor) Items() ([]model.LineItem, error) {
	result, _, err := e.Extract()
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// recognize obtains the raw word stream from whichever source the Extractor
// was built with, and reports the processing method used.
func (e *Extractor) recognize() ([]model.Word, string, error) {
	if e.words != nil {
		return e.words, MethodWords, nil
	}

	var data []byte
	switch {
	case e.imageData != nil:
		prepared, err := raster.PrepareBytes(e.imageData)
		if err != nil {
			return nil, "", err
		}
		data = prepared
	case e.filename != "":
		prepared, _, _, err := raster.Prepare(e.filename)
		if err != nil {
			return nil, "", err
		}
		data = prepared
	default:
		return nil, "", fmt.Errorf("no input source specified")
	}

	client, err := ocr.New(e.options.ocrConfig)
	if err != nil {
		return nil, "", err
	}
	defer client.Close()

	words, err := client.RecognizeWords(data)
	if err != nil {
		return nil, "", err
	}
	return words, MethodOCR, nil
}

// fail marks the run failed and records the error. Failed is terminal; the
// caller gets any warnings accumulated before the failure.
func (e *Extractor) fail(err error) (*model.ExtractionResult, []Warning, error) {
	e.state = StateFailed
	e.err = err
	return nil, e.warnings, err
}

func (e *Extractor) warn(code, message string) {
	e.warnings = append(e.warnings, Warning{Code: code, Message: message})
}
