// Package factura provides a fluent API for extracting invoice line items
// from scanned documents.
//
// Basic usage:
//
//	result, warnings, err := factura.FromImage("invoice.png").Extract()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", factura.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := factura.FromImage("invoice.png").
//	    Vendor(vendors.Retail).
//	    MinWordConfidence(40).
//	    Extract()
//
// Hosts that run recognition themselves can feed pre-recognized words:
//
//	result, warnings, err := factura.FromWords(words).Extract()
//
// For advanced use cases, the lower-level layout, tables, and classify
// packages are also available.
package factura

import (
	"github.com/docketlab/factura/model"
)

// FromImage creates an Extractor that recognizes words from a page image on
// disk. The image is scaled and recognized when a terminal operation runs;
// this requires a build with the ocr tag and a local Tesseract installation.
//
// Example:
//
//	result, warnings, err := factura.FromImage("invoice.png").Extract()
func FromImage(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
		state:    StateIdle,
	}
}

// FromImageBytes creates an Extractor that recognizes words from an
// already-loaded page image. The bytes must be a PNG or JPEG at native
// resolution; scaling is applied before recognition.
func FromImageBytes(data []byte) *Extractor {
	return &Extractor{
		imageData: data,
		options:   defaultOptions(),
		state:     StateIdle,
	}
}

// FromWords creates an Extractor from words recognized elsewhere. No OCR is
// performed; word coordinates must be pixel positions with a top-left origin
// and confidences on the 0-100 scale.
//
// Example:
//
//	result, warnings, err := factura.FromWords(words).Extract()
func FromWords(words []model.Word) *Extractor {
	return &Extractor{
		words:   words,
		options: defaultOptions(),
		state:   StateIdle,
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	items := factura.Must(factura.FromWords(words).Items())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustExtract is a helper that wraps a call to Extract() and panics if the
// error is non-nil. It discards warnings and returns just the result.
//
// Example:
//
//	result := factura.MustExtract(factura.FromWords(words).Extract())
func MustExtract[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
