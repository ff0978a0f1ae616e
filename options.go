package factura

import (
	"github.com/docketlab/factura/layout"
	"github.com/docketlab/factura/ocr"
	"github.com/docketlab/factura/tables"
	"github.com/docketlab/factura/vendors"
)

// ExtractOptions holds configuration for line item extraction.
type ExtractOptions struct {
	// Vendor pattern selection
	vendor vendors.ID

	// Word filtering
	minWordConfidence float64

	// Row grouping
	rowTolerance int

	// Region detection
	regionConfig tables.Config

	// Recognition (only used by image sources)
	ocrConfig ocr.Config
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		vendor:            vendors.Generic,
		minWordConfidence: layout.DefaultMinConfidence,
		rowTolerance:      layout.DefaultRowTolerance,
		regionConfig:      tables.DefaultConfig(),
		ocrConfig:         ocr.DefaultConfig(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		vendor:            o.vendor,
		minWordConfidence: o.minWordConfidence,
		rowTolerance:      o.rowTolerance,
		regionConfig:      o.regionConfig,
		ocrConfig:         o.ocrConfig,
	}

	// Deep copy the language list so chained extractors stay independent
	if o.ocrConfig.Languages != nil {
		newOpts.ocrConfig.Languages = make([]string, len(o.ocrConfig.Languages))
		copy(newOpts.ocrConfig.Languages, o.ocrConfig.Languages)
	}

	return newOpts
}
