package ocr

import (
	"os"
	"strconv"
	"strings"
)

// PageSegMode represents page segmentation modes for OCR.
// These control how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes (mirroring Tesseract's PSM values).
const (
	PSM_OSD_ONLY               PageSegMode = 0  // Orientation and script detection only
	PSM_AUTO_OSD               PageSegMode = 1  // Automatic with OSD
	PSM_AUTO_ONLY              PageSegMode = 2  // Automatic, no OSD or OCR
	PSM_AUTO                   PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN          PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK_VERT_TEXT PageSegMode = 5  // Single uniform block of vertically aligned text
	PSM_SINGLE_BLOCK           PageSegMode = 6  // Single uniform block of text
	PSM_SINGLE_LINE            PageSegMode = 7  // Single text line
	PSM_SINGLE_WORD            PageSegMode = 8  // Single word
	PSM_CIRCLE_WORD            PageSegMode = 9  // Single word in a circle
	PSM_SINGLE_CHAR            PageSegMode = 10 // Single character
	PSM_SPARSE_TEXT            PageSegMode = 11 // Find as much text as possible
	PSM_SPARSE_TEXT_OSD        PageSegMode = 12 // Sparse text with OSD
	PSM_RAW_LINE               PageSegMode = 13 // Treat image as single text line
)

// Config holds the OCR engine configuration. Engine paths and tuning are
// passed explicitly to the client constructor rather than read from
// process-wide mutable state, so two clients with different configurations
// can coexist in one process.
type Config struct {
	// TessdataPrefix is the directory containing Tesseract trained data.
	// Empty means the engine's compiled-in default.
	TessdataPrefix string

	// Languages lists the trained-data languages to recognize with
	// (e.g. "eng", "deu"). Empty means the engine default ("eng").
	Languages []string

	// PageSegMode controls Tesseract's layout analysis. Invoices are sparse,
	// column-aligned documents, so the default is PSM_SPARSE_TEXT.
	PageSegMode PageSegMode

	// DPI is the effective dots-per-inch of the input raster; zero means
	// unknown. The raster package produces pages at 2x native resolution,
	// so hosts rasterizing 72 DPI pages should pass 144 here.
	DPI int
}

// DefaultConfig returns the default OCR configuration.
func DefaultConfig() Config {
	return Config{
		Languages:   []string{"eng"},
		PageSegMode: PSM_SPARSE_TEXT,
	}
}

// ConfigFromEnv builds a Config from FACTURA_* environment variables,
// falling back to defaults for anything unset:
//
//	FACTURA_TESSDATA_PREFIX  trained data directory
//	FACTURA_OCR_LANGUAGES    "+"- or ","-separated language list
//	FACTURA_OCR_PSM          numeric page segmentation mode
//	FACTURA_OCR_DPI          numeric DPI of the input raster
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if prefix := os.Getenv("FACTURA_TESSDATA_PREFIX"); prefix != "" {
		cfg.TessdataPrefix = prefix
	}
	if langs := os.Getenv("FACTURA_OCR_LANGUAGES"); langs != "" {
		langs = strings.ReplaceAll(langs, "+", ",")
		var parsed []string
		for _, l := range strings.Split(langs, ",") {
			if l = strings.TrimSpace(l); l != "" {
				parsed = append(parsed, l)
			}
		}
		if len(parsed) > 0 {
			cfg.Languages = parsed
		}
	}
	if psm := os.Getenv("FACTURA_OCR_PSM"); psm != "" {
		if v, err := strconv.Atoi(psm); err == nil && v >= 0 && v <= int(PSM_RAW_LINE) {
			cfg.PageSegMode = PageSegMode(v)
		}
	}
	if dpi := os.Getenv("FACTURA_OCR_DPI"); dpi != "" {
		if v, err := strconv.Atoi(dpi); err == nil && v > 0 {
			cfg.DPI = v
		}
	}

	return cfg
}
