// Command factura extracts invoice line items from a scanned page image and
// prints them in the requested output format.
//
// Recognition settings (tessdata path, languages, page segmentation, DPI) are
// read from FACTURA_* environment variables, optionally loaded from a .env
// file in the working directory. Requires a build with the ocr tag and a
// local Tesseract installation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/docketlab/factura"
	"github.com/docketlab/factura/format"
	"github.com/docketlab/factura/layout"
	"github.com/docketlab/factura/ocr"
	"github.com/docketlab/factura/vendors"
)

func main() {
	imagePath := flag.String("image", "", "path to the invoice page image (PNG or JPEG)")
	vendor := flag.String("vendor", string(vendors.Generic), "vendor pattern set")
	outputStyle := flag.String("format", "text", "output format: json, csv, or text")
	minConfidence := flag.Float64("min-confidence", layout.DefaultMinConfidence,
		"recognizer confidence a word must exceed to be kept (0-100)")
	rowTolerance := flag.Int("row-tolerance", layout.DefaultRowTolerance,
		"vertical distance in pixels within which words share a row")
	flag.Parse()

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "usage: factura -image <path> [-vendor id] [-format json|csv|text]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	style := format.ParseStyle(*outputStyle)
	if style == format.Unknown {
		log.Fatalf("unknown output format %q", *outputStyle)
	}

	// A missing .env file is fine; environment variables still apply.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("loading .env: %v", err)
	}

	result, warnings, err := factura.FromImage(*imagePath).
		Vendor(vendors.ID(*vendor)).
		MinWordConfidence(*minConfidence).
		RowTolerance(*rowTolerance).
		OCRConfig(ocr.ConfigFromEnv()).
		Extract()
	if err != nil {
		log.Fatalf("extraction failed: %v", err)
	}

	if len(warnings) > 0 {
		log.Println("warnings:", factura.FormatWarnings(warnings))
	}

	out, err := format.Render(result, style)
	if err != nil {
		log.Fatalf("rendering result: %v", err)
	}
	fmt.Print(out)
}
