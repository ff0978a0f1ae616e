//go:build ocr

// Package ocr provides word-level OCR over page raster images for the
// extraction pipeline.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Recognition returns one positioned word per detected token, with the
// engine's confidence on a 0-100 scale; downstream filtering happens in the
// layout package, not here.
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/docketlab/factura/model"
)

// Client wraps Tesseract for word-level recognition.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client with the given configuration.
// The client should be closed when no longer needed to release resources.
func New(config Config) (*Client, error) {
	client := gosseract.NewClient()

	if config.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(config.TessdataPrefix); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set tessdata prefix: %w", err)
		}
	}
	if len(config.Languages) > 0 {
		if err := client.SetLanguage(config.Languages...); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set languages: %w", err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(config.PageSegMode)); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if config.DPI > 0 {
		if err := client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(config.DPI)); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set DPI: %w", err)
		}
	}

	return &Client{client: client}, nil
}

// Close releases OCR resources.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeWords performs OCR on image data (PNG, TIFF, JPEG, etc.) and
// returns one positioned word per recognized token. Coordinates are pixels
// in the supplied raster; confidence is the engine's 0-100 word confidence.
func (c *Client) RecognizeWords(imageData []byte) ([]model.Word, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]model.Word, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, model.Word{
			Text:       b.Word,
			X:          b.Box.Min.X,
			Y:          b.Box.Min.Y,
			Width:      b.Box.Dx(),
			Height:     b.Box.Dy(),
			Confidence: b.Confidence,
		})
	}

	return words, nil
}
