//go:build !ocr

package factura

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/docketlab/factura/ocr"
)

// Without the ocr build tag, image sources must fail recognition with a
// distinguishable error rather than panicking or returning empty results.
func TestExtractFromImageBytesWithoutOCR(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encoding test image failed: %v", err)
	}

	ext := FromImageBytes(buf.Bytes())
	_, _, err := ext.Extract()
	if !errors.Is(err, ErrRecognitionFailed) {
		t.Fatalf("expected ErrRecognitionFailed, got: %v", err)
	}
	if !errors.Is(err, ocr.ErrOCRNotEnabled) {
		t.Errorf("expected cause ErrOCRNotEnabled, got: %v", err)
	}
	if ext.State() != StateFailed {
		t.Errorf("expected state failed, got %s", ext.State())
	}
}

func TestExtractFromImageMissingFile(t *testing.T) {
	_, _, err := FromImage("does-not-exist.png").Extract()
	if !errors.Is(err, ErrRecognitionFailed) {
		t.Fatalf("expected ErrRecognitionFailed, got: %v", err)
	}
}
