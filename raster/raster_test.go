package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 0, 255})
		}
	}
	return img
}

func TestScaleDoublesDimensions(t *testing.T) {
	img := testImage(30, 20)

	scaled := Scale(img)
	bounds := scaled.Bounds()
	if bounds.Dx() != 30*ScaleFactor || bounds.Dy() != 20*ScaleFactor {
		t.Errorf("expected %dx%d, got %dx%d",
			30*ScaleFactor, 20*ScaleFactor, bounds.Dx(), bounds.Dy())
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	img := testImage(8, 8)

	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding produced PNG failed: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("bounds changed through encode: %v vs %v", decoded.Bounds(), img.Bounds())
	}
}

func TestPrepare(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.png")

	data, err := EncodePNG(testImage(40, 25))
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing test image failed: %v", err)
	}

	scaled, w, h, err := Prepare(path)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if w != 40*ScaleFactor || h != 25*ScaleFactor {
		t.Errorf("expected scaled dimensions %dx%d, got %dx%d",
			40*ScaleFactor, 25*ScaleFactor, w, h)
	}
	if len(scaled) == 0 {
		t.Error("expected non-empty PNG data")
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
