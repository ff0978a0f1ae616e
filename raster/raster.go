// Package raster prepares page images for recognition.
//
// The recognition stage expects every page raster at a fixed 2x scale
// relative to native page resolution; both recognition quality and the pixel
// coordinate units carried through the rest of the pipeline depend on it.
// Hosts that already rasterize pages themselves must apply the same factor.
package raster

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding for LoadImage
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// ScaleFactor is the fixed scale applied to native-resolution page images
// before recognition. This is a correctness-relevant constant: word
// coordinates produced by the OCR engine are in scaled pixels.
const ScaleFactor = 2

// Scale returns the image resampled to ScaleFactor times its size using
// Catmull-Rom interpolation, which preserves glyph edges well enough for
// OCR without ringing artifacts.
func Scale(img image.Image) image.Image {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*ScaleFactor, bounds.Dy()*ScaleFactor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// LoadImage decodes a page image (PNG or JPEG) from disk.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// EncodePNG encodes an image as PNG bytes for handing to the OCR engine.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// PrepareBytes decodes a native-resolution page image (PNG or JPEG) and
// returns the 2x-scaled PNG bytes the recognition stage consumes.
func PrepareBytes(imageData []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return EncodePNG(Scale(img))
}

// Prepare loads a native-resolution page image and returns the 2x-scaled
// PNG bytes the recognition stage consumes, along with the scaled pixel
// dimensions of the page.
func Prepare(path string) (data []byte, width, height int, err error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, 0, 0, err
	}

	scaled := Scale(img)
	data, err = EncodePNG(scaled)
	if err != nil {
		return nil, 0, 0, err
	}

	bounds := scaled.Bounds()
	return data, bounds.Dx(), bounds.Dy(), nil
}
