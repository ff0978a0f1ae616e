package tables

import (
	"errors"
	"strings"

	"github.com/docketlab/factura/model"
	"github.com/docketlab/factura/vendors"
)

// ErrNoTableRegion is returned when no word in the stream matches any of the
// vendor's table start keywords. This is a terminal condition for the run;
// the detector never retries.
var ErrNoTableRegion = errors.New("no table region found")

// DefaultRegionConfidence is assigned to every successfully detected region.
// Detection is anchor-based and has no graded confidence model.
const DefaultRegionConfidence = 0.8

// Config holds region detector configuration.
type Config struct {
	// RegionConfidence is the fixed confidence assigned to detected regions.
	RegionConfidence float64
}

// DefaultConfig returns the default detector configuration.
func DefaultConfig() Config {
	return Config{
		RegionConfidence: DefaultRegionConfidence,
	}
}

// Detection is the outcome of a successful region detection.
type Detection struct {
	// Region is the detected table region.
	Region model.TableRegion

	// EndAnchored reports whether the bottom of the region was anchored on
	// an end keyword. When false, no end keyword was found below the start
	// anchor and the region was extended to the bottom of the page content.
	EndAnchored bool
}

// RegionDetector finds the line-item table region in a normalized word
// stream using vendor keyword anchors.
type RegionDetector struct {
	config Config
}

// NewRegionDetector creates a region detector with default configuration.
func NewRegionDetector() *RegionDetector {
	return &RegionDetector{config: DefaultConfig()}
}

// NewRegionDetectorWithConfig creates a region detector with custom
// configuration.
func NewRegionDetectorWithConfig(config Config) *RegionDetector {
	return &RegionDetector{config: config}
}

// Detect locates the table region in the given normalized word stream.
//
// The stream is scanned in document order (ascending vertical position,
// recognizer order breaking ties) for the first word whose text
// case-insensitively contains any start keyword; that word's top edge is the
// table start. The first subsequent word strictly below the start containing
// an end keyword gives the table end; if none exists the table is assumed to
// run to the bottom of the content (maximum top+height across all words).
// Horizontal bounds are the minimum left edge and maximum right edge among
// the words whose vertical position falls inside the band; with exactly one
// word in the band they collapse to that word's own box.
//
// Detect is a pure function of its inputs: running it twice on the same
// stream yields an identical region.
func (d *RegionDetector) Detect(words []model.Word, pattern vendors.Pattern) (*Detection, error) {
	if len(words) == 0 {
		return nil, ErrNoTableRegion
	}

	sorted := make([]model.Word, len(words))
	copy(sorted, words)
	model.SortWordsByY(sorted)

	startY := -1
	for _, w := range sorted {
		if containsAnyKeyword(w.Text, pattern.StartKeywords) {
			startY = w.Y
			break
		}
	}
	if startY < 0 {
		return nil, ErrNoTableRegion
	}

	endY := -1
	for _, w := range sorted {
		if w.Y <= startY {
			continue
		}
		if containsAnyKeyword(w.Text, pattern.EndKeywords) {
			endY = w.Y
			break
		}
	}

	endAnchored := endY >= 0
	if !endAnchored {
		endY = model.ContentBottom(sorted)
	}

	left, right := -1, -1
	for _, w := range sorted {
		if w.Y < startY || w.Y > endY {
			continue
		}
		if left < 0 || w.X < left {
			left = w.X
		}
		if r := w.X + w.Width; r > right {
			right = r
		}
	}

	return &Detection{
		Region: model.TableRegion{
			X:          left,
			Y:          startY,
			Width:      right - left,
			Height:     endY - startY,
			Confidence: d.config.RegionConfidence,
		},
		EndAnchored: endAnchored,
	}, nil
}

// WordsInRegion returns the words whose top-left corner lies inside the
// region: left within [region.x, region.x+width] and top within
// [region.y, region.y+height].
func WordsInRegion(words []model.Word, region model.TableRegion) []model.Word {
	var inside []model.Word
	for _, w := range words {
		if w.X < region.X || w.X > region.X+region.Width {
			continue
		}
		if w.Y < region.Y || w.Y > region.Y+region.Height {
			continue
		}
		inside = append(inside, w)
	}
	return inside
}

// containsAnyKeyword reports whether text case-insensitively contains any of
// the keywords.
func containsAnyKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
