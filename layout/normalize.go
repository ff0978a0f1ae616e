package layout

import (
	"strings"

	"github.com/docketlab/factura/model"
)

// DefaultMinConfidence is the recognizer confidence a word must exceed to
// survive normalization, on the engine's 0-100 scale.
const DefaultMinConfidence = 30.0

// Normalizer filters a raw recognized word stream, discarding detections
// that carry no usable text or that the engine itself doubts.
type Normalizer struct {
	// MinConfidence is the exclusive lower bound: a word survives only if
	// its confidence is strictly greater than this value. A word exactly at
	// the threshold is dropped.
	MinConfidence float64
}

// NewNormalizer creates a normalizer with the default confidence threshold.
func NewNormalizer() *Normalizer {
	return &Normalizer{MinConfidence: DefaultMinConfidence}
}

// Normalize returns the words whose trimmed text is non-empty and whose
// confidence exceeds the threshold. It is side-effect-free: the input slice
// is never modified and empty input yields empty output.
func (n *Normalizer) Normalize(words []model.Word) []model.Word {
	if len(words) == 0 {
		return nil
	}

	kept := make([]model.Word, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w.Text) == "" {
			continue
		}
		if w.Confidence <= n.MinConfidence {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}
