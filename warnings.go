package factura

import "strings"

// Warning codes emitted during extraction.
const (
	// WarnEndAnchorDefaulted means no end keyword was found and the table
	// region was extended to the bottom of the page content.
	WarnEndAnchorDefaulted = "end-anchor-defaulted"
	// WarnEmptyItemDropped means a candidate row classified with zero
	// recognized fields and was excluded from the result.
	WarnEmptyItemDropped = "empty-item-dropped"
)

// Warning describes a non-fatal issue encountered during extraction.
// Extraction succeeded but the result may be imperfect.
type Warning struct {
	Code    string
	Message string
}

// String returns the warning as "code: message".
func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
