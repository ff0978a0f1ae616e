// Package vendors holds the per-vendor keyword sets and field patterns used
// to locate and classify invoice line-item tables.
//
// The registry is a sealed, compile-time constant set of named
// configurations. It is never mutated at runtime, which keeps pattern sets
// auditable and makes the registry safe to share across concurrent
// extraction runs. Looking up an unknown vendor fails fast; falling back to
// [Generic] is always an explicit caller decision, never a silent default.
package vendors

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrUnknownVendor is returned by Lookup for identifiers that are not in the
// registry.
var ErrUnknownVendor = errors.New("unknown vendor")

// ID identifies a vendor pattern set in the registry.
type ID string

const (
	// Generic is the mandatory fallback pattern set, tuned for the common
	// Item/Description/Qty/Price/Total column layout.
	Generic ID = "generic"

	// Retail covers point-of-sale style invoices with SKU and Amount columns.
	Retail ID = "retail"

	// Services covers hourly-billing invoices with Hours and Rate columns.
	Services ID = "services"
)

// Pattern bundles the header/footer keywords and field expressions tuned to
// one document source format. Patterns are read-only during extraction.
type Pattern struct {
	// StartKeywords anchor the top of the table: the first word whose text
	// case-insensitively contains one of these marks the table start.
	StartKeywords []string

	// EndKeywords anchor the bottom of the table: the first word strictly
	// below the start anchor containing one of these marks the table end.
	EndKeywords []string

	// HeaderKeywords mark repeated column-header rows. A grouped row whose
	// concatenated text contains any of these is dropped as a header, not
	// classified as data.
	HeaderKeywords []string

	// ItemNumber matches the item/SKU column. First match wins.
	ItemNumber *regexp.Regexp

	// Quantity matches the quantity column. First match wins.
	Quantity *regexp.Regexp

	// Price matches currency amounts. The first match is taken as the unit
	// price and the last match as the row total; this is a heuristic, not a
	// guarantee (a row may legitimately end with something other than its
	// total).
	Price *regexp.Regexp
}

// Generic header keywords shared by all pattern sets. Rows containing any of
// these are repeated table headers, not line items.
var genericHeaders = []string{
	"item", "description", "qty", "price", "total", "part#", "amount",
}

var registry = map[ID]Pattern{
	Generic: {
		StartKeywords:  []string{"item", "description", "qty", "quantity", "part#"},
		EndKeywords:    []string{"subtotal", "total", "tax", "balance", "amount due"},
		HeaderKeywords: genericHeaders,
		ItemNumber:     regexp.MustCompile(`(?i)\b[A-Z]{0,4}-?\d{3,8}\b`),
		Quantity:       regexp.MustCompile(`\b\d{1,2}\b`),
		Price:          regexp.MustCompile(`[$€£]?\d{1,3}(?:,\d{3})*\.\d{2}\b`),
	},
	Retail: {
		StartKeywords:  []string{"sku", "item", "upc", "description"},
		EndKeywords:    []string{"subtotal", "total", "tender", "change due"},
		HeaderKeywords: append([]string{"sku", "upc"}, genericHeaders...),
		ItemNumber:     regexp.MustCompile(`\b\d{6,13}\b`),
		Quantity:       regexp.MustCompile(`\b\d{1,3}\b`),
		Price:          regexp.MustCompile(`[$€£]?\d{1,3}(?:,\d{3})*\.\d{2}\b`),
	},
	Services: {
		StartKeywords:  []string{"description", "service", "hours", "rate"},
		EndKeywords:    []string{"subtotal", "total due", "balance", "tax"},
		HeaderKeywords: append([]string{"hours", "rate", "service"}, genericHeaders...),
		ItemNumber:     regexp.MustCompile(`(?i)\bSVC-?\d{2,6}\b`),
		Quantity:       regexp.MustCompile(`\b\d{1,3}(?:\.\d{1,2})?\b`),
		Price:          regexp.MustCompile(`[$€£]?\d{1,3}(?:,\d{3})*\.\d{2}\b`),
	},
}

// Lookup returns the pattern set registered for id. Unknown ids are an
// error; callers that want the generic fallback must ask for it explicitly.
func Lookup(id ID) (Pattern, error) {
	p, ok := registry[id]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownVendor, id)
	}
	return p, nil
}

// MustLookup is like Lookup but panics on unknown ids. Intended for tests
// and for the built-in IDs declared in this package.
func MustLookup(id ID) Pattern {
	p, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return p
}

// IDs returns the registered vendor identifiers. The generic fallback is
// always present.
func IDs() []ID {
	ids := make([]ID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}
