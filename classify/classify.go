// Package classify maps grouped word rows to typed line-item fields using
// vendor field patterns.
//
// Classification is pure pattern application over a row's concatenated text:
// a field whose expression finds no match is simply left empty, reducing the
// item's confidence rather than failing the row. Rows that are too sparse to
// be line items, or that repeat the table's column headers, are rejected
// silently; that is routine filtering, not an error.
package classify

import (
	"strings"

	"github.com/docketlab/factura/model"
	"github.com/docketlab/factura/vendors"
)

// MinRowWords is the minimum number of words a row needs to be considered a
// line item. Sparser rows are rejected.
const MinRowWords = 2

// descriptionWordLimit caps how many qualifying words are joined into the
// description field.
const descriptionWordLimit = 5

// fieldCount is the number of typed fields a line item carries; confidence
// is the filled fraction of these.
const fieldCount = 5

// RowClassifier classifies rows against a single vendor pattern set.
type RowClassifier struct {
	pattern vendors.Pattern
}

// NewRowClassifier creates a classifier for the given vendor pattern.
func NewRowClassifier(pattern vendors.Pattern) *RowClassifier {
	return &RowClassifier{pattern: pattern}
}

// Classify extracts a line item from the row, or reports ok=false when the
// row is rejected (fewer than MinRowWords words, or a repeated header row).
//
// Field semantics over the row's concatenated text, all case-insensitive:
//
//   - item number and quantity take the first match of their expressions
//   - unit price takes the first price match, total price the LAST price
//     match (the rightmost amount on an invoice row is usually the row
//     total); currency symbols are stripped from both
//   - description joins the first 5 words, in row order, that are neither
//     pure numbers nor currency amounts and are longer than 2 characters
//
// Confidence is the fraction of the five fields that came out non-empty.
// Classify has no side effects; the row is never modified.
func (c *RowClassifier) Classify(row model.Row) (model.LineItem, bool) {
	if len(row.Words) < MinRowWords {
		return model.LineItem{}, false
	}

	text := row.Text()
	if containsAny(text, c.pattern.HeaderKeywords) {
		return model.LineItem{}, false
	}

	item := model.LineItem{
		ItemNumber:  c.pattern.ItemNumber.FindString(text),
		Quantity:    c.pattern.Quantity.FindString(text),
		Description: buildDescription(row),
		SourceBBox:  row.BBox(),
	}

	prices := c.pattern.Price.FindAllString(text, -1)
	if len(prices) > 0 {
		item.UnitPrice = stripCurrency(prices[0])
		item.TotalPrice = stripCurrency(prices[len(prices)-1])
	}

	item.Confidence = float64(item.FieldCount()) / fieldCount
	if item.Confidence > 1 {
		item.Confidence = 1
	}

	return item, true
}

// buildDescription joins the row's qualifying words in row order: words that
// are not pure numbers or currency amounts and are longer than 2 characters,
// capped at descriptionWordLimit words.
func buildDescription(row model.Row) string {
	var parts []string
	for _, w := range row.Words {
		if len(parts) == descriptionWordLimit {
			break
		}
		text := strings.TrimSpace(w.Text)
		if len([]rune(text)) <= 2 {
			continue
		}
		if isNumeric(text) || isCurrencyAmount(text) {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

// isNumeric reports whether s consists only of digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isCurrencyAmount reports whether s looks like a money amount, with or
// without a leading currency symbol (e.g. "5.00", "$1,250.00").
func isCurrencyAmount(s string) bool {
	s = stripCurrency(s)
	if s == "" {
		return false
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' || r == ',':
		default:
			return false
		}
	}
	return digits > 0
}

// stripCurrency removes leading/trailing currency symbols and surrounding
// whitespace from a matched amount.
func stripCurrency(s string) string {
	return strings.Trim(s, "$€£¥ \t")
}

// containsAny reports whether text case-insensitively contains any keyword.
func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
