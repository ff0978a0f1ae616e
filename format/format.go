// Package format renders extraction results for host consumption.
//
// The pipeline itself produces only structured data; this package provides
// the serializations hosts typically want (JSON, CSV, aligned plain text)
// plus the numeric parsing needed to consume extracted amounts. Rendering a
// result and re-parsing its numeric fields recovers the values the pipeline
// extracted.
package format

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/docketlab/factura/model"
)

// Style identifies an output rendering.
type Style int

const (
	// Unknown indicates an unrecognized style name.
	Unknown Style = iota
	// JSON renders the full result as indented JSON.
	JSON
	// CSV renders line items as comma-separated values with a header row.
	CSV
	// Text renders a human-readable summary table.
	Text
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case JSON:
		return "json"
	case CSV:
		return "csv"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// ParseStyle resolves a style name ("json", "csv", "text") to a Style.
func ParseStyle(name string) Style {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON
	case "csv":
		return CSV
	case "text", "txt":
		return Text
	default:
		return Unknown
	}
}

// Render serializes the result in the given style.
func Render(result *model.ExtractionResult, style Style) (string, error) {
	switch style {
	case JSON:
		return RenderJSON(result)
	case CSV:
		return RenderCSV(result)
	case Text:
		return RenderText(result), nil
	default:
		return "", fmt.Errorf("unknown output style %d", style)
	}
}

// RenderJSON returns the result as indented JSON.
func RenderJSON(result *model.ExtractionResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}

// csvHeader is the column order used by RenderCSV.
var csvHeader = []string{"item_number", "description", "quantity", "unit_price", "total_price", "confidence"}

// RenderCSV returns the result's line items as CSV with a header row.
func RenderCSV(result *model.ExtractionResult) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, item := range result.Items {
		record := []string{
			item.ItemNumber,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.TotalPrice,
			strconv.FormatFloat(item.Confidence, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.String(), nil
}

// RenderText returns a human-readable summary of the result. Amounts are
// re-rendered with locale-aware grouping; fields that did not parse are
// shown as extracted.
func RenderText(result *model.ExtractionResult) string {
	p := message.NewPrinter(language.English)

	var sb strings.Builder
	sb.WriteString(p.Sprintf("vendor: %s  method: %s  items: %d\n",
		result.Vendor, result.ProcessingMethod, len(result.Items)))
	sb.WriteString(p.Sprintf("region: x=%d y=%d w=%d h=%d (confidence %.2f)\n",
		result.Region.X, result.Region.Y, result.Region.Width, result.Region.Height,
		result.Region.Confidence))

	for i, item := range result.Items {
		sb.WriteString(p.Sprintf("%3d. %-12s %-30s qty=%-4s unit=%-10s total=%-10s conf=%.2f\n",
			i+1, item.ItemNumber, item.Description, item.Quantity,
			renderAmount(p, item.UnitPrice), renderAmount(p, item.TotalPrice),
			item.Confidence))
	}

	return sb.String()
}

// renderAmount formats an extracted amount with grouping when it parses,
// and passes it through untouched when it does not.
func renderAmount(p *message.Printer, s string) string {
	if s == "" {
		return "-"
	}
	v, err := ParseAmount(s)
	if err != nil {
		return s
	}
	return p.Sprintf("%.2f", v)
}

// ParseAmount parses an extracted price field into a numeric value,
// tolerating leading currency symbols and thousands separators. Every
// non-empty unit or total price produced by the classifier parses cleanly;
// this is the consuming half of that round trip.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.Trim(s, "$€£¥ \t")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount %q", s)
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable amount %q: %w", s, err)
	}
	return v, nil
}
