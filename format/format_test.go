package format

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/docketlab/factura/model"
)

func sampleResult() *model.ExtractionResult {
	return &model.ExtractionResult{
		Vendor:           "generic",
		ProcessingMethod: "ocr",
		Region:           model.TableRegion{X: 40, Y: 60, Width: 315, Height: 90, Confidence: 0.8},
		Items: []model.LineItem{
			{
				ItemNumber:  "101",
				Description: "WidgetA",
				Quantity:    "2",
				UnitPrice:   "5.00",
				TotalPrice:  "10.00",
				Confidence:  1.0,
			},
			{
				ItemNumber:  "ABC-1234",
				Description: "Heavy Duty Bolt Kit",
				Quantity:    "3",
				UnitPrice:   "1,250.00",
				TotalPrice:  "3,750.00",
				Confidence:  1.0,
			},
		},
	}
}

func TestParseStyle(t *testing.T) {
	cases := map[string]Style{
		"json":  JSON,
		"JSON":  JSON,
		" csv ": CSV,
		"text":  Text,
		"txt":   Text,
		"yaml":  Unknown,
		"":      Unknown,
	}
	for name, want := range cases {
		if got := ParseStyle(name); got != want {
			t.Errorf("ParseStyle(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	result := sampleResult()

	out, err := RenderJSON(result)
	if err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	var decoded model.ExtractionResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("decoding rendered JSON failed: %v", err)
	}
	if len(decoded.Items) != 2 {
		t.Fatalf("expected 2 items after round trip, got %d", len(decoded.Items))
	}
	if decoded.Items[0].ItemNumber != "101" || decoded.Items[0].TotalPrice != "10.00" {
		t.Errorf("first item changed through round trip: %+v", decoded.Items[0])
	}
}

func TestRenderCSV(t *testing.T) {
	out, err := RenderCSV(sampleResult())
	if err != nil {
		t.Fatalf("RenderCSV failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parsing rendered CSV failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 records, got %d rows", len(records))
	}
	if records[0][0] != "item_number" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[2][3] != "1,250.00" {
		t.Errorf("expected quoted thousands-separated price preserved, got %q", records[2][3])
	}
}

func TestRenderText(t *testing.T) {
	out := RenderText(sampleResult())

	if !strings.Contains(out, "vendor: generic") {
		t.Errorf("expected vendor line, got:\n%s", out)
	}
	if !strings.Contains(out, "WidgetA") {
		t.Errorf("expected item description in output, got:\n%s", out)
	}
	if !strings.Contains(out, "3,750.00") {
		t.Errorf("expected grouped amount rendering, got:\n%s", out)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"5.00", 5.00},
		{"$10.00", 10.00},
		{"€7.50", 7.50},
		{"1,250.00", 1250.00},
		{"£3,750.00", 3750.00},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if err != nil {
			t.Errorf("ParseAmount(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "$", "abc", "1.2.3"} {
		if _, err := ParseAmount(in); err == nil {
			t.Errorf("ParseAmount(%q) should fail", in)
		}
	}
}

// Extracted amounts rendered through any style must re-parse to the values
// the classifier extracted.
func TestAmountRoundTripThroughCSV(t *testing.T) {
	result := sampleResult()
	out, err := RenderCSV(result)
	if err != nil {
		t.Fatalf("RenderCSV failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parsing rendered CSV failed: %v", err)
	}

	for i, item := range result.Items {
		wantUnit, err := ParseAmount(item.UnitPrice)
		if err != nil {
			t.Fatalf("source unit price unparseable: %v", err)
		}
		gotUnit, err := ParseAmount(records[i+1][3])
		if err != nil {
			t.Fatalf("rendered unit price unparseable: %v", err)
		}
		if gotUnit != wantUnit {
			t.Errorf("item %d unit price: %v != %v", i, gotUnit, wantUnit)
		}
	}
}
