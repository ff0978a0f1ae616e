package vendors

import (
	"errors"
	"testing"
)

func TestLookupGeneric(t *testing.T) {
	p, err := Lookup(Generic)
	if err != nil {
		t.Fatalf("Lookup(Generic) failed: %v", err)
	}
	if len(p.StartKeywords) == 0 {
		t.Error("generic pattern has no start keywords")
	}
	if len(p.EndKeywords) == 0 {
		t.Error("generic pattern has no end keywords")
	}
	if p.ItemNumber == nil || p.Quantity == nil || p.Price == nil {
		t.Error("generic pattern has nil field expressions")
	}
}

func TestLookupUnknownFailsFast(t *testing.T) {
	_, err := Lookup("no-such-vendor")
	if err == nil {
		t.Fatal("expected error for unknown vendor")
	}
	if !errors.Is(err, ErrUnknownVendor) {
		t.Errorf("expected ErrUnknownVendor, got: %v", err)
	}
}

func TestAllRegisteredIDsResolve(t *testing.T) {
	for _, id := range IDs() {
		if _, err := Lookup(id); err != nil {
			t.Errorf("registered id %q failed lookup: %v", id, err)
		}
	}
}

func TestGenericPriceExpression(t *testing.T) {
	p := MustLookup(Generic)

	tests := []struct {
		text string
		want []string
	}{
		{"3 Widget $10.00 $30.00", []string{"$10.00", "$30.00"}},
		{"101 WidgetA 2 5.00 10.00", []string{"5.00", "10.00"}},
		{"no amounts here", nil},
		{"1,250.00 total", []string{"1,250.00"}},
	}

	for _, tt := range tests {
		got := p.Price.FindAllString(tt.text, -1)
		if len(got) != len(tt.want) {
			t.Errorf("Price matches for %q: expected %v, got %v", tt.text, tt.want, got)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Price match %d for %q: expected %q, got %q", i, tt.text, tt.want[i], got[i])
			}
		}
	}
}

func TestGenericQuantityDoesNotMatchInsideLargerNumbers(t *testing.T) {
	p := MustLookup(Generic)

	// "101" is an item number; the first standalone 1-2 digit token is the
	// quantity.
	if got := p.Quantity.FindString("101 WidgetA 2 5.00 10.00"); got != "2" {
		t.Errorf("expected quantity '2', got %q", got)
	}
}

func TestGenericItemNumberExpression(t *testing.T) {
	p := MustLookup(Generic)

	if got := p.ItemNumber.FindString("101 WidgetA 2 5.00 10.00"); got != "101" {
		t.Errorf("expected item number '101', got %q", got)
	}
	if got := p.ItemNumber.FindString("ABC-1234 Gasket 1 2.50 2.50"); got != "ABC-1234" {
		t.Errorf("expected item number 'ABC-1234', got %q", got)
	}
}
