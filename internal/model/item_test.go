package model

import "testing"

func TestLocationLabel(t *testing.T) {
	if got := LocationLabel(DummyLocation); got != DummyLabel {
		t.Errorf("LocationLabel(%q) = %q", DummyLocation, got)
	}
	if got := (Item{Location: "B07"}).LocationLabel(); got != "B07" {
		t.Errorf("label = %q, want B07", got)
	}
	if !(Item{Location: "00"}).IsDummy() || (Item{Location: "A01"}).IsDummy() {
		t.Error("IsDummy mismatch")
	}
}

func TestAttr(t *testing.T) {
	it := Item{Category: "Nuts", Standard: "DIN 934", Location: "A01", HERisk: "low", NutH: "6.5"}
	tests := []struct {
		attr Attribute
		want string
	}{
		{AttrCategory, "Nuts"},
		{AttrStandard, "DIN 934"},
		{AttrLocation, "A01"},
		{AttrHERisk, "low"},
		{AttrNutH, "6.5"},
		{AttrPlating, ""},
		{Attribute("colour"), ""},
	}
	for _, tt := range tests {
		if got := it.Attr(tt.attr); got != tt.want {
			t.Errorf("Attr(%q) = %q, want %q", tt.attr, got, tt.want)
		}
	}
}

func TestParseAttribute(t *testing.T) {
	for _, attr := range append(append([]Attribute{AttrCategory, AttrNutH}, FilterAttributes...), TechnicalAttributes...) {
		if got, ok := ParseAttribute(string(attr)); !ok || got != attr {
			t.Errorf("ParseAttribute(%q) = %q, %v", attr, got, ok)
		}
	}
	for _, s := range []string{"", "qty", "notes", "Standard"} {
		if _, ok := ParseAttribute(s); ok {
			t.Errorf("ParseAttribute(%q) accepted", s)
		}
	}
}

func TestFieldsExcludeProvenance(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range (Item{}).Fields() {
		if seen[f.Name] {
			t.Errorf("duplicate field %q", f.Name)
		}
		seen[f.Name] = true
	}
	if seen["updated_by"] || seen["updated_at"] {
		t.Error("provenance fields listed")
	}
	if !seen["article"] || !seen["qty"] || !seen["photo"] {
		t.Error("expected article, qty and photo fields")
	}
}

func TestActionLabel(t *testing.T) {
	if ActionManagePlus.Label() == ActionManageMinus.Label() {
		t.Error("manage directions share a label")
	}
	if ActionSave.Label() == "" {
		t.Error("empty label for save")
	}
}
