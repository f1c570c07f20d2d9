package services

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const sampleEstimateYAML = `
document:
  type: quotation
  client_name: Landau Marine
  project_title: Office refurbishment
  reference: CQ-010200
  date: "2025-03-04"
prelims_percent: 8
items:
  - rate: {category: "Partitions & Stud Walls", key: metalStudPartition}
    quantity: 2
  - rate: {category: "Doors & Glazing", key: standardFlushDoor}
  - description: Strip wallpaper
    quantity: 12.5
    unit: m²
    unit_rate: 4
`

func TestParseEstimateInput(t *testing.T) {
	in, err := ParseEstimateInput([]byte(sampleEstimateYAML))
	if err != nil {
		t.Fatalf("ParseEstimateInput() error = %v", err)
	}
	if in.Document.ClientName != "Landau Marine" || in.Document.Date != "2025-03-04" {
		t.Errorf("Document = %+v", in.Document)
	}
	if in.Prelims(DefaultPrelimsPercent) != 8 {
		t.Errorf("Prelims() = %v, want 8", in.Prelims(DefaultPrelimsPercent))
	}

	list, err := in.LineItems(DefaultCatalogue())
	if err != nil {
		t.Fatalf("LineItems() error = %v", err)
	}
	items := list.Items()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0].Quantity != 2 || items[0].Rate != 106.51 || items[0].Unit != "m²" {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].Quantity != 1 || items[1].Rate != 798.40 {
		t.Errorf("items[1] = %+v", items[1])
	}
	if items[2].Description != "Strip wallpaper" || items[2].Rate != 4 || items[2].Unit != "m²" {
		t.Errorf("items[2] = %+v", items[2])
	}
	for _, it := range items {
		if it.ID == "" {
			t.Errorf("item without ID: %+v", it)
		}
	}

	summary := CalculateEstimate(items, in.Prelims(DefaultPrelimsPercent))
	if !approxEqual(summary.MainContractTotal, 1011.42+50) {
		t.Errorf("MainContractTotal = %v, want 1061.42", summary.MainContractTotal)
	}
}

func TestEstimateInput_PrelimsDefault(t *testing.T) {
	in, err := ParseEstimateInput([]byte("items: []\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := in.Prelims(7.5); got != 7.5 {
		t.Errorf("Prelims() = %v, want 7.5", got)
	}

	zero, err := ParseEstimateInput([]byte("prelims_percent: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := zero.Prelims(8); got != 0 {
		t.Errorf("explicit zero Prelims() = %v, want 0", got)
	}
}

func TestEstimateInput_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"unknown rate", "items:\n  - rate: {category: Plastering, key: nope}\n", ErrRateNotFound},
		{"empty item", "items:\n  - quantity: 3\n", ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseEstimateInput([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseEstimateInput() error = %v", err)
			}
			if _, err := in.LineItems(DefaultCatalogue()); !errors.Is(err, tt.wantErr) {
				t.Errorf("LineItems() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := ParseEstimateInput([]byte("document: {type: receipt}\n")); !errors.Is(err, ErrUnknownDocumentType) {
		t.Errorf("bad type error = %v, want ErrUnknownDocumentType", err)
	}
	if _, err := ParseEstimateInput([]byte("items: [unclosed\n")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadEstimateInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	if err := os.WriteFile(path, []byte(sampleEstimateYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	in, err := LoadEstimateInput(path)
	if err != nil {
		t.Fatalf("LoadEstimateInput() error = %v", err)
	}
	if len(in.Items) != 3 {
		t.Errorf("got %d items, want 3", len(in.Items))
	}

	if _, err := LoadEstimateInput(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestEstimateInput_OverridesRateEntry(t *testing.T) {
	in, err := ParseEstimateInput([]byte(`
items:
  - rate: {category: Plastering, key: skimWalls}
    description: Skim coat walls, stairwell
    quantity: 0.1
    unit: m2
    unit_rate: 15.5
  - rate: {category: Plastering, key: skimWalls}
    quantity: 1e-7
`))
	if err != nil {
		t.Fatal(err)
	}
	list, err := in.LineItems(DefaultCatalogue())
	if err != nil {
		t.Fatalf("LineItems() error = %v", err)
	}
	items := list.Items()

	want := LineItem{ID: items[0].ID, Description: "Skim coat walls, stairwell", Quantity: 0.1, Unit: "m2", Rate: 15.5}
	if items[0] != want {
		t.Errorf("items[0] = %+v, want %+v", items[0], want)
	}
	if items[1].Quantity != 1e-7 || items[1].Rate != 13.26 {
		t.Errorf("items[1] = %+v", items[1])
	}
}

func TestFormValue(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{2, "2"},
		{0.1, "0.1"},
		{1e-7, "1e-07"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		got := formValue(tt.input)
		if got != tt.want {
			t.Errorf("formValue(%v) = %q, want %q", tt.input, got, tt.want)
		}
		if back := leadingFloat(got); back != tt.input {
			t.Errorf("leadingFloat(formValue(%v)) = %v", tt.input, back)
		}
	}
}
