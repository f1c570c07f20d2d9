package services

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidInput is returned for estimate files that parse but cannot be priced.
var ErrInvalidInput = errors.New("invalid estimate input")

// RateRef points at a rate card entry by category name and key.
type RateRef struct {
	Category string `yaml:"category"`
	Key      string `yaml:"key"`
}

// InputItem is one line of an estimate file. Either Rate references the rate
// card, or the literal fields describe a custom item. Literal fields override
// the referenced entry.
type InputItem struct {
	Rate        *RateRef `yaml:"rate,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Quantity    *float64 `yaml:"quantity,omitempty"`
	Unit        string   `yaml:"unit,omitempty"`
	UnitRate    *float64 `yaml:"unit_rate,omitempty"`
}

// EstimateInput is the YAML document read by the CLI.
type EstimateInput struct {
	Document       DocumentInfo `yaml:"document"`
	PrelimsPercent *float64     `yaml:"prelims_percent,omitempty"`
	Items          []InputItem  `yaml:"items"`
}

// LoadEstimateInput reads and parses an estimate file.
func LoadEstimateInput(path string) (*EstimateInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read estimate file: %w", err)
	}
	return ParseEstimateInput(data)
}

// ParseEstimateInput parses an estimate document.
func ParseEstimateInput(data []byte) (*EstimateInput, error) {
	var in EstimateInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse estimate file: %w", err)
	}
	if in.Document.Type != "" {
		t, err := ParseDocumentType(string(in.Document.Type))
		if err != nil {
			return nil, err
		}
		in.Document.Type = t
	}
	return &in, nil
}

// Prelims returns the file's prelims percentage, or def when it is not set.
func (in *EstimateInput) Prelims(def float64) float64 {
	if in.PrelimsPercent == nil {
		return def
	}
	return *in.PrelimsPercent
}

// LineItems resolves the file's items against the catalogue into an item list.
// Referenced entries are added as rate card lines, other items as custom
// lines, and the literal fields are then applied on top.
func (in *EstimateInput) LineItems(cat *Catalogue) (*ItemList, error) {
	list := NewItemList()
	for i, it := range in.Items {
		var item LineItem
		switch {
		case it.Rate != nil:
			entry, err := cat.Lookup(it.Rate.Category, it.Rate.Key)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
			item = list.Add(entry)
		case it.Description == "":
			return nil, fmt.Errorf("item %d: needs a rate reference or a description: %w", i+1, ErrInvalidInput)
		default:
			item = list.AddCustom()
		}

		updates := map[string]string{}
		if it.Description != "" {
			updates[FieldDescription] = it.Description
		}
		if it.Quantity != nil {
			updates[FieldQuantity] = formValue(*it.Quantity)
		}
		if it.UnitRate != nil {
			updates[FieldRate] = formValue(*it.UnitRate)
		}
		for field, value := range updates {
			if err := list.Update(item.ID, field, value); err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
		}
		if it.Unit != "" {
			list.setUnit(item.ID, it.Unit)
		}
	}
	return list, nil
}

// formValue writes v the way ItemList.Update reads it back.
func formValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
