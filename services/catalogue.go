package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRateNotFound is returned by Catalogue.Lookup for an unknown category/key pair.
var ErrRateNotFound = errors.New("rate not found")

// RateEntry is one flattened, searchable row of the rate card.
type RateEntry struct {
	Key         string  `json:"key"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rate        float64 `json:"rate"`
	Unit        string  `json:"unit"`
}

// FlattenCatalogue turns categorized rate tables into a single ordered list.
// Entries follow category declaration order, then key order within each
// category. The second result holds the distinct category names in
// first-occurrence order.
func FlattenCatalogue(categories []RateCategory) ([]RateEntry, []string) {
	var entries []RateEntry
	var names []string
	seen := make(map[string]bool)

	for _, cat := range categories {
		for _, r := range cat.Rates {
			entries = append(entries, RateEntry{
				Key:         r.Key,
				Category:    cat.Name,
				Description: r.Description,
				Rate:        r.Rate,
				Unit:        r.Unit,
			})
			if !seen[cat.Name] {
				seen[cat.Name] = true
				names = append(names, cat.Name)
			}
		}
	}

	return entries, names
}

// FilterRates returns the entries in category whose description contains
// search, ignoring case. An empty search matches every entry in the category.
func FilterRates(entries []RateEntry, category, search string) []RateEntry {
	needle := strings.ToLower(search)
	var out []RateEntry
	for _, e := range entries {
		if e.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(e.Description), needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Catalogue is the flattened rate card. It is built once at startup and
// only read afterwards, so it can be shared between goroutines.
type Catalogue struct {
	entries    []RateEntry
	categories []string
}

// NewCatalogue flattens the given categories into a Catalogue.
func NewCatalogue(categories []RateCategory) *Catalogue {
	entries, names := FlattenCatalogue(categories)
	return &Catalogue{entries: entries, categories: names}
}

// DefaultCatalogue returns the company rate card as a Catalogue.
func DefaultCatalogue() *Catalogue {
	return NewCatalogue(DefaultRateCategories())
}

// Entries returns a copy of every rate entry.
func (c *Catalogue) Entries() []RateEntry {
	out := make([]RateEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Categories returns a copy of the category names in rate card order.
func (c *Catalogue) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Filter applies FilterRates to the catalogue entries.
func (c *Catalogue) Filter(category, search string) []RateEntry {
	return FilterRates(c.entries, category, search)
}

// Lookup returns the entry stored under category and key.
func (c *Catalogue) Lookup(category, key string) (RateEntry, error) {
	for _, e := range c.entries {
		if e.Category == category && e.Key == key {
			return e, nil
		}
	}
	return RateEntry{}, fmt.Errorf("%s/%s: %w", category, key, ErrRateNotFound)
}
