// Package services provides the rate card, estimate pricing and document
// export functions for construction estimates and invoices.
package services

import "math"

const (
	// VATRate is the fixed VAT applied to the subtotal (main contract + prelims).
	VATRate = 0.20

	// DefaultPrelimsPercent is the prelims percentage used when none is given.
	DefaultPrelimsPercent = 8.0
)

// LineItem is a priced line on an estimate. Total is only populated on the
// items returned in an EstimateSummary.
type LineItem struct {
	ID          string  `json:"id,omitempty" yaml:"id,omitempty"`
	Description string  `json:"description" yaml:"description"`
	Quantity    float64 `json:"quantity" yaml:"quantity"`
	Unit        string  `json:"unit" yaml:"unit"`
	Rate        float64 `json:"rate" yaml:"rate"`
	Total       float64 `json:"total" yaml:"total,omitempty"`
}

// EstimateSummary holds the derived totals for a set of line items.
type EstimateSummary struct {
	Items             []LineItem `json:"items"`
	MainContractTotal float64    `json:"mainContractTotal"`
	PrelimsPercent    float64    `json:"prelimsPercent"`
	PrelimsValue      float64    `json:"prelimsValue"`
	SubtotalExVAT     float64    `json:"subtotalExVat"`
	VAT               float64    `json:"vat"`
	GrandTotal        float64    `json:"grandTotal"`
}

// CalcLineTotal returns quantity × rate.
func CalcLineTotal(quantity, rate float64) float64 {
	return quantity * rate
}

// CalculateEstimate prices the items and derives prelims, VAT and the grand
// total. Values are not rounded and prelimsPercent is not range checked;
// both are left to the caller. The input slice is never modified.
func CalculateEstimate(items []LineItem, prelimsPercent float64) EstimateSummary {
	priced := make([]LineItem, len(items))
	var mainTotal float64
	for i, item := range items {
		item.Total = CalcLineTotal(item.Quantity, item.Rate)
		priced[i] = item
		mainTotal += item.Total
	}

	prelims := mainTotal * prelimsPercent / 100
	subtotal := mainTotal + prelims
	vat := subtotal * VATRate

	return EstimateSummary{
		Items:             priced,
		MainContractTotal: mainTotal,
		PrelimsPercent:    prelimsPercent,
		PrelimsValue:      prelims,
		SubtotalExVAT:     subtotal,
		VAT:               vat,
		GrandTotal:        subtotal + vat,
	}
}

// IsFinite reports whether every line total and derived total is a finite
// number. Finite inputs can still overflow to ±Inf, or to NaN when such
// totals cancel.
func (s EstimateSummary) IsFinite() bool {
	for _, item := range s.Items {
		if !finite(item.Total) {
			return false
		}
	}
	for _, v := range []float64{s.MainContractTotal, s.PrelimsValue, s.SubtotalExVAT, s.VAT, s.GrandTotal} {
		if !finite(v) {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
