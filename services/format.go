package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatGBP formats an amount as pounds sterling with thousands separators
// and exactly 2 decimal places, e.g. £1,234.56 or -£100.00.
// Halves round away from zero on the decimal value of the amount, so 1.005
// becomes £1.01.
func FormatGBP(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "£—"
	}

	d := decimal.NewFromFloat(amount).Round(2)
	negative := d.IsNegative()
	d = d.Abs()

	// StringFixed always yields "<int>.<2 digits>".
	parts := strings.SplitN(d.StringFixed(2), ".", 2)

	result := "£" + humanize.BigComma(d.BigInt()) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// FormatPercent formats a percentage without trailing zeros, e.g. 8% or 7.5%.
func FormatPercent(p float64) string {
	return decimal.NewFromFloat(p).Round(2).String() + "%"
}

// FormatQty returns a string representation of the quantity value.
// Whole numbers are formatted without decimals; fractional values get 2 decimal places.
func FormatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
