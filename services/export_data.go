package services

// PrelimComponent is one overhead heading that makes up the prelims, with its
// typical share of the main contract value.
type PrelimComponent struct {
	Key               string
	Description       string
	PercentOfContract float64
}

// PrelimComponents lists the overheads priced into every job. Together they
// come to 10.5% of contract; a job's actual prelims percentage is spread
// across them in the same proportions.
var PrelimComponents = []PrelimComponent{
	{"management", "Site management & supervision", 4.5},
	{"segregation", "Site segregation & protection", 1.0},
	{"wasteManagement", "Waste management & disposal", 1.5},
	{"access", "Access equipment (scaffolding, MEWP)", 1.5},
	{"plant", "Plant & tool hire", 2.0},
}

// ExportLineItem is one priced row of an exported document.
type ExportLineItem struct {
	Description string
	Quantity    float64
	Unit        string
	Rate        float64
	Total       float64
}

// ExportData holds all data needed to export an estimate or invoice.
type ExportData struct {
	Info              DocumentInfo
	PrelimsPercent    float64
	PrelimsItems      []ExportLineItem
	PrelimsTotal      float64
	MainItems         []ExportLineItem
	MainContractTotal float64
	SubtotalExVAT     float64
	VAT               float64
	GrandTotal        float64
}

// PrelimsBreakdown spreads prelimsValue across PrelimComponents in proportion
// to their share of contract. The rows sum to prelimsValue.
func PrelimsBreakdown(prelimsValue float64) []ExportLineItem {
	var weight float64
	for _, c := range PrelimComponents {
		weight += c.PercentOfContract
	}

	rows := make([]ExportLineItem, 0, len(PrelimComponents))
	var allocated float64
	for i, c := range PrelimComponents {
		amount := prelimsValue * c.PercentOfContract / weight
		// The last row takes the remainder so float drift never leaks into the total.
		if i == len(PrelimComponents)-1 {
			amount = prelimsValue - allocated
		}
		allocated += amount
		rows = append(rows, ExportLineItem{
			Description: c.Description,
			Quantity:    1,
			Unit:        "item",
			Rate:        amount,
			Total:       amount,
		})
	}
	return rows
}

// BuildExportData projects a calculated estimate into the shape used by the
// Excel, PDF and print exports. Prelims rows are only produced when the
// estimate carries a prelims value.
func BuildExportData(info DocumentInfo, summary EstimateSummary) ExportData {
	main := make([]ExportLineItem, len(summary.Items))
	for i, item := range summary.Items {
		main[i] = ExportLineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			Rate:        item.Rate,
			Total:       item.Total,
		}
	}

	var prelims []ExportLineItem
	if summary.PrelimsValue != 0 {
		prelims = PrelimsBreakdown(summary.PrelimsValue)
	}

	return ExportData{
		Info:              info,
		PrelimsPercent:    summary.PrelimsPercent,
		PrelimsItems:      prelims,
		PrelimsTotal:      summary.PrelimsValue,
		MainItems:         main,
		MainContractTotal: summary.MainContractTotal,
		SubtotalExVAT:     summary.SubtotalExVAT,
		VAT:               summary.VAT,
		GrandTotal:        summary.GrandTotal,
	}
}
