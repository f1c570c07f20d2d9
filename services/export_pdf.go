package services

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfMuted  = &props.Color{Red: 100, Green: 100, Blue: 100}
	pdfDark   = &props.Color{Red: 33, Green: 37, Blue: 41}
	pdfAccent = &props.Color{Red: 0, Green: 166, Blue: 81}
)

// GenerateEstimatePDF creates a quotation or invoice PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateEstimatePDF(data ExportData, company Company) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addEstimateHeader(m, data, company)
	addEstimateClient(m, data)
	addEstimateTable(m, data)
	addEstimateTotals(m, data)
	if data.Info.Type == DocumentInvoice {
		addInvoicePayment(m, data)
	}
	addEstimateFooter(m, data, company)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addEstimateHeader adds the company block on the left and the document
// kind, number and date on the right.
func addEstimateHeader(m core.Maroto, data ExportData, company Company) {
	info := data.Info
	kind := "ESTIMATE"
	number := info.Reference
	if info.Type == DocumentInvoice {
		kind = "INVOICE"
		number = info.InvoiceNumber
	}

	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(company.Name, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Color: pdfAccent,
				}),
			),
			col.New(6).Add(
				text.New(kind, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: pdfDark,
				}),
			),
		),
	)

	rightMuted := props.Text{Size: 8, Align: align.Right, Color: pdfMuted}
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New(joinNonEmpty([]string{company.Address, company.Email}, " | "), props.Text{
				Size:  8,
				Color: pdfMuted,
			})),
			col.New(6).Add(text.New(fmt.Sprintf("No: %s", orDefault(number, "-")), rightMuted)),
		),
	)

	date := info.Date
	if t := info.ParsedDate(); !t.IsZero() {
		date = t.Format("2 January 2006")
	}
	rows := []core.Row{
		row.New(5).Add(
			col.New(6),
			col.New(6).Add(text.New(fmt.Sprintf("Date: %s", date), rightMuted)),
		),
	}
	if info.Type == DocumentInvoice && info.Reference != "" {
		rows = append(rows, row.New(5).Add(
			col.New(6),
			col.New(6).Add(text.New(fmt.Sprintf("Quote ref: %s", info.Reference), rightMuted)),
		))
	}
	if info.Type == DocumentInvoice && info.PONumber != "" {
		rows = append(rows, row.New(5).Add(
			col.New(6),
			col.New(6).Add(text.New(fmt.Sprintf("PO: %s", info.PONumber), rightMuted)),
		))
	}
	m.AddRows(rows...)

	m.AddRows(row.New(4))
}

// addEstimateClient adds the client and project block.
func addEstimateClient(m core.Maroto, data ExportData) {
	label := props.Text{Size: 7, Style: fontstyle.Bold, Color: pdfMuted}
	value := props.Text{Size: 10, Style: fontstyle.Bold}

	m.AddRows(
		row.New(5).Add(
			col.New(6).Add(text.New("CLIENT", label)),
			col.New(6).Add(text.New("PROJECT", label)),
		),
		row.New(7).Add(
			col.New(6).Add(text.New(orDefault(data.Info.ClientName, "TBC"), value)),
			col.New(6).Add(text.New(orDefault(data.Info.ProjectTitle, "TBC"), value)),
		),
		row.New(4),
	)
}

// addEstimateTable adds the line item table. Prelims rows follow the measured
// works under their own heading.
func addEstimateTable(m core.Maroto, data ExportData) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerLeft := headerText
	headerLeft.Align = align.Left
	headerRight := headerText
	headerRight.Align = align.Right
	headerCell := &props.Cell{BackgroundColor: pdfDark}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(headerCell),
			col.New(5).Add(text.New("Description", headerLeft)).WithStyle(headerCell),
			col.New(1).Add(text.New("Qty", headerRight)).WithStyle(headerCell),
			col.New(1).Add(text.New("Unit", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Rate", headerRight)).WithStyle(headerCell),
			col.New(2).Add(text.New("Total", headerRight)).WithStyle(headerCell),
		),
	)

	if len(data.MainItems) == 0 {
		m.AddRows(row.New(8).Add(
			col.New(12).Add(text.New("No items", props.Text{Size: 8, Align: align.Center, Color: pdfMuted})),
		))
	}
	for i, it := range data.MainItems {
		var style *props.Cell
		if i%2 == 1 {
			style = &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
		}
		addEstimateItemRow(m, strconv.Itoa(i+1), it, style)
	}

	if len(data.PrelimsItems) > 0 {
		m.AddRows(row.New(7).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Preliminaries (%s)", FormatPercent(data.PrelimsPercent)), props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Top:   2,
			})),
		))
		for _, it := range data.PrelimsItems {
			addEstimateItemRow(m, "", it, nil)
		}
	}
}

func addEstimateItemRow(m core.Maroto, index string, it ExportLineItem, style *props.Cell) {
	base := props.Text{Size: 8, Align: align.Center}
	left := base
	left.Align = align.Left
	right := base
	right.Align = align.Right

	cols := []core.Col{
		col.New(1).Add(text.New(index, base)),
		col.New(5).Add(text.New(it.Description, left)),
		col.New(1).Add(text.New(FormatQty(it.Quantity), right)),
		col.New(1).Add(text.New(it.Unit, base)),
		col.New(2).Add(text.New(FormatGBP(it.Rate), right)),
		col.New(2).Add(text.New(FormatGBP(it.Total), right)),
	}
	if style != nil {
		for i, c := range cols {
			cols[i] = c.WithStyle(style)
		}
	}
	m.AddRows(row.New(7).Add(cols...))
}

// addEstimateTotals adds the totals block from main contract down to the
// grand total.
func addEstimateTotals(m core.Maroto, data ExportData) {
	m.AddRows(row.New(4))

	plain := props.Text{Size: 9, Align: align.Right}
	lines := []struct {
		label string
		value float64
	}{
		{"Main contract", data.MainContractTotal},
		{fmt.Sprintf("Preliminaries (%s)", FormatPercent(data.PrelimsPercent)), data.PrelimsTotal},
		{"Subtotal (ex VAT)", data.SubtotalExVAT},
		{fmt.Sprintf("VAT (%s)", FormatPercent(VATRate*100)), data.VAT},
	}
	for _, l := range lines {
		m.AddRows(row.New(6).Add(
			col.New(8).Add(text.New(l.label, plain)),
			col.New(4).Add(text.New(FormatGBP(l.value), plain)),
		))
	}

	totalCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	bold := props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}
	m.AddRows(row.New(9).Add(
		col.New(8).Add(text.New("TOTAL (inc VAT)", bold)).WithStyle(totalCell),
		col.New(4).Add(text.New(FormatGBP(data.GrandTotal), bold)).WithStyle(totalCell),
	))
}

// addInvoicePayment adds payment terms, due date, bank details and notes.
func addInvoicePayment(m core.Maroto, data ExportData) {
	info := data.Info
	label := props.Text{Size: 7, Style: fontstyle.Bold, Color: pdfMuted}
	value := props.Text{Size: 8}

	m.AddRows(row.New(6))
	m.AddRows(row.New(5).Add(col.New(12).Add(text.New("PAYMENT", label))))

	fields := []struct{ name, value string }{
		{"Terms", info.PaymentTerms},
		{"Due date", orDefault(info.DueDate, "TBC")},
		{"Bank details", info.BankDetails},
		{"Notes", info.Notes},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		m.AddRows(row.New(5).Add(
			col.New(3).Add(text.New(f.name+":", value)),
			col.New(9).Add(text.New(f.value, value)),
		))
	}
}

// addEstimateFooter adds the terms lines and the company line at the bottom.
func addEstimateFooter(m core.Maroto, data ExportData, company Company) {
	muted := props.Text{
		Size:  7,
		Align: align.Left,
		Color: &props.Color{Red: 140, Green: 140, Blue: 140},
	}

	m.AddRows(row.New(8))
	for _, line := range FooterLines(data.Info.Type) {
		m.AddRows(row.New(4).Add(col.New(12).Add(text.New(line, muted))))
	}
	bold := muted
	bold.Style = fontstyle.Bold
	bold.Top = 2
	m.AddRows(row.New(6).Add(col.New(12).Add(text.New(company.Line(), bold))))
}

// joinNonEmpty joins non-empty strings with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	result := ""
	for i, p := range nonEmpty {
		if i > 0 {
			result += sep
		}
		result += p
	}
	return result
}
