package services

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheet names used by the quotation and invoice workbooks. The trailing space
// in the letter sheet is part of the name in the office templates.
const (
	SheetQuoteLetter   = "Quote Letter "
	SheetBuildingWorks = "BUILDING WORKS"
)

// Fixed row slots in the templates.
const (
	letterPrelimsFirstRow = 30
	letterPrelimsRows     = 10
	letterMainFirstRow    = 45
	letterMainRows        = 60

	worksPrelimsFirstRow = 11
	worksMainFirstRow    = 27
)

// ErrTooManyRows is returned when an estimate has more line items than the
// template has rows for.
var ErrTooManyRows = errors.New("too many rows for template")

// TemplateFilename returns the workbook name looked up in the templates
// directory for a document type.
func TemplateFilename(docType DocumentType) string {
	if docType == DocumentInvoice {
		return "Invoice_Template.xlsm"
	}
	return "Quotation_Template.xlsm"
}

// OpenTemplate opens the workbook for docType from dir. A macro-free .xlsx
// copy is accepted when the .xlsm is missing. The returned path is empty when
// no template exists, in which case a blank template is returned instead.
func OpenTemplate(dir string, docType DocumentType) (*excelize.File, string, error) {
	name := TemplateFilename(docType)
	candidates := []string{
		filepath.Join(dir, name),
		filepath.Join(dir, name[:len(name)-len(filepath.Ext(name))]+".xlsx"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, "", fmt.Errorf("stat template: %w", err)
		}
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("open template %s: %w", filepath.Base(path), err)
		}
		return f, path, nil
	}

	f, err := NewBlankTemplate()
	if err != nil {
		return nil, "", err
	}
	return f, "", nil
}

// NewBlankTemplate builds a plain workbook with the same sheets and cell
// layout as the office templates.
func NewBlankTemplate() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), SheetQuoteLetter); err != nil {
		f.Close()
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if _, err := f.NewSheet(SheetBuildingWorks); err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 10},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	letter := SheetQuoteLetter
	widths := map[string]float64{"A": 4, "B": 48, "C": 10, "D": 10, "E": 14, "F": 16}
	for col, w := range widths {
		if err := f.SetColWidth(letter, col, col, w); err != nil {
			f.Close()
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}
	labels := map[string]string{
		"D12": "PO:",
		"A13": "Date:",
		"D13": "Ref:",
		"A16": "Works:",
		"E27": "Preliminaries",
		"E41": "Main contract",
	}
	for cell, v := range labels {
		f.SetCellValue(letter, cell, v)
	}
	f.SetCellStyle(letter, "B1", "B1", titleStyle)

	headers := []string{"Description", "Qty", "Unit", "Rate", "Total"}
	for _, row := range []int{letterPrelimsFirstRow - 1, letterMainFirstRow - 1} {
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(2+i, row)
			f.SetCellValue(letter, cell, h)
		}
		first, _ := excelize.CoordinatesToCellName(2, row)
		last, _ := excelize.CoordinatesToCellName(2+len(headers)-1, row)
		f.SetCellStyle(letter, first, last, headerStyle)
	}

	works := SheetBuildingWorks
	f.SetCellValue(works, "C2", "Client:")
	f.SetCellValue(works, "C3", "Date:")
	f.SetCellValue(works, "D10", "PRELIMINARIES")
	f.SetCellValue(works, "D26", "BUILDING WORKS")
	f.SetColWidth(works, "D", "D", 48)

	return f, nil
}

// FillTemplate writes data into the fixed cells of a quotation or invoice
// workbook. Unused item rows are cleared. Nothing is written when the
// estimate does not fit the template.
func FillTemplate(f *excelize.File, data ExportData) error {
	if len(data.PrelimsItems) > letterPrelimsRows {
		return fmt.Errorf("%d prelims items, template holds %d: %w", len(data.PrelimsItems), letterPrelimsRows, ErrTooManyRows)
	}
	if len(data.MainItems) > letterMainRows {
		return fmt.Errorf("%d items, template holds %d: %w", len(data.MainItems), letterMainRows, ErrTooManyRows)
	}
	for _, sheet := range []string{SheetQuoteLetter, SheetBuildingWorks} {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			return fmt.Errorf("template is missing sheet %q", sheet)
		}
	}

	info := data.Info
	date := info.ParsedDate()

	letter := SheetQuoteLetter
	type cellValue struct {
		cell  string
		value any
	}
	cells := []cellValue{
		{"B1", info.Type.Heading()},
		{"B3", orDefault(info.ProjectTitle, "WORKS")},
		{"B6", orDefault(info.ClientName, "Client")},
		{"B16", info.ProjectTitle},
		{"F27", data.PrelimsTotal},
		{"F41", data.MainContractTotal},
	}
	ref := info.Reference
	if info.Type == DocumentInvoice {
		ref = info.InvoiceNumber
		if info.PONumber != "" {
			cells = append(cells, cellValue{"E12", info.PONumber})
		}
	}
	cells = append(cells, cellValue{"E13", ref})

	for _, c := range cells {
		if err := f.SetCellValue(letter, c.cell, c.value); err != nil {
			return fmt.Errorf("set %s: %w", c.cell, err)
		}
	}

	if err := setDateCell(f, letter, "B13", date); err != nil {
		return err
	}

	if err := fillLetterRows(f, letterPrelimsFirstRow, letterPrelimsRows, data.PrelimsItems); err != nil {
		return err
	}
	if err := fillLetterRows(f, letterMainFirstRow, letterMainRows, data.MainItems); err != nil {
		return err
	}

	works := SheetBuildingWorks
	f.SetCellValue(works, "D2", info.ClientName)
	if err := setDateCell(f, works, "D3", date); err != nil {
		return err
	}
	if err := fillWorksRows(f, worksPrelimsFirstRow, letterPrelimsRows, data.PrelimsItems, false); err != nil {
		return err
	}
	if err := fillWorksRows(f, worksMainFirstRow, letterMainRows, data.MainItems, true); err != nil {
		return err
	}
	return nil
}

// fillLetterRows writes items to columns B-F starting at firstRow and clears
// the remaining slots.
func fillLetterRows(f *excelize.File, firstRow, slots int, items []ExportLineItem) error {
	for i := 0; i < slots; i++ {
		row := strconv.Itoa(firstRow + i)
		values := []any{"", "", "", "", ""}
		if i < len(items) {
			it := items[i]
			values = []any{it.Description, it.Quantity, it.Unit, it.Rate, it.Total}
		}
		for j, col := range []string{"B", "C", "D", "E", "F"} {
			if err := f.SetCellValue(SheetQuoteLetter, col+row, values[j]); err != nil {
				return fmt.Errorf("set %s%s: %w", col, row, err)
			}
		}
	}
	return nil
}

// fillWorksRows writes the building works breakdown: D description, F qty,
// G unit and, for the main section, H rate.
func fillWorksRows(f *excelize.File, firstRow, slots int, items []ExportLineItem, withRate bool) error {
	cols := []string{"D", "F", "G"}
	if withRate {
		cols = append(cols, "H")
	}
	for i := 0; i < slots; i++ {
		row := strconv.Itoa(firstRow + i)
		values := []any{"", "", "", ""}
		if i < len(items) {
			it := items[i]
			values = []any{it.Description, it.Quantity, it.Unit, it.Rate}
		}
		for j, col := range cols {
			if err := f.SetCellValue(SheetBuildingWorks, col+row, values[j]); err != nil {
				return fmt.Errorf("set %s%s: %w", col, row, err)
			}
		}
	}
	return nil
}

// GenerateEstimateExcel fills the template for data.Info.Type from
// templatesDir and returns the workbook bytes with the file extension to use
// for the download.
func GenerateEstimateExcel(templatesDir string, data ExportData) ([]byte, string, error) {
	f, path, err := OpenTemplate(templatesDir, data.Info.Type)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	ext := ".xlsx"
	if path != "" {
		ext = filepath.Ext(path)
	}

	if err := FillTemplate(f, data); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), ext, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// setDateCell writes t as an Excel date shown as dd/mm/yyyy, keeping the
// rest of the cell's template style. A zero t clears the cell.
func setDateCell(f *excelize.File, sheet, cell string, t time.Time) error {
	if t.IsZero() {
		return f.SetCellValue(sheet, cell, "")
	}

	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return fmt.Errorf("get %s style: %w", cell, err)
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return fmt.Errorf("read %s style: %w", cell, err)
	}
	numFmt := "dd/mm/yyyy"
	style.NumFmt = 0
	style.CustomNumFmt = &numFmt
	dateStyle, err := f.NewStyle(style)
	if err != nil {
		return fmt.Errorf("create date style: %w", err)
	}

	if err := f.SetCellValue(sheet, cell, t); err != nil {
		return fmt.Errorf("set %s: %w", cell, err)
	}
	return f.SetCellStyle(sheet, cell, cell, dateStyle)
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
