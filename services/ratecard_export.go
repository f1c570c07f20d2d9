package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// sheetColumn defines a column in a generated spreadsheet.
type sheetColumn struct {
	Header string
	Width  float64 // column width in Excel units
}

var rateCardColumns = []sheetColumn{
	{Header: "Category", Width: 26},
	{Header: "Key", Width: 24},
	{Header: "Description", Width: 70},
	{Header: "Unit", Width: 10},
	{Header: "Rate", Width: 14},
}

// importTemplateColumns are the headers ImportLineItems understands.
var importTemplateColumns = []sheetColumn{
	{Header: "Description *", Width: 60},
	{Header: "Quantity", Width: 12},
	{Header: "Unit", Width: 10},
	{Header: "Rate", Width: 14},
}

// GenerateRateCardExcel writes the given rate entries to a single-sheet
// workbook with a frozen header row.
func GenerateRateCardExcel(entries []RateEntry) ([]byte, error) {
	f, err := newTableWorkbook("Rate Card", "Rate Card", fmt.Sprintf("Total: %d rates", len(entries)), rateCardColumns)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := "Rate Card"
	for i, e := range entries {
		row := i + tableFirstRow
		values := []any{e.Category, e.Key, e.Description, e.Unit, e.Rate}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateImportTemplate returns an empty item list workbook with the
// headers ImportLineItems expects and one example row.
func GenerateImportTemplate() ([]byte, error) {
	f, err := newTableWorkbook("Items", "Estimate items", "Fill one row per item. Columns marked * are required.", importTemplateColumns)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// ImportLineItems reads the header from the first row, so the rows above it go.
	for i := 0; i < 3; i++ {
		if err := f.RemoveRow("Items", 1); err != nil {
			return nil, fmt.Errorf("remove title rows: %w", err)
		}
	}
	example := []any{"Skim coat walls (example, delete me)", 10, "m²", 13.26}
	if err := f.SetSheetRow("Items", "A2", &example); err != nil {
		return nil, fmt.Errorf("write example: %w", err)
	}
	if err := f.SetPanes("Items", &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// tableFirstRow is the first data row under the title, subtitle and header rows.
const tableFirstRow = 5

// newTableWorkbook creates a workbook with a title in row 1, a subtitle in
// row 2 and styled column headers in row 4.
func newTableWorkbook(sheetName, title, subtitle string, columns []sheetColumn) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: thinBorders(),
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	lastCol := colName(len(columns) - 1)
	for i, c := range columns {
		col := colName(i)
		f.SetColWidth(sheetName, col, col, c.Width)
		f.SetCellValue(sheetName, col+"4", c.Header)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	f.MergeCell(sheetName, "A1", lastCol+"1")
	f.SetCellValue(sheetName, "A1", title)
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)
	f.SetCellValue(sheetName, "A2", subtitle)

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      4,
		TopLeftCell: "A5",
		ActivePane:  "bottomLeft",
	})
	return f, nil
}

// colName converts a 0-based column index to an Excel column letter (A, B, ..., Z, AA, ...).
func colName(index int) string {
	name := ""
	for index >= 0 {
		name = string(rune('A'+index%26)) + name
		index = index/26 - 1
	}
	return name
}
