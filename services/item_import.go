package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFile is returned by ImportLineItems for anything other than
// .csv and .xlsx uploads.
var ErrUnsupportedFile = errors.New("unsupported file format: must be .csv or .xlsx")

// ValidationError represents a single field-level error on one row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult is returned after parsing and validating an uploaded item file.
type ImportResult struct {
	TotalRows int               `json:"totalRows"`
	ValidRows int               `json:"validRows"`
	ErrorRows int               `json:"errorRows"`
	Errors    []ValidationError `json:"errors"`
	Items     []LineItem        `json:"items"`
}

// importColumns maps accepted header labels to line item fields.
var importColumns = map[string]string{
	"description": FieldDescription,
	"item":        FieldDescription,
	"quantity":    FieldQuantity,
	"qty":         FieldQuantity,
	"unit":        "unit",
	"uom":         "unit",
	"rate":        FieldRate,
	"unit rate":   FieldRate,
	"price":       FieldRate,
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return rows[0], rows[1:], nil
}

// mapHeaders maps uploaded column headers to line item fields. Unknown
// columns map to "".
func mapHeaders(headers []string) []string {
	mapped := make([]string, len(headers))
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		norm = strings.TrimSpace(strings.TrimSuffix(norm, "*"))
		mapped[i] = importColumns[norm]
	}
	return mapped
}

// ImportLineItems parses a .csv or .xlsx item list with a header row naming
// Description, Quantity, Unit and Rate columns. Rows with errors are reported
// and left out of Items. Blank rows are skipped.
func ImportLineItems(file io.Reader, fileName string) (*ImportResult, error) {
	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseExcel(file)
	default:
		return nil, ErrUnsupportedFile
	}
	if err != nil {
		return nil, err
	}

	columns := mapHeaders(headers)
	hasDescription := false
	for _, c := range columns {
		hasDescription = hasDescription || c == FieldDescription
	}
	if !hasDescription {
		return nil, fmt.Errorf("file has no Description column")
	}

	result := &ImportResult{Items: []LineItem{}}
	list := NewItemList()
	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row

		values := make(map[string]string)
		blank := true
		for colIdx, field := range columns {
			if field == "" || colIdx >= len(row) {
				continue
			}
			v := strings.TrimSpace(row[colIdx])
			values[field] = v
			blank = blank && v == ""
		}
		if blank {
			continue
		}
		result.TotalRows++

		rowErrors := validateImportRow(rowNum, values)
		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
			result.ErrorRows++
			continue
		}

		item := list.AddCustom()
		for _, field := range []string{FieldDescription, FieldQuantity, FieldRate} {
			if v, ok := values[field]; ok && v != "" {
				if field != FieldDescription {
					v = cleanNumber(v)
				}
				if err := list.Update(item.ID, field, v); err != nil {
					return nil, fmt.Errorf("row %d: %w", rowNum, err)
				}
			}
		}
		if unit := values["unit"]; unit != "" {
			list.setUnit(item.ID, unit)
		}
	}

	result.Items = list.Items()
	result.ValidRows = len(result.Items)
	return result, nil
}

// validateImportRow checks one row's required and numeric fields.
func validateImportRow(rowNum int, values map[string]string) []ValidationError {
	var errs []ValidationError
	if values[FieldDescription] == "" {
		errs = append(errs, ValidationError{Row: rowNum, Field: "Description", Message: "Description is required"})
	}
	numeric := []struct{ field, label string }{
		{FieldQuantity, "Quantity"},
		{FieldRate, "Rate"},
	}
	for _, n := range numeric {
		v := cleanNumber(values[n.field])
		if v == "" {
			continue
		}
		if _, err := cast.ToFloat64E(v); err != nil {
			errs = append(errs, ValidationError{Row: rowNum, Field: n.label, Message: fmt.Sprintf("%s %q is not a number", n.label, values[n.field])})
		}
	}
	return errs
}

// cleanNumber strips a pound sign and thousands separators.
func cleanNumber(s string) string {
	return strings.TrimPrefix(strings.ReplaceAll(s, ",", ""), "£")
}
