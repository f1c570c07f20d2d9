package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/jonnyallum/construct.fm-estimate-generator/config"
	"github.com/jonnyallum/construct.fm-estimate-generator/services"
	"github.com/jonnyallum/construct.fm-estimate-generator/templates"
)

var excelContentTypes = map[string]string{
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xlsm": "application/vnd.ms-excel.sheet.macroEnabled.12",
}

func writeDownload(e *core.RequestEvent, contentType, filename string, body []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	e.Response.WriteHeader(http.StatusOK)
	_, err := e.Response.Write(body)
	return err
}

// HandleExportExcel fills the quotation or invoice workbook template and
// downloads it.
func HandleExportExcel(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, status, msg := bindExport(e, cfg)
		if status != 0 {
			return errorResponse(e, status, msg)
		}

		xlsxBytes, ext, err := services.GenerateEstimateExcel(cfg.TemplatesDir, data)
		if errors.Is(err, services.ErrTooManyRows) {
			log.Printf("export_excel: %v", err)
			return errorResponse(e, http.StatusUnprocessableEntity, "Too many line items for the template")
		}
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return errorResponse(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		contentType, ok := excelContentTypes[ext]
		if !ok {
			contentType = excelContentTypes[".xlsx"]
		}
		return writeDownload(e, contentType, services.ExportFilename(data.Info, ext), xlsxBytes)
	}
}

// HandleExportPDF renders the quotation or invoice as a PDF download.
func HandleExportPDF(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, status, msg := bindExport(e, cfg)
		if status != 0 {
			return errorResponse(e, status, msg)
		}

		pdfBytes, err := services.GenerateEstimatePDF(data, cfg.Company)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return errorResponse(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		return writeDownload(e, "application/pdf", services.ExportFilename(data.Info, ".pdf"), pdfBytes)
	}
}

// HandlePrint renders the printable HTML view of the quotation or invoice.
func HandlePrint(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, status, msg := bindExport(e, cfg)
		if status != 0 {
			return errorResponse(e, status, msg)
		}

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		component := templates.PrintView(data, cfg.Company)
		return component.Render(e.Request.Context(), e.Response)
	}
}
