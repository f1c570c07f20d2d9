package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/jonnyallum/construct.fm-estimate-generator/services"
)

// HandleImportItems parses an uploaded .csv or .xlsx item list and returns
// the line items with any row errors. Nothing is stored.
func HandleImportItems() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return errorResponse(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return errorResponse(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		result, err := services.ImportLineItems(file, header.Filename)
		if err != nil {
			log.Printf("import_items: %v", err)
			return errorResponse(e, http.StatusBadRequest, err.Error())
		}
		return e.JSON(http.StatusOK, result)
	}
}

// HandleImportTemplate downloads an empty item list workbook for HandleImportItems.
func HandleImportTemplate() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsxBytes, err := services.GenerateImportTemplate()
		if err != nil {
			log.Printf("import_template: failed to generate: %v", err)
			return errorResponse(e, http.StatusInternalServerError, "Failed to generate template")
		}
		return writeDownload(e, excelContentTypes[".xlsx"], "Estimate_Items_Template.xlsx", xlsxBytes)
	}
}
