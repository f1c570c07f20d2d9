package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/jonnyallum/construct.fm-estimate-generator/services"
	"github.com/jonnyallum/construct.fm-estimate-generator/templates"
)

// activeCategory returns the requested category, or the first one when the
// query leaves it blank.
func activeCategory(e *core.RequestEvent, cat *services.Catalogue) string {
	category := e.Request.URL.Query().Get("category")
	if category == "" {
		if names := cat.Categories(); len(names) > 0 {
			category = names[0]
		}
	}
	return category
}

// HandleRates returns the rate card entries for ?category= matching ?search=.
func HandleRates(cat *services.Catalogue) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		entries := cat.Filter(activeCategory(e, cat), e.Request.URL.Query().Get("search"))
		if entries == nil {
			entries = []services.RateEntry{}
		}
		return e.JSON(http.StatusOK, entries)
	}
}

// HandleRateCategories returns the category names in rate card order.
func HandleRateCategories(cat *services.Catalogue) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, cat.Categories())
	}
}

// HandleRateCardPage renders the rate card as HTML.
func HandleRateCardPage(cat *services.Catalogue) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category := activeCategory(e, cat)
		search := e.Request.URL.Query().Get("search")
		entries := cat.Filter(category, search)

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		component := templates.RateCardPage(cat.Categories(), category, search, entries)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleRateCardExport downloads the rate card, or one category of it, as a workbook.
func HandleRateCardExport(cat *services.Catalogue) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		entries := cat.Entries()
		filename := "Rate_Card.xlsx"
		if category := e.Request.URL.Query().Get("category"); category != "" {
			entries = cat.Filter(category, "")
			filename = "Rate_Card_" + services.ExportSlug(category) + ".xlsx"
		}

		xlsxBytes, err := services.GenerateRateCardExcel(entries)
		if err != nil {
			log.Printf("rate_card_export: failed to generate: %v", err)
			return errorResponse(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}
		return writeDownload(e, excelContentTypes[".xlsx"], filename, xlsxBytes)
	}
}
