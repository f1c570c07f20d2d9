package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"github.com/jonnyallum/construct.fm-estimate-generator/config"
	"github.com/jonnyallum/construct.fm-estimate-generator/services"
)

const errTotalsOutOfRange = "Estimate totals are too large to calculate"

// estimateRequest is the JSON body accepted by the estimate and export routes.
type estimateRequest struct {
	Document       services.DocumentInfo `json:"document"`
	Items          []services.LineItem   `json:"items"`
	PrelimsPercent *float64              `json:"prelimsPercent"`
}

// prelims returns the requested prelims percentage or def when omitted.
func (r estimateRequest) prelims(def float64) float64 {
	if r.PrelimsPercent == nil {
		return def
	}
	return *r.PrelimsPercent
}

// bindEstimate decodes the request body and prices it.
func bindEstimate(e *core.RequestEvent, cfg config.Config) (estimateRequest, services.EstimateSummary, error) {
	var req estimateRequest
	if err := e.BindBody(&req); err != nil {
		return req, services.EstimateSummary{}, err
	}
	return req, services.CalculateEstimate(req.Items, req.prelims(cfg.DefaultPrelims)), nil
}

// HandleEstimate prices the posted line items and returns the summary.
func HandleEstimate(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		_, summary, err := bindEstimate(e, cfg)
		if err != nil {
			log.Printf("estimate: invalid body: %v", err)
			return errorResponse(e, http.StatusBadRequest, "Invalid estimate data")
		}
		if !summary.IsFinite() {
			log.Printf("estimate: totals out of range (grand total %v)", summary.GrandTotal)
			return errorResponse(e, http.StatusUnprocessableEntity, errTotalsOutOfRange)
		}
		return e.JSON(http.StatusOK, summary)
	}
}

// bindExport decodes an export request and builds the export projection.
// The ?type= query parameter takes precedence over document.type.
func bindExport(e *core.RequestEvent, cfg config.Config) (services.ExportData, int, string) {
	req, summary, err := bindEstimate(e, cfg)
	if err != nil {
		log.Printf("export: invalid body: %v", err)
		return services.ExportData{}, http.StatusBadRequest, "Invalid estimate data"
	}
	if !summary.IsFinite() {
		log.Printf("export: totals out of range (grand total %v)", summary.GrandTotal)
		return services.ExportData{}, http.StatusUnprocessableEntity, errTotalsOutOfRange
	}

	rawType := e.Request.URL.Query().Get("type")
	if rawType == "" {
		rawType = string(req.Document.Type)
	}
	docType, err := services.ParseDocumentType(rawType)
	if err != nil {
		return services.ExportData{}, http.StatusBadRequest, "Unknown document type"
	}

	info := req.Document
	info.Type = docType
	info = info.WithDefaults(time.Now())

	return services.BuildExportData(info, summary), 0, ""
}
