package handlers

import (
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/router"

	"github.com/jonnyallum/construct.fm-estimate-generator/config"
	"github.com/jonnyallum/construct.fm-estimate-generator/services"
)

// RegisterRoutes binds the estimate routes to r.
func RegisterRoutes(r *router.Router[*core.RequestEvent], cat *services.Catalogue, cfg config.Config) {
	r.GET("/static/{path...}", apis.Static(os.DirFS(cfg.StaticDir), false))

	// ── Rate card ────────────────────────────────────────────
	r.GET("/api/rates", HandleRates(cat))
	r.GET("/api/rates/categories", HandleRateCategories(cat))
	r.GET("/api/rates/export", HandleRateCardExport(cat))

	// ── Estimate ─────────────────────────────────────────────
	r.POST("/api/estimate", HandleEstimate(cfg))
	r.POST("/api/estimate/export/excel", HandleExportExcel(cfg))
	r.POST("/api/estimate/export/pdf", HandleExportPDF(cfg))
	r.POST("/api/estimate/print", HandlePrint(cfg))
	r.POST("/api/estimate/import", HandleImportItems())
	r.GET("/api/estimate/import/template", HandleImportTemplate())

	r.GET("/healthz", func(e *core.RequestEvent) error {
		return e.String(http.StatusOK, "ok")
	})
	r.GET("/{$}", HandleRateCardPage(cat))
}
