package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"github.com/jonnyallum/construct.fm-estimate-generator/config"
	"github.com/jonnyallum/construct.fm-estimate-generator/services"
	"github.com/jonnyallum/construct.fm-estimate-generator/testhelpers"
)

func TestHandleEstimate(t *testing.T) {
	tests := []struct {
		name        string
		body        map[string]any
		wantMain    float64
		wantPrelims float64
		wantGrand   float64
	}{
		{
			name:        "default prelims",
			body:        map[string]any{"items": testhelpers.SampleItems()},
			wantMain:    1011.42,
			wantPrelims: 80.9136,
			wantGrand:   1310.80032,
		},
		{
			name:        "explicit zero prelims",
			body:        map[string]any{"items": testhelpers.SampleItems(), "prelimsPercent": 0},
			wantMain:    1011.42,
			wantPrelims: 0,
			wantGrand:   1213.704,
		},
		{
			name:      "no items",
			body:      map[string]any{"items": []services.LineItem{}},
			wantMain:  0,
			wantGrand: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(jsonRequest(t, "/api/estimate", tt.body), rec)

			if err := HandleEstimate(testConfig(t))(e); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}

			var got services.EstimateSummary
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if math.Abs(got.MainContractTotal-tt.wantMain) > 1e-6 {
				t.Errorf("MainContractTotal = %v, want %v", got.MainContractTotal, tt.wantMain)
			}
			if math.Abs(got.PrelimsValue-tt.wantPrelims) > 1e-6 {
				t.Errorf("PrelimsValue = %v, want %v", got.PrelimsValue, tt.wantPrelims)
			}
			if math.Abs(got.GrandTotal-tt.wantGrand) > 1e-6 {
				t.Errorf("GrandTotal = %v, want %v", got.GrandTotal, tt.wantGrand)
			}
			if len(got.Items) != len(tt.body["items"].([]services.LineItem)) {
				t.Errorf("got %d items back", len(got.Items))
			}
		})
	}
}

func TestHandleEstimate_ItemTotals(t *testing.T) {
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(jsonRequest(t, "/api/estimate", map[string]any{"items": testhelpers.SampleItems()}), rec)

	if err := HandleEstimate(testConfig(t))(e); err != nil {
		t.Fatal(err)
	}
	body := rec.Body.String()
	for _, key := range []string{`"mainContractTotal"`, `"prelimsValue"`, `"subtotalExVat"`, `"vat"`, `"grandTotal"`} {
		if !strings.Contains(body, key) {
			t.Errorf("response missing %s: %s", key, body)
		}
	}

	var got services.EstimateSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Items[0].ID != "stud" || math.Abs(got.Items[0].Total-213.02) > 1e-6 {
		t.Errorf("first item = %+v", got.Items[0])
	}
}

func TestHandleEstimate_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/estimate", strings.NewReader(`{"items": [`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	if err := HandleEstimate(testConfig(t))(newTestRequestEvent(req, rec)); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Error("HTMX error should set HX-Reswap: none")
	}
	if !strings.Contains(rec.Header().Get("HX-Trigger"), "showToast") {
		t.Errorf("HX-Trigger = %q", rec.Header().Get("HX-Trigger"))
	}
}

func TestHandleEstimate_TotalsOverflow(t *testing.T) {
	body := map[string]any{
		"items": []services.LineItem{{Description: "Huge", Quantity: 1e308, Unit: "item", Rate: 10}},
	}

	tests := []struct {
		name    string
		target  string
		handler func(config.Config) func(*core.RequestEvent) error
	}{
		{"estimate", "/api/estimate", HandleEstimate},
		{"pdf export", "/api/estimate/export/pdf", HandleExportPDF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(jsonRequest(t, tt.target, body), rec)

			if err := tt.handler(testConfig(t))(e); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422", rec.Code)
			}
			var got map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatal(err)
			}
			if got["error"] != errTotalsOutOfRange {
				t.Errorf("error = %q", got["error"])
			}
		})
	}
}
