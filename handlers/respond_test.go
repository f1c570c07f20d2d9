package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSetToast(t *testing.T) {
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	SetToast(e, "error", "Too many line items")

	var parsed map[string]map[string]string
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	if parsed["showToast"]["message"] != "Too many line items" || parsed["showToast"]["type"] != "error" {
		t.Errorf("showToast = %v", parsed["showToast"])
	}
}

func TestSetToast_MergesExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	rec.Header().Set("HX-Trigger", `{"estimateUpdated":true}`)

	SetToast(e, "success", "Saved")

	var parsed map[string]any
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatal(err)
	}
	if parsed["estimateUpdated"] != true {
		t.Error("existing trigger lost")
	}
	if _, ok := parsed["showToast"]; !ok {
		t.Error("showToast missing")
	}
}

func TestSetToast_InvalidExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	rec.Header().Set("HX-Trigger", "refresh")

	SetToast(e, "info", "Hello")

	var parsed map[string]any
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatalf("HX-Trigger not rewritten as JSON: %v", err)
	}
}

func TestErrorResponse_PlainClient(t *testing.T) {
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	if err := errorResponse(e, http.StatusUnprocessableEntity, "nope"); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", rec.Code)
	}
	if rec.Header().Get("HX-Trigger") != "" {
		t.Error("non-HTMX request got HX-Trigger")
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["error"] != "nope" {
		t.Errorf("body = %s", rec.Body.String())
	}
}
