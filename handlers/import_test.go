package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonnyallum/construct.fm-estimate-generator/services"
)

func uploadRequest(t *testing.T, fileName, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte(content))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/estimate/import", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandleImportItems(t *testing.T) {
	rec := httptest.NewRecorder()
	req := uploadRequest(t, "items.csv", "Description,Qty,Unit,Rate\nSkim coat walls,10,m²,13.26\nBad,x,m²,1\n")

	if err := HandleImportItems()(newTestRequestEvent(req, rec)); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got services.ImportResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.ValidRows != 1 || got.ErrorRows != 1 || len(got.Items) != 1 {
		t.Errorf("result = %+v", got)
	}
	if got.Items[0].Rate != 13.26 || got.Items[0].Quantity != 10 {
		t.Errorf("item = %+v", got.Items[0])
	}
}

func TestHandleImportItems_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  *http.Request
	}{
		{"unsupported file", uploadRequest(t, "items.pdf", "x")},
		{"no file", httptest.NewRequest(http.MethodPost, "/api/estimate/import", nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			if err := HandleImportItems()(newTestRequestEvent(tt.req, rec)); err != nil {
				t.Fatal(err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandleImportTemplate(t *testing.T) {
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(httptest.NewRequest(http.MethodGet, "/api/estimate/import/template", nil), rec)

	if err := HandleImportTemplate()(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != excelContentTypes[".xlsx"] {
		t.Errorf("Content-Type = %q", ct)
	}

	result, err := services.ImportLineItems(bytes.NewReader(rec.Body.Bytes()), "template.xlsx")
	if err != nil {
		t.Fatalf("template does not import: %v", err)
	}
	if result.ValidRows != 1 {
		t.Errorf("ValidRows = %d, want 1", result.ValidRows)
	}
}
