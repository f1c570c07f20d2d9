package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"github.com/jonnyallum/construct.fm-estimate-generator/config"
	"github.com/jonnyallum/construct.fm-estimate-generator/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

// testConfig returns a configuration whose templates directory is empty, so
// Excel exports use the blank template.
func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		TemplatesDir:   t.TempDir(),
		StaticDir:      t.TempDir(),
		DefaultPrelims: services.DefaultPrelimsPercent,
		Company:        services.DefaultCompany,
	}
}

// jsonRequest builds a POST request with body encoded as JSON.
func jsonRequest(t *testing.T, target string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}
