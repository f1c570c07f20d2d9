// Package testhelpers provides utilities for testing the PocketBase-hosted
// estimate routes.
package testhelpers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/router"

	"github.com/jonnyallum/construct.fm-estimate-generator/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}
	t.Cleanup(func() {
		app.ResetBootstrapState()
	})

	return app
}

// NewTestServer builds the app router, lets register bind routes to it and
// returns the resulting handler.
func NewTestServer(t *testing.T, register func(r *router.Router[*core.RequestEvent])) http.Handler {
	t.Helper()

	app := NewTestApp(t)
	r, err := apis.NewRouter(app)
	if err != nil {
		t.Fatalf("failed to create router: %v", err)
	}
	register(r)

	mux, err := r.BuildMux()
	if err != nil {
		t.Fatalf("failed to build router: %v", err)
	}
	return mux
}

// Do sends req to h and returns the recorded response.
func Do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// SampleItems returns the two-line estimate used across tests: 2 m² of metal
// stud partition and one flush door, a main contract total of 1011.42.
func SampleItems() []services.LineItem {
	return []services.LineItem{
		{ID: "stud", Description: "Metal stud partition", Quantity: 2, Unit: "m²", Rate: 106.51},
		{ID: "door", Description: "Standard flush door", Quantity: 1, Unit: "each", Rate: 798.40},
	}
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected body to contain %q", frag)
		}
	}
}
