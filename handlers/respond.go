package handlers

import (
	"encoding/json"
	"log"

	"github.com/pocketbase/pocketbase/core"
)

// SetToast sets the HX-Trigger response header so an HTMX client shows a
// toast notification. An existing HX-Trigger JSON object is merged into.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	trigger := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &trigger); err != nil {
			log.Printf("toast: existing HX-Trigger is not valid JSON, overwriting: %v", err)
			trigger = map[string]any{}
		}
	}
	trigger["showToast"] = map[string]string{
		"message": message,
		"type":    toastType,
	}

	data, err := json.Marshal(trigger)
	if err != nil {
		log.Printf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))
}

// errorResponse writes a JSON error body. HTMX callers also get an error
// toast, and HX-Reswap: none keeps the body out of the page.
func errorResponse(e *core.RequestEvent, status int, message string) error {
	if e.Request != nil && e.Request.Header.Get("HX-Request") == "true" {
		SetToast(e, "error", message)
		e.Response.Header().Set("HX-Reswap", "none")
	}
	return e.JSON(status, map[string]string{"error": message})
}
