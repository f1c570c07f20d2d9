// Package templates renders the HTML views of estimates and the rate card.
package templates

import (
	"net/url"

	"github.com/a-h/templ"

	"github.com/jonnyallum/construct.fm-estimate-generator/services"
)

// documentKind returns the heading shown on the print view.
func documentKind(info services.DocumentInfo) string {
	if info.Type == services.DocumentInvoice {
		return "INVOICE"
	}
	return "ESTIMATE"
}

// documentNumber returns the invoice number for invoices and the reference
// otherwise.
func documentNumber(info services.DocumentInfo) string {
	if info.Type == services.DocumentInvoice {
		return info.InvoiceNumber
	}
	return info.Reference
}

func orTBC(s string) string {
	if s == "" {
		return "TBC"
	}
	return s
}

func categoryURL(category string) templ.SafeURL {
	return templ.SafeURL("/?category=" + url.QueryEscape(category))
}

func rateCardExportURL(category string) templ.SafeURL {
	return templ.SafeURL("/api/rates/export?category=" + url.QueryEscape(category))
}
