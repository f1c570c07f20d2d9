package templates

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/jonnyallum/construct.fm-estimate-generator/services"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func assertContains(t *testing.T, body string, fragments ...string) {
	t.Helper()
	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("body missing %q", frag)
		}
	}
}

func sampleData(docType services.DocumentType) services.ExportData {
	summary := services.CalculateEstimate([]services.LineItem{
		{Description: "Metal stud partition", Quantity: 2, Unit: "m²", Rate: 106.51},
		{Description: "Standard flush door", Quantity: 1, Unit: "each", Rate: 798.40},
	}, 8)
	return services.BuildExportData(services.DocumentInfo{
		Type:          docType,
		ClientName:    "Landau <Marine>",
		ProjectTitle:  "Office refurbishment",
		Reference:     "CQ-010200",
		Date:          "2025-03-04",
		InvoiceNumber: "INV-123456",
		PaymentTerms:  services.DefaultPaymentTerms,
		BankDetails:   services.DefaultBankDetails,
	}, summary)
}

func TestPrintView_Quotation(t *testing.T) {
	body := render(t, PrintView(sampleData(services.DocumentQuotation), services.DefaultCompany))

	assertContains(t, body,
		"ESTIMATE",
		"CQ-010200",
		"Landau &lt;Marine&gt;",
		"Metal stud partition",
		"£213.02",
		"£1,011.42",
		"£80.91",
		"£1,092.33",
		"£218.47",
		"£1,310.80",
		"Preliminaries (8%)",
		"VAT (20%)",
		"valid for 30 days",
		"All prices exclusive of VAT unless stated.",
		"Payment terms: 14 days from invoice.",
		"Construct FM · United Kingdom",
	)
	if strings.Contains(body, "Landau <Marine>") {
		t.Error("client name not escaped")
	}
	if strings.Contains(body, "Payment</h3>") {
		t.Error("quotation shows payment block")
	}
}

func TestPrintView_Invoice(t *testing.T) {
	body := render(t, PrintView(sampleData(services.DocumentInvoice), services.DefaultCompany))

	assertContains(t, body, "INVOICE", "INV-123456", services.DefaultPaymentTerms, services.DefaultBankDetails,
		"Ref: CQ-010200", "Late Payment of Commercial Debts Act 1998")
	if strings.Contains(body, "valid for 30 days") {
		t.Error("invoice shows estimate validity terms")
	}
}

func TestPrintView_InvoiceNotesAndPlaceholders(t *testing.T) {
	data := sampleData(services.DocumentInvoice)
	data.Info.ClientName = ""
	data.Info.Notes = "Stage 2 payment"

	body := render(t, PrintView(data, services.DefaultCompany))
	assertContains(t, body,
		`<span class="label">Client</span><strong>TBC</strong>`,
		`<span class="label">Due date</span><strong>TBC</strong>`,
		`<span class="label">Notes</span>Stage 2 payment`,
	)

	data.Info.Notes = ""
	data.Info.DueDate = "2025-03-18"
	body = render(t, PrintView(data, services.DefaultCompany))
	assertContains(t, body, `<strong>2025-03-18</strong>`)
	if strings.Contains(body, "Notes</span>") {
		t.Error("empty notes rendered")
	}
}

func TestPrintView_NoPrelims(t *testing.T) {
	data := services.BuildExportData(services.DocumentInfo{}, services.CalculateEstimate(nil, 0))
	body := render(t, PrintView(data, services.DefaultCompany))

	if strings.Contains(body, "<strong>Preliminaries") {
		t.Error("prelims heading rendered without prelims rows")
	}
	assertContains(t, body, "£0.00")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrintView_WriteError(t *testing.T) {
	err := PrintView(sampleData(services.DocumentQuotation), services.DefaultCompany).Render(context.Background(), failWriter{})
	if err == nil {
		t.Error("Render() should return the write error")
	}
}

func TestRateCardPage(t *testing.T) {
	cat := services.DefaultCatalogue()
	entries := cat.Filter("Plastering", "")
	body := render(t, RateCardPage(cat.Categories(), "Plastering", "", entries))

	assertContains(t, body,
		"<strong>Plastering</strong>",
		"/?category=Doors+%26+Glazing",
		`name="category" value="Plastering"`,
		"/api/rates/export?category=Plastering",
	)
	for _, e := range entries {
		assertContains(t, body, e.Key)
	}

	empty := render(t, RateCardPage(cat.Categories(), "Plastering", "zzz", nil))
	assertContains(t, empty, "No rates match", `name="search" value="zzz"`)
}

func TestRateCardPage_EscapesSearch(t *testing.T) {
	body := render(t, RateCardPage([]string{"Plastering"}, "Plastering", `"><script>`, nil))
	if strings.Contains(body, "<script>") {
		t.Error("search value not escaped")
	}
	assertContains(t, body, `value="&#34;&gt;&lt;script&gt;"`)
}
