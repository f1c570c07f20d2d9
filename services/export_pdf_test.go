package services

import (
	"testing"
)

func assertPDF(t *testing.T, result []byte) {
	t.Helper()
	if len(result) == 0 {
		t.Fatal("GenerateEstimatePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateEstimatePDF_Quotation(t *testing.T) {
	result, err := GenerateEstimatePDF(sampleExportData(DocumentQuotation), DefaultCompany)
	if err != nil {
		t.Fatalf("GenerateEstimatePDF() error = %v", err)
	}
	assertPDF(t, result)
}

func TestGenerateEstimatePDF_Invoice(t *testing.T) {
	data := sampleExportData(DocumentInvoice)
	data.Info.PaymentTerms = DefaultPaymentTerms
	data.Info.BankDetails = DefaultBankDetails
	data.Info.DueDate = "2025-03-18"
	data.Info.Notes = "Thank you for your business"

	result, err := GenerateEstimatePDF(data, Company{Name: "Test Co", Address: "1 High St", Email: "hi@example.com"})
	if err != nil {
		t.Fatalf("GenerateEstimatePDF() error = %v", err)
	}
	assertPDF(t, result)
}

func TestGenerateEstimatePDF_EmptyEstimate(t *testing.T) {
	data := BuildExportData(DocumentInfo{}, CalculateEstimate(nil, DefaultPrelimsPercent))

	result, err := GenerateEstimatePDF(data, DefaultCompany)
	if err != nil {
		t.Fatalf("GenerateEstimatePDF() error = %v", err)
	}
	assertPDF(t, result)
}

func TestGenerateEstimatePDF_ManyItems(t *testing.T) {
	items := make([]LineItem, 80)
	for i := range items {
		items[i] = LineItem{Description: "Skim coat walls", Quantity: float64(i) + 0.5, Unit: "m²", Rate: 13.26}
	}
	data := BuildExportData(DocumentInfo{ClientName: "Longleat"}, CalculateEstimate(items, 12))

	result, err := GenerateEstimatePDF(data, DefaultCompany)
	if err != nil {
		t.Fatalf("GenerateEstimatePDF() error = %v", err)
	}
	assertPDF(t, result)
}

func TestJoinNonEmpty(t *testing.T) {
	if got := joinNonEmpty([]string{"a", "", "b"}, " | "); got != "a | b" {
		t.Errorf("joinNonEmpty() = %q", got)
	}
	if got := joinNonEmpty([]string{"", ""}, ","); got != "" {
		t.Errorf("joinNonEmpty() = %q", got)
	}
}
