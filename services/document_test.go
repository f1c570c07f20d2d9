package services

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseDocumentType(t *testing.T) {
	tests := []struct {
		input   string
		want    DocumentType
		wantErr bool
	}{
		{"", DocumentQuotation, false},
		{"quotation", DocumentQuotation, false},
		{"Estimate", DocumentQuotation, false},
		{" INVOICE ", DocumentInvoice, false},
		{"receipt", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDocumentType(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownDocumentType) {
				t.Errorf("ParseDocumentType(%q) error = %v, want ErrUnknownDocumentType", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseDocumentType(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
		}
	}
}

func TestGenerateInvoiceNumber(t *testing.T) {
	now := time.UnixMilli(1739800123456)
	if got := GenerateInvoiceNumber(now); got != "INV-123456" {
		t.Errorf("GenerateInvoiceNumber() = %q, want INV-123456", got)
	}

	padded := time.UnixMilli(1739800000042)
	if got := GenerateInvoiceNumber(padded); got != "INV-000042" {
		t.Errorf("GenerateInvoiceNumber() = %q, want INV-000042", got)
	}
}

func TestDocumentInfo_WithDefaults(t *testing.T) {
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

	quote := DocumentInfo{}.WithDefaults(now)
	if quote.Type != DocumentQuotation || quote.Date != "2025-03-04" {
		t.Errorf("quotation defaults = %+v", quote)
	}
	if quote.InvoiceNumber != "" || quote.PaymentTerms != "" {
		t.Errorf("quotation got invoice defaults: %+v", quote)
	}

	inv := DocumentInfo{Type: DocumentInvoice, Date: "2025-01-31"}.WithDefaults(now)
	if !strings.HasPrefix(inv.InvoiceNumber, "INV-") {
		t.Errorf("InvoiceNumber = %q", inv.InvoiceNumber)
	}
	if inv.Date != "2025-01-31" {
		t.Errorf("Date overwritten: %q", inv.Date)
	}
	if inv.PaymentTerms != DefaultPaymentTerms || inv.BankDetails != DefaultBankDetails {
		t.Errorf("invoice defaults = %+v", inv)
	}

	kept := DocumentInfo{Type: DocumentInvoice, InvoiceNumber: "INV-1", PaymentTerms: "30 days"}.WithDefaults(now)
	if kept.InvoiceNumber != "INV-1" || kept.PaymentTerms != "30 days" {
		t.Errorf("explicit values overwritten: %+v", kept)
	}
}

func TestDocumentInfo_ParsedDate(t *testing.T) {
	d := DocumentInfo{Date: "2025-02-17"}
	if got := d.ParsedDate(); got.Year() != 2025 || got.Month() != time.February || got.Day() != 17 {
		t.Errorf("ParsedDate() = %v", got)
	}
	if got := (DocumentInfo{Date: "17/02/2025"}).ParsedDate(); !got.IsZero() {
		t.Errorf("ParsedDate() of bad date = %v, want zero", got)
	}
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		name string
		info DocumentInfo
		ext  string
		want string
	}{
		{
			name: "quotation with reference",
			info: DocumentInfo{Type: DocumentQuotation, ClientName: "Landau Marine", Reference: "CQ-010200", Date: "2025-03-04"},
			ext:  ".xlsx",
			want: "QUO_Landau_Marine_CQ-010200.xlsx",
		},
		{
			name: "quotation falls back to date",
			info: DocumentInfo{Type: DocumentQuotation, ClientName: "Longleat", Date: "2025-03-04"},
			ext:  ".pdf",
			want: "QUO_Longleat_20250304.pdf",
		},
		{
			name: "invoice uses invoice number",
			info: DocumentInfo{Type: DocumentInvoice, ClientName: "Landau  Marine", Reference: "CQ-1", InvoiceNumber: "INV-123456", Date: "2025-03-04"},
			ext:  ".xlsm",
			want: "INV_Landau_Marine_INV-123456.xlsm",
		},
		{
			name: "empty client",
			info: DocumentInfo{Type: DocumentQuotation, Date: "2025-03-04"},
			ext:  ".xlsx",
			want: "QUO_client_20250304.xlsx",
		},
		{
			name: "long client truncated to 20",
			info: DocumentInfo{Type: DocumentQuotation, ClientName: "Very Long Client Name Limited", Reference: "R1"},
			ext:  ".xlsx",
			want: "QUO_Very_Long_Client_Nam_R1.xlsx",
		},
		{
			name: "unsafe characters",
			info: DocumentInfo{Type: DocumentQuotation, ClientName: "A/B", Reference: "REF:1"},
			ext:  ".pdf",
			want: "QUO_A-B_REF-1.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExportFilename(tt.info, tt.ext); got != tt.want {
				t.Errorf("ExportFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompany_Line(t *testing.T) {
	tests := []struct {
		name    string
		company Company
		want    string
	}{
		{"all fields", Company{Name: "Construct FM", Address: "United Kingdom", Email: "info@example.com"}, "Construct FM · United Kingdom · info@example.com"},
		{"no email", Company{Name: "Construct FM", Address: "United Kingdom"}, "Construct FM · United Kingdom"},
		{"name only", Company{Name: "Construct FM"}, "Construct FM"},
		{"empty", Company{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.company.Line(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFooterLines(t *testing.T) {
	tests := []struct {
		docType  DocumentType
		contains []string
		excludes string
	}{
		{DocumentQuotation, []string{"valid for 30 days", "Defects liability", "exclusive of VAT"}, "Late Payment"},
		{DocumentInvoice, []string{"due date shown above", "Late Payment of Commercial Debts Act 1998"}, "valid for"},
	}
	for _, tt := range tests {
		t.Run(string(tt.docType), func(t *testing.T) {
			text := strings.Join(FooterLines(tt.docType), "\n")
			for _, want := range tt.contains {
				if !strings.Contains(text, want) {
					t.Errorf("footer missing %q:\n%s", want, text)
				}
			}
			if strings.Contains(text, tt.excludes) {
				t.Errorf("footer should not contain %q:\n%s", tt.excludes, text)
			}
		})
	}
}
