package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// ErrUnknownDocumentType is returned by ParseDocumentType for anything other
// than a quotation or an invoice.
var ErrUnknownDocumentType = errors.New("unknown document type")

// DocumentType selects the template and wording of an exported document.
type DocumentType string

const (
	DocumentQuotation DocumentType = "quotation"
	DocumentInvoice   DocumentType = "invoice"
)

// ParseDocumentType parses a document type name. An empty string means a quotation.
func ParseDocumentType(s string) (DocumentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "quotation", "quote", "estimate":
		return DocumentQuotation, nil
	case "invoice":
		return DocumentInvoice, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownDocumentType)
}

// Heading returns the title printed at the top of the Excel document.
func (t DocumentType) Heading() string {
	if t == DocumentInvoice {
		return "INVOICE"
	}
	return "QUOTATION"
}

// Business terms printed on estimates and invoices.
const (
	QuoteValidityDays      = 30
	PaymentTermsDays       = 14
	DefectsLiabilityMonths = 6
)

// Invoice defaults.
const (
	DefaultPaymentTerms = "14 days from invoice"
	DefaultBankDetails  = "Sort Code: XX-XX-XX | Account: XXXXXXXX"
)

// DocumentInfo holds the header details of an estimate or invoice.
type DocumentInfo struct {
	Type          DocumentType `json:"type" yaml:"type"`
	ClientName    string       `json:"clientName" yaml:"client_name"`
	ProjectTitle  string       `json:"projectTitle" yaml:"project_title"`
	Reference     string       `json:"reference" yaml:"reference"`
	Date          string       `json:"date" yaml:"date"` // YYYY-MM-DD
	InvoiceNumber string       `json:"invoiceNumber,omitempty" yaml:"invoice_number,omitempty"`
	PONumber      string       `json:"poNumber,omitempty" yaml:"po_number,omitempty"`
	DueDate       string       `json:"dueDate,omitempty" yaml:"due_date,omitempty"`
	PaymentTerms  string       `json:"paymentTerms,omitempty" yaml:"payment_terms,omitempty"`
	BankDetails   string       `json:"bankDetails,omitempty" yaml:"bank_details,omitempty"`
	Notes         string       `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// WithDefaults fills in the date, invoice number and payment details that
// were left blank.
func (d DocumentInfo) WithDefaults(now time.Time) DocumentInfo {
	if d.Type == "" {
		d.Type = DocumentQuotation
	}
	if d.Date == "" {
		d.Date = now.Format("2006-01-02")
	}
	if d.Type == DocumentInvoice {
		if d.InvoiceNumber == "" {
			d.InvoiceNumber = GenerateInvoiceNumber(now)
		}
		if d.PaymentTerms == "" {
			d.PaymentTerms = DefaultPaymentTerms
		}
		if d.BankDetails == "" {
			d.BankDetails = DefaultBankDetails
		}
	}
	return d
}

// ParsedDate returns Date as a time, or the zero time when it is not YYYY-MM-DD.
func (d DocumentInfo) ParsedDate() time.Time {
	t, err := time.Parse("2006-01-02", d.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// GenerateInvoiceNumber builds an invoice number from the last 6 digits of
// the Unix millisecond clock, e.g. INV-482913.
func GenerateInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%06d", now.UnixMilli()%1000000)
}

// ExportFilename builds the download name for an exported document:
// {QUO|INV}_{client}_{reference or yyyymmdd}{ext}. The client part has
// whitespace replaced by underscores and is cut to 20 characters.
func ExportFilename(info DocumentInfo, ext string) string {
	client := info.ClientName
	if client == "" {
		client = "client"
	}
	slug := ExportSlug(client)

	prefix := "QUO"
	ref := info.Reference
	if info.Type == DocumentInvoice {
		prefix = "INV"
		ref = info.InvoiceNumber
	}
	if ref == "" {
		ref = strings.ReplaceAll(info.Date, "-", "")
	}

	return fmt.Sprintf("%s_%s_%s%s", prefix, slug, sanitizeFilename(ref), ext)
}

// ExportSlug makes a filename part from free text: whitespace runs become
// underscores, unsafe characters are replaced and the result is cut to 20
// characters.
func ExportSlug(s string) string {
	slug := sanitizeFilename(collapseWhitespace(s))
	if r := []rune(slug); len(r) > 20 {
		slug = string(r[:20])
	}
	return slug
}

// collapseWhitespace replaces every run of whitespace with a single underscore.
func collapseWhitespace(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, "\"", "")
	return s
}

// Company is the trading identity printed on exported documents.
type Company struct {
	Name    string
	Address string
	Email   string
}

// DefaultCompany is used when no company details are configured.
var DefaultCompany = Company{
	Name:    "Construct FM",
	Address: "United Kingdom",
}

// Line returns the company details joined for a document footer.
func (c Company) Line() string {
	return joinNonEmpty([]string{c.Name, c.Address, c.Email}, " · ")
}

// FooterLines returns the terms printed at the bottom of a document.
func FooterLines(docType DocumentType) []string {
	if docType == DocumentInvoice {
		return []string{
			"Please make payment by the due date shown above.",
			"Late payments may incur interest at 8% above the Bank of England base rate per the Late Payment of Commercial Debts Act 1998.",
		}
	}
	return []string{
		fmt.Sprintf("This estimate is valid for %d days from the date above.", QuoteValidityDays),
		fmt.Sprintf("Payment terms: %d days from invoice. Defects liability: %d months.", PaymentTermsDays, DefectsLiabilityMonths),
		"All prices exclusive of VAT unless stated. Subject to site survey and final specification.",
	}
}
