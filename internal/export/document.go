// Package export serializes already-computed reports. Nothing here triggers
// a recomputation.
package export

import (
	"encoding/json"
	"io"

	"github.com/ledgerdesk/ledgerdesk/internal/books"
	"github.com/ledgerdesk/ledgerdesk/internal/books/reports"
	"github.com/ledgerdesk/ledgerdesk/internal/tax"
)

// Document is the structured export form: labels, the report tag, the
// computed summary, the HSN rows, and the filtered voucher listing.
type Document struct {
	CompanyName string          `json:"companyName"`
	Period      string          `json:"period"`
	ReportType  reports.Kind    `json:"reportType"`
	Summary     reports.Result  `json:"summary"`
	HSNSummary  []tax.HSNRow    `json:"hsnSummary,omitempty"`
	Vouchers    []books.Voucher `json:"vouchers,omitempty"`
}

// NewDocument lifts the HSN rows and voucher listing out of the result so
// the document carries each section exactly once.
func NewDocument(companyName, period string, result reports.Result) Document {
	doc := Document{
		CompanyName: companyName,
		Period:      period,
		ReportType:  result.Kind,
		HSNSummary:  result.HSN,
		Vouchers:    result.Vouchers,
	}
	result.HSN = nil
	result.Vouchers = nil
	doc.Summary = result
	return doc
}

// WriteJSON streams the document as indented JSON.
func (d Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
