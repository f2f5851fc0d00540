package tax

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/books"
)

// NoHSNCode buckets line items that carry no HSN/SAC code.
const NoHSNCode = "N/A"

// HSNRow accumulates line items sharing one HSN/SAC code.
type HSNRow struct {
	Code    string
	Qty     decimal.Decimal
	Taxable decimal.Decimal
	Tax     decimal.Decimal
}

// BuildHSNSummary groups voucher line items by HSN/SAC code. Rows appear in
// order of first occurrence.
func BuildHSNSummary(vouchers []books.Voucher) []HSNRow {
	index := make(map[string]int)
	rows := make([]HSNRow, 0)
	for _, v := range vouchers {
		for _, line := range v.Lines {
			code := line.HSNCode
			if code == "" {
				code = NoHSNCode
			}
			i, ok := index[code]
			if !ok {
				i = len(rows)
				index[code] = i
				rows = append(rows, HSNRow{Code: code})
			}
			rows[i].Qty = rows[i].Qty.Add(line.Qty)
			rows[i].Taxable = rows[i].Taxable.Add(line.Amount)
			rows[i].Tax = rows[i].Tax.Add(line.TaxAmount)
		}
	}
	return rows
}
