// Package tax builds the simplified GST-style statutory reports: output tax
// liability, input tax credit, and the HSN/SAC commodity summary.
package tax

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/books"
)

var two = decimal.NewFromInt(2)

// Summary is the GSTR-3B style liability/credit rollup for a period.
// NetPayable keeps its sign; a negative value is a credit carry-forward and
// must never be clamped in storage.
type Summary struct {
	TaxableValue decimal.Decimal
	CGST         decimal.Decimal
	SGST         decimal.Decimal
	IGST         decimal.Decimal
	ITCAvailable decimal.Decimal
	ITCCGST      decimal.Decimal
	ITCSGST      decimal.Decimal
	ITCIGST      decimal.Decimal
	NetPayable   decimal.Decimal
}

// AmountDue is the presentation value of NetPayable, floored at zero.
func (s Summary) AmountDue() decimal.Decimal {
	if s.NetPayable.IsNegative() {
		return decimal.Decimal{}
	}
	return s.NetPayable
}

// BuildSummary filters vouchers to [from, to] and accumulates tax buckets.
// Output vouchers feed the liability side, Input vouchers feed ITC; local
// supplies split tax evenly between CGST and SGST, interstate supplies go
// wholly to IGST. Unclassified vouchers contribute nothing.
func BuildSummary(vouchers []books.Voucher, from, to time.Time) Summary {
	s := Summary{}
	for _, v := range books.FilterByPeriod(vouchers, from, to) {
		switch v.GSTClass {
		case books.GSTOutput:
			s.TaxableValue = s.TaxableValue.Add(v.TaxableValue())
			tax := v.Tax()
			if v.Supply == books.SupplyLocal {
				half := tax.Div(two)
				s.CGST = s.CGST.Add(half)
				s.SGST = s.SGST.Add(half)
			} else {
				s.IGST = s.IGST.Add(tax)
			}
		case books.GSTInput:
			tax := v.Tax()
			s.ITCAvailable = s.ITCAvailable.Add(tax)
			if v.Supply == books.SupplyLocal {
				half := tax.Div(two)
				s.ITCCGST = s.ITCCGST.Add(half)
				s.ITCSGST = s.ITCSGST.Add(half)
			} else {
				s.ITCIGST = s.ITCIGST.Add(tax)
			}
		}
	}
	s.NetPayable = s.CGST.Add(s.SGST).Add(s.IGST).Sub(s.ITCAvailable)
	return s
}

// FilterByClass keeps vouchers carrying the given GST classification.
func FilterByClass(vouchers []books.Voucher, class books.GSTClass) []books.Voucher {
	result := make([]books.Voucher, 0, len(vouchers))
	for _, v := range vouchers {
		if v.GSTClass == class {
			result = append(result, v)
		}
	}
	return result
}
