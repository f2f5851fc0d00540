package books

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComputeBalance derives the running balance of a ledger from its opening
// balance plus every voucher posted against it. Debit accounts grow with
// voucher amounts, credit accounts shrink. Order of vouchers is irrelevant.
// Amounts are taken as recorded; a negative amount still sums arithmetically.
func ComputeBalance(ledger Ledger, vouchers []Voucher) decimal.Decimal {
	balance := ledger.OpeningBalance
	for _, v := range vouchers {
		if v.LedgerID != ledger.ID {
			continue
		}
		if ledger.Side == SideDebit {
			balance = balance.Add(v.Amount)
		} else {
			balance = balance.Sub(v.Amount)
		}
	}
	return balance
}

// FilterByPeriod keeps vouchers dated inside [from, to] inclusive. Only the
// calendar date is compared; time of day is ignored.
func FilterByPeriod(vouchers []Voucher, from, to time.Time) []Voucher {
	result := make([]Voucher, 0, len(vouchers))
	for _, v := range vouchers {
		if dateBefore(v.Date, from) || dateBefore(to, v.Date) {
			continue
		}
		result = append(result, v)
	}
	return result
}

func dateBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
