package reports

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/books"
)

// TrialBalanceRow is one ledger line with its balance split into columns.
type TrialBalanceRow struct {
	LedgerID   string
	LedgerName string
	Group      string
	Debit      decimal.Decimal
	Credit     decimal.Decimal
}

// TrialBalance is the full report. Balanced uses exact equality; an
// out-of-balance book is a reported state, never an error.
type TrialBalance struct {
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balanced    bool
	Variance    decimal.Decimal
}

// BuildTrialBalance computes every ledger balance and splits it into debit
// and credit columns by the ledger's normal side.
func BuildTrialBalance(ledgers []books.Ledger, vouchers []books.Voucher) TrialBalance {
	result := TrialBalance{Rows: make([]TrialBalanceRow, 0, len(ledgers))}
	for _, l := range ledgers {
		balance := books.ComputeBalance(l, vouchers)
		row := TrialBalanceRow{LedgerID: l.ID, LedgerName: l.Name, Group: l.Group}
		if l.Side == books.SideDebit {
			row.Debit = balance
		} else {
			row.Credit = balance
		}
		result.Rows = append(result.Rows, row)
		result.TotalDebit = result.TotalDebit.Add(row.Debit)
		result.TotalCredit = result.TotalCredit.Add(row.Credit)
	}
	result.Balanced = result.TotalDebit.Equal(result.TotalCredit)
	result.Variance = result.TotalDebit.Sub(result.TotalCredit).Abs()
	return result
}
