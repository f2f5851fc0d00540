package reports

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/books"
)

// ProfitAndLoss aggregates by voucher type alone, not by ledger
// classification. Sales and Receipt vouchers count as income, Purchase and
// Payment as expenses; other types are ignored.
type ProfitAndLoss struct {
	Income    decimal.Decimal
	Expenses  decimal.Decimal
	NetProfit decimal.Decimal
}

// BuildProfitAndLoss sums voucher amounts into income and expense buckets.
func BuildProfitAndLoss(vouchers []books.Voucher) ProfitAndLoss {
	result := ProfitAndLoss{}
	for _, v := range vouchers {
		switch v.Type {
		case books.VoucherSales, books.VoucherReceipt:
			result.Income = result.Income.Add(v.Amount)
		case books.VoucherPurchase, books.VoucherPayment:
			result.Expenses = result.Expenses.Add(v.Amount)
		}
	}
	result.NetProfit = result.Income.Sub(result.Expenses)
	return result
}
