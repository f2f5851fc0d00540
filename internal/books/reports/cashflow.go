package reports

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/books"
)

// LiquidityState is the binary cash position of a period.
type LiquidityState string

const (
	LiquiditySurplus LiquidityState = "surplus"
	LiquidityDeficit LiquidityState = "deficit"
)

// CashFlow summarises money movement from Receipt and Payment vouchers.
type CashFlow struct {
	Inflows  decimal.Decimal
	Outflows decimal.Decimal
	Net      decimal.Decimal
	State    LiquidityState
}

// BuildCashFlow sums receipts against payments. A net of exactly zero
// reports as surplus.
func BuildCashFlow(vouchers []books.Voucher) CashFlow {
	result := CashFlow{}
	for _, v := range vouchers {
		switch v.Type {
		case books.VoucherReceipt:
			result.Inflows = result.Inflows.Add(v.Amount)
		case books.VoucherPayment:
			result.Outflows = result.Outflows.Add(v.Amount)
		}
	}
	result.Net = result.Inflows.Sub(result.Outflows)
	if result.Net.IsNegative() {
		result.State = LiquidityDeficit
	} else {
		result.State = LiquiditySurplus
	}
	return result
}
