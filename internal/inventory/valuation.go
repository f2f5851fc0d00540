// Package inventory derives stock quantities and their valuation from
// voucher line movements.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/books"
)

// ValuationRow is the closing position of one item. CurrentQty may be
// negative; negative stock signals an upstream data problem and is reported
// as-is rather than masked.
type ValuationRow struct {
	ItemID     string
	ItemName   string
	Unit       string
	QtyIn      decimal.Decimal
	QtyOut     decimal.Decimal
	CurrentQty decimal.Decimal
	SalePrice  decimal.Decimal
	Value      decimal.Decimal
}

// Valuation is the full stock report with the summed total.
type Valuation struct {
	Rows       []ValuationRow
	TotalValue decimal.Decimal
}

// BuildValuation scans every voucher line: Purchase lines count as inflow,
// Sales lines as outflow. Closing stock is valued at the item's sale price.
func BuildValuation(items []books.Item, vouchers []books.Voucher) Valuation {
	result := Valuation{Rows: make([]ValuationRow, 0, len(items))}
	for _, item := range items {
		row := ValuationRow{ItemID: item.ID, ItemName: item.Name, Unit: item.Unit, SalePrice: item.SalePrice}
		for _, v := range vouchers {
			for _, line := range v.Lines {
				if line.ItemID != item.ID {
					continue
				}
				switch v.Type {
				case books.VoucherPurchase:
					row.QtyIn = row.QtyIn.Add(line.Qty)
				case books.VoucherSales:
					row.QtyOut = row.QtyOut.Add(line.Qty)
				}
			}
		}
		row.CurrentQty = row.QtyIn.Sub(row.QtyOut)
		row.Value = row.CurrentQty.Mul(item.SalePrice)
		result.Rows = append(result.Rows, row)
		result.TotalValue = result.TotalValue.Add(row.Value)
	}
	return result
}
