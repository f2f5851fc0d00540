package inventory

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/books"
	_ "github.com/ledgerdesk/ledgerdesk/testing"
)

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestBuildValuationScenario(t *testing.T) {
	items := []books.Item{{ID: "i1", Name: "Widget", Unit: "pcs", SalePrice: amount(50)}}
	vouchers := []books.Voucher{
		{Type: books.VoucherPurchase, Lines: []books.LineItem{{ItemID: "i1", Qty: amount(10)}}},
		{Type: books.VoucherSales, Lines: []books.LineItem{{ItemID: "i1", Qty: amount(4)}}},
		{Type: books.VoucherReceipt, Lines: []books.LineItem{{ItemID: "i1", Qty: amount(99)}}},
	}

	val := BuildValuation(items, vouchers)
	if len(val.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(val.Rows))
	}
	row := val.Rows[0]
	if !row.QtyIn.Equal(amount(10)) || !row.QtyOut.Equal(amount(4)) {
		t.Fatalf("unexpected movements: in %s, out %s", row.QtyIn, row.QtyOut)
	}
	if !row.CurrentQty.Equal(amount(6)) {
		t.Fatalf("expected current qty 6, got %s", row.CurrentQty)
	}
	if !row.Value.Equal(amount(300)) {
		t.Fatalf("expected value 300, got %s", row.Value)
	}
	if !val.TotalValue.Equal(amount(300)) {
		t.Fatalf("expected total 300, got %s", val.TotalValue)
	}
}

func TestBuildValuationNegativeStockReported(t *testing.T) {
	items := []books.Item{{ID: "i1", Name: "Widget", SalePrice: amount(10)}}
	vouchers := []books.Voucher{
		{Type: books.VoucherSales, Lines: []books.LineItem{{ItemID: "i1", Qty: amount(7)}}},
	}

	val := BuildValuation(items, vouchers)
	row := val.Rows[0]
	if !row.CurrentQty.Equal(amount(-7)) {
		t.Fatalf("negative stock must not be clamped, got %s", row.CurrentQty)
	}
	if !row.Value.Equal(amount(-70)) {
		t.Fatalf("expected value -70, got %s", row.Value)
	}
}

func TestBuildValuationMultipleItems(t *testing.T) {
	items := []books.Item{
		{ID: "i1", Name: "Widget", SalePrice: amount(50)},
		{ID: "i2", Name: "Gadget", SalePrice: amount(20)},
	}
	vouchers := []books.Voucher{
		{Type: books.VoucherPurchase, Lines: []books.LineItem{
			{ItemID: "i1", Qty: amount(2)},
			{ItemID: "i2", Qty: amount(3)},
		}},
	}

	val := BuildValuation(items, vouchers)
	if len(val.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(val.Rows))
	}
	if !val.TotalValue.Equal(amount(160)) {
		t.Fatalf("expected total 160, got %s", val.TotalValue)
	}
}
