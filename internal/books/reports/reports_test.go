package reports

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/books"
	_ "github.com/ledgerdesk/ledgerdesk/testing"
)

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestBuildTrialBalanceTotals(t *testing.T) {
	ledgers := []books.Ledger{
		{ID: "1", Name: "Cash", Side: books.SideDebit, OpeningBalance: amount(700), Group: "Cash-in-hand"},
		{ID: "2", Name: "Capital", Side: books.SideCredit, OpeningBalance: amount(700), Group: "Equity"},
	}

	tb := BuildTrialBalance(ledgers, nil)
	if len(tb.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tb.Rows))
	}
	if !tb.TotalDebit.Equal(amount(700)) || !tb.TotalCredit.Equal(amount(700)) {
		t.Fatalf("unexpected totals: %s / %s", tb.TotalDebit, tb.TotalCredit)
	}
	if !tb.Balanced {
		t.Fatalf("expected balanced report")
	}
	if !tb.Variance.IsZero() {
		t.Fatalf("expected zero variance, got %s", tb.Variance)
	}

	// Totals must always equal the column sums.
	var dr, cr decimal.Decimal
	for _, row := range tb.Rows {
		dr = dr.Add(row.Debit)
		cr = cr.Add(row.Credit)
	}
	if !dr.Equal(tb.TotalDebit) || !cr.Equal(tb.TotalCredit) {
		t.Fatalf("column sums diverge from totals")
	}
}

func TestBuildTrialBalanceImbalanceReported(t *testing.T) {
	ledgers := []books.Ledger{
		{ID: "1", Name: "Cash", Side: books.SideDebit, OpeningBalance: amount(700)},
		{ID: "2", Name: "Loan", Side: books.SideCredit, OpeningBalance: amount(500)},
	}

	tb := BuildTrialBalance(ledgers, nil)
	if tb.Balanced {
		t.Fatalf("expected imbalance to be flagged")
	}
	if !tb.Variance.Equal(amount(200)) {
		t.Fatalf("expected variance 200, got %s", tb.Variance)
	}
}

func TestBuildBalanceSheetScenario(t *testing.T) {
	ledgers := []books.Ledger{
		{ID: "1", Name: "Cash", Side: books.SideDebit, OpeningBalance: amount(1000), Group: "Cash-in-hand"},
		{ID: "2", Name: "Capital", Side: books.SideCredit, OpeningBalance: amount(1000), Group: "Equity"},
	}

	bs := BuildBalanceSheet(ledgers, nil)
	if len(bs.Assets) != 1 || len(bs.Liabilities) != 1 {
		t.Fatalf("unexpected classification: %d assets, %d liabilities", len(bs.Assets), len(bs.Liabilities))
	}
	if !bs.TotalAssets.Equal(amount(1000)) {
		t.Fatalf("expected assets 1000, got %s", bs.TotalAssets)
	}
	if !bs.TotalLiabilities.Equal(amount(1000)) {
		t.Fatalf("expected liabilities 1000, got %s", bs.TotalLiabilities)
	}
	if !bs.Differential.IsZero() {
		t.Fatalf("expected zero differential, got %s", bs.Differential)
	}
}

func TestBuildBalanceSheetKeywordMatch(t *testing.T) {
	ledgers := []books.Ledger{
		{ID: "1", Name: "HDFC", Side: books.SideDebit, Group: "Bank Accounts"},
		{ID: "2", Name: "Debtors", Side: books.SideDebit, Group: "Sundry Debtors"},
		{ID: "3", Name: "Plant", Side: books.SideDebit, Group: "Fixed Assets"},
		{ID: "4", Name: "Creditors", Side: books.SideCredit, Group: "Sundry Creditors"},
	}

	bs := BuildBalanceSheet(ledgers, nil)
	if len(bs.Assets) != 3 {
		t.Fatalf("expected 3 asset entries, got %d", len(bs.Assets))
	}
	if len(bs.Liabilities) != 1 {
		t.Fatalf("expected 1 liability entry, got %d", len(bs.Liabilities))
	}
}

func TestBuildProfitAndLossScenario(t *testing.T) {
	vouchers := []books.Voucher{
		{Type: books.VoucherSales, Amount: amount(5000)},
		{Type: books.VoucherPurchase, Amount: amount(3000)},
	}

	pl := BuildProfitAndLoss(vouchers)
	if !pl.Income.Equal(amount(5000)) {
		t.Fatalf("expected income 5000, got %s", pl.Income)
	}
	if !pl.Expenses.Equal(amount(3000)) {
		t.Fatalf("expected expenses 3000, got %s", pl.Expenses)
	}
	if !pl.NetProfit.Equal(amount(2000)) {
		t.Fatalf("expected net profit 2000, got %s", pl.NetProfit)
	}
}

func TestBuildProfitAndLossIgnoresOtherTypes(t *testing.T) {
	vouchers := []books.Voucher{
		{Type: books.VoucherReceipt, Amount: amount(100)},
		{Type: books.VoucherPayment, Amount: amount(40)},
		{Type: books.VoucherContra, Amount: amount(9999)},
		{Type: books.VoucherType("Mystery"), Amount: amount(9999)},
	}

	pl := BuildProfitAndLoss(vouchers)
	if !pl.Income.Equal(amount(100)) || !pl.Expenses.Equal(amount(40)) {
		t.Fatalf("unexpected aggregates: %s / %s", pl.Income, pl.Expenses)
	}
}

func TestBuildCashFlowStates(t *testing.T) {
	surplus := BuildCashFlow([]books.Voucher{
		{Type: books.VoucherReceipt, Amount: amount(500)},
		{Type: books.VoucherPayment, Amount: amount(500)},
	})
	if surplus.State != LiquiditySurplus {
		t.Fatalf("zero net should report surplus, got %s", surplus.State)
	}

	deficit := BuildCashFlow([]books.Voucher{
		{Type: books.VoucherPayment, Amount: amount(300)},
	})
	if deficit.State != LiquidityDeficit {
		t.Fatalf("expected deficit, got %s", deficit.State)
	}
	if !deficit.Net.Equal(amount(-300)) {
		t.Fatalf("expected net -300, got %s", deficit.Net)
	}
}

func TestBuildDispatchAndIdempotence(t *testing.T) {
	in := Input{
		Ledgers: []books.Ledger{
			{ID: "1", Name: "Cash", Side: books.SideDebit, OpeningBalance: amount(1000), Group: "Cash-in-hand"},
		},
		Vouchers: []books.Voucher{
			{ID: "v1", Type: books.VoucherSales, Amount: amount(500), LedgerID: "1"},
		},
	}

	kinds := []Kind{KindTrialBalance, KindBalanceSheet, KindProfitAndLoss, KindCashFlow, KindStockValuation}
	for _, kind := range kinds {
		first, err := Build(kind, in)
		if err != nil {
			t.Fatalf("build %s: %v", kind, err)
		}
		if first.Kind != kind {
			t.Fatalf("expected kind %s, got %s", kind, first.Kind)
		}
		second, err := Build(kind, in)
		if err != nil {
			t.Fatalf("rebuild %s: %v", kind, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%s: repeated build produced different output", kind)
		}
	}
}

func TestParseKindUnknown(t *testing.T) {
	if _, err := ParseKind("ledger-dump"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	kind, err := ParseKind("gstr-3b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != KindGSTR3B {
		t.Fatalf("expected gstr-3b, got %s", kind)
	}
}
