package books

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	_ "github.com/ledgerdesk/ledgerdesk/testing"
)

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestComputeBalanceNoVouchers(t *testing.T) {
	ledger := Ledger{ID: "l1", Name: "Cash", Side: SideDebit, OpeningBalance: amount(1000)}
	got := ComputeBalance(ledger, nil)
	if !got.Equal(amount(1000)) {
		t.Fatalf("expected opening balance 1000, got %s", got)
	}
}

func TestComputeBalanceBySide(t *testing.T) {
	vouchers := []Voucher{
		{ID: "v1", LedgerID: "l1", Amount: amount(200)},
		{ID: "v2", LedgerID: "l1", Amount: amount(50)},
		{ID: "v3", LedgerID: "other", Amount: amount(999)},
	}

	debit := Ledger{ID: "l1", Side: SideDebit, OpeningBalance: amount(100)}
	if got := ComputeBalance(debit, vouchers); !got.Equal(amount(350)) {
		t.Fatalf("debit balance: expected 350, got %s", got)
	}

	credit := Ledger{ID: "l1", Side: SideCredit, OpeningBalance: amount(100)}
	if got := ComputeBalance(credit, vouchers); !got.Equal(amount(-150)) {
		t.Fatalf("credit balance: expected -150, got %s", got)
	}
}

func TestComputeBalancePermutationInvariant(t *testing.T) {
	ledger := Ledger{ID: "l1", Side: SideDebit, OpeningBalance: amount(10)}
	a := Voucher{ID: "a", LedgerID: "l1", Amount: amount(1)}
	b := Voucher{ID: "b", LedgerID: "l1", Amount: amount(20)}
	c := Voucher{ID: "c", LedgerID: "l1", Amount: amount(300)}

	permutations := [][]Voucher{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}
	want := ComputeBalance(ledger, permutations[0])
	for i, perm := range permutations {
		if got := ComputeBalance(ledger, perm); !got.Equal(want) {
			t.Fatalf("permutation %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestComputeBalanceNegativeAmountNotRejected(t *testing.T) {
	ledger := Ledger{ID: "l1", Side: SideDebit, OpeningBalance: amount(100)}
	vouchers := []Voucher{{ID: "v1", LedgerID: "l1", Amount: amount(-40)}}
	if got := ComputeBalance(ledger, vouchers); !got.Equal(amount(60)) {
		t.Fatalf("expected 60, got %s", got)
	}
}

func TestFilterByPeriodInclusiveCalendarDates(t *testing.T) {
	day := func(d int, hour int) time.Time {
		return time.Date(2025, time.April, d, hour, 30, 0, 0, time.UTC)
	}
	vouchers := []Voucher{
		{ID: "before", Date: day(1, 0)},
		{ID: "start", Date: day(2, 23)},
		{ID: "mid", Date: day(10, 12)},
		{ID: "end", Date: day(20, 23)},
		{ID: "after", Date: day(21, 0)},
	}

	from := time.Date(2025, time.April, 2, 9, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC)
	got := FilterByPeriod(vouchers, from, to)
	if len(got) != 3 {
		t.Fatalf("expected 3 vouchers, got %d", len(got))
	}
	for i, id := range []string{"start", "mid", "end"} {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestVoucherDefaultingAccessors(t *testing.T) {
	sub := amount(900)
	tax := amount(100)
	withTotals := Voucher{Amount: amount(1000), SubTotal: &sub, TaxTotal: &tax}
	if got := withTotals.TaxableValue(); !got.Equal(amount(900)) {
		t.Fatalf("expected sub-total 900, got %s", got)
	}
	if got := withTotals.Tax(); !got.Equal(amount(100)) {
		t.Fatalf("expected tax 100, got %s", got)
	}

	bare := Voucher{Amount: amount(1000)}
	if got := bare.TaxableValue(); !got.Equal(amount(1000)) {
		t.Fatalf("expected amount fallback 1000, got %s", got)
	}
	if got := bare.Tax(); !got.IsZero() {
		t.Fatalf("expected zero tax, got %s", got)
	}
}
