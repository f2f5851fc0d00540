package reports

import (
	"fmt"
	"time"

	"github.com/ledgerdesk/ledgerdesk/internal/books"
	"github.com/ledgerdesk/ledgerdesk/internal/inventory"
	"github.com/ledgerdesk/ledgerdesk/internal/tax"
)

// Kind selects which report to build. The active report is always an
// explicit parameter, never shared state.
type Kind string

const (
	KindTrialBalance   Kind = "trial-balance"
	KindBalanceSheet   Kind = "balance-sheet"
	KindProfitAndLoss  Kind = "profit-loss"
	KindCashFlow       Kind = "cash-flow"
	KindGSTR1          Kind = "gstr-1"
	KindGSTR2          Kind = "gstr-2"
	KindGSTR3B         Kind = "gstr-3b"
	KindHSNSummary     Kind = "hsn-summary"
	KindStockValuation Kind = "stock-valuation"
)

// ParseKind validates a report selector string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindTrialBalance, KindBalanceSheet, KindProfitAndLoss, KindCashFlow,
		KindGSTR1, KindGSTR2, KindGSTR3B, KindHSNSummary, KindStockValuation:
		return Kind(s), nil
	}
	return "", fmt.Errorf("reports: unknown report kind %q", s)
}

// Input is the snapshot a report computes over. The caller must not mutate
// the collections while a build is in flight. A zero From or To leaves that
// end of the period open.
type Input struct {
	Ledgers  []books.Ledger
	Vouchers []books.Voucher
	Items    []books.Item
	// TaxGroups label the statutory reports; the arithmetic never reads them.
	TaxGroups []tax.Group
	From      time.Time
	To        time.Time
}

var (
	periodFloor   = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	periodCeiling = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

func (in Input) period() (time.Time, time.Time) {
	from, to := in.From, in.To
	if from.IsZero() {
		from = periodFloor
	}
	if to.IsZero() {
		to = periodCeiling
	}
	return from, to
}

// Result is a tagged report value: Kind says which field is populated.
// Vouchers carries the filtered listing for the statutory reports, including
// unclassified vouchers, which stay visible in raw listings even though they
// feed no tax bucket.
type Result struct {
	Kind          Kind                 `json:"kind"`
	TrialBalance  *TrialBalance        `json:"trialBalance,omitempty"`
	BalanceSheet  *BalanceSheet        `json:"balanceSheet,omitempty"`
	ProfitAndLoss *ProfitAndLoss       `json:"profitAndLoss,omitempty"`
	CashFlow      *CashFlow            `json:"cashFlow,omitempty"`
	TaxSummary    *tax.Summary         `json:"taxSummary,omitempty"`
	HSN           []tax.HSNRow         `json:"hsnSummary,omitempty"`
	Valuation     *inventory.Valuation `json:"stockValuation,omitempty"`
	TaxGroups     []tax.Group          `json:"taxGroups,omitempty"`
	Vouchers      []books.Voucher      `json:"vouchers,omitempty"`
}

// Build dispatches one report computation. It is pure: equal inputs produce
// equal results, and nothing is cached between calls.
func Build(kind Kind, in Input) (Result, error) {
	result := Result{Kind: kind}
	switch kind {
	case KindTrialBalance:
		tb := BuildTrialBalance(in.Ledgers, in.Vouchers)
		result.TrialBalance = &tb
	case KindBalanceSheet:
		bs := BuildBalanceSheet(in.Ledgers, in.Vouchers)
		result.BalanceSheet = &bs
	case KindProfitAndLoss:
		pl := BuildProfitAndLoss(in.Vouchers)
		result.ProfitAndLoss = &pl
	case KindCashFlow:
		cf := BuildCashFlow(in.Vouchers)
		result.CashFlow = &cf
	case KindGSTR1:
		from, to := in.period()
		filtered := books.FilterByPeriod(in.Vouchers, from, to)
		summary := tax.BuildSummary(in.Vouchers, from, to)
		result.TaxSummary = &summary
		result.TaxGroups = in.TaxGroups
		result.Vouchers = tax.FilterByClass(filtered, books.GSTOutput)
		result.HSN = tax.BuildHSNSummary(result.Vouchers)
	case KindGSTR2:
		from, to := in.period()
		filtered := books.FilterByPeriod(in.Vouchers, from, to)
		summary := tax.BuildSummary(in.Vouchers, from, to)
		result.TaxSummary = &summary
		result.TaxGroups = in.TaxGroups
		result.Vouchers = tax.FilterByClass(filtered, books.GSTInput)
		result.HSN = tax.BuildHSNSummary(result.Vouchers)
	case KindGSTR3B:
		from, to := in.period()
		filtered := books.FilterByPeriod(in.Vouchers, from, to)
		summary := tax.BuildSummary(in.Vouchers, from, to)
		result.TaxSummary = &summary
		result.TaxGroups = in.TaxGroups
		result.Vouchers = filtered
		result.HSN = tax.BuildHSNSummary(filtered)
	case KindHSNSummary:
		from, to := in.period()
		filtered := books.FilterByPeriod(in.Vouchers, from, to)
		result.Vouchers = filtered
		result.HSN = tax.BuildHSNSummary(filtered)
	case KindStockValuation:
		val := inventory.BuildValuation(in.Items, in.Vouchers)
		result.Valuation = &val
	default:
		return Result{}, fmt.Errorf("reports: unknown report kind %q", kind)
	}
	return result, nil
}
