package reports

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/books"
)

// assetGroupKeywords classifies a ledger as an asset when its free-text group
// contains any of these. Everything else lands on the liabilities side.
var assetGroupKeywords = []string{"Assets", "Bank Accounts", "Cash-in-hand", "Sundry Debtors"}

// BalanceSheetEntry is one classified ledger balance.
type BalanceSheetEntry struct {
	LedgerID   string
	LedgerName string
	Group      string
	Balance    decimal.Decimal
}

// BalanceSheet reports both sides and their absolute differential. Unlike the
// trial balance it never flags an imbalance; the differential is advisory.
type BalanceSheet struct {
	Assets           []BalanceSheetEntry
	Liabilities      []BalanceSheetEntry
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	Differential     decimal.Decimal
}

// BuildBalanceSheet classifies every ledger balance into assets or
// liabilities by keyword match on the ledger group.
func BuildBalanceSheet(ledgers []books.Ledger, vouchers []books.Voucher) BalanceSheet {
	result := BalanceSheet{}
	for _, l := range ledgers {
		entry := BalanceSheetEntry{
			LedgerID:   l.ID,
			LedgerName: l.Name,
			Group:      l.Group,
			Balance:    books.ComputeBalance(l, vouchers),
		}
		if isAssetGroup(l.Group) {
			result.Assets = append(result.Assets, entry)
			result.TotalAssets = result.TotalAssets.Add(entry.Balance)
		} else {
			result.Liabilities = append(result.Liabilities, entry)
			result.TotalLiabilities = result.TotalLiabilities.Add(entry.Balance)
		}
	}
	result.Differential = result.TotalAssets.Sub(result.TotalLiabilities).Abs()
	return result
}

func isAssetGroup(group string) bool {
	for _, keyword := range assetGroupKeywords {
		if strings.Contains(group, keyword) {
			return true
		}
	}
	return false
}
