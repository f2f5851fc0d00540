package books

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side is the normal balance side of a ledger account.
type Side string

const (
	// SideDebit marks accounts whose balance grows with debits.
	SideDebit Side = "Debit"
	// SideCredit marks accounts whose balance grows with credits.
	SideCredit Side = "Credit"
)

// VoucherType enumerates recorded transaction kinds.
type VoucherType string

const (
	VoucherSales    VoucherType = "Sales"
	VoucherPurchase VoucherType = "Purchase"
	VoucherReceipt  VoucherType = "Receipt"
	VoucherPayment  VoucherType = "Payment"
	VoucherContra   VoucherType = "Contra"
	VoucherJournal  VoucherType = "Journal"
)

// SupplyType distinguishes intra-state from inter-state supplies.
type SupplyType string

const (
	SupplyLocal      SupplyType = "Local"
	SupplyInterstate SupplyType = "Interstate"
)

// GSTClass marks the supply direction of a voucher for tax purposes.
type GSTClass string

const (
	GSTOutput GSTClass = "Output"
	GSTInput  GSTClass = "Input"
)

// Ledger is a named account. OpeningBalance is signed relative to Side;
// the entity is read-only inside the reporting core.
type Ledger struct {
	ID             string
	Name           string
	Side           Side
	OpeningBalance decimal.Decimal
	Group          string
}

// Item is a commodity master record referenced by voucher lines.
type Item struct {
	ID        string
	Name      string
	Category  string
	Unit      string
	SalePrice decimal.Decimal
}

// LineItem is a single commodity movement on a voucher. Quantity carries no
// sign; direction comes from the parent voucher type.
type LineItem struct {
	ItemID    string
	HSNCode   string
	Qty       decimal.Decimal
	Amount    decimal.Decimal
	TaxAmount decimal.Decimal
}

// Voucher is an immutable recorded transaction. SubTotal and TaxTotal are
// optional; use TaxableValue and Tax rather than reading them directly so the
// defaulting rule lives in one place.
type Voucher struct {
	ID       string
	Type     VoucherType
	Date     time.Time
	Amount   decimal.Decimal
	LedgerID string
	SubTotal *decimal.Decimal
	TaxTotal *decimal.Decimal
	Party    string
	Supply   SupplyType
	GSTClass GSTClass
	Lines    []LineItem
}

// TaxableValue returns the pre-tax value, defaulting to the gross amount when
// no sub-total was recorded.
func (v Voucher) TaxableValue() decimal.Decimal {
	if v.SubTotal != nil {
		return *v.SubTotal
	}
	return v.Amount
}

// Tax returns the recorded tax component, defaulting to zero.
func (v Voucher) Tax() decimal.Decimal {
	if v.TaxTotal != nil {
		return *v.TaxTotal
	}
	return decimal.Decimal{}
}

// Clone returns a deep copy of the voucher, including its lines.
func (v Voucher) Clone() Voucher {
	out := v
	if v.SubTotal != nil {
		st := *v.SubTotal
		out.SubTotal = &st
	}
	if v.TaxTotal != nil {
		tt := *v.TaxTotal
		out.TaxTotal = &tt
	}
	if len(v.Lines) > 0 {
		out.Lines = make([]LineItem, len(v.Lines))
		copy(out.Lines, v.Lines)
	}
	return out
}
