// Package company holds the workspace snapshot store that feeds the
// reporting core. The core only ever reads snapshots taken here.
package company

import (
	"errors"
	"time"

	"github.com/ledgerdesk/ledgerdesk/internal/books"
	"github.com/ledgerdesk/ledgerdesk/internal/tax"
)

// Company is one set of books in the workspace.
type Company struct {
	ID          string
	Name        string
	PeriodLabel string
	CreatedAt   time.Time
	Deleted     bool
}

// Books are the collections the reporting core computes over. TaxGroups are
// descriptive masters for the statutory reports; no arithmetic reads them.
type Books struct {
	Ledgers   []books.Ledger
	Vouchers  []books.Voucher
	Items     []books.Item
	TaxGroups []tax.Group
}

// Snapshot is an isolated deep copy of a company and its books. Report
// computations work on snapshots so concurrent store mutations cannot tear
// an in-flight scan.
type Snapshot struct {
	Company Company
	Books   Books
}

var (
	// ErrNotFound indicates the company does not exist.
	ErrNotFound = errors.New("company: not found")
	// ErrDeleted indicates the company is soft-deleted and must be restored first.
	ErrDeleted = errors.New("company: deleted")
)

// ProgressEvent reports a discrete step of a long-running bookkeeping
// operation such as a year split.
type ProgressEvent struct {
	Stage string
	Done  int
	Total int
}

func cloneBooks(b Books) Books {
	out := Books{}
	if len(b.Ledgers) > 0 {
		out.Ledgers = make([]books.Ledger, len(b.Ledgers))
		copy(out.Ledgers, b.Ledgers)
	}
	if len(b.Vouchers) > 0 {
		out.Vouchers = make([]books.Voucher, 0, len(b.Vouchers))
		for _, v := range b.Vouchers {
			out.Vouchers = append(out.Vouchers, v.Clone())
		}
	}
	if len(b.Items) > 0 {
		out.Items = make([]books.Item, len(b.Items))
		copy(out.Items, b.Items)
	}
	if len(b.TaxGroups) > 0 {
		out.TaxGroups = make([]tax.Group, len(b.TaxGroups))
		for i, g := range b.TaxGroups {
			copied := g
			if len(g.Masters) > 0 {
				copied.Masters = make([]tax.Master, len(g.Masters))
				copy(copied.Masters, g.Masters)
			}
			out.TaxGroups[i] = copied
		}
	}
	return out
}
