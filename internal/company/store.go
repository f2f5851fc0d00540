package company

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerdesk/ledgerdesk/internal/audit"
	"github.com/ledgerdesk/ledgerdesk/internal/books"
)

// Store keeps every company's books in memory and emits an audit entry for
// each mutation. All reads hand out deep copies.
type Store struct {
	mu        sync.RWMutex
	companies map[string]*record
	auditor   audit.Recorder
	now       func() time.Time
}

type record struct {
	company Company
	books   Books
}

// NewStore returns an empty store. The auditor may be nil, in which case
// mutations go unrecorded.
func NewStore(auditor audit.Recorder) *Store {
	return &Store{
		companies: make(map[string]*record),
		auditor:   auditor,
		now:       time.Now,
	}
}

func (s *Store) record(action audit.Action, name, detail, actor string) {
	if s.auditor == nil {
		return
	}
	s.auditor.Record(audit.Entry{
		Action:     action,
		EntityType: "company",
		EntityName: name,
		Detail:     detail,
		Actor:      actor,
		At:         s.now(),
	})
}

// Create registers a new company with its initial books.
func (s *Store) Create(name, periodLabel string, b Books, actor string) Company {
	c := Company{
		ID:          uuid.NewString(),
		Name:        name,
		PeriodLabel: periodLabel,
		CreatedAt:   s.now(),
	}
	s.mu.Lock()
	s.companies[c.ID] = &record{company: c, books: cloneBooks(b)}
	s.mu.Unlock()
	s.record(audit.ActionCreate, name, "company created", actor)
	return c
}

// Update renames a company or changes its period label.
func (s *Store) Update(id, name, periodLabel, actor string) (Company, error) {
	s.mu.Lock()
	rec, ok := s.companies[id]
	if !ok {
		s.mu.Unlock()
		return Company{}, ErrNotFound
	}
	if rec.company.Deleted {
		s.mu.Unlock()
		return Company{}, ErrDeleted
	}
	rec.company.Name = name
	rec.company.PeriodLabel = periodLabel
	updated := rec.company
	s.mu.Unlock()
	s.record(audit.ActionUpdate, name, "company details updated", actor)
	return updated, nil
}

// ReplaceBooks swaps in the collections supplied by upstream entry workflows.
func (s *Store) ReplaceBooks(id string, b Books, actor string) error {
	s.mu.Lock()
	rec, ok := s.companies[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	if rec.company.Deleted {
		s.mu.Unlock()
		return ErrDeleted
	}
	rec.books = cloneBooks(b)
	name := rec.company.Name
	s.mu.Unlock()
	s.record(audit.ActionUpdate, name,
		fmt.Sprintf("books replaced: %d ledgers, %d vouchers, %d items", len(b.Ledgers), len(b.Vouchers), len(b.Items)), actor)
	return nil
}

// Delete soft-deletes a company; Restore brings it back.
func (s *Store) Delete(id, actor string) error {
	s.mu.Lock()
	rec, ok := s.companies[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	rec.company.Deleted = true
	name := rec.company.Name
	s.mu.Unlock()
	s.record(audit.ActionDelete, name, "company deleted", actor)
	return nil
}

// Restore undoes a soft delete.
func (s *Store) Restore(id, actor string) error {
	s.mu.Lock()
	rec, ok := s.companies[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	rec.company.Deleted = false
	name := rec.company.Name
	s.mu.Unlock()
	s.record(audit.ActionUpdate, name, "company restored", actor)
	return nil
}

// AddYear moves the company to a new reporting period label, keeping the
// books intact.
func (s *Store) AddYear(id, periodLabel, actor string) (Company, error) {
	s.mu.Lock()
	rec, ok := s.companies[id]
	if !ok {
		s.mu.Unlock()
		return Company{}, ErrNotFound
	}
	if rec.company.Deleted {
		s.mu.Unlock()
		return Company{}, ErrDeleted
	}
	previous := rec.company.PeriodLabel
	rec.company.PeriodLabel = periodLabel
	updated := rec.company
	s.mu.Unlock()
	s.record(audit.ActionUpdate, updated.Name,
		fmt.Sprintf("period moved from %s to %s", previous, periodLabel), actor)
	return updated, nil
}

// List returns all companies, deleted ones included.
func (s *Store) List() []Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Company, 0, len(s.companies))
	for _, rec := range s.companies {
		result = append(result, rec.company)
	}
	return result
}

// Snapshot returns an isolated deep copy of a company's books.
func (s *Store) Snapshot(id string) (Snapshot, error) {
	s.mu.RLock()
	rec, ok := s.companies[id]
	if !ok {
		s.mu.RUnlock()
		return Snapshot{}, ErrNotFound
	}
	snap := Snapshot{Company: rec.company, Books: cloneBooks(rec.books)}
	s.mu.RUnlock()
	if snap.Company.Deleted {
		return Snapshot{}, ErrDeleted
	}
	return snap, nil
}

// SplitYear moves vouchers dated after the cutoff into a fresh company
// carrying the new period label. Ledgers and items are copied to both.
// Progress is reported through discrete events rather than a timer; the
// channel may be nil and is never blocked on past context cancellation.
func (s *Store) SplitYear(ctx context.Context, id string, cutoff time.Time, newPeriodLabel, actor string, progress chan<- ProgressEvent) (Company, error) {
	snap, err := s.Snapshot(id)
	if err != nil {
		return Company{}, err
	}

	total := len(snap.Books.Vouchers)
	kept := make([]books.Voucher, 0, total)
	moved := make([]books.Voucher, 0)
	for i, v := range snap.Books.Vouchers {
		if v.Date.After(cutoff) {
			moved = append(moved, v)
		} else {
			kept = append(kept, v)
		}
		if err := emit(ctx, progress, ProgressEvent{Stage: "partition", Done: i + 1, Total: total}); err != nil {
			return Company{}, err
		}
	}

	next := s.Create(snap.Company.Name, newPeriodLabel, Books{
		Ledgers:   snap.Books.Ledgers,
		Vouchers:  moved,
		Items:     snap.Books.Items,
		TaxGroups: snap.Books.TaxGroups,
	}, actor)
	if err := emit(ctx, progress, ProgressEvent{Stage: "create", Done: 1, Total: 1}); err != nil {
		return Company{}, err
	}

	s.mu.Lock()
	if rec, ok := s.companies[id]; ok {
		rec.books.Vouchers = kept
	}
	s.mu.Unlock()
	s.record(audit.ActionUpdate, snap.Company.Name,
		fmt.Sprintf("year split at %s: %d vouchers carried forward", cutoff.Format("2006-01-02"), len(moved)), actor)
	if err := emit(ctx, progress, ProgressEvent{Stage: "done", Done: 1, Total: 1}); err != nil {
		return Company{}, err
	}
	return next, nil
}

func emit(ctx context.Context, progress chan<- ProgressEvent, event ProgressEvent) error {
	if progress == nil {
		return nil
	}
	select {
	case progress <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
