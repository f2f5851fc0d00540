package audit

import (
	"encoding/csv"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Recorder accepts audit entries from mutating workflows.
type Recorder interface {
	Record(entry Entry)
}

// Log is an in-memory audit trail. Entries are kept in insertion order.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

// NewLog returns an empty audit log.
func NewLog() *Log {
	return &Log{now: time.Now}
}

// Record appends an entry, filling in ID and timestamp when absent.
func (l *Log) Record(entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.At.IsZero() {
		entry.At = l.now()
	}
	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()
}

// Timeline lists entries matching the filters, oldest first.
func (l *Log) Timeline(filters Filters) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if !filters.From.IsZero() && e.At.Before(filters.From) {
			continue
		}
		if !filters.To.IsZero() && e.At.After(filters.To) {
			continue
		}
		if filters.Action != "" && e.Action != filters.Action {
			continue
		}
		if filters.Entity != "" && !strings.EqualFold(e.EntityType, filters.Entity) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// ExportCSV writes the filtered timeline as a flat table.
func (l *Log) ExportCSV(w io.Writer, filters Filters) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"At", "Action", "Entity Type", "Entity Name", "Detail", "Actor"}); err != nil {
		return err
	}
	for _, e := range l.Timeline(filters) {
		row := []string{e.At.Format(time.RFC3339), string(e.Action), e.EntityType, e.EntityName, e.Detail, e.Actor}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
