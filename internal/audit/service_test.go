package audit

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	_ "github.com/ledgerdesk/ledgerdesk/testing"
)

func TestRecordFillsDefaults(t *testing.T) {
	log := NewLog()
	log.Record(Entry{Action: ActionCreate, EntityType: "company", EntityName: "Acme"})

	entries := log.Timeline(Filters{})
	require.Len(t, entries, 1)
	require.NotEmpty(t, entries[0].ID)
	require.False(t, entries[0].At.IsZero())
}

func TestTimelineFilters(t *testing.T) {
	log := NewLog()
	base := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	log.Record(Entry{Action: ActionCreate, EntityType: "company", EntityName: "Acme", At: base})
	log.Record(Entry{Action: ActionUpdate, EntityType: "company", EntityName: "Acme", At: base.Add(time.Hour)})
	log.Record(Entry{Action: ActionDelete, EntityType: "ledger", EntityName: "Cash", At: base.Add(2 * time.Hour)})

	require.Len(t, log.Timeline(Filters{Action: ActionUpdate}), 1)
	require.Len(t, log.Timeline(Filters{Entity: "LEDGER"}), 1)
	require.Len(t, log.Timeline(Filters{From: base.Add(30 * time.Minute)}), 2)
	require.Len(t, log.Timeline(Filters{To: base.Add(30 * time.Minute)}), 1)
}

func TestExportCSV(t *testing.T) {
	log := NewLog()
	log.Record(Entry{Action: ActionCreate, EntityType: "company", EntityName: "Acme, Inc", Detail: "company created", Actor: "priya"})

	var buf bytes.Buffer
	require.NoError(t, log.ExportCSV(&buf, Filters{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "Entity Name")
	// Embedded comma must be quoted, not split.
	require.Contains(t, lines[1], `"Acme, Inc"`)
}
