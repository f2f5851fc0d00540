// Package audit records and lists mutations performed by the company
// management workflows. The reporting core itself never writes entries.
package audit

import "time"

// Action classifies a recorded mutation.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Entry is one audit record.
type Entry struct {
	ID         string
	Action     Action
	EntityType string
	EntityName string
	Detail     string
	Actor      string
	At         time.Time
}

// Filters narrows a timeline listing. Zero values match everything.
type Filters struct {
	From   time.Time
	To     time.Time
	Action Action
	Entity string
}
