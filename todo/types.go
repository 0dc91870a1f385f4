// Package todo implements a single-list todo manager persisted to a
// key-value slot.
//
// The whole list is serialized as a JSON array and written back to storage
// after every mutation. The public API mirrors the CLI commands:
//   - Add, Edit, Toggle, Delete for the record lifecycle
//   - SortByDate, SortByPriority for re-ordering the list
//   - Open, List for loading and reading the session state
package todo

import (
	"encoding/json"
	"strings"
)

// Priority represents the urgency of a todo.
type Priority string

const (
	// PriorityUrgentCritical is the most urgent priority.
	PriorityUrgentCritical Priority = "urgent-critical"

	// PriorityUrgent sits between critical and normal.
	PriorityUrgent Priority = "urgent"

	// PriorityNormal is the default priority.
	PriorityNormal Priority = "normal"
)

// unknownPriorityRank orders unrecognized priorities after every known one.
const unknownPriorityRank = 4

// legacyPriorityLabels maps labels written by older clients to priorities.
var legacyPriorityLabels = map[string]Priority{
	"超急件": PriorityUrgentCritical,
	"急件":  PriorityUrgent,
	"普通件": PriorityNormal,
}

// ValidPriorities returns all valid priority values, most urgent first.
func ValidPriorities() []Priority {
	return []Priority{PriorityUrgentCritical, PriorityUrgent, PriorityNormal}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority. Lower ranks sort first.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgentCritical:
		return 1
	case PriorityUrgent:
		return 2
	case PriorityNormal:
		return 3
	default:
		return unknownPriorityRank
	}
}

// ParsePriority resolves user input to a priority.
// Canonical names match case-insensitively; legacy labels are accepted too.
func ParsePriority(value string) (Priority, error) {
	normalized := normalizePriority(value)
	if !normalized.IsValid() {
		return "", invalidPriorityError(value)
	}
	return normalized, nil
}

// UnmarshalJSON decodes a priority, normalizing legacy labels.
// Unknown values are kept as-is so they survive a load/save cycle.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = normalizePriority(raw)
	return nil
}

func normalizePriority(value string) Priority {
	trimmed := strings.TrimSpace(value)
	if legacy, ok := legacyPriorityLabels[trimmed]; ok {
		return legacy
	}
	lowered := Priority(strings.ToLower(trimmed))
	if lowered.IsValid() {
		return lowered
	}
	return Priority(value)
}

// ID identifies a todo. New IDs are millisecond timestamps.
type ID int64

// Record represents a single task.
type Record struct {
	// ID is assigned at creation and never changes.
	ID ID `json:"id"`

	// Text is the task content. Never empty for records created by Add.
	Text string `json:"text"`

	// Completed is flipped by Toggle.
	Completed bool `json:"completed"`

	// Priority is fixed at creation.
	Priority Priority `json:"priority"`

	// Date is the creation date formatted with a locale date layout.
	Date string `json:"date"`
}
