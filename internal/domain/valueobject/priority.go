package valueobject

import (
	"fmt"
	"strings"
)

// Priority represents task priority as the backend spells it
type Priority string

const (
	PriorityNone   Priority = ""
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the known priorities from highest to lowest
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriority converts user input to a Priority. Matching is case-insensitive.
// An empty string parses to PriorityNone.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PriorityNone, nil
	case "low", "l":
		return PriorityLow, nil
	case "medium", "med", "m":
		return PriorityMedium, nil
	case "high", "h":
		return PriorityHigh, nil
	default:
		return PriorityNone, fmt.Errorf("invalid priority %q: must be one of: low, medium, high", s)
	}
}

// IsValid reports whether the priority is one of the known values
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// IsEmpty reports whether no priority is set
func (p Priority) IsEmpty() bool {
	return p == PriorityNone
}

// String returns the wire representation
func (p Priority) String() string {
	return string(p)
}

// Next cycles through none → High → Medium → Low → none
func (p Priority) Next() Priority {
	switch p {
	case PriorityNone:
		return PriorityHigh
	case PriorityHigh:
		return PriorityMedium
	case PriorityMedium:
		return PriorityLow
	default:
		return PriorityNone
	}
}

// Prev cycles the other way round
func (p Priority) Prev() Priority {
	switch p {
	case PriorityNone:
		return PriorityLow
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityNone
	}
}
