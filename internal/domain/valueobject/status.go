package valueobject

import (
	"fmt"
	"strings"
)

// Status represents task progress as the backend spells it
type Status string

const (
	StatusNone       Status = ""
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists the known statuses in workflow order
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// ParseStatus converts user input to a Status. Matching ignores case and
// accepts "in-progress", "in_progress" and "inprogress".
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", " ", "_", " ").Replace(normalized)

	switch normalized {
	case "":
		return StatusNone, nil
	case "pending", "todo":
		return StatusPending, nil
	case "in progress", "inprogress", "doing":
		return StatusInProgress, nil
	case "completed", "complete", "done":
		return StatusCompleted, nil
	default:
		return StatusNone, fmt.Errorf("invalid status %q: must be one of: pending, in-progress, completed", s)
	}
}

// IsValid reports whether the status is one of the known values
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// IsEmpty reports whether no status is set
func (s Status) IsEmpty() bool {
	return s == StatusNone
}

// String returns the wire representation
func (s Status) String() string {
	return string(s)
}

// Next cycles through none → Pending → In Progress → Completed → none
func (s Status) Next() Status {
	switch s {
	case StatusNone:
		return StatusPending
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusNone
	}
}

// Prev cycles the other way round
func (s Status) Prev() Status {
	switch s {
	case StatusNone:
		return StatusCompleted
	case StatusCompleted:
		return StatusInProgress
	case StatusInProgress:
		return StatusPending
	default:
		return StatusNone
	}
}
