package entity

import (
	"time"

	"taskdash/internal/domain/valueobject"
)

// Task is a unit of trackable work as returned by the task store.
// Tasks are read-only once built; the view pipeline only reorders and
// derives from them.
type Task struct {
	id        string
	title     string
	priority  valueobject.Priority
	status    valueobject.Status
	startTime string
	endTime   string
}

// NewTask creates a new Task entity. Only the identifier is required;
// everything else is carried through as the store supplied it.
func NewTask(
	id string,
	title string,
	priority valueobject.Priority,
	status valueobject.Status,
	startTime string,
	endTime string,
) (*Task, error) {
	if id == "" {
		return nil, ErrInvalidTaskID
	}

	return &Task{
		id:        id,
		title:     title,
		priority:  priority,
		status:    status,
		startTime: startTime,
		endTime:   endTime,
	}, nil
}

// ID returns the task ID
func (t *Task) ID() string {
	return t.id
}

// Title returns the task title
func (t *Task) Title() string {
	return t.title
}

// Priority returns the task priority
func (t *Task) Priority() valueobject.Priority {
	return t.priority
}

// Status returns the task status
func (t *Task) Status() valueobject.Status {
	return t.status
}

// StartTime returns the raw start timestamp
func (t *Task) StartTime() string {
	return t.startTime
}

// EndTime returns the raw end timestamp
func (t *Task) EndTime() string {
	return t.endTime
}

// Start parses the start timestamp
func (t *Task) Start() (time.Time, bool) {
	return valueobject.ParseTimestamp(t.startTime)
}

// End parses the end timestamp
func (t *Task) End() (time.Time, bool) {
	return valueobject.ParseTimestamp(t.endTime)
}

// TimeOf returns the parsed timestamp for a sort field
func (t *Task) TimeOf(field valueobject.SortField) (time.Time, bool) {
	switch field {
	case valueobject.SortFieldStartTime:
		return t.Start()
	case valueobject.SortFieldEndTime:
		return t.End()
	default:
		return time.Time{}, false
	}
}
