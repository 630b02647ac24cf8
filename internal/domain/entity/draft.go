package entity

import "taskdash/internal/domain/valueobject"

// TaskDraft is the typed create/update payload handed to the task store.
// Start and end times are optional and passed through unvalidated.
type TaskDraft struct {
	Title     string
	Priority  valueobject.Priority
	Status    valueobject.Status
	StartTime string
	EndTime   string
}

// DraftFromTask builds a draft pre-filled from an existing task, the
// starting point for an edit
func DraftFromTask(t *Task) TaskDraft {
	return TaskDraft{
		Title:     t.Title(),
		Priority:  t.Priority(),
		Status:    t.Status(),
		StartTime: t.StartTime(),
		EndTime:   t.EndTime(),
	}
}
