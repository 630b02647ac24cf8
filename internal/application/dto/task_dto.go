package dto

import (
	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/service"
	"taskdash/internal/domain/valueobject"
)

// TaskDTO represents a task data transfer object
type TaskDTO struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Priority  string `json:"priority" yaml:"priority"`
	Status    string `json:"status" yaml:"status"`
	StartTime string `json:"start_time" yaml:"start_time"`
	EndTime   string `json:"end_time" yaml:"end_time"`
}

// TaskView is a task with the values derived for display
type TaskView struct {
	TaskDTO       `yaml:",inline"`
	DurationHours string `json:"duration_hours" yaml:"duration_hours"`
}

// TaskDraft represents a request to create or update a task
type TaskDraft struct {
	Title     string `json:"title" yaml:"title"`
	Priority  string `json:"priority" yaml:"priority"`
	Status    string `json:"status" yaml:"status"`
	StartTime string `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty" yaml:"end_time,omitempty"`
}

// ListTasksQuery carries the list constraints and ordering
type ListTasksQuery struct {
	Filter valueobject.FilterState
	Sort   valueobject.SortConfig
}

// TaskToDTO converts a Task entity to a TaskDTO
func TaskToDTO(task *entity.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID(),
		Title:     task.Title(),
		Priority:  task.Priority().String(),
		Status:    task.Status().String(),
		StartTime: task.StartTime(),
		EndTime:   task.EndTime(),
	}
}

// TaskToView converts a Task entity to a TaskView
func TaskToView(task *entity.Task) TaskView {
	return TaskView{
		TaskDTO:       TaskToDTO(task),
		DurationHours: service.TaskDuration(task),
	}
}

// TasksToViews converts tasks preserving order
func TasksToViews(tasks []*entity.Task) []TaskView {
	result := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, TaskToView(task))
	}
	return result
}

// ViewToEntity rebuilds the entity behind a view
func ViewToEntity(view TaskView) (*entity.Task, error) {
	return entity.NewTask(
		view.ID,
		view.Title,
		valueobject.Priority(view.Priority),
		valueobject.Status(view.Status),
		view.StartTime,
		view.EndTime,
	)
}

// DraftToEntity converts a TaskDraft to the domain draft. Values are
// carried verbatim; validation happens in the domain.
func DraftToEntity(draft TaskDraft) entity.TaskDraft {
	return entity.TaskDraft{
		Title:     draft.Title,
		Priority:  valueobject.Priority(draft.Priority),
		Status:    valueobject.Status(draft.Status),
		StartTime: draft.StartTime,
		EndTime:   draft.EndTime,
	}
}

// DraftFromDTO pre-fills a draft from an existing task
func DraftFromDTO(task TaskDTO) TaskDraft {
	return TaskDraft{
		Title:     task.Title,
		Priority:  task.Priority,
		Status:    task.Status,
		StartTime: task.StartTime,
		EndTime:   task.EndTime,
	}
}
