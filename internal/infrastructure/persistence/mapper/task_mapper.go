package mapper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/valueobject"
)

// TaskWire represents a task as the store sends it
type TaskWire struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DraftWire represents a create/update request body
type DraftWire struct {
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// TaskFromWire converts the store format to a Task entity
func TaskFromWire(w TaskWire) (*entity.Task, error) {
	task, err := entity.NewTask(
		w.ID,
		w.Title,
		valueobject.Priority(w.Priority),
		valueobject.Status(w.Status),
		w.StartTime,
		w.EndTime,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: task %q: %v", entity.ErrMalformedReply, w.Title, err)
	}
	return task, nil
}

// TasksFromWire converts a list preserving store order
func TasksFromWire(list []TaskWire) ([]*entity.Task, error) {
	tasks := make([]*entity.Task, 0, len(list))
	for _, w := range list {
		task, err := TaskFromWire(w)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// DraftToWire converts a draft to the request body
func DraftToWire(draft entity.TaskDraft) DraftWire {
	return DraftWire{
		Title:     draft.Title,
		Priority:  draft.Priority.String(),
		Status:    draft.Status.String(),
		StartTime: draft.StartTime,
		EndTime:   draft.EndTime,
	}
}

// Number accepts a JSON number, a numeric string or null
type Number float64

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}
