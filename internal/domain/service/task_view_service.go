package service

import (
	"sort"
	"time"

	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/valueobject"
)

// TaskViewService turns a raw task collection into what the task list shows.
// It holds no state; every call recomputes from the snapshot it is given.
type TaskViewService struct{}

// NewTaskViewService creates a new TaskViewService
func NewTaskViewService() *TaskViewService {
	return &TaskViewService{}
}

// Apply filters then sorts. The input slice is never modified.
func (s *TaskViewService) Apply(
	tasks []*entity.Task,
	filter valueobject.FilterState,
	sortConfig valueobject.SortConfig,
) []*entity.Task {
	return s.Sort(s.Filter(tasks, filter), sortConfig)
}

// Filter returns the tasks matching both constraints in input order
func (s *TaskViewService) Filter(tasks []*entity.Task, filter valueobject.FilterState) []*entity.Task {
	result := make([]*entity.Task, 0, len(tasks))
	for _, task := range tasks {
		if filter.Matches(task.Status(), task.Priority()) {
			result = append(result, task)
		}
	}
	return result
}

// Sort orders tasks by the configured timestamp. Ties keep their input
// order and tasks whose timestamp cannot be parsed go last in either
// direction. An inactive config returns a copy in input order.
func (s *TaskViewService) Sort(tasks []*entity.Task, cfg valueobject.SortConfig) []*entity.Task {
	result := make([]*entity.Task, len(tasks))
	copy(result, tasks)

	if !cfg.IsActive() {
		return result
	}

	type keyed struct {
		at time.Time
		ok bool
	}
	keys := make(map[*entity.Task]keyed, len(result))
	for _, task := range result {
		at, ok := task.TimeOf(cfg.Field)
		keys[task] = keyed{at: at, ok: ok}
	}

	descending := cfg.Direction == valueobject.SortDescending
	sort.SliceStable(result, func(i, j int) bool {
		a, b := keys[result[i]], keys[result[j]]
		switch {
		case a.ok && b.ok:
			if descending {
				return a.at.After(b.at)
			}
			return a.at.Before(b.at)
		case a.ok:
			return true
		default:
			return false
		}
	})

	return result
}
