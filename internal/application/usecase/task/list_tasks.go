package task

import (
	"context"
	"fmt"

	"taskdash/internal/application/dto"
	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/repository"
	"taskdash/internal/domain/service"
)

// ListTasksUseCase handles listing tasks through the view pipeline
type ListTasksUseCase struct {
	taskRepo    repository.TaskRepository
	viewService *service.TaskViewService
}

// NewListTasksUseCase creates a new ListTasksUseCase
func NewListTasksUseCase(taskRepo repository.TaskRepository, viewService *service.TaskViewService) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo:    taskRepo,
		viewService: viewService,
	}
}

// Execute fetches a fresh snapshot and returns the filtered, sorted tasks
func (uc *ListTasksUseCase) Execute(ctx context.Context, query dto.ListTasksQuery) ([]dto.TaskView, error) {
	tasks, err := uc.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	visible := uc.viewService.Apply(tasks, query.Filter, query.Sort)
	return dto.TasksToViews(visible), nil
}

// Present runs the pipeline over a snapshot that was already fetched, so a
// filter or sort change does not go back to the store. The snapshot is
// left untouched.
func (uc *ListTasksUseCase) Present(snapshot []dto.TaskView, query dto.ListTasksQuery) []dto.TaskView {
	tasks := make([]*entity.Task, 0, len(snapshot))
	index := make(map[*entity.Task]int, len(snapshot))
	for i, view := range snapshot {
		task, err := dto.ViewToEntity(view)
		if err != nil {
			continue
		}
		tasks = append(tasks, task)
		index[task] = i
	}

	visible := uc.viewService.Apply(tasks, query.Filter, query.Sort)
	result := make([]dto.TaskView, 0, len(visible))
	for _, task := range visible {
		result = append(result, snapshot[index[task]])
	}
	return result
}
