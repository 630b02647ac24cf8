package task

import (
	"context"
	"fmt"

	"taskdash/internal/application/dto"
	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/repository"
)

// GetTaskUseCase handles looking up a single task
type GetTaskUseCase struct {
	taskRepo repository.TaskRepository
}

// NewGetTaskUseCase creates a new GetTaskUseCase
func NewGetTaskUseCase(taskRepo repository.TaskRepository) *GetTaskUseCase {
	return &GetTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute returns the task with the given ID. The store has no single-task
// endpoint, so this scans a full fetch.
func (uc *GetTaskUseCase) Execute(ctx context.Context, taskID string) (*dto.TaskView, error) {
	tasks, err := uc.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	for _, task := range tasks {
		if task.ID() == taskID {
			view := dto.TaskToView(task)
			return &view, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", entity.ErrTaskNotFound, taskID)
}
