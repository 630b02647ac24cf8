package task

import (
	"context"
	"fmt"

	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/repository"
)

// DeleteTaskUseCase handles deleting a task
type DeleteTaskUseCase struct {
	taskRepo repository.TaskRepository
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase
func NewDeleteTaskUseCase(taskRepo repository.TaskRepository) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute deletes the task with the given ID
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, taskID string) error {
	if taskID == "" {
		return entity.ErrInvalidTaskID
	}
	if err := uc.taskRepo.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
