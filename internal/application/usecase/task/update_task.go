package task

import (
	"context"
	"fmt"

	"taskdash/internal/application/dto"
	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/repository"
	"taskdash/internal/domain/service"
)

// UpdateTaskUseCase handles updating an existing task
type UpdateTaskUseCase struct {
	taskRepo          repository.TaskRepository
	validationService *service.ValidationService
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase
func NewUpdateTaskUseCase(
	taskRepo repository.TaskRepository,
	validationService *service.ValidationService,
) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo:          taskRepo,
		validationService: validationService,
	}
}

// Execute validates the draft and sends the full field set to the store
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, taskID string, req dto.TaskDraft) (*dto.TaskDTO, error) {
	if taskID == "" {
		return nil, entity.ErrInvalidTaskID
	}

	draft := dto.DraftToEntity(req)
	if err := uc.validationService.ValidateDraft(draft); err != nil {
		return nil, err
	}

	task, err := uc.taskRepo.Update(ctx, taskID, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if task == nil {
		return nil, nil
	}

	taskDTO := dto.TaskToDTO(task)
	return &taskDTO, nil
}
