package task

import (
	"context"
	"fmt"

	"taskdash/internal/application/dto"
	"taskdash/internal/domain/repository"
	"taskdash/internal/domain/service"
)

// CreateTaskUseCase handles creating a new task
type CreateTaskUseCase struct {
	taskRepo          repository.TaskRepository
	validationService *service.ValidationService
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase
func NewCreateTaskUseCase(
	taskRepo repository.TaskRepository,
	validationService *service.ValidationService,
) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo:          taskRepo,
		validationService: validationService,
	}
}

// Execute validates the draft and creates the task. A draft that fails
// validation never reaches the store.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, req dto.TaskDraft) (*dto.TaskDTO, error) {
	draft := dto.DraftToEntity(req)
	if err := uc.validationService.ValidateDraft(draft); err != nil {
		return nil, err
	}

	task, err := uc.taskRepo.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	if task == nil {
		return nil, nil
	}

	taskDTO := dto.TaskToDTO(task)
	return &taskDTO, nil
}
