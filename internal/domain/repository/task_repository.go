package repository

import (
	"context"

	"taskdash/internal/domain/entity"
)

// TaskRepository defines the interface to the remote task store
type TaskRepository interface {
	// FindAll retrieves every task visible to the session
	FindAll(ctx context.Context) ([]*entity.Task, error)

	// Create stores a new task and returns it as the store saved it
	Create(ctx context.Context, draft entity.TaskDraft) (*entity.Task, error)

	// Update replaces the fields of an existing task
	Update(ctx context.Context, id string, draft entity.TaskDraft) (*entity.Task, error)

	// Delete removes a task
	Delete(ctx context.Context, id string) error
}

// DashboardRepository defines the interface to the store's aggregation endpoint
type DashboardRepository interface {
	// Summary retrieves the aggregate statistics over all tasks
	Summary(ctx context.Context) (*entity.DashboardSummary, error)
}
