package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/repository"
	"taskdash/internal/infrastructure/persistence/mapper"
)

// TaskRepositoryImpl implements TaskRepository over the store's REST API
type TaskRepositoryImpl struct {
	client *Client
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(client *Client) repository.TaskRepository {
	return &TaskRepositoryImpl{client: client}
}

// FindAll retrieves every task visible to the session
func (r *TaskRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Task, error) {
	var reply tasksResponse
	if err := r.client.do(ctx, http.MethodGet, PathTasks, nil, &reply); err != nil {
		return nil, err
	}

	list := reply.Tasks
	if list == nil && len(reply.Legacy) > 0 && reply.Legacy[0] == '[' {
		if err := json.Unmarshal(reply.Legacy, &list); err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrMalformedReply, err)
		}
	}

	return mapper.TasksFromWire(list)
}

// Create stores a new task. The result is nil when the store does not
// echo the task back.
func (r *TaskRepositoryImpl) Create(ctx context.Context, draft entity.TaskDraft) (*entity.Task, error) {
	var reply taskResponse
	if err := r.client.do(ctx, http.MethodPost, PathTasks, mapper.DraftToWire(draft), &reply); err != nil {
		return nil, err
	}
	return taskFromReply(reply)
}

// Update replaces the fields of an existing task
func (r *TaskRepositoryImpl) Update(ctx context.Context, id string, draft entity.TaskDraft) (*entity.Task, error) {
	if id == "" {
		return nil, entity.ErrInvalidTaskID
	}

	var reply taskResponse
	if err := r.client.do(ctx, http.MethodPut, taskPath(id), mapper.DraftToWire(draft), &reply); err != nil {
		return nil, err
	}
	return taskFromReply(reply)
}

// Delete removes a task
func (r *TaskRepositoryImpl) Delete(ctx context.Context, id string) error {
	if id == "" {
		return entity.ErrInvalidTaskID
	}
	return r.client.do(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func taskPath(id string) string {
	return PathTasks + "/" + url.PathEscape(id)
}

func taskFromReply(reply taskResponse) (*entity.Task, error) {
	if reply.Task == nil {
		return nil, nil
	}
	return mapper.TaskFromWire(*reply.Task)
}

// DashboardRepositoryImpl implements DashboardRepository
type DashboardRepositoryImpl struct {
	client *Client
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(client *Client) repository.DashboardRepository {
	return &DashboardRepositoryImpl{client: client}
}

// Summary retrieves the aggregate statistics
func (r *DashboardRepositoryImpl) Summary(ctx context.Context) (*entity.DashboardSummary, error) {
	var reply dashboardResponse
	if err := r.client.do(ctx, http.MethodPost, PathDashboard, nil, &reply); err != nil {
		return nil, err
	}
	if reply.Summary == nil {
		return nil, fmt.Errorf("%w: missing summary", entity.ErrMalformedReply)
	}
	return mapper.SummaryFromWire(*reply.Summary), nil
}
