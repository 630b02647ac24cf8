package task

import (
	"context"
	"errors"
	"testing"

	"taskdash/internal/application/dto"
	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/service"
	"taskdash/internal/domain/valueobject"
)

type fakeTaskRepo struct {
	tasks   []*entity.Task
	err     error
	created []entity.TaskDraft
	updated map[string]entity.TaskDraft
	deleted []string
}

func (r *fakeTaskRepo) FindAll(ctx context.Context) ([]*entity.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.tasks, nil
}

func (r *fakeTaskRepo) Create(ctx context.Context, draft entity.TaskDraft) (*entity.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.created = append(r.created, draft)
	return entity.NewTask("new-1", draft.Title, draft.Priority, draft.Status, draft.StartTime, draft.EndTime)
}

func (r *fakeTaskRepo) Update(ctx context.Context, id string, draft entity.TaskDraft) (*entity.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.updated == nil {
		r.updated = make(map[string]entity.TaskDraft)
	}
	r.updated[id] = draft
	return entity.NewTask(id, draft.Title, draft.Priority, draft.Status, draft.StartTime, draft.EndTime)
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func mustTask(t *testing.T, id string, status valueobject.Status, priority valueobject.Priority, start, end string) *entity.Task {
	t.Helper()
	task, err := entity.NewTask(id, "task "+id, priority, status, start, end)
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	return task
}

func TestListTasksAppliesPipeline(t *testing.T) {
	repo := &fakeTaskRepo{tasks: []*entity.Task{
		mustTask(t, "1", valueobject.StatusPending, valueobject.PriorityHigh, "2024-01-01T05:00:00Z", "2024-01-01T07:00:00Z"),
		mustTask(t, "2", valueobject.StatusCompleted, valueobject.PriorityHigh, "2024-01-01T01:00:00Z", "2024-01-01T00:00:00Z"),
		mustTask(t, "3", valueobject.StatusPending, valueobject.PriorityLow, "2024-01-01T00:00:00Z", "2024-01-01T01:00:00Z"),
		mustTask(t, "4", valueobject.StatusPending, valueobject.PriorityHigh, "2024-01-01T03:00:00Z", "2024-01-01T04:30:00Z"),
	}}
	uc := NewListTasksUseCase(repo, service.NewTaskViewService())

	views, err := uc.Execute(context.Background(), dto.ListTasksQuery{
		Filter: valueobject.FilterState{Status: valueobject.StatusPending, Priority: valueobject.PriorityHigh},
		Sort:   valueobject.SortConfig{Field: valueobject.SortFieldStartTime, Direction: valueobject.SortAscending},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 || views[0].ID != "4" || views[1].ID != "1" {
		t.Fatalf("expected [4 1], got %+v", views)
	}
	if views[0].DurationHours != "1.50" || views[1].DurationHours != "2.00" {
		t.Fatalf("unexpected durations: %s, %s", views[0].DurationHours, views[1].DurationHours)
	}
}

func TestListTasksPropagatesStoreError(t *testing.T) {
	repo := &fakeTaskRepo{err: entity.ErrStoreUnavailable}
	uc := NewListTasksUseCase(repo, service.NewTaskViewService())
	if _, err := uc.Execute(context.Background(), dto.ListTasksQuery{}); !errors.Is(err, entity.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestCreateTaskBlocksInvalidDraft(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := NewCreateTaskUseCase(repo, service.NewValidationService())

	_, err := uc.Execute(context.Background(), dto.TaskDraft{Title: "", Priority: "High", Status: "Pending"})
	if !errors.Is(err, entity.ErrRequiredField) {
		t.Fatalf("expected ErrRequiredField, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("store must not be called for an invalid draft")
	}
}

func TestCreateTaskSendsDraft(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := NewCreateTaskUseCase(repo, service.NewValidationService())

	created, err := uc.Execute(context.Background(), dto.TaskDraft{
		Title:     "Plan sprint",
		Priority:  "Medium",
		Status:    "In Progress",
		StartTime: "2024-02-01T09:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.ID != "new-1" || created.Status != "In Progress" {
		t.Fatalf("unexpected created task: %+v", created)
	}
	if len(repo.created) != 1 || repo.created[0].Priority != valueobject.PriorityMedium {
		t.Fatalf("expected draft to reach the store, got %+v", repo.created)
	}
}

func TestUpdateTask(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := NewUpdateTaskUseCase(repo, service.NewValidationService())

	if _, err := uc.Execute(context.Background(), "", dto.TaskDraft{Title: "x", Priority: "Low", Status: "Pending"}); !errors.Is(err, entity.ErrInvalidTaskID) {
		t.Fatalf("expected ErrInvalidTaskID, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), "t1", dto.TaskDraft{Title: "x"}); !errors.Is(err, entity.ErrRequiredField) {
		t.Fatalf("expected ErrRequiredField, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatalf("store must not be called for invalid input")
	}

	updated, err := uc.Execute(context.Background(), "t1", dto.TaskDraft{Title: "x", Priority: "Low", Status: "Completed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != "t1" || repo.updated["t1"].Status != valueobject.StatusCompleted {
		t.Fatalf("unexpected update: %+v / %+v", updated, repo.updated)
	}
}

func TestDeleteAndGetTask(t *testing.T) {
	repo := &fakeTaskRepo{tasks: []*entity.Task{
		mustTask(t, "keep", valueobject.StatusPending, valueobject.PriorityLow, "", ""),
	}}

	if err := NewDeleteTaskUseCase(repo).Execute(context.Background(), "gone"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "gone" {
		t.Fatalf("expected delete to reach the store, got %v", repo.deleted)
	}

	get := NewGetTaskUseCase(repo)
	view, err := get.Execute(context.Background(), "keep")
	if err != nil || view.ID != "keep" || view.DurationHours != "0.00" {
		t.Fatalf("unexpected lookup result: %+v, %v", view, err)
	}
	if _, err := get.Execute(context.Background(), "missing"); !errors.Is(err, entity.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestPresentReordersSnapshotWithoutFetching(t *testing.T) {
	repo := &fakeTaskRepo{tasks: []*entity.Task{
		mustTask(t, "a", valueobject.StatusPending, valueobject.PriorityLow, "2024-03-01T10:00:00Z", ""),
		mustTask(t, "b", valueobject.StatusCompleted, valueobject.PriorityHigh, "2024-01-01T10:00:00Z", ""),
		mustTask(t, "c", valueobject.StatusPending, valueobject.PriorityHigh, "not a date", ""),
	}}
	uc := NewListTasksUseCase(repo, service.NewTaskViewService())

	snapshot, err := uc.Execute(context.Background(), dto.ListTasksQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.err = errors.New("store must not be called")
	views := uc.Present(snapshot, dto.ListTasksQuery{
		Sort: valueobject.SortConfig{Field: valueobject.SortFieldStartTime, Direction: valueobject.SortAscending},
	})

	got := make([]string, 0, len(views))
	for _, v := range views {
		got = append(got, v.ID)
	}
	if len(got) != 3 || got[0] != "b" || got[1] != "a" || got[2] != "c" {
		t.Fatalf("expected [b a c], got %v", got)
	}
	if snapshot[0].ID != "a" {
		t.Fatalf("expected snapshot order untouched, got %s first", snapshot[0].ID)
	}

	pending := uc.Present(snapshot, dto.ListTasksQuery{Filter: valueobject.FilterState{Status: valueobject.StatusPending}})
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending tasks, got %d", len(pending))
	}
}
