package dashboard

import (
	"context"
	"errors"
	"testing"

	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/service"
	"taskdash/internal/domain/valueobject"
)

type fakeDashboardRepo struct {
	summary *entity.DashboardSummary
	err     error
}

func (r *fakeDashboardRepo) Summary(ctx context.Context) (*entity.DashboardSummary, error) {
	return r.summary, r.err
}

func TestGetDashboard(t *testing.T) {
	repo := &fakeDashboardRepo{summary: &entity.DashboardSummary{
		Counts:      entity.TaskCounts{Total: 3, Completed: 1, Pending: 1, InProgress: 1},
		Percentages: entity.Percentages{Completed: 33.333, Pending: 66.667},
		TimeByPriority: map[valueobject.Priority]entity.TimeAnalysis{
			valueobject.PriorityLow: {Elapsed: -1.5, Remaining: 4},
		},
		AverageCompletionTime: 1.25,
	}}

	got, err := NewGetDashboardUseCase(repo, service.NewDashboardService()).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CompletionRate != "33.3%" || got.OpenTasks != 2 || got.PendingPercentage != 66.667 {
		t.Fatalf("unexpected dashboard: %+v", got)
	}
	low := got.TimeByPriority[2]
	if low.Priority != "Low" || low.Elapsed != 0 || low.Remaining != 4 {
		t.Fatalf("unexpected low priority bar: %+v", low)
	}
}

func TestGetDashboardError(t *testing.T) {
	repo := &fakeDashboardRepo{err: entity.ErrStoreRejected}
	_, err := NewGetDashboardUseCase(repo, service.NewDashboardService()).Execute(context.Background())
	if !errors.Is(err, entity.ErrStoreRejected) {
		t.Fatalf("expected ErrStoreRejected, got %v", err)
	}
}
