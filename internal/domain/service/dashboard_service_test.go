package service

import (
	"testing"

	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/valueobject"
)

func TestPresentClampsElapsedOnly(t *testing.T) {
	summary := entity.DashboardSummary{
		Counts:      entity.TaskCounts{Total: 10, Completed: 4, Pending: 3, InProgress: 3},
		Percentages: entity.Percentages{Completed: 40, Pending: 60},
		TimeByPriority: map[valueobject.Priority]entity.TimeAnalysis{
			valueobject.PriorityHigh:   {Elapsed: -5, Remaining: -2},
			valueobject.PriorityMedium: {Elapsed: 3.5, Remaining: 1},
		},
		AverageCompletionTime: 2.345,
	}

	view := NewDashboardService().Present(summary)

	if view.TotalTasks != 10 || view.OpenTasks != 6 {
		t.Fatalf("unexpected totals: %+v", view)
	}
	if view.CompletionRate != "40.0%" {
		t.Fatalf("expected 40.0%%, got %s", view.CompletionRate)
	}
	if view.AverageCompletionTime != "2.3h" {
		t.Fatalf("expected 2.3h, got %s", view.AverageCompletionTime)
	}

	if len(view.TimeBars) != 3 {
		t.Fatalf("expected 3 time bars, got %d", len(view.TimeBars))
	}
	high := view.TimeBars[0]
	if high.Priority != valueobject.PriorityHigh || high.Elapsed != 0 || high.Remaining != -2 {
		t.Fatalf("expected clamped elapsed and raw remaining, got %+v", high)
	}
	if medium := view.TimeBars[1]; medium.Elapsed != 3.5 {
		t.Fatalf("expected positive elapsed untouched, got %+v", medium)
	}
	if low := view.TimeBars[2]; low.Elapsed != 0 || low.Remaining != 0 {
		t.Fatalf("expected missing priority to chart as zero, got %+v", low)
	}

	if summary.TimeByPriority[valueobject.PriorityHigh].Elapsed != -5 {
		t.Fatalf("summary must not be modified")
	}
}

func TestPresentStatusShares(t *testing.T) {
	view := NewDashboardService().Present(entity.DashboardSummary{
		Counts: entity.TaskCounts{Total: 4, Completed: 1, Pending: 1, InProgress: 2},
	})
	want := []struct {
		status valueobject.Status
		share  float64
	}{
		{valueobject.StatusCompleted, 0.25},
		{valueobject.StatusPending, 0.25},
		{valueobject.StatusInProgress, 0.5},
	}
	for i, w := range want {
		got := view.StatusSlices[i]
		if got.Status != w.status || got.Share != w.share {
			t.Errorf("slice %d: expected %s %.2f, got %s %.2f", i, w.status, w.share, got.Status, got.Share)
		}
	}

	empty := NewDashboardService().Present(entity.DashboardSummary{})
	for _, slice := range empty.StatusSlices {
		if slice.Share != 0 {
			t.Fatalf("expected zero shares for empty summary, got %+v", slice)
		}
	}
}

func TestPresentRoundsHalvesUp(t *testing.T) {
	view := NewDashboardService().Present(entity.DashboardSummary{
		Percentages:           entity.Percentages{Completed: 12.25},
		AverageCompletionTime: 0.25,
	})
	if view.CompletionRate != "12.3%" {
		t.Fatalf("expected 12.3%%, got %s", view.CompletionRate)
	}
	if view.AverageCompletionTime != "0.3h" {
		t.Fatalf("expected 0.3h, got %s", view.AverageCompletionTime)
	}
}
