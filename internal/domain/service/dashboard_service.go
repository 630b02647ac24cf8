package service

import (
	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/valueobject"
)

// StatusSlice is one segment of the status distribution
type StatusSlice struct {
	Status valueobject.Status
	Count  int
	Share  float64 // fraction of the charted total, 0..1
}

// TimeBar is the elapsed/remaining pair charted for one priority
type TimeBar struct {
	Priority  valueobject.Priority
	Elapsed   float64
	Remaining float64
}

// DashboardView is a summary prepared for display
type DashboardView struct {
	TotalTasks            int
	CompletionRate        string
	AverageCompletionTime string
	OpenTasks             int
	StatusSlices          []StatusSlice
	TimeBars              []TimeBar
	Summary               entity.DashboardSummary
}

// DashboardService prepares store-computed summaries for display
type DashboardService struct{}

// NewDashboardService creates a new DashboardService
func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// Present passes the summary through unchanged except that elapsed time
// is clamped at zero. Counts and percentages are the store's.
func (s *DashboardService) Present(summary entity.DashboardSummary) DashboardView {
	counts := summary.Counts

	view := DashboardView{
		TotalTasks:            counts.Total,
		CompletionRate:        FormatFixed(summary.Percentages.Completed, 1) + "%",
		AverageCompletionTime: FormatFixed(summary.AverageCompletionTime, 1) + "h",
		OpenTasks:             counts.Pending + counts.InProgress,
		Summary:               summary,
	}

	slices := []StatusSlice{
		{Status: valueobject.StatusCompleted, Count: counts.Completed},
		{Status: valueobject.StatusPending, Count: counts.Pending},
		{Status: valueobject.StatusInProgress, Count: counts.InProgress},
	}
	charted := counts.Completed + counts.Pending + counts.InProgress
	if charted > 0 {
		for i := range slices {
			slices[i].Share = float64(slices[i].Count) / float64(charted)
		}
	}
	view.StatusSlices = slices

	view.TimeBars = make([]TimeBar, 0, len(valueobject.Priorities))
	for _, priority := range valueobject.Priorities {
		analysis := summary.TimeByPriority[priority]
		view.TimeBars = append(view.TimeBars, TimeBar{
			Priority:  priority,
			Elapsed:   ClampElapsed(analysis.Elapsed),
			Remaining: analysis.Remaining,
		})
	}

	return view
}

// ClampElapsed floors elapsed hours at zero
func ClampElapsed(elapsed float64) float64 {
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
