package entity

import "taskdash/internal/domain/valueobject"

// TaskCounts holds task totals by status
type TaskCounts struct {
	Total      int
	Completed  int
	Pending    int
	InProgress int
}

// Percentages holds completion ratios computed by the store
type Percentages struct {
	Completed float64
	Pending   float64
}

// TimeAnalysis holds hours spent and left for one priority
type TimeAnalysis struct {
	Elapsed   float64
	Remaining float64
}

// DashboardSummary is the aggregate computed by the task store.
// Values are taken as given; nothing here is recomputed client-side.
type DashboardSummary struct {
	Counts                TaskCounts
	Percentages           Percentages
	TimeByPriority        map[valueobject.Priority]TimeAnalysis
	AverageCompletionTime float64
}
