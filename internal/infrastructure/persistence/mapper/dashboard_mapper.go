package mapper

import (
	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/valueobject"
)

// SummaryWire represents the store's dashboard aggregate
type SummaryWire struct {
	TaskCounts struct {
		Total      int `json:"total"`
		Completed  int `json:"completed"`
		Pending    int `json:"pending"`
		InProgress int `json:"inProgress"`
	} `json:"taskCounts"`
	Percentages struct {
		Completed Number `json:"completed"`
		Pending   Number `json:"pending"`
	} `json:"percentages"`
	TimeAnalysisByPriority map[string]struct {
		Elapsed   Number `json:"elapsed"`
		Remaining Number `json:"remaining"`
	} `json:"timeAnalysisByPriority"`
	AverageCompletionTime Number `json:"averageCompletionTime"`
}

// SummaryFromWire converts the aggregate to a DashboardSummary. Priorities
// missing from the reply read as zero.
func SummaryFromWire(w SummaryWire) *entity.DashboardSummary {
	summary := &entity.DashboardSummary{
		Counts: entity.TaskCounts{
			Total:      w.TaskCounts.Total,
			Completed:  w.TaskCounts.Completed,
			Pending:    w.TaskCounts.Pending,
			InProgress: w.TaskCounts.InProgress,
		},
		Percentages: entity.Percentages{
			Completed: float64(w.Percentages.Completed),
			Pending:   float64(w.Percentages.Pending),
		},
		TimeByPriority:        make(map[valueobject.Priority]entity.TimeAnalysis, len(valueobject.Priorities)),
		AverageCompletionTime: float64(w.AverageCompletionTime),
	}

	for key, analysis := range w.TimeAnalysisByPriority {
		priority, err := valueobject.ParsePriority(key)
		if err != nil || !priority.IsValid() {
			continue
		}
		summary.TimeByPriority[priority] = entity.TimeAnalysis{
			Elapsed:   float64(analysis.Elapsed),
			Remaining: float64(analysis.Remaining),
		}
	}

	return summary
}

// UserWire represents the store's user data
type UserWire struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	IsAccountVerified bool   `json:"isAccountVerified"`
}

// UserFromWire converts user data to a User entity
func UserFromWire(w UserWire) *entity.User {
	return &entity.User{
		Name:              w.Name,
		Email:             w.Email,
		IsAccountVerified: w.IsAccountVerified,
	}
}
