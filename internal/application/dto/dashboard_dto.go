package dto

import "taskdash/internal/domain/service"

// StatusSliceDTO is one segment of the status distribution
type StatusSliceDTO struct {
	Status string  `json:"status" yaml:"status"`
	Count  int     `json:"count" yaml:"count"`
	Share  float64 `json:"share" yaml:"share"`
}

// TimeBarDTO is the elapsed/remaining hours for one priority
type TimeBarDTO struct {
	Priority  string  `json:"priority" yaml:"priority"`
	Elapsed   float64 `json:"elapsed" yaml:"elapsed"`
	Remaining float64 `json:"remaining" yaml:"remaining"`
}

// DashboardDTO represents the dashboard prepared for display
type DashboardDTO struct {
	TotalTasks            int              `json:"total_tasks" yaml:"total_tasks"`
	CompletionRate        string           `json:"completion_rate" yaml:"completion_rate"`
	PendingPercentage     float64          `json:"pending_percentage" yaml:"pending_percentage"`
	AverageCompletionTime string           `json:"average_completion_time" yaml:"average_completion_time"`
	OpenTasks             int              `json:"open_tasks" yaml:"open_tasks"`
	StatusDistribution    []StatusSliceDTO `json:"status_distribution" yaml:"status_distribution"`
	TimeByPriority        []TimeBarDTO     `json:"time_by_priority" yaml:"time_by_priority"`
}

// DashboardToDTO converts a DashboardView to a DashboardDTO
func DashboardToDTO(view service.DashboardView) DashboardDTO {
	result := DashboardDTO{
		TotalTasks:            view.TotalTasks,
		CompletionRate:        view.CompletionRate,
		PendingPercentage:     view.Summary.Percentages.Pending,
		AverageCompletionTime: view.AverageCompletionTime,
		OpenTasks:             view.OpenTasks,
		StatusDistribution:    make([]StatusSliceDTO, 0, len(view.StatusSlices)),
		TimeByPriority:        make([]TimeBarDTO, 0, len(view.TimeBars)),
	}
	for _, slice := range view.StatusSlices {
		result.StatusDistribution = append(result.StatusDistribution, StatusSliceDTO{
			Status: slice.Status.String(),
			Count:  slice.Count,
			Share:  slice.Share,
		})
	}
	for _, bar := range view.TimeBars {
		result.TimeByPriority = append(result.TimeByPriority, TimeBarDTO{
			Priority:  bar.Priority.String(),
			Elapsed:   bar.Elapsed,
			Remaining: bar.Remaining,
		})
	}
	return result
}
