package dashboard

import (
	"context"
	"fmt"

	"taskdash/internal/application/dto"
	"taskdash/internal/domain/repository"
	"taskdash/internal/domain/service"
)

// GetDashboardUseCase handles fetching and presenting the dashboard
type GetDashboardUseCase struct {
	dashboardRepo    repository.DashboardRepository
	dashboardService *service.DashboardService
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase
func NewGetDashboardUseCase(
	dashboardRepo repository.DashboardRepository,
	dashboardService *service.DashboardService,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		dashboardRepo:    dashboardRepo,
		dashboardService: dashboardService,
	}
}

// Execute fetches the store's summary and prepares it for display
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*dto.DashboardDTO, error) {
	summary, err := uc.dashboardRepo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard: %w", err)
	}

	view := uc.dashboardService.Present(*summary)
	result := dto.DashboardToDTO(view)
	return &result, nil
}
