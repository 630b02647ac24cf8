//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"taskdash/internal/application/usecase/auth"
	"taskdash/internal/application/usecase/dashboard"
	"taskdash/internal/application/usecase/task"
	"taskdash/internal/domain/service"
	"taskdash/internal/infrastructure/persistence/httpapi"
)

// InitializeContainer sets up all dependencies
func InitializeContainer(opts Options) (*Container, error) {
	wire.Build(
		// Config
		ProvideLoader,
		ProvideConfig,
		ProvideLogger,

		// Repositories
		ProvideSessionStore,
		ProvideClient,
		httpapi.NewTaskRepository,
		httpapi.NewDashboardRepository,
		httpapi.NewAuthRepository,

		// Domain Services
		service.NewTaskViewService,
		service.NewDashboardService,
		service.NewValidationService,

		// Use Cases - Task
		task.NewListTasksUseCase,
		task.NewGetTaskUseCase,
		task.NewCreateTaskUseCase,
		task.NewUpdateTaskUseCase,
		task.NewDeleteTaskUseCase,

		// Use Cases - Dashboard
		dashboard.NewGetDashboardUseCase,

		// Use Cases - Auth
		auth.NewLoginUseCase,
		auth.NewRegisterUseCase,
		auth.NewLogoutUseCase,
		auth.NewGetSessionUseCase,

		// Wire the container
		wire.Struct(new(Container), "*"),
	)
	return nil, nil
}
