package di

import (
	"io"
	"strings"

	"github.com/go-logr/logr"

	"taskdash/internal/application/usecase/auth"
	"taskdash/internal/application/usecase/dashboard"
	"taskdash/internal/application/usecase/task"
	"taskdash/internal/domain/repository"
	"taskdash/internal/domain/service"
	"taskdash/internal/infrastructure/config"
	"taskdash/internal/infrastructure/logging"
	"taskdash/internal/infrastructure/persistence/httpapi"
	"taskdash/internal/infrastructure/persistence/session"
)

// Options carries the command-line overrides the container is built with
type Options struct {
	ConfigPath string
	ServerURL  string
	Verbosity  int
	LogOutput  io.Writer
	// LogToFile sends logs to the data directory instead of LogOutput,
	// for when the TUI owns the terminal
	LogToFile bool
}

// Container holds all application dependencies
type Container struct {
	// Config
	Loader *config.Loader
	Config *config.Config
	Logger logr.Logger

	// Repositories
	TaskRepo      repository.TaskRepository
	DashboardRepo repository.DashboardRepository
	AuthRepo      repository.AuthRepository

	// Domain Services
	TaskViewService   *service.TaskViewService
	DashboardService  *service.DashboardService
	ValidationService *service.ValidationService

	// Use Cases - Task
	ListTasksUseCase  *task.ListTasksUseCase
	GetTaskUseCase    *task.GetTaskUseCase
	CreateTaskUseCase *task.CreateTaskUseCase
	UpdateTaskUseCase *task.UpdateTaskUseCase
	DeleteTaskUseCase *task.DeleteTaskUseCase

	// Use Cases - Dashboard
	GetDashboardUseCase *dashboard.GetDashboardUseCase

	// Use Cases - Auth
	LoginUseCase      *auth.LoginUseCase
	RegisterUseCase   *auth.RegisterUseCase
	LogoutUseCase     *auth.LogoutUseCase
	GetSessionUseCase *auth.GetSessionUseCase
}

// Provider functions

func ProvideLoader(opts Options) (*config.Loader, error) {
	if opts.ConfigPath != "" {
		return config.NewLoaderWithPath(opts.ConfigPath)
	}
	return config.NewLoader()
}

func ProvideConfig(loader *config.Loader, opts Options) (*config.Config, error) {
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if opts.ServerURL != "" {
		cfg.Server.BaseURL = strings.TrimRight(opts.ServerURL, "/")
	}
	return cfg, nil
}

func ProvideLogger(cfg *config.Config, opts Options) (logr.Logger, error) {
	out := opts.LogOutput
	if opts.LogToFile {
		f, err := logging.OpenFile(cfg.Storage.DataPath)
		if err != nil {
			return logr.Discard(), err
		}
		out = f
	}
	return logging.New(logging.Options{
		Verbosity: opts.Verbosity,
		Output:    out,
	}), nil
}

func ProvideSessionStore(cfg *config.Config) repository.SessionStore {
	return session.NewDiskvStore(cfg.Storage.DataPath)
}

func ProvideClient(cfg *config.Config, sessions repository.SessionStore, logger logr.Logger) (*httpapi.Client, error) {
	return httpapi.NewClientFromConfig(cfg, sessions, logger)
}
