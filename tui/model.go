package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"taskdash/internal/application/dto"
	"taskdash/internal/di"
	"taskdash/internal/domain/service"
	"taskdash/internal/domain/valueobject"
	"taskdash/internal/infrastructure/config"
	"taskdash/tui/style"
)

// TaskLister fetches the task snapshot and re-presents it locally
type TaskLister interface {
	Execute(ctx context.Context, query dto.ListTasksQuery) ([]dto.TaskView, error)
	Present(snapshot []dto.TaskView, query dto.ListTasksQuery) []dto.TaskView
}

// DashboardLoader fetches the dashboard
type DashboardLoader interface {
	Execute(ctx context.Context) (*dto.DashboardDTO, error)
}

// TaskCreator creates tasks
type TaskCreator interface {
	Execute(ctx context.Context, req dto.TaskDraft) (*dto.TaskDTO, error)
}

// TaskUpdater updates tasks
type TaskUpdater interface {
	Execute(ctx context.Context, id string, req dto.TaskDraft) (*dto.TaskDTO, error)
}

// TaskDeleter deletes tasks
type TaskDeleter interface {
	Execute(ctx context.Context, id string) error
}

// Services are the operations the TUI drives
type Services struct {
	ListTasks  TaskLister
	Dashboard  DashboardLoader
	CreateTask TaskCreator
	UpdateTask TaskUpdater
	DeleteTask TaskDeleter
	Validation *service.ValidationService
}

// ServicesFromContainer picks the TUI's operations out of the container
func ServicesFromContainer(c *di.Container) Services {
	return Services{
		ListTasks:  c.ListTasksUseCase,
		Dashboard:  c.GetDashboardUseCase,
		CreateTask: c.CreateTaskUseCase,
		UpdateTask: c.UpdateTaskUseCase,
		DeleteTask: c.DeleteTaskUseCase,
		Validation: c.ValidationService,
	}
}

// ConfigSource reloads config when the file changes
type ConfigSource interface {
	Load() (*config.Config, error)
	Watch(ctx context.Context) (<-chan struct{}, error)
}

type tabID int

const (
	tabDashboard tabID = iota
	tabTasks
)

// Model represents the TUI state
type Model struct {
	ctx      context.Context
	services Services
	source   ConfigSource
	refresh  time.Duration

	tab    tabID
	width  int
	height int

	// snapshot is the last good fetch in store order; visible is the
	// snapshot after the filter and sort
	snapshot  []dto.TaskView
	visible   []dto.TaskView
	dashboard *dto.DashboardDTO
	filter    valueobject.FilterState
	sort      valueobject.SortConfig

	cursor int
	offset int

	// generation tokens; a reply whose token is not the latest is stale
	taskGen      uint64
	dashboardGen uint64
	loadingTasks bool
	loadingDash  bool
	spinner      spinner.Model

	form          *taskForm
	confirmDelete *dto.TaskView
	status        statusLine

	watch <-chan struct{}
}

type statusLine struct {
	text  string
	isErr bool
}

// NewModel creates a new TUI model
func NewModel(ctx context.Context, services Services, cfg *config.Config, source ConfigSource) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	var refresh time.Duration
	if cfg != nil && cfg.TUI.RefreshSeconds > 0 {
		refresh = time.Duration(cfg.TUI.RefreshSeconds) * time.Second
	}

	return Model{
		ctx:      ctx,
		services: services,
		source:   source,
		refresh:  refresh,
		tab:      tabDashboard,
		spinner:  sp,

		// Init issues the first fetch of each with token 1
		taskGen:      1,
		dashboardGen: 1,
		loadingTasks: true,
		loadingDash:  true,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		fetchTasksCmd(m.ctx, m.services.ListTasks, 1),
		fetchDashboardCmd(m.ctx, m.services.Dashboard, 1),
		startWatchCmd(m.ctx, m.source),
	}
	if m.refresh > 0 {
		cmds = append(cmds, doTick(m.refresh))
	}
	return tea.Batch(cmds...)
}

// tickMsg is sent when the refresh ticker fires
type tickMsg time.Time

// doTick returns a command that waits for a tick
func doTick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// query returns the current filter and sort
func (m Model) query() dto.ListTasksQuery {
	return dto.ListTasksQuery{Filter: m.filter, Sort: m.sort}
}

// currentTask returns the task under the cursor
func (m Model) currentTask() *dto.TaskView {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	task := m.visible[m.cursor]
	return &task
}

// present recomputes the visible list from the snapshot
func (m *Model) present() {
	m.visible = m.services.ListTasks.Present(m.snapshot, m.query())
	m.clampCursor()
}

// clampCursor keeps the cursor within the visible rows
func (m *Model) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.updateScroll(m.tableHeight())
}

// updateScroll keeps the cursor row on screen
func (m *Model) updateScroll(viewportHeight int) {
	if viewportHeight <= 0 {
		viewportHeight = 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+viewportHeight {
		m.offset = m.cursor - viewportHeight + 1
	}

	maxOffset := len(m.visible) - viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// tableHeight is the number of task rows that fit on screen
func (m Model) tableHeight() int {
	// tabs, filter line, header, status, help
	h := m.height - 8
	if h < 1 {
		return 1
	}
	return h
}

// ApplyConfig initializes styles and keybindings from config
func ApplyConfig(cfg *config.Config) {
	style.InitStyles(cfg)
	InitKeybindings(cfg)
}
