package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"taskdash/internal/application/dto"
	"taskdash/internal/domain/valueobject"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll(m.tableHeight())
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.confirmDelete != nil {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)

	case tasksLoadedMsg:
		if msg.gen != m.taskGen {
			return m, nil
		}
		m.loadingTasks = false
		if msg.err != nil {
			m.setError("Failed to load tasks: %v", msg.err)
			return m, nil
		}
		m.snapshot = msg.tasks
		m.present()
		return m, nil

	case dashboardLoadedMsg:
		if msg.gen != m.dashboardGen {
			return m, nil
		}
		m.loadingDash = false
		if msg.err != nil {
			m.setError("Failed to load dashboard: %v", msg.err)
			return m, nil
		}
		m.dashboard = msg.dashboard
		return m, nil

	case taskSavedMsg:
		if msg.err != nil {
			if m.form != nil {
				m.form.saving = false
				m.form.err = msg.err.Error()
			}
			m.setError("Failed to save task: %v", msg.err)
			return m, nil
		}
		m.form = nil
		if msg.editing {
			m.setSuccess("Task %q updated", msg.title)
		} else {
			m.setSuccess("Task %q created", msg.title)
		}
		return m, m.refreshAll()

	case taskDeletedMsg:
		if msg.err != nil {
			m.setError("Failed to delete task: %v", msg.err)
			return m, nil
		}
		m.setSuccess("Task %q deleted", msg.title)
		return m, m.refreshAll()

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		return m, tea.Batch(m.refreshAll(), doTick(m.refresh))

	case watchStartedMsg:
		if msg.err != nil {
			m.setError("Config reload disabled: %v", msg.err)
			return m, nil
		}
		m.watch = msg.ch
		return m, waitForWatch(m.watch)

	case configChangedMsg:
		cfg, err := reloadConfig(m.source)
		if err != nil {
			m.setError("Failed to reload config: %v", err)
		} else {
			if cfg.TUI.RefreshSeconds > 0 {
				m.refresh = time.Duration(cfg.TUI.RefreshSeconds) * time.Second
			}
			m.setSuccess("Config reloaded")
		}
		return m, waitForWatch(m.watch)

	case watchStoppedMsg:
		m.watch = nil
		return m, nil
	}

	return m, nil
}

// updateKeys handles keys when no overlay is open
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.NextTab):
		if m.tab == tabDashboard {
			m.tab = tabTasks
		} else {
			m.tab = tabDashboard
		}
		return m, nil

	case key.Matches(msg, keys.Refresh):
		return m, m.refreshAll()
	}

	if m.tab != tabTasks {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.updateScroll(m.tableHeight())

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		m.updateScroll(m.tableHeight())

	case key.Matches(msg, keys.FilterStatus):
		m.filter.Status = m.filter.Status.Next()
		m.present()

	case key.Matches(msg, keys.FilterPriority):
		m.filter.Priority = m.filter.Priority.Next()
		m.present()

	case key.Matches(msg, keys.ClearStatus):
		m.filter = m.filter.ClearStatus()
		m.present()

	case key.Matches(msg, keys.ClearPriority):
		m.filter = m.filter.ClearPriority()
		m.present()

	case key.Matches(msg, keys.SortStart):
		m.sort = m.sort.Toggle(valueobject.SortFieldStartTime)
		m.present()

	case key.Matches(msg, keys.SortEnd):
		m.sort = m.sort.Toggle(valueobject.SortFieldEndTime)
		m.present()

	case key.Matches(msg, keys.Add):
		m.form = newTaskForm(nil)
		return m, nil

	case key.Matches(msg, keys.Edit):
		if task := m.currentTask(); task != nil {
			m.form = newTaskForm(task)
		}

	case key.Matches(msg, keys.Delete):
		if task := m.currentTask(); task != nil {
			m.confirmDelete = task
		}
	}

	return m, nil
}

// updateForm handles keys while the add/edit overlay is open
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	if f.saving {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil
	case "tab", "down":
		f.next()
		return m, nil
	case "shift+tab", "up":
		f.prev()
		return m, nil
	case "left", "right":
		if f.focus == fieldPriority || f.focus == fieldStatus {
			f.cycle(msg.String() == "right")
			return m, nil
		}
	case "enter":
		return m.submitForm()
	}

	return m, f.updateInput(msg)
}

// submitForm validates the draft and, only when it passes, sends it
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form
	draft := f.draft()

	if m.services.Validation != nil {
		if err := m.services.Validation.ValidateDraft(dto.DraftToEntity(draft)); err != nil {
			f.err = err.Error()
			return m, nil
		}
	}

	f.err = ""
	f.saving = true
	if f.editing() {
		return m, updateTaskCmd(m.ctx, m.services.UpdateTask, f.editID, draft)
	}
	return m, createTaskCmd(m.ctx, m.services.CreateTask, draft)
}

// updateConfirm handles the delete confirmation prompt
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		task := *m.confirmDelete
		m.confirmDelete = nil
		return m, deleteTaskCmd(m.ctx, m.services.DeleteTask, task)
	case "n", "N", "esc":
		m.confirmDelete = nil
	}
	return m, nil
}

// refreshAll issues new fetches; replies to older fetches become stale
func (m *Model) refreshAll() tea.Cmd {
	wasLoading := m.loading()

	m.taskGen++
	m.dashboardGen++
	m.loadingTasks = true
	m.loadingDash = true

	cmds := []tea.Cmd{
		fetchTasksCmd(m.ctx, m.services.ListTasks, m.taskGen),
		fetchDashboardCmd(m.ctx, m.services.Dashboard, m.dashboardGen),
	}
	if !wasLoading {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m Model) loading() bool {
	return m.loadingTasks || m.loadingDash
}

func (m *Model) setError(format string, args ...interface{}) {
	m.status = statusLine{text: fmt.Sprintf(format, args...), isErr: true}
}

func (m *Model) setSuccess(format string, args ...interface{}) {
	m.status = statusLine{text: fmt.Sprintf(format, args...)}
}
