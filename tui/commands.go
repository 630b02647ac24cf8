package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"taskdash/internal/application/dto"
	"taskdash/internal/infrastructure/config"
)

type tasksLoadedMsg struct {
	gen   uint64
	tasks []dto.TaskView
	err   error
}

type dashboardLoadedMsg struct {
	gen       uint64
	dashboard *dto.DashboardDTO
	err       error
}

type taskSavedMsg struct {
	editing bool
	title   string
	err     error
}

type taskDeletedMsg struct {
	title string
	err   error
}

type watchStartedMsg struct {
	ch  <-chan struct{}
	err error
}

type configChangedMsg struct{}

type watchStoppedMsg struct{}

func fetchTasksCmd(ctx context.Context, lister TaskLister, gen uint64) tea.Cmd {
	if lister == nil {
		return nil
	}
	return func() tea.Msg {
		// unfiltered, store order; the filter and sort are applied locally
		tasks, err := lister.Execute(ctx, dto.ListTasksQuery{})
		return tasksLoadedMsg{gen: gen, tasks: tasks, err: err}
	}
}

func fetchDashboardCmd(ctx context.Context, loader DashboardLoader, gen uint64) tea.Cmd {
	if loader == nil {
		return nil
	}
	return func() tea.Msg {
		dashboard, err := loader.Execute(ctx)
		return dashboardLoadedMsg{gen: gen, dashboard: dashboard, err: err}
	}
}

func createTaskCmd(ctx context.Context, creator TaskCreator, draft dto.TaskDraft) tea.Cmd {
	return func() tea.Msg {
		_, err := creator.Execute(ctx, draft)
		return taskSavedMsg{title: draft.Title, err: err}
	}
}

func updateTaskCmd(ctx context.Context, updater TaskUpdater, id string, draft dto.TaskDraft) tea.Cmd {
	return func() tea.Msg {
		_, err := updater.Execute(ctx, id, draft)
		return taskSavedMsg{editing: true, title: draft.Title, err: err}
	}
}

func deleteTaskCmd(ctx context.Context, deleter TaskDeleter, task dto.TaskView) tea.Cmd {
	return func() tea.Msg {
		err := deleter.Execute(ctx, task.ID)
		return taskDeletedMsg{title: task.Title, err: err}
	}
}

func startWatchCmd(ctx context.Context, source ConfigSource) tea.Cmd {
	if source == nil {
		return nil
	}
	return func() tea.Msg {
		ch, err := source.Watch(ctx)
		return watchStartedMsg{ch: ch, err: err}
	}
}

func waitForWatch(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; ok {
			return configChangedMsg{}
		}
		return watchStoppedMsg{}
	}
}

// reloadConfig re-reads the config and re-applies styles and keybindings
func reloadConfig(source ConfigSource) (*config.Config, error) {
	cfg, err := source.Load()
	if err != nil {
		return nil, err
	}
	ApplyConfig(cfg)
	return cfg, nil
}
