package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"taskdash/internal/application/dto"
	"taskdash/internal/domain/valueobject"
	"taskdash/tui/style"
)

const (
	priorityWidth = 9
	statusWidth   = 13
	timeWidth     = 18
	hoursWidth    = 8
	minTitleWidth = 12
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch {
	case m.form != nil:
		body = lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, m.form.view())
	case m.tab == tabDashboard:
		body = m.renderDashboard()
	default:
		body = m.renderTasks()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		body,
		m.renderStatus(),
		style.HelpStyle.Render(helpLine(m.tab)),
	)
}

// renderTabs renders the tab bar with the loading indicator
func (m Model) renderTabs() string {
	tabs := []struct {
		id    tabID
		label string
	}{
		{tabDashboard, "Dashboard"},
		{tabTasks, "Tasks"},
	}

	parts := make([]string, 0, len(tabs)+1)
	for _, t := range tabs {
		if t.id == m.tab {
			parts = append(parts, style.ActiveTabStyle.Render(t.label))
		} else {
			parts = append(parts, style.TabStyle.Render(t.label))
		}
	}
	if m.loading() {
		parts = append(parts, " "+m.spinner.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
}

// renderStatus renders the toast line or the delete prompt
func (m Model) renderStatus() string {
	if m.confirmDelete != nil {
		return style.ErrorStyle.Render(fmt.Sprintf("Delete %q? (y/n)", m.confirmDelete.Title))
	}
	if m.status.text == "" {
		return ""
	}
	if m.status.isErr {
		return style.ErrorStyle.Render(m.status.text)
	}
	return style.SuccessStyle.Render(m.status.text)
}

// renderTasks renders the filter summary and the task table
func (m Model) renderTasks() string {
	var b strings.Builder
	b.WriteString(m.renderFilters())
	b.WriteString("\n")

	titleWidth := m.width - priorityWidth - statusWidth - 2*timeWidth - hoursWidth - 2
	if titleWidth < minTitleWidth {
		titleWidth = minTitleWidth
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		cell("Title", titleWidth),
		cell("Priority", priorityWidth),
		cell("Status", statusWidth),
		cell("Start"+m.sortIndicator(valueobject.SortFieldStartTime), timeWidth),
		cell("End"+m.sortIndicator(valueobject.SortFieldEndTime), timeWidth),
		cell("Hours", hoursWidth),
	)
	b.WriteString(style.HeaderStyle.Render(header))
	b.WriteString("\n")

	if len(m.visible) == 0 {
		if len(m.snapshot) == 0 && !m.loadingTasks {
			b.WriteString(style.RowStyle.Render("No tasks yet. Press a to add one."))
		} else if len(m.snapshot) > 0 {
			b.WriteString(style.RowStyle.Render("No tasks match the current filters."))
		}
		return b.String()
	}

	end := m.offset + m.tableHeight()
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.visible[i], titleWidth, i == m.cursor))
		b.WriteString("\n")
	}
	if end < len(m.visible) {
		b.WriteString(style.HelpStyle.Render(fmt.Sprintf("… %d more", len(m.visible)-end)))
	}

	return b.String()
}

func (m Model) renderRow(task dto.TaskView, titleWidth int, selected bool) string {
	title := truncate.StringWithTail(task.Title, uint(titleWidth-1), "…")

	if selected {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			cell(title, titleWidth),
			cell(task.Priority, priorityWidth),
			cell(task.Status, statusWidth),
			cell(valueobject.FormatTimestamp(task.StartTime), timeWidth),
			cell(valueobject.FormatTimestamp(task.EndTime), timeWidth),
			cell(task.DurationHours, hoursWidth),
		)
		return style.SelectedRowStyle.Render(row)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		style.RowStyle.Width(titleWidth).Render(title),
		style.Priority(task.Priority).Width(priorityWidth).Render(task.Priority),
		style.Status(task.Status).Width(statusWidth).Render(task.Status),
		style.RowStyle.Width(timeWidth).Render(valueobject.FormatTimestamp(task.StartTime)),
		style.RowStyle.Width(timeWidth).Render(valueobject.FormatTimestamp(task.EndTime)),
		style.RowStyle.Width(hoursWidth).Render(task.DurationHours),
	)
}

// renderFilters describes the active filter and sort
func (m Model) renderFilters() string {
	status := "all"
	if !m.filter.Status.IsEmpty() {
		status = m.filter.Status.String()
	}
	priority := "all"
	if !m.filter.Priority.IsEmpty() {
		priority = m.filter.Priority.String()
	}
	sorting := "none"
	if m.sort.IsActive() {
		sorting = fmt.Sprintf("%s %s", m.sort.Field, m.sort.Direction)
	}
	return fmt.Sprintf("Status: %s  Priority: %s  Sort: %s  (%d of %d)",
		status, priority, sorting, len(m.visible), len(m.snapshot))
}

// sortIndicator returns the arrow shown next to a sorted column
func (m Model) sortIndicator(field valueobject.SortField) string {
	if !m.sort.IsActive() || m.sort.Field != field {
		return ""
	}
	if m.sort.Direction == valueobject.SortAscending {
		return " ↑"
	}
	return " ↓"
}

func cell(text string, width int) string {
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(text)
}
