package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdash/internal/application/dto"
	"taskdash/internal/domain/valueobject"
	"taskdash/tui/style"
)

type formField int

const (
	fieldTitle formField = iota
	fieldPriority
	fieldStatus
	fieldStart
	fieldEnd
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Priority", "Status", "Start", "End"}

// taskForm is the add/edit overlay. Priority and status are choices
// cycled with left/right; the rest are free text.
type taskForm struct {
	editID   string
	focus    formField
	title    textinput.Model
	start    textinput.Model
	end      textinput.Model
	priority valueobject.Priority
	status   valueobject.Status
	err      string
	saving   bool
}

func newTaskForm(existing *dto.TaskView) *taskForm {
	f := &taskForm{
		title: newInput("What needs doing?", 120),
		start: newInput("YYYY-MM-DD HH:MM", 32),
		end:   newInput("YYYY-MM-DD HH:MM", 32),
	}
	if existing != nil {
		f.editID = existing.ID
		f.title.SetValue(existing.Title)
		f.start.SetValue(existing.StartTime)
		f.end.SetValue(existing.EndTime)
		f.priority = valueobject.Priority(existing.Priority)
		f.status = valueobject.Status(existing.Status)
	}
	f.setFocus(fieldTitle)
	return f
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

func (f *taskForm) editing() bool {
	return f.editID != ""
}

// draft collects the entered values; nothing is validated here
func (f *taskForm) draft() dto.TaskDraft {
	return dto.TaskDraft{
		Title:     strings.TrimSpace(f.title.Value()),
		Priority:  f.priority.String(),
		Status:    f.status.String(),
		StartTime: strings.TrimSpace(f.start.Value()),
		EndTime:   strings.TrimSpace(f.end.Value()),
	}
}

func (f *taskForm) setFocus(field formField) {
	f.focus = field
	f.title.Blur()
	f.start.Blur()
	f.end.Blur()
	switch field {
	case fieldTitle:
		f.title.Focus()
	case fieldStart:
		f.start.Focus()
	case fieldEnd:
		f.end.Focus()
	}
}

func (f *taskForm) next() {
	f.setFocus((f.focus + 1) % fieldCount)
}

func (f *taskForm) prev() {
	f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

// cycle steps the focused choice field forward or back
func (f *taskForm) cycle(forward bool) {
	switch f.focus {
	case fieldPriority:
		if forward {
			f.priority = f.priority.Next()
		} else {
			f.priority = f.priority.Prev()
		}
	case fieldStatus:
		if forward {
			f.status = f.status.Next()
		} else {
			f.status = f.status.Prev()
		}
	}
}

// updateInput forwards a key to the focused text input
func (f *taskForm) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldStart:
		f.start, cmd = f.start.Update(msg)
	case fieldEnd:
		f.end, cmd = f.end.Update(msg)
	}
	return cmd
}

func (f *taskForm) view() string {
	heading := "New task"
	if f.editing() {
		heading = "Edit task"
	}

	var b strings.Builder
	b.WriteString(style.HeaderStyle.Render(heading))
	b.WriteString("\n\n")

	for field := formField(0); field < fieldCount; field++ {
		marker := "  "
		if field == f.focus {
			marker = "> "
		}
		label := lipgloss.NewStyle().Width(10).Render(fieldLabels[field])

		var value string
		switch field {
		case fieldTitle:
			value = f.title.View()
		case fieldStart:
			value = f.start.View()
		case fieldEnd:
			value = f.end.View()
		case fieldPriority:
			value = choice(f.priority.String(), "select priority", style.Priority(f.priority.String()))
		case fieldStatus:
			value = choice(f.status.String(), "select status", style.Status(f.status.String()))
		}
		b.WriteString(marker + label + value + "\n")
	}

	if f.err != "" {
		b.WriteString("\n" + style.ErrorStyle.Render(f.err) + "\n")
	}
	if f.saving {
		b.WriteString("\nSaving...\n")
	}
	b.WriteString("\n" + style.HelpStyle.Render("tab/↑↓ move • ←/→ choose • enter save • esc cancel"))

	return style.FormStyle.Render(b.String())
}

func choice(value, placeholder string, s lipgloss.Style) string {
	if value == "" {
		return "‹ " + lipgloss.NewStyle().Faint(true).Render(placeholder) + " ›"
	}
	return "‹ " + s.Render(value) + " ›"
}
