package style

import (
	"github.com/charmbracelet/lipgloss"

	"taskdash/internal/infrastructure/config"
)

var (
	TabStyle         lipgloss.Style
	ActiveTabStyle   lipgloss.Style
	HeaderStyle      lipgloss.Style
	RowStyle         lipgloss.Style
	SelectedRowStyle lipgloss.Style
	HelpStyle        lipgloss.Style
	CardStyle        lipgloss.Style
	FormStyle        lipgloss.Style
	ErrorStyle       lipgloss.Style
	SuccessStyle     lipgloss.Style
	ElapsedBarStyle  lipgloss.Style
	RemainingStyle   lipgloss.Style

	priorityColors config.PriorityColors
	statusColors   config.StatusColors
)

// InitStyles initializes the styles from config. It is called again when
// the config file changes.
func InitStyles(cfg *config.Config) {
	styles := cfg.TUI.Styles

	TabStyle = textStyle(styles.Tab)
	ActiveTabStyle = textStyle(styles.ActiveTab)
	HeaderStyle = textStyle(styles.Header)
	RowStyle = textStyle(styles.Row)
	SelectedRowStyle = textStyle(styles.SelectedRow)
	HelpStyle = textStyle(styles.Help)
	ErrorStyle = textStyle(styles.Error)
	SuccessStyle = textStyle(styles.Success)

	CardStyle = panelStyle(styles.Card)
	FormStyle = panelStyle(styles.Form)

	ElapsedBarStyle = lipgloss.NewStyle()
	if styles.Bars.Elapsed != "" {
		ElapsedBarStyle = ElapsedBarStyle.Foreground(lipgloss.Color(styles.Bars.Elapsed))
	}
	RemainingStyle = lipgloss.NewStyle()
	if styles.Bars.Remaining != "" {
		RemainingStyle = RemainingStyle.Foreground(lipgloss.Color(styles.Bars.Remaining))
	}

	priorityColors = styles.Priority
	statusColors = styles.Status
}

// Priority returns the style for a priority label
func Priority(priority string) lipgloss.Style {
	color := priorityColors.Default
	switch priority {
	case "High":
		color = priorityColors.High
	case "Medium":
		color = priorityColors.Medium
	case "Low":
		color = priorityColors.Low
	}
	return colored(color)
}

// Status returns the style for a status label
func Status(status string) lipgloss.Style {
	var color string
	switch status {
	case "Pending":
		color = statusColors.Pending
	case "In Progress":
		color = statusColors.InProgress
	case "Completed":
		color = statusColors.Completed
	}
	return colored(color)
}

func colored(color string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if color != "" {
		s = s.Foreground(lipgloss.Color(color))
	}
	return s
}

func textStyle(t config.TextStyle) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(t.PaddingVertical, t.PaddingHorizontal)
	if t.Foreground != "" {
		s = s.Foreground(lipgloss.Color(t.Foreground))
	}
	if t.Background != "" {
		s = s.Background(lipgloss.Color(t.Background))
	}
	if t.Bold {
		s = s.Bold(true)
	}
	if t.Italic {
		s = s.Italic(true)
	}
	if t.Align != "" {
		s = s.Align(getAlign(t.Align))
	}
	return s
}

func panelStyle(p config.PanelStyle) lipgloss.Style {
	s := lipgloss.NewStyle().
		Padding(p.PaddingVertical, p.PaddingHorizontal).
		Border(getBorder(p.BorderStyle))
	if p.BorderColor != "" {
		s = s.BorderForeground(lipgloss.Color(p.BorderColor))
	}
	return s
}

// getBorder returns the border style based on the name
func getBorder(name string) lipgloss.Border {
	switch name {
	case "rounded":
		return lipgloss.RoundedBorder()
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// getAlign returns the alignment based on the name
func getAlign(name string) lipgloss.Position {
	switch name {
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
