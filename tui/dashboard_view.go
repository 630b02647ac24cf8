package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskdash/internal/application/dto"
	"taskdash/tui/style"
)

const barWidth = 30

// renderDashboard renders the summary cards, status distribution and the
// time analysis per priority
func (m Model) renderDashboard() string {
	d := m.dashboard
	if d == nil {
		if m.loadingDash {
			return "Loading dashboard..."
		}
		return "No dashboard data."
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Tasks", fmt.Sprintf("%d", d.TotalTasks)),
		card("Completion Rate", d.CompletionRate),
		card("Avg. Completion", d.AverageCompletionTime),
		card("Open Tasks", fmt.Sprintf("%d", d.OpenTasks)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		cards,
		"",
		style.HeaderStyle.Render("Status Distribution"),
		renderDistribution(d.StatusDistribution),
		"",
		style.HeaderStyle.Render("Time Analysis by Priority (hours)"),
		renderTimeBars(d.TimeByPriority),
	)
}

func card(label, value string) string {
	return style.CardStyle.Render(label + "\n" + lipgloss.NewStyle().Bold(true).Render(value))
}

func renderDistribution(slices []dto.StatusSliceDTO) string {
	lines := make([]string, 0, len(slices))
	for _, s := range slices {
		filled := clampBar(int(s.Share*barWidth + 0.5))
		bar := style.Status(s.Status).Render(strings.Repeat("█", filled)) +
			strings.Repeat("░", barWidth-filled)
		lines = append(lines, fmt.Sprintf("%-12s %s %3d (%.1f%%)", s.Status, bar, s.Count, s.Share*100))
	}
	return strings.Join(lines, "\n")
}

// renderTimeBars scales every bar against the largest elapsed+remaining
// total. Elapsed is already clamped at zero; a negative remaining is
// drawn as empty.
func renderTimeBars(bars []dto.TimeBarDTO) string {
	var longest float64
	for _, b := range bars {
		if total := b.Elapsed + positive(b.Remaining); total > longest {
			longest = total
		}
	}

	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		elapsed, remaining := 0, 0
		if longest > 0 {
			elapsed = clampBar(int(b.Elapsed/longest*barWidth + 0.5))
			remaining = clampBar(int(positive(b.Remaining)/longest*barWidth + 0.5))
			if elapsed+remaining > barWidth {
				remaining = barWidth - elapsed
			}
		}
		bar := style.ElapsedBarStyle.Render(strings.Repeat("█", elapsed)) +
			style.RemainingStyle.Render(strings.Repeat("▒", remaining)) +
			strings.Repeat(" ", barWidth-elapsed-remaining)
		lines = append(lines, fmt.Sprintf("%-7s %s elapsed %.1f  remaining %.1f",
			b.Priority, bar, b.Elapsed, b.Remaining))
	}
	return strings.Join(lines, "\n")
}

// clampBar keeps a segment length within the bar
func clampBar(n int) int {
	if n < 0 {
		return 0
	}
	if n > barWidth {
		return barWidth
	}
	return n
}

func positive(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
