package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"taskdash/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal user interface",
	Long: `Launch the interactive TUI (Terminal User Interface).

The TUI has two tabs:
  - Dashboard: completion rate, status distribution and time per priority
  - Tasks: the task table with filters, sorting and a create/edit form

Keyboard shortcuts (defaults, see "taskdash config show"):
  tab      - Switch tab
  ↑/k ↓/j  - Move selection
  s / p    - Cycle status / priority filter
  S / P    - Clear status / priority filter
  1 / 2    - Sort by start / end time (press again to flip asc/desc)
  a        - Add task
  e/Enter  - Edit selected task
  d        - Delete selected task
  r        - Refresh
  q/Ctrl+C - Quit

Examples:
  # Launch TUI
  taskdash tui

  # Launch TUI (shorthand - default command on a terminal)
  taskdash`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		// Initialize styles and keybindings from config
		tui.ApplyConfig(cfg)

		m := tui.NewModel(ctx, tui.ServicesFromContainer(container), cfg, container.Loader)
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
