package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// dashboardCmd shows the dashboard summary
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Show the dashboard summary",
	Long: `Show the dashboard: totals, completion rate, status distribution and the
elapsed/remaining hours per priority. Counts are aggregated by the store.

Examples:
  taskdash dashboard
  taskdash dashboard --output yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		dashboard, err := container.GetDashboardUseCase.Execute(ctx)
		if err != nil {
			return err
		}

		if !formatter.IsText() {
			return formatter.Print(dashboard)
		}

		printer.Header("Dashboard")
		printer.KeyValues([][2]string{
			{"Total tasks", strconv.Itoa(dashboard.TotalTasks)},
			{"Completion rate", dashboard.CompletionRate},
			{"Open tasks", strconv.Itoa(dashboard.OpenTasks)},
			{"Avg completion", dashboard.AverageCompletionTime},
		})

		printer.Header("Status distribution")
		rows := make([][]string, 0, len(dashboard.StatusDistribution))
		for _, slice := range dashboard.StatusDistribution {
			rows = append(rows, []string{slice.Status, strconv.Itoa(slice.Count), fmt.Sprintf("%.1f%%", slice.Share*100)})
		}
		printer.Table([]string{"STATUS", "COUNT", "SHARE"}, rows)

		printer.Header("Time by priority")
		rows = make([][]string, 0, len(dashboard.TimeByPriority))
		for _, bar := range dashboard.TimeByPriority {
			rows = append(rows, []string{bar.Priority, fmt.Sprintf("%.2fh", bar.Elapsed), fmt.Sprintf("%.2fh", bar.Remaining)})
		}
		printer.Table([]string{"PRIORITY", "ELAPSED", "REMAINING"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
