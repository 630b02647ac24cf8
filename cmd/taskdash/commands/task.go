package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskdash/internal/application/dto"
	"taskdash/internal/domain/valueobject"
)

// taskCmd represents the task command
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long: `Manage tasks in the task store - list, show, create, update and delete.

Each task has an ID assigned by the store, a title, a priority (Low, Medium,
High), a status (Pending, In Progress, Completed) and optional start and end
times.

Examples:
  # List all tasks
  taskdash task list

  # List completed tasks, most recently finished first
  taskdash task list --status completed --sort end --order desc

  # Create a new task
  taskdash task create --title "Fix login bug" --priority high --status pending

  # Update a task
  taskdash task update 64f1c2 --status in-progress

  # Delete a task
  taskdash task delete 64f1c2 --yes`,
}

// taskListCmd lists tasks
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks with optional filtering and sorting.

Filters combine: a task is listed when it matches every filter given.
Sorting is by start or end time; tasks without that time go last in either
direction. Without --sort the store's order is kept.

Examples:
  # List high priority tasks
  taskdash task list --priority high

  # List pending tasks by start time
  taskdash task list --status pending --sort start

  # JSON output for scripting
  taskdash task list --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		query, err := listQueryFromFlags(cmd)
		if err != nil {
			return err
		}

		tasks, err := container.ListTasksUseCase.Execute(ctx, query)
		if err != nil {
			return err
		}

		if !formatter.IsText() {
			return formatter.Print(tasks)
		}

		if len(tasks) == 0 {
			printer.Info("No tasks found")
			return nil
		}

		rows := make([][]string, 0, len(tasks))
		for _, task := range tasks {
			rows = append(rows, []string{
				task.ID,
				task.Title,
				task.Priority,
				task.Status,
				valueobject.FormatTimestamp(task.StartTime),
				valueobject.FormatTimestamp(task.EndTime),
				task.DurationHours,
			})
		}
		printer.Table([]string{"ID", "TITLE", "PRIORITY", "STATUS", "START", "END", "DURATION"}, rows)
		printer.Subtle("%d task(s)", len(tasks))
		return nil
	},
}

// taskShowCmd shows a single task
var taskShowCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		task, err := container.GetTaskUseCase.Execute(ctx, args[0])
		if err != nil {
			return err
		}

		if !formatter.IsText() {
			return formatter.Print(task)
		}

		printer.Header("%s", task.Title)
		printer.KeyValues(taskPairs(*task))
		return nil
	},
}

// taskCreateCmd creates a new task
var taskCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new task",
	Long: `Create a new task.

Title, priority and status are required. Times are passed to the store as
given; ISO-8601 such as 2025-03-01T09:00 sorts and derives durations, values
without an offset are read in the local zone.

Examples:
  taskdash task create --title "Write report" --priority medium --status pending
  taskdash task create --title "Deploy" --priority high --status in-progress --start 2025-03-01T09:00`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		draft, err := draftFromFlags(cmd, dto.TaskDraft{})
		if err != nil {
			return err
		}

		created, err := container.CreateTaskUseCase.Execute(ctx, draft)
		if err != nil {
			return err
		}

		if !formatter.IsText() {
			if created == nil {
				return formatter.Print(draft)
			}
			return formatter.Print(created)
		}

		if created == nil {
			printer.Success("Task created: %s", draft.Title)
			return nil
		}
		printer.Success("Task created: %s (%s)", created.Title, created.ID)
		return nil
	},
}

// taskUpdateCmd updates an existing task
var taskUpdateCmd = &cobra.Command{
	Use:   "update <task-id>",
	Short: "Update a task",
	Long: `Update a task.

The current values are fetched first and only the flags you pass replace
them, so the store always receives the full field set. Pass an empty
--start or --end to clear a time.

Examples:
  taskdash task update 64f1c2 --status completed --end 2025-03-01T17:30
  taskdash task update 64f1c2 --title "Write the final report"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)
		taskID := args[0]

		existing, err := container.GetTaskUseCase.Execute(ctx, taskID)
		if err != nil {
			return err
		}

		draft, err := draftFromFlags(cmd, dto.DraftFromDTO(existing.TaskDTO))
		if err != nil {
			return err
		}

		updated, err := container.UpdateTaskUseCase.Execute(ctx, taskID, draft)
		if err != nil {
			return err
		}

		if !formatter.IsText() {
			if updated == nil {
				return formatter.Print(draft)
			}
			return formatter.Print(updated)
		}

		printer.Success("Task updated: %s", draft.Title)
		return nil
	},
}

// taskDeleteCmd deletes a task
var taskDeleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Long: `Delete a task from the store.

This is the CLI equivalent of the TUI 'd' key action.

WARNING: This action cannot be undone.

Examples:
  # Delete a task (with confirmation)
  taskdash task delete 64f1c2

  # Delete without confirmation
  taskdash task delete 64f1c2 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)
		taskID := args[0]

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			task, err := container.GetTaskUseCase.Execute(ctx, taskID)
			if err != nil {
				return err
			}

			printer.Warning("About to delete task: %s - %s", task.ID, task.Title)
			fmt.Fprint(cmd.OutOrStdout(), "Delete this task? [y/N]: ")

			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				printer.Info("Deletion cancelled")
				return nil
			}
		}

		if err := container.DeleteTaskUseCase.Execute(ctx, taskID); err != nil {
			return err
		}

		if !formatter.IsText() {
			return formatter.Print(map[string]string{"deleted": taskID})
		}
		printer.Success("Task deleted: %s", taskID)
		return nil
	},
}

// listQueryFromFlags builds the list query from --status, --priority,
// --sort and --order
func listQueryFromFlags(cmd *cobra.Command) (dto.ListTasksQuery, error) {
	var query dto.ListTasksQuery

	statusFlag, _ := cmd.Flags().GetString("status")
	priorityFlag, _ := cmd.Flags().GetString("priority")
	sortFlag, _ := cmd.Flags().GetString("sort")
	orderFlag, _ := cmd.Flags().GetString("order")

	status, err := valueobject.ParseStatus(statusFlag)
	if err != nil {
		return query, err
	}
	priority, err := valueobject.ParsePriority(priorityFlag)
	if err != nil {
		return query, err
	}
	field, err := valueobject.ParseSortField(sortFlag)
	if err != nil {
		return query, err
	}
	direction, err := valueobject.ParseSortDirection(orderFlag)
	if err != nil {
		return query, err
	}

	if field == valueobject.SortFieldNone {
		if direction != valueobject.SortDirectionNone {
			return query, fmt.Errorf("--order needs --sort")
		}
	} else if direction == valueobject.SortDirectionNone {
		direction = valueobject.SortAscending
	}

	query.Filter = valueobject.FilterState{Status: status, Priority: priority}
	query.Sort = valueobject.SortConfig{Field: field, Direction: direction}
	return query, nil
}

// draftFromFlags overlays the flags that were set onto base
func draftFromFlags(cmd *cobra.Command, base dto.TaskDraft) (dto.TaskDraft, error) {
	draft := base
	flags := cmd.Flags()

	if flags.Changed("title") {
		draft.Title, _ = flags.GetString("title")
		draft.Title = strings.TrimSpace(draft.Title)
	}
	if flags.Changed("priority") {
		value, _ := flags.GetString("priority")
		priority, err := valueobject.ParsePriority(value)
		if err != nil {
			return draft, err
		}
		draft.Priority = priority.String()
	}
	if flags.Changed("status") {
		value, _ := flags.GetString("status")
		status, err := valueobject.ParseStatus(value)
		if err != nil {
			return draft, err
		}
		draft.Status = status.String()
	}
	for _, name := range []string{"start", "end"} {
		if !flags.Changed(name) {
			continue
		}
		value, _ := flags.GetString(name)
		value = strings.TrimSpace(value)
		if name == "start" {
			draft.StartTime = value
		} else {
			draft.EndTime = value
		}
	}

	return draft, nil
}

func taskPairs(task dto.TaskView) [][2]string {
	return [][2]string{
		{"ID", task.ID},
		{"Priority", task.Priority},
		{"Status", task.Status},
		{"Start", valueobject.FormatTimestamp(task.StartTime)},
		{"End", valueobject.FormatTimestamp(task.EndTime)},
		{"Duration", task.DurationHours},
	}
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskCreateCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskDeleteCmd)

	// List flags
	taskListCmd.Flags().String("status", "", "Filter by status (pending, in-progress, completed)")
	taskListCmd.Flags().String("priority", "", "Filter by priority (low, medium, high)")
	taskListCmd.Flags().String("sort", "", "Sort by time: start, end")
	taskListCmd.Flags().String("order", "", "Sort order: asc, desc (default asc)")

	// Create and update flags
	for _, c := range []*cobra.Command{taskCreateCmd, taskUpdateCmd} {
		c.Flags().String("title", "", "Task title")
		c.Flags().String("priority", "", "Priority: low, medium, high")
		c.Flags().String("status", "", "Status: pending, in-progress, completed")
		c.Flags().String("start", "", "Start time (ISO-8601)")
		c.Flags().String("end", "", "End time (ISO-8601)")
	}

	// Delete flags
	taskDeleteCmd.Flags().BoolP("yes", "y", false, "Delete without confirmation")
}
