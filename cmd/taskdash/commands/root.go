package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"taskdash/cmd/taskdash/output"
	"taskdash/internal/di"
	"taskdash/internal/infrastructure/config"
)

// annotationNoContainer marks commands that run without the store client
const annotationNoContainer = "taskdash/no-container"

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	// Global flags
	outputFormat string
	configPath   string
	serverURL    string
	quiet        bool
	verbosity    int

	// Shared instances
	cfg       *config.Config
	container *di.Container
	printer   *output.Printer
	formatter *output.Formatter
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskdash",
	Short: "Terminal client for the task manager",
	Long: `taskdash is a terminal client for the task manager service.

Features:
  - Sign up, log in and out; the session is kept between runs
  - Task list with status/priority filters and start/end time sorting
  - Create, edit and delete tasks
  - Dashboard with completion rate, status distribution and time analysis
  - Interactive TUI and scriptable CLI (text, json, yaml output)

Examples:
  # Launch interactive TUI
  taskdash
  taskdash tui

  # Log in
  taskdash login --email ada@example.com --password-stdin < pw.txt

  # List pending high priority tasks, latest start first
  taskdash task list --status pending --priority high --sort start --order desc

  # Create a task
  taskdash task create --title "Write report" --priority high --status pending

  # Show the dashboard as JSON
  taskdash dashboard --output json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize output formatter
		format, err := output.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		formatter = output.NewFormatter(format, cmd.OutOrStdout())
		printer = output.NewPrinter(cmd.OutOrStdout())
		printer.SetQuiet(quiet || !formatter.IsText())

		if !needsContainer(cmd) {
			return nil
		}

		// Initialize DI container
		container, err = di.InitializeContainer(di.Options{
			ConfigPath: configPath,
			ServerURL:  serverURL,
			Verbosity:  verbosity,
			LogOutput:  cmd.ErrOrStderr(),
			LogToFile:  launchesTUI(cmd),
		})
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		cfg = container.Config

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the TUI on a terminal, help otherwise
		if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
			return tuiCmd.RunE(cmd, args)
		}
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.ErrorPrinter().Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, yaml")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default ~/.config/taskdash/config.yml, or $TASKDASH_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Task store base URL (overrides server.base_url)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v logs requests)")
}

// needsContainer reports whether cmd or any parent talks to the store
func needsContainer(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationNoContainer] == "true" {
			return false
		}
	}
	return true
}

// launchesTUI reports whether cmd hands the terminal to bubbletea
func launchesTUI(cmd *cobra.Command) bool {
	if cmd == tuiCmd {
		return true
	}
	return !cmd.HasParent() && isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// getContext returns a context for command execution
func getContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// newLoader returns the config loader honoring --config
func newLoader() (*config.Loader, error) {
	if configPath != "" {
		return config.NewLoaderWithPath(configPath)
	}
	return config.NewLoader()
}

// yamlFormatter renders structured values for text mode
func yamlFormatter(cmd *cobra.Command) *output.Formatter {
	return output.NewFormatter(output.FormatYAML, cmd.OutOrStdout())
}
