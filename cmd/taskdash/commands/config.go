package commands

import (
	"github.com/spf13/cobra"
)

var forceInit bool

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Manage configuration",
	Annotations: map[string]string{annotationNoContainer: "true"},
	Long: `Manage taskdash configuration settings.

Configuration is stored in YAML format at:
  ~/.config/taskdash/config.yml

Any scalar key can be overridden from the environment with the TASKDASH_
prefix, for example TASKDASH_SERVER_BASE_URL.

Examples:
  # Show current configuration
  taskdash config show

  # Show config file location
  taskdash config path

  # Write the default configuration
  taskdash config init --force`,
}

// configShowCmd shows the current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newLoader()
		if err != nil {
			return err
		}
		loaded, err := loader.Load()
		if err != nil {
			return err
		}
		if serverURL != "" {
			loaded.Server.BaseURL = serverURL
		}
		if formatter.IsText() {
			// Text output reads best as YAML
			return yamlFormatter(cmd).Print(loaded)
		}
		return formatter.Print(loaded)
	},
}

// configPathCmd shows the config file path
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newLoader()
		if err != nil {
			return err
		}
		return formatter.Print(loader.GetConfigPath())
	},
}

// configInitCmd writes the default configuration
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Write the default configuration file.

An existing file is left alone unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newLoader()
		if err != nil {
			return err
		}
		if _, err := loader.Init(forceInit); err != nil {
			return err
		}
		printer.Success("Configuration written to %s", loader.GetConfigPath())
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
