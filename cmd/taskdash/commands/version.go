package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

var shortVersion bool

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the taskdash version",
	Annotations: map[string]string{annotationNoContainer: "true"},
	Example: `
taskdash version
taskdash version --short
taskdash version -o json
`,
	Run: func(cmd *cobra.Command, _ []string) {
		format := outputFormat
		if format != "json" {
			format = "yaml"
		}
		resp := goversion.FuncWithOutput(shortVersion, Version, GitCommit, BuildDate, format)
		fmt.Fprint(cmd.OutOrStdout(), resp)
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&shortVersion, "short", "s", false, "Print just the version number")
	rootCmd.AddCommand(versionCmd)
}
