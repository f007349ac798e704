package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/autoload/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listClassMapFlags []string

const listLongDescription = `List the configured prefix bindings and the merged class map: the
classmaps: files, any --classmap files, then the scan: directories.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prefixes and class map entries",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				Setup: setupFromConfig(currentConfig(), listClassMapFlags),
			})
		},
	}
	cmd.Flags().StringArrayVarP(&listClassMapFlags, "classmap", "m", nil, "additional class map file (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
