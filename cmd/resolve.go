package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/autoload/internal/domain"
	m "github.com/mouse-blink/autoload/internal/model"
)

var resolveAuthoritativeFlag bool
var resolveStrictFlag bool
var resolveClassMapFlags []string

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

const resolveLongDescription = `Resolve each identifier with the configured class maps and prefixes and
print which source produced the file.

A miss is reported, not an error, unless --strict (or strict: true) is set.`

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <identifier>...",
		Short: "Resolve identifiers to source files",
		Long:  resolveLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setup := setupFromConfig(currentConfig(), resolveClassMapFlags)
			setup.Authoritative = setup.Authoritative || resolveAuthoritativeFlag
			setup.Strict = setup.Strict || resolveStrictFlag

			ids := make([]m.Identifier, 0, len(args))
			for _, arg := range args {
				ids = append(ids, m.Identifier(arg))
			}

			return workflow.Resolve(cmd.Context(), domain.ResolveArgs{
				Setup:       setup,
				Identifiers: ids,
			})
		},
	}
	cmd.Flags().BoolVarP(&resolveAuthoritativeFlag, "authoritative", "a", false, "only consult class maps")
	cmd.Flags().BoolVar(&resolveStrictFlag, "strict", false, "fail when an identifier cannot be resolved")
	cmd.Flags().StringArrayVarP(&resolveClassMapFlags, "classmap", "m", nil, "additional class map file (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
