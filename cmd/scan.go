package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/autoload/internal/domain"
	m "github.com/mouse-blink/autoload/internal/model"
)

var scanOutputFlag string
var scanWorkersFlag int

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

const scanLongDescription = `Scan source directories for class, interface and trait declarations
and build a class map from them.

Directories default to the scan: entries of the configuration, then to the
current directory. With --output the map is written as YAML, otherwise it is
printed.`

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [dirs...]",
		Short: "Build a class map from source directories",
		Long:  scanLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()

			paths := parsePaths(args)
			if len(paths) == 0 {
				paths = parsePaths(cfg.Scan)
			}

			if len(paths) == 0 {
				paths = []m.Path{"."}
			}

			workers := cfg.Workers
			if cmd.Flags().Changed("workers") {
				workers = scanWorkersFlag
			}

			return workflow.Scan(cmd.Context(), domain.ScanArgs{
				Paths:   paths,
				Output:  scanOutputFlag,
				Syntax:  syntaxFromConfig(cfg),
				Workers: workers,
			})
		},
	}
	cmd.Flags().StringVarP(&scanOutputFlag, "output", "o", "", "write the class map to this file instead of printing it")
	cmd.Flags().IntVarP(&scanWorkersFlag, "workers", "w", 0, "number of files parsed in parallel (0 = number of CPUs)")

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
