// Package cmd provides the root command and CLI setup for autoload.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/autoload/internal/adapter"
	"github.com/mouse-blink/autoload/internal/config"
	"github.com/mouse-blink/autoload/internal/controller"
	"github.com/mouse-blink/autoload/internal/domain"
	m "github.com/mouse-blink/autoload/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var mapStore adapter.MapStore
var configProvider config.Provider
var logger *log.Logger
var ui controller.UI
var workflow domain.Workflow

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: config.AppName})
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	mapStore = adapter.NewMapStore()
	configProvider = config.NewProvider()
	workflow = domain.NewWorkflow(fsAdapter, mapStore, ui, logger)
}

var configFlag string
var verboseFlag bool

// loadedConfig is set by the root command before any subcommand runs.
var loadedConfig *config.Config

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `Autoload maps namespaced identifiers such as MyApp\Model\User to the
source files that define them.

Resolution order:
  1. the class map (explicit identifier to file overrides)
  2. modern prefixes (namespaces:), the prefix is stripped
  3. legacy prefixes (prefixes:), the whole identifier is the path

Bindings, class maps and flags are read from ./autoload.yaml or --config.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "autoload",
		Short:        "Resolve namespaced identifiers to source files",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if verboseFlag {
				logger.SetLevel(log.DebugLevel)
			}

			cfg, err := configProvider.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: configFlag})
			if err != nil {
				return err
			}

			loadedConfig = cfg
			logger.Debug("configuration loaded", "file", configFlag, "namespaces", len(cfg.Namespaces), "prefixes", len(cfg.Prefixes))

			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file (default ./autoload.yaml)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug messages to stderr")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func currentConfig() *config.Config {
	if loadedConfig == nil {
		return config.DefaultConfig()
	}

	return loadedConfig
}

func syntaxFromConfig(cfg *config.Config) m.Syntax {
	return m.Syntax{
		Separator:     cfg.Syntax.Separator,
		FlatSeparator: cfg.Syntax.FlatSeparator,
		Extension:     cfg.Syntax.Extension,
	}
}

// setupFromConfig converts the loaded configuration into a resolver setup.
// extraClassMaps are merged after the configured ones.
func setupFromConfig(cfg *config.Config, extraClassMaps []string) domain.Setup {
	return domain.Setup{
		Syntax:        syntaxFromConfig(cfg),
		Legacy:        bindingSpecs(cfg.Prefixes),
		Modern:        bindingSpecs(cfg.Namespaces),
		ClassMaps:     append(append([]string(nil), cfg.ClassMaps...), extraClassMaps...),
		ScanDirs:      parsePaths(cfg.Scan),
		Authoritative: cfg.Authoritative,
		Strict:        cfg.Strict,
		Workers:       cfg.Workers,
	}
}

func bindingSpecs(bindings []config.BindingConfig) []domain.BindingSpec {
	specs := make([]domain.BindingSpec, 0, len(bindings))
	for _, b := range bindings {
		specs = append(specs, domain.BindingSpec{Prefix: b.Prefix, Dir: m.Path(b.Dir), Prepend: b.Prepend})
	}

	return specs
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
