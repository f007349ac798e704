package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/autoload/internal/config"
	"github.com/mouse-blink/autoload/internal/domain"
	domainmocks "github.com/mouse-blink/autoload/internal/domain/mocks"
	m "github.com/mouse-blink/autoload/internal/model"
)

// newTestRoot builds a fresh command tree with the workflow replaced by a mock.
func newTestRoot(t *testing.T, subcommands ...*cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow, *bytes.Buffer) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() {
		workflow = originalWorkflow
		loadedConfig = nil
	})

	var stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(subcommands...)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&stderr)

	return cmd, mockWorkflow, &stderr
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "autoload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "autoload", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"scan", "resolve", "list"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	cmd, _, _ := newTestRoot(t, newListCmd())

	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "list"})
	err := cmd.Execute()
	require.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestRootCmd_InvalidConfigFile(t *testing.T) {
	cmd, _, _ := newTestRoot(t, newListCmd())

	path := writeTestConfig(t, "workers: -2\n")

	cmd.SetArgs([]string{"--config", path, "list"})
	err := cmd.Execute()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSetupFromConfig(t *testing.T) {
	cfg := &config.Config{
		Syntax:        config.SyntaxConfig{Separator: ".", FlatSeparator: "_", Extension: ".ext"},
		Authoritative: true,
		Workers:       3,
		Prefixes:      []config.BindingConfig{{Prefix: "Foo", Dir: "/lib", Prepend: true}},
		Namespaces:    []config.BindingConfig{{Prefix: "App.", Dir: "/src"}},
		ClassMaps:     []string{"/maps/a.yaml"},
		Scan:          []string{"/gen"},
	}

	setup := setupFromConfig(cfg, []string{"/maps/b.yaml"})

	assert.Equal(t, domain.Setup{
		Syntax:        m.Syntax{Separator: ".", FlatSeparator: "_", Extension: ".ext"},
		Legacy:        []domain.BindingSpec{{Prefix: "Foo", Dir: "/lib", Prepend: true}},
		Modern:        []domain.BindingSpec{{Prefix: "App.", Dir: "/src"}},
		ClassMaps:     []string{"/maps/a.yaml", "/maps/b.yaml"},
		ScanDirs:      []m.Path{"/gen"},
		Authoritative: true,
		Workers:       3,
	}, setup)

	assert.Equal(t, []string{"/maps/a.yaml"}, cfg.ClassMaps, "configuration is not modified")
}

func TestCurrentConfig_DefaultsBeforeLoad(t *testing.T) {
	loadedConfig = nil

	assert.Equal(t, config.DefaultConfig(), currentConfig())
}

func TestRootCmd_VerboseLoadsConfig(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newListCmd())

	originalLevel := logger.GetLevel()
	t.Cleanup(func() { logger.SetLevel(originalLevel) })

	path := writeTestConfig(t, "strict: true\n")

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Setup.Strict
	})).Return(nil)

	cmd.SetArgs([]string{"-v", "--config", path, "list"})
	require.NoError(t, cmd.Execute())
}
