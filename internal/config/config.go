package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "autoload"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "autoload"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "yaml"
	// EnvPrefix prefixes environment overrides, e.g. AUTOLOAD_STRICT=true.
	EnvPrefix = "AUTOLOAD"
)

// loadWithOptions reads the config file (if any), applies environment
// overrides, validates the result and anchors relative paths. It also
// returns the path of the file it read, empty when only defaults were used.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get working directory: %w", err)
		}

		workDir = wd
	}

	v := viper.New()
	v.SetConfigType(ConfigFileExt)

	defaults := DefaultConfig()
	v.SetDefault("syntax.separator", defaults.Syntax.Separator)
	v.SetDefault("syntax.flat_separator", defaults.Syntax.FlatSeparator)
	v.SetDefault("syntax.extension", defaults.Syntax.Extension)
	v.SetDefault("authoritative", defaults.Authoritative)
	v.SetDefault("strict", defaults.Strict)
	v.SetDefault("workers", defaults.Workers)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""

	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, opts.ConfigFilePath)
		}

		resolvedPath = opts.ConfigFilePath
	} else if localPath := filepath.Join(workDir, ConfigFileName+"."+ConfigFileExt); fileExists(localPath) {
		resolvedPath = localPath
	}

	baseDir := workDir

	if resolvedPath != "" {
		v.SetConfigFile(resolvedPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", resolvedPath, err)
		}

		abs, err := filepath.Abs(resolvedPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve config path: %w", err)
		}

		resolvedPath = abs
		baseDir = filepath.Dir(abs)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		if resolvedPath != "" {
			return nil, "", fmt.Errorf("%s: %w", resolvedPath, err)
		}

		return nil, "", err
	}

	cfg.anchor(baseDir)

	return &cfg, resolvedPath, nil
}

// anchor rewrites relative local paths so they are relative to baseDir
// instead of the process working directory.
func (c *Config) anchor(baseDir string) {
	for i := range c.Prefixes {
		c.Prefixes[i].Dir = anchorPath(baseDir, c.Prefixes[i].Dir)
	}

	for i := range c.Namespaces {
		c.Namespaces[i].Dir = anchorPath(baseDir, c.Namespaces[i].Dir)
	}

	for i := range c.ClassMaps {
		c.ClassMaps[i] = anchorPath(baseDir, c.ClassMaps[i])
	}

	for i := range c.Scan {
		c.Scan[i] = anchorPath(baseDir, c.Scan[i])
	}
}

// anchorPath leaves absolute paths, home-relative paths and URLs untouched.
func anchorPath(baseDir, path string) string {
	if filepath.IsAbs(path) || strings.HasPrefix(path, "~") || strings.Contains(path, "://") {
		return path
	}

	return filepath.Join(baseDir, path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
