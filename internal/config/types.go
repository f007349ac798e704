package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig is returned when a loaded configuration fails validation.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrConfigNotFound is returned when an explicitly requested config file
	// does not exist.
	ErrConfigNotFound = errors.New("config file not found")
)

type (
	// Config is the decoded configuration file.
	Config struct {
		Syntax        SyntaxConfig    `mapstructure:"syntax"`
		Authoritative bool            `mapstructure:"authoritative"`
		Strict        bool            `mapstructure:"strict"`
		Workers       int             `mapstructure:"workers"`
		Prefixes      []BindingConfig `mapstructure:"prefixes"`
		Namespaces    []BindingConfig `mapstructure:"namespaces"`
		ClassMaps     []string        `mapstructure:"classmaps"`
		Scan          []string        `mapstructure:"scan"`
	}

	// SyntaxConfig spells identifiers and source files.
	SyntaxConfig struct {
		Separator     string `mapstructure:"separator"`
		FlatSeparator string `mapstructure:"flat_separator"`
		Extension     string `mapstructure:"extension"`
	}

	// BindingConfig is one prefix to directory binding. Prefixes holds the
	// legacy convention, Namespaces the modern one.
	BindingConfig struct {
		Prefix  string `mapstructure:"prefix"`
		Dir     string `mapstructure:"dir"`
		Prepend bool   `mapstructure:"prepend"`
	}

	// InvalidConfigError lists every validation failure of a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []string
	}
)

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Syntax: SyntaxConfig{
			Separator:     `\`,
			FlatSeparator: "_",
			Extension:     ".php",
		},
		Workers: 0,
	}
}

// Error implements error.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidConfig, strings.Join(e.FieldErrors, "; "))
}

// Unwrap returns ErrInvalidConfig.
func (e *InvalidConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks the constraints the file format cannot express.
func (c *Config) Validate() error {
	var fieldErrors []string

	if c.Syntax.Separator == "" {
		fieldErrors = append(fieldErrors, "syntax.separator must not be empty")
	}

	if c.Syntax.FlatSeparator == "" {
		fieldErrors = append(fieldErrors, "syntax.flat_separator must not be empty")
	}

	if !strings.HasPrefix(c.Syntax.Extension, ".") || len(c.Syntax.Extension) < 2 {
		fieldErrors = append(fieldErrors, fmt.Sprintf("syntax.extension %q must start with a dot", c.Syntax.Extension))
	}

	if c.Workers < 0 {
		fieldErrors = append(fieldErrors, fmt.Sprintf("workers must be >= 0, got %d", c.Workers))
	}

	fieldErrors = append(fieldErrors, validateBindings("prefixes", c.Prefixes)...)
	fieldErrors = append(fieldErrors, validateBindings("namespaces", c.Namespaces)...)

	for i, classMap := range c.ClassMaps {
		if strings.TrimSpace(classMap) == "" {
			fieldErrors = append(fieldErrors, fmt.Sprintf("classmaps[%d] must not be empty", i))
		}
	}

	for i, dir := range c.Scan {
		if strings.TrimSpace(dir) == "" {
			fieldErrors = append(fieldErrors, fmt.Sprintf("scan[%d] must not be empty", i))
		}
	}

	if len(fieldErrors) > 0 {
		return &InvalidConfigError{FieldErrors: fieldErrors}
	}

	return nil
}

func validateBindings(field string, bindings []BindingConfig) []string {
	var fieldErrors []string

	for i, b := range bindings {
		if b.Prefix == "" {
			fieldErrors = append(fieldErrors, fmt.Sprintf("%s[%d].prefix must not be empty", field, i))
		}

		if strings.TrimSpace(b.Dir) == "" {
			fieldErrors = append(fieldErrors, fmt.Sprintf("%s[%d].dir must not be empty", field, i))
		}
	}

	return fieldErrors
}
