// Package config loads the autoload configuration file (autoload.yaml) with
// viper: prefix bindings, class map files, scan directories and resolver
// flags. AUTOLOAD_* environment variables override file values.
package config
