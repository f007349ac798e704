// Package controller renders class maps, prefix bindings and resolution
// results for the command line.
package controller

import (
	m "github.com/mouse-blink/autoload/internal/model"
)

// UI defines how the workflow reports its results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayClassMap(classMap *m.ClassMap) error
	DisplayPrefixes(legacy, modern []m.PrefixBinding) error
	DisplayResolutions(resolutions []m.Resolution) error
	DisplaySaved(url string, entries int) error
}
