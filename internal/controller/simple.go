package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/autoload/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain tables written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayClassMap prints one row per entry, in map order.
func (s *SimpleUI) DisplayClassMap(classMap *m.ClassMap) error {
	table, buf := s.newTable([]string{"Identifier", "Path"})

	for id, path := range classMap.All() {
		table.Append([]string{string(id), string(path)})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", classMap.Len())})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayPrefixes prints the modern bindings then the legacy ones, each in
// table order.
func (s *SimpleUI) DisplayPrefixes(legacy, modern []m.PrefixBinding) error {
	if len(legacy)+len(modern) == 0 {
		s.printf("no prefixes registered\n")
		return nil
	}

	table, buf := s.newTable([]string{"Convention", "Prefix", "Directory"})

	for _, b := range modern {
		table.Append([]string{string(m.ConventionModern), b.Prefix, string(b.Dir)})
	}

	for _, b := range legacy {
		table.Append([]string{string(m.ConventionLegacy), b.Prefix, string(b.Dir)})
	}

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayResolutions prints one row per identifier. Misses show "-" as path.
func (s *SimpleUI) DisplayResolutions(resolutions []m.Resolution) error {
	table, buf := s.newTable([]string{"Identifier", "Source", "Prefix", "Path"})

	found := 0

	for _, res := range resolutions {
		path := "-"
		if res.Found() {
			path = string(res.Path)
			found++
		}

		table.Append([]string{string(res.Identifier), string(res.Source), res.Prefix, path})
	}

	table.SetFooter([]string{"Resolved", fmt.Sprintf("%d/%d", found, len(resolutions)), "", ""})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplaySaved reports where a class map was written.
func (s *SimpleUI) DisplaySaved(url string, entries int) error {
	s.printf("wrote %d entries to %s\n", entries, url)
	return nil
}

func (s *SimpleUI) newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table, &buf
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
