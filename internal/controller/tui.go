package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/autoload/internal/model"
)

// Lines used by the title, summary and footer around a static listing.
const staticChromeLines = 4

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	sourceStyles = map[m.ResolutionSource]lipgloss.Style{
		m.SourceOverride: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		m.SourceModern:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		m.SourceLegacy:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		m.SourceNone:     missStyle,
	}
)

// TUI implements UI with styled output for terminals. Class maps taller than
// the terminal open in an interactive, filterable list.
type TUI struct {
	output io.Writer
	input  io.Reader
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin}
}

// DisplayClassMap shows the entries of a class map.
func (t *TUI) DisplayClassMap(classMap *m.ClassMap) error {
	if width, height, ok := t.terminalSize(); ok && classMap.Len() > height-staticChromeLines {
		program := tea.NewProgram(
			newClassMapModel(classMap, width, height),
			tea.WithOutput(t.output),
			tea.WithInput(t.input),
			tea.WithAltScreen(),
		)

		_, err := program.Run()

		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Class map"))
	b.WriteString("\n")

	idWidth := 0
	for id := range classMap.All() {
		idWidth = max(idWidth, lipgloss.Width(string(id)))
	}

	for id, path := range classMap.All() {
		fmt.Fprintf(&b, "  %s  %s\n",
			idStyle.Width(idWidth).Render(string(id)),
			pathStyle.Render(string(path)),
		)
	}

	fmt.Fprintf(&b, "%s %s\n", mutedStyle.Render("entries:"), accentStyle.Render(fmt.Sprintf("%d", classMap.Len())))

	return t.write(b.String())
}

// DisplayPrefixes shows the modern then the legacy bindings.
func (t *TUI) DisplayPrefixes(legacy, modern []m.PrefixBinding) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Prefixes"))
	b.WriteString("\n")

	if len(legacy)+len(modern) == 0 {
		b.WriteString(mutedStyle.Render("  none registered"))
		b.WriteString("\n")

		return t.write(b.String())
	}

	writeBindings(&b, m.ConventionModern, modern)
	writeBindings(&b, m.ConventionLegacy, legacy)

	return t.write(b.String())
}

// DisplayResolutions shows one line per identifier with the source that
// resolved it.
func (t *TUI) DisplayResolutions(resolutions []m.Resolution) error {
	var b strings.Builder

	found := 0

	for _, res := range resolutions {
		style, ok := sourceStyles[res.Source]
		if !ok {
			style = mutedStyle
		}

		target := missStyle.Render("not found")
		if res.Found() {
			target = pathStyle.Render(string(res.Path))
			found++
		}

		fmt.Fprintf(&b, "%s %s %s", style.Width(9).Render(string(res.Source)), idStyle.Render(string(res.Identifier)), target)

		if res.Prefix != "" {
			fmt.Fprintf(&b, " %s", mutedStyle.Render("via "+res.Prefix))
		}

		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s %s\n", mutedStyle.Render("resolved:"), accentStyle.Render(fmt.Sprintf("%d/%d", found, len(resolutions))))

	return t.write(b.String())
}

// DisplaySaved reports where a class map was written.
func (t *TUI) DisplaySaved(url string, entries int) error {
	return t.write(fmt.Sprintf("%s %s entries to %s\n",
		titleStyle.Render("wrote"),
		accentStyle.Render(fmt.Sprintf("%d", entries)),
		pathStyle.Render(url),
	))
}

func (t *TUI) terminalSize() (int, int, bool) {
	file, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(file.Fd()))
	if err != nil || height <= 0 {
		return 0, 0, false
	}

	return width, height, true
}

func (t *TUI) write(s string) error {
	_, err := io.WriteString(t.output, s)
	return err
}

func writeBindings(b *strings.Builder, convention m.Convention, bindings []m.PrefixBinding) {
	prefixWidth := 0
	for _, binding := range bindings {
		prefixWidth = max(prefixWidth, lipgloss.Width(binding.Prefix))
	}

	for _, binding := range bindings {
		fmt.Fprintf(b, "  %s %s  %s\n",
			mutedStyle.Width(6).Render(string(convention)),
			idStyle.Width(prefixWidth).Render(binding.Prefix),
			pathStyle.Render(string(binding.Dir)),
		)
	}
}
