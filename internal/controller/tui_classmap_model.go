package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/autoload/internal/model"
)

// entryItem is one class map entry in the interactive list.
type entryItem struct {
	id   string
	path string
}

func (e entryItem) FilterValue() string {
	return e.id
}

type entryDelegate struct {
	idWidth int
}

func (d entryDelegate) Height() int  { return 1 }
func (d entryDelegate) Spacing() int { return 0 }
func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d entryDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	entry, ok := item.(entryItem)
	if !ok {
		return
	}

	idWidth := min(d.idWidth, lm.Width()/2)
	pathWidth := lm.Width() - idWidth - 2

	idCell := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(idWidth)
	pathCell := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	if index == lm.Index() {
		idCell = idCell.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		pathCell = pathCell.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	}

	_, _ = fmt.Fprintf(w, "%s  %s",
		idCell.Render(truncateToWidth(entry.id, idWidth)),
		pathCell.Render(truncateToWidth(entry.path, pathWidth)),
	)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// classMapModel browses a class map too long for the terminal.
type classMapModel struct {
	width   int
	height  int
	entries list.Model
	total   int
}

func newClassMapModel(classMap *m.ClassMap, width, height int) classMapModel {
	items := make([]list.Item, 0, classMap.Len())
	idWidth := 0

	for id, path := range classMap.All() {
		items = append(items, entryItem{id: string(id), path: string(path)})
		idWidth = max(idWidth, lipgloss.Width(string(id)))
	}

	entries := list.New(items, entryDelegate{idWidth: idWidth}, width, height)
	entries.SetShowPagination(false)
	entries.SetShowFilter(true)
	entries.SetShowHelp(false)
	entries.SetShowTitle(false)
	entries.SetShowStatusBar(false)
	entries.FilterInput.Placeholder = "Filter by identifier…"

	model := classMapModel{
		width:   width,
		height:  height,
		entries: entries,
		total:   classMap.Len(),
	}
	model.resize()

	return model
}

func (cm classMapModel) Init() tea.Cmd {
	return nil
}

func (cm classMapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cm.width = msg.Width
		cm.height = msg.Height
		cm.resize()

		return cm, nil

	case tea.KeyMsg:
		if cm.entries.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return cm, tea.Quit
			}
		}
	}

	var cmd tea.Cmd

	cm.entries, cmd = cm.entries.Update(msg)

	return cm, cmd
}

func (cm classMapModel) View() string {
	title := titleStyle.Padding(1, 0, 0, 2).Render("Class map")
	summary := lipgloss.NewStyle().Padding(0, 0, 1, 2).Render(fmt.Sprintf(
		"Entries: %s   Showing: %s",
		accentStyle.Render(fmt.Sprintf("%d", cm.total)),
		accentStyle.Render(fmt.Sprintf("%d", len(cm.entries.VisibleItems()))),
	))

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	footer := mutedStyle.
		Align(lipgloss.Center).
		Width(cm.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		container.Render(cm.entries.View()),
		footer,
	)
}

// resize fits the list between the title, summary, border and footer.
func (cm *classMapModel) resize() {
	cm.entries.SetHeight(max(cm.height-9, 5))
	cm.entries.SetWidth(max(cm.width-6, 20))
}
