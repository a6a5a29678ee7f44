package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mhersch/graphio/pkg/codec"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// FormatListModel - Interactive output format selection
// =============================================================================

// formatDescriptions maps each writable format to its one-line hint.
var formatDescriptions = map[codec.Format]string{
	codec.FormatXML:           "round-trippable XML markup",
	codec.FormatDOT:           "Graphviz DOT, dialect detected automatically",
	codec.FormatDOTWeighted:   "Graphviz DOT with weight labels",
	codec.FormatDOTHypergraph: "Graphviz DOT hypergraph rendering",
}

// FormatListModel is the bubbletea model for interactive format selection.
type FormatListModel struct {
	Formats  []codec.Format
	Cursor   int
	Selected *codec.Format
}

// NewFormatListModel creates a new format list model.
func NewFormatListModel() FormatListModel {
	return FormatListModel{
		Formats: codec.Formats(),
		Cursor:  0,
	}
}

func (m FormatListModel) Init() tea.Cmd {
	return nil
}

func (m FormatListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Formats)-1 {
				m.Cursor++
			}
		case "enter":
			f := m.Formats[m.Cursor]
			m.Selected = &f
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m FormatListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Output Format"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, f := range m.Formats {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		line := fmt.Sprintf("%s%-10s %s", cursor, f, formatDescriptions[f])
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// pickFormat runs the interactive format picker. The second return value is
// false when the picker was dismissed without a selection.
func pickFormat() (codec.Format, bool, error) {
	p := tea.NewProgram(NewFormatListModel())
	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	fm, ok := finalModel.(FormatListModel)
	if !ok || fm.Selected == nil {
		return "", false, nil
	}
	return *fm.Selected, true, nil
}
