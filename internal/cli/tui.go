package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/odpi/mermaidgraph/pkg/errors"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/builder"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
	headerStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// KindListModel - Interactive diagram kind selection
// =============================================================================

// KindListModel is the bubbletea model for interactive kind selection.
type KindListModel struct {
	Kinds    []builder.Kind
	Cursor   int
	Selected *builder.Kind
}

// NewKindListModel creates a new kind list model.
func NewKindListModel(kinds []builder.Kind) KindListModel {
	return KindListModel{Kinds: kinds}
}

func (m KindListModel) Init() tea.Cmd {
	return nil
}

func (m KindListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Kinds)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.Kinds) - 1
		case "enter":
			if len(m.Kinds) == 0 {
				return m, tea.Quit
			}
			k := m.Kinds[m.Cursor]
			m.Selected = &k
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m KindListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Diagram Kind"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")
	b.WriteString(kindTable(m.Kinds, m.Cursor).Render())
	b.WriteString("\n")

	return b.String()
}

// kindTable lays out kinds as a table. The row at cursor is highlighted;
// a negative cursor highlights nothing.
func kindTable(kinds []builder.Kind, cursor int) *table.Table {
	rows := make([][]string, len(kinds))
	for i, k := range kinds {
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		rows[i] = []string{marker, k.Name, k.Aggregate, k.Description}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Kind", "Aggregate", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == cursor:
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			case col == 1:
				return StyleHighlight
			case col == 3:
				return StyleDim
			}
			return lipgloss.NewStyle()
		})
}

// pickKind asks the user for a diagram kind.
func pickKind() (string, error) {
	model := NewKindListModel(builder.Kinds())
	final, err := tea.NewProgram(model, tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return "", fmt.Errorf("kind picker: %w", err)
	}
	if m, ok := final.(KindListModel); ok && m.Selected != nil {
		return m.Selected.Name, nil
	}
	return "", errors.New(errors.ErrCodeInvalidKind, "no diagram kind selected")
}
