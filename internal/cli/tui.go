package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mechwright/switchyard/pkg/params"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// paramHelp describes what each placement parameter controls.
var paramHelp = map[string]string{
	"SwitchSpacing":      "center distance between adjacent switches",
	"FrameBorder":        "gap between the outermost switches and the outline",
	"ThumbRadius":        "radius of the thumb cluster arc",
	"ThumbRotationAngle": "angular step between thumb switches on the arc",
	"Col0Offset":         "vertical stagger of column 0",
	"Col1Offset":         "vertical stagger of column 1",
	"Col2Offset":         "vertical stagger of column 2",
	"Col3Offset":         "vertical stagger of column 3",
	"Col4Offset":         "vertical stagger of column 4",
	"Col5Offset":         "vertical stagger of column 5",
}

// =============================================================================
// ParamListModel - Interactive parameter browser
// =============================================================================

// ParamListModel is the bubbletea model for browsing placement parameters.
type ParamListModel struct {
	Keys     []string
	Set      params.Set
	Cursor   int
	Selected string
}

// NewParamListModel creates a parameter browser over the given set.
// Parameters are listed in the canonical required order.
func NewParamListModel(set params.Set) ParamListModel {
	return ParamListModel{
		Keys: append([]string(nil), params.Required...),
		Set:  set,
	}
}

func (m ParamListModel) Init() tea.Cmd {
	return nil
}

func (m ParamListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Keys)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Keys[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ParamListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Placement Parameters"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := [][]string{}
	for i, key := range m.Keys {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		q, ok := m.Set[key]
		value := "—"
		if ok {
			value = q.String()
		}
		rows = append(rows, []string{cursor, key, value, paramHelp[key]})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Parameter", "Value", "Controls").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				if col == 3 {
					return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
				}
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Keys))))

	return b.String()
}
