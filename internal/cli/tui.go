package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/releaseorder/pkg/order"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// CycleBrowserModel - Interactive cycle inspection
// =============================================================================

// CycleBrowserModel is the bubbletea model for browsing reference cycles.
// The table lists every cycle; the pane below it spells out the references
// of the cycle under the cursor.
type CycleBrowserModel struct {
	Cycles []order.Cycle
	Cursor int
	Height int
	Offset int
}

// NewCycleBrowserModel creates a new cycle browser.
func NewCycleBrowserModel(cycles []order.Cycle) CycleBrowserModel {
	return CycleBrowserModel{
		Cycles: cycles,
		Height: 10,
	}
}

func (m CycleBrowserModel) Init() tea.Cmd {
	return nil
}

func (m CycleBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Cycles)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = max(len(m.Cycles)-1, 0)
			m.Offset = max(m.Cursor-m.Height+1, 0)
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-12, 3)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m CycleBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Reference Cycles (%d)", len(m.Cycles))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	if len(m.Cycles) == 0 {
		b.WriteString(listDimStyle.Render("  no cycles"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Cycles))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		c := m.Cycles[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, fmt.Sprint(i + 1), fmt.Sprint(c.Len()), strings.Join(c.Members(), ", ")})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Size", "Members").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(m.detail())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Cycles))))

	return b.String()
}

// detail lists the references that make up the selected cycle.
func (m CycleBrowserModel) detail() string {
	c := m.Cycles[m.Cursor]
	var b strings.Builder
	for i, from := range c.Path {
		to := c.Path[(i+1)%len(c.Path)]
		fmt.Fprintf(&b, "  %s %s %s\n",
			StyleValue.Render(from),
			listDimStyle.Render("requires"),
			StyleCycle.Render(to))
	}
	return b.String()
}
