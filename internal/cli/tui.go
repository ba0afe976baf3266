package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/describe"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/figma"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// NodePickerModel - Interactive node selection
// =============================================================================

// NodePickerModel is the bubbletea model for choosing which top-level nodes
// feed the renderer.
type NodePickerModel struct {
	Nodes     []*figma.Node
	Cursor    int
	Checked   map[int]bool
	Confirmed bool
	Height    int
	Offset    int
}

// NewNodePickerModel creates a picker with every node pre-selected.
func NewNodePickerModel(nodes []*figma.Node) NodePickerModel {
	checked := make(map[int]bool, len(nodes))
	for i := range nodes {
		checked[i] = true
	}
	return NodePickerModel{
		Nodes:   nodes,
		Checked: checked,
		Height:  15,
	}
}

// Selection returns the checked nodes in input order, or nil if the picker
// was quit without confirming.
func (m NodePickerModel) Selection() []*figma.Node {
	if !m.Confirmed {
		return nil
	}
	var out []*figma.Node
	for i, n := range m.Nodes {
		if m.Checked[i] {
			out = append(out, n)
		}
	}
	return out
}

func (m NodePickerModel) Init() tea.Cmd {
	return nil
}

func (m NodePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Nodes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ":
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		case "a":
			all := true
			for i := range m.Nodes {
				if !m.Checked[i] {
					all = false
					break
				}
			}
			for i := range m.Nodes {
				m.Checked[i] = !all
			}
		case "enter":
			m.Confirmed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m NodePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Layers"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Nodes) {
		end = len(m.Nodes)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		n := m.Nodes[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		mark := " "
		if m.Checked[i] {
			mark = "✓"
		}

		name := n.Name
		if name == "" {
			name = "—"
		}

		size := fmt.Sprintf("%s×%s", describe.FormatNumber(n.Width), describe.FormatNumber(n.Height))

		children := "—"
		if len(n.Children) > 0 {
			children = fmt.Sprintf("%d", len(n.Children))
		}

		rows = append(rows, []string{cursor, mark, string(n.Kind), name, size, children})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Kind", "Name", "Size", "Children").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Nodes) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor
			isChecked := m.Checked[actualIdx]

			base := lipgloss.NewStyle()
			if isCurrent {
				base = base.Bold(true)
			}
			if isChecked {
				return base.Foreground(colorGreen)
			}
			if isCurrent {
				return base.Foreground(colorWhite)
			}
			return base.Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	count := 0
	for i := range m.Nodes {
		if m.Checked[i] {
			count++
		}
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d selected]", count, len(m.Nodes))))

	return b.String()
}

// pickNodes runs the interactive picker and returns the chosen nodes.
// A nil result means the user quit without confirming.
func pickNodes(nodes []*figma.Node) ([]*figma.Node, error) {
	model := NewNodePickerModel(nodes)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}
	m, ok := final.(NodePickerModel)
	if !ok {
		return nil, nil
	}
	return m.Selection(), nil
}
