package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/figma"
)

func pickerNodes() []*figma.Node {
	return []*figma.Node{
		{Kind: figma.KindFrame, Name: "Header", Visible: true},
		{Kind: figma.KindFrame, Name: "Body", Visible: true},
		{Kind: figma.KindFrame, Name: "Footer", Visible: true},
	}
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(m NodePickerModel, msgs ...tea.Msg) NodePickerModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(NodePickerModel)
	}
	return m
}

func TestNodePickerDefaultsToAllSelected(t *testing.T) {
	m := NewNodePickerModel(pickerNodes())
	m = step(m, key("enter"))

	if got := len(m.Selection()); got != 3 {
		t.Errorf("Selection() = %d nodes, want 3", got)
	}
}

func TestNodePickerToggle(t *testing.T) {
	m := NewNodePickerModel(pickerNodes())

	// Deselect the second entry, then confirm.
	m = step(m, key("j"), key(" "), key("enter"))

	sel := m.Selection()
	if len(sel) != 2 {
		t.Fatalf("Selection() = %d nodes, want 2", len(sel))
	}
	if sel[0].Name != "Header" || sel[1].Name != "Footer" {
		t.Errorf("Selection order = %s, %s; want Header, Footer", sel[0].Name, sel[1].Name)
	}
}

func TestNodePickerToggleAll(t *testing.T) {
	m := NewNodePickerModel(pickerNodes())

	m = step(m, key("a"), key("enter"))
	if got := len(m.Selection()); got != 0 {
		t.Errorf("after deselect-all: Selection() = %d nodes, want 0", got)
	}

	m = NewNodePickerModel(pickerNodes())
	m = step(m, key(" "), key("a"), key("enter"))
	if got := len(m.Selection()); got != 3 {
		t.Errorf("after reselect-all: Selection() = %d nodes, want 3", got)
	}
}

func TestNodePickerQuitWithoutConfirm(t *testing.T) {
	m := NewNodePickerModel(pickerNodes())
	m = step(m, key("esc"))

	if m.Selection() != nil {
		t.Error("quitting without confirming must yield a nil selection")
	}
}

func TestNodePickerCursorBounds(t *testing.T) {
	m := NewNodePickerModel(pickerNodes())

	m = step(m, key("k"))
	if m.Cursor != 0 {
		t.Errorf("cursor moved above the first row: %d", m.Cursor)
	}

	m = step(m, key("j"), key("j"), key("j"), key("j"))
	if m.Cursor != 2 {
		t.Errorf("cursor moved past the last row: %d", m.Cursor)
	}
}
