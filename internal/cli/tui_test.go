package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/releaseorder/pkg/order"
)

func testCycles() []order.Cycle {
	return []order.Cycle{
		{Path: []string{"d"}},
		{Path: []string{"a", "b"}},
		{Path: []string{"b", "c", "e"}},
	}
}

func press(m tea.Model, key string) tea.Model {
	var msg tea.KeyMsg
	switch key {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m, _ = m.Update(msg)
	return m
}

func TestCycleBrowserModel_Navigation(t *testing.T) {
	var m tea.Model = NewCycleBrowserModel(testCycles())

	m = press(m, "down")
	m = press(m, "down")
	m = press(m, "down")
	if got := m.(CycleBrowserModel).Cursor; got != 2 {
		t.Errorf("Cursor after 3 downs = %d, want 2", got)
	}
	m = press(m, "up")
	if got := m.(CycleBrowserModel).Cursor; got != 1 {
		t.Errorf("Cursor after up = %d, want 1", got)
	}
	m = press(m, "g")
	if got := m.(CycleBrowserModel).Cursor; got != 0 {
		t.Errorf("Cursor after g = %d, want 0", got)
	}
	m = press(m, "G")
	if got := m.(CycleBrowserModel).Cursor; got != 2 {
		t.Errorf("Cursor after G = %d, want 2", got)
	}
}

func TestCycleBrowserModel_Scroll(t *testing.T) {
	m := NewCycleBrowserModel(testCycles())
	m.Height = 1

	var model tea.Model = m
	model = press(model, "down")
	if got := model.(CycleBrowserModel).Offset; got != 1 {
		t.Errorf("Offset = %d, want 1", got)
	}
}

func TestCycleBrowserModel_Quit(t *testing.T) {
	m := NewCycleBrowserModel(testCycles())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("Update(q) returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Update(q) should quit")
	}
}

func TestCycleBrowserModel_View(t *testing.T) {
	m := NewCycleBrowserModel(testCycles())
	m.Cursor = 1
	view := m.View()

	for _, want := range []string{"Reference Cycles (3)", "a, b", "requires", "[2/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	empty := NewCycleBrowserModel(nil).View()
	if !strings.Contains(empty, "no cycles") {
		t.Errorf("View() of no cycles:\n%s", empty)
	}
}
