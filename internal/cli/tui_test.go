package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhersch/graphio/pkg/codec"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestFormatListModelNavigation(t *testing.T) {
	m := NewFormatListModel()
	if m.Cursor != 0 {
		t.Fatalf("initial cursor = %d", m.Cursor)
	}

	next, _ := m.Update(keyMsg("j"))
	m = next.(FormatListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(FormatListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.Cursor)
	}

	// Cursor stays in range at the top.
	next, _ = m.Update(keyMsg("k"))
	m = next.(FormatListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor should not go negative, got %d", m.Cursor)
	}
}

func TestFormatListModelSelect(t *testing.T) {
	m := NewFormatListModel()

	next, _ := m.Update(keyMsg("j"))
	m = next.(FormatListModel)
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(FormatListModel)

	if cmd == nil {
		t.Error("enter should quit the program")
	}
	if m.Selected == nil {
		t.Fatal("enter should record a selection")
	}
	if *m.Selected != codec.Formats()[1] {
		t.Errorf("Selected = %v, want %v", *m.Selected, codec.Formats()[1])
	}
}

func TestFormatListModelDismiss(t *testing.T) {
	m := NewFormatListModel()
	next, cmd := m.Update(keyMsg("esc"))
	m = next.(FormatListModel)

	if cmd == nil {
		t.Error("esc should quit the program")
	}
	if m.Selected != nil {
		t.Error("esc should not record a selection")
	}
}

func TestFormatListModelView(t *testing.T) {
	view := NewFormatListModel().View()
	for _, f := range codec.Formats() {
		if !strings.Contains(view, string(f)) {
			t.Errorf("view should list format %q", f)
		}
	}
}
