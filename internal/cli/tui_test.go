package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(m SizePickerModel, keys ...string) SizePickerModel {
	var model tea.Model = m
	for _, k := range keys {
		model, _ = model.Update(keyMsg(k))
	}
	return model.(SizePickerModel)
}

func TestSizePickerDefaults(t *testing.T) {
	m := NewSizePickerModel()

	if m.Confirmed {
		t.Error("new picker should not be confirmed")
	}
	if m.Sizes() != nil {
		t.Error("unconfirmed picker should return nil sizes")
	}
	if got := m.checkedCount(); got != 4 {
		t.Errorf("checkedCount() = %d, want 4 defaults", got)
	}
}

func TestSizePickerConfirm(t *testing.T) {
	m := update(NewSizePickerModel(), "enter")

	if !m.Confirmed {
		t.Fatal("enter should confirm")
	}
	sizes := m.Sizes()
	want := []int{16, 24, 32, 48}
	if len(sizes) != len(want) {
		t.Fatalf("Sizes() = %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("Sizes()[%d] = %d, want %d", i, sizes[i], want[i])
		}
	}
}

func TestSizePickerToggle(t *testing.T) {
	// Toggle off the first row (16px), toggle on the fifth (64px).
	m := update(NewSizePickerModel(), " ", "down", "down", "down", "down", " ", "enter")

	sizes := m.Sizes()
	want := []int{24, 32, 48, 64}
	if len(sizes) != len(want) {
		t.Fatalf("Sizes() = %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("Sizes()[%d] = %d, want %d", i, sizes[i], want[i])
		}
	}
}

func TestSizePickerRefusesEmptyConfirm(t *testing.T) {
	m := NewSizePickerModel()
	m.Checked = map[int]bool{}

	m = update(m, "enter")
	if m.Confirmed {
		t.Error("enter with nothing checked should not confirm")
	}
}

func TestSizePickerCursorBounds(t *testing.T) {
	m := update(NewSizePickerModel(), "up", "up")
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0 at top", m.Cursor)
	}

	downs := make([]string, len(sizePresets)+3)
	for i := range downs {
		downs[i] = "down"
	}
	m = update(m, downs...)
	if m.Cursor != len(sizePresets)-1 {
		t.Errorf("cursor = %d, want last row", m.Cursor)
	}
}

func TestSizePickerView(t *testing.T) {
	m := NewSizePickerModel()
	view := m.View()

	if !strings.Contains(view, "Select Sizes") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "16px") {
		t.Error("view missing size rows")
	}
	if !strings.Contains(view, "[x]") || !strings.Contains(view, "[ ]") {
		t.Error("view missing checkboxes")
	}
	if !strings.Contains(view, "4 selected") {
		t.Error("view missing selection count")
	}
}
