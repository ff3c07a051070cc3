package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// SizePickerModel - Interactive size selection
// =============================================================================

// sizePreset is a selectable row in the size picker.
type sizePreset struct {
	Size int
	Use  string
}

// sizePresets is the built-in size ramp offered by the picker. The default
// pipeline sizes start out checked.
var sizePresets = []sizePreset{
	{16, "toolbar, inline"},
	{24, "list items, buttons"},
	{32, "cards, headers"},
	{48, "empty states, dialogs"},
	{64, "feature tiles"},
	{96, "onboarding"},
	{128, "marketing, app icons"},
}

// SizePickerModel is the bubbletea model for interactive size selection.
type SizePickerModel struct {
	Presets   []sizePreset
	Cursor    int
	Checked   map[int]bool
	Confirmed bool
	Height    int
	Offset    int
}

// NewSizePickerModel creates a size picker with the default ramp checked.
func NewSizePickerModel() SizePickerModel {
	checked := map[int]bool{16: true, 24: true, 32: true, 48: true}
	return SizePickerModel{
		Presets: sizePresets,
		Checked: checked,
		Height:  10,
	}
}

// Sizes returns the confirmed selection in ascending order, or nil when the
// picker was dismissed without confirming.
func (m SizePickerModel) Sizes() []int {
	if !m.Confirmed {
		return nil
	}
	out := make([]int, 0, len(m.Checked))
	for size, on := range m.Checked {
		if on {
			out = append(out, size)
		}
	}
	sort.Ints(out)
	return out
}

func (m SizePickerModel) Init() tea.Cmd {
	return nil
}

func (m SizePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Presets)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ":
			size := m.Presets[m.Cursor].Size
			m.Checked[size] = !m.Checked[size]
		case "enter":
			if m.checkedCount() == 0 {
				return m, nil
			}
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

func (m SizePickerModel) checkedCount() int {
	n := 0
	for _, on := range m.Checked {
		if on {
			n++
		}
	}
	return n
}

func (m SizePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Sizes"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ␣ toggle  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Presets) {
		end = len(m.Presets)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Presets[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		check := "[ ]"
		if m.Checked[p.Size] {
			check = "[x]"
		}

		rows = append(rows, []string{cursor, check, fmt.Sprintf("%dpx", p.Size), p.Use})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Size", "Typical use").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Presets) {
				return lipgloss.NewStyle()
			}
			on := m.Checked[m.Presets[actualIdx].Size]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col == 3 {
				base = base.Foreground(colorDim)
			}

			if isCurrent {
				if on && col != 3 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			}
			if on && col != 3 {
				return base.Foreground(colorGreen)
			}
			if !on {
				return base.Foreground(colorDim)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d selected", m.checkedCount())))

	return b.String()
}

// pickSizes runs the interactive size picker and returns the chosen sizes.
// A dismissed picker returns nil with no error.
func pickSizes() ([]int, error) {
	p := tea.NewProgram(NewSizePickerModel())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("size picker: %w", err)
	}
	m, ok := final.(SizePickerModel)
	if !ok {
		return nil, nil
	}
	return m.Sizes(), nil
}
