package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PickerItem is one selectable entry with a trailing annotation
type PickerItem struct {
	Label  string
	Value  string
	Detail string
}

// PickerModel is the bubbletea model for single-choice selection from
// an annotated list (model sizes, cached transcripts)
type PickerModel struct {
	title    string
	items    []PickerItem
	cursor   int
	selected string
}

// NewPickerModel creates a new picker
func NewPickerModel(title string, items []PickerItem) PickerModel {
	return PickerModel{
		title: title,
		items: items,
	}
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.items[m.cursor].Value
			return m, tea.Quit
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PickerModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n\n")

	maxLabel := 0
	for _, item := range m.items {
		if len(item.Label) > maxLabel {
			maxLabel = len(item.Label)
		}
	}

	for i, item := range m.items {
		cursor := "  "
		style := normalStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}

		line := fmt.Sprintf("%s%-*s  %s", cursor, maxLabel, item.Label, item.Detail)
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString("\n(up/down to navigate, enter to select, q to cancel)\n")
	return sb.String()
}

// Selected returns the chosen value, empty when cancelled
func (m PickerModel) Selected() string {
	return m.selected
}

// RunPicker displays the picker and returns the selection
func RunPicker(title string, items []PickerItem) (string, error) {
	model := NewPickerModel(title, items)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	return finalModel.(PickerModel).Selected(), nil
}
