package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// CheckboxOption represents a checkbox choice
type CheckboxOption struct {
	Label   string
	Value   string
	Checked bool
}

// CheckboxModel is the bubbletea model for multi-select prompts. At
// least one option must be checked before enter confirms.
type CheckboxModel struct {
	title   string
	options []CheckboxOption
	cursor  int
	done    bool
}

// NewCheckboxModel creates a new checkbox selector
func NewCheckboxModel(title string, options []CheckboxOption) CheckboxModel {
	return CheckboxModel{
		title:   title,
		options: options,
	}
}

func (m CheckboxModel) Init() tea.Cmd {
	return nil
}

func (m CheckboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case " ", "x":
			m.options[m.cursor].Checked = !m.options[m.cursor].Checked
		case "a":
			all := m.countSelected() == len(m.options)
			for i := range m.options {
				m.options[i].Checked = !all
			}
		case "enter":
			if m.countSelected() > 0 {
				m.done = true
				return m, tea.Quit
			}
		case "q", "ctrl+c", "esc":
			m.done = false
			for i := range m.options {
				m.options[i].Checked = false
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m CheckboxModel) countSelected() int {
	count := 0
	for _, opt := range m.options {
		if opt.Checked {
			count++
		}
	}
	return count
}

func (m CheckboxModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		checkbox := "[ ]"
		style := uncheckedStyle
		if opt.Checked {
			checkbox = "[x]"
			style = checkedStyle
		}

		sb.WriteString(style.Render(fmt.Sprintf("%s%s %s", cursor, checkbox, opt.Label)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.countSelected() == 0 {
		sb.WriteString(statusStyle.Render("(select at least one)"))
		sb.WriteString("\n")
	}
	sb.WriteString("(space=toggle, a=all, enter=confirm, q=cancel)\n")

	return sb.String()
}

// Selected returns the selected option values
func (m CheckboxModel) Selected() []string {
	var result []string
	for _, opt := range m.options {
		if opt.Checked {
			result = append(result, opt.Value)
		}
	}
	return result
}

// Cancelled returns true if the user cancelled
func (m CheckboxModel) Cancelled() bool {
	return !m.done
}

// RunCheckbox displays checkboxes and returns selected values, nil
// when cancelled
func RunCheckbox(title string, options []CheckboxOption) ([]string, error) {
	model := NewCheckboxModel(title, options)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result := finalModel.(CheckboxModel)
	if result.Cancelled() {
		return nil, nil
	}
	return result.Selected(), nil
}

// RunFormatSelector asks which output formats to export, defaulting
// to the given format. Returns nil when cancelled.
func RunFormatSelector(defaultFormat string) ([]string, error) {
	options := []CheckboxOption{
		{Label: "SRT subtitles", Value: "srt"},
		{Label: "WebVTT cues", Value: "vtt"},
		{Label: "Plain text", Value: "txt"},
	}
	for i := range options {
		if options[i].Value == defaultFormat {
			options[i].Checked = true
		}
	}

	return RunCheckbox("Which formats to export?", options)
}
