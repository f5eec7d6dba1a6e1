package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devbush/scribepad/internal/domain"
)

const (
	editorDefaultWidth  = 80
	editorDefaultHeight = 16
)

// EditorModel is the bubbletea model for the paginated transcript
// editor. The current page lives in the textarea; switching pages
// commits the textarea back into the edit session first, so edits on
// other pages are never lost.
type EditorModel struct {
	session    *domain.EditSession
	textarea   textarea.Model
	sourceName string
	format     domain.Format
	duration   float64
	width      int
	height     int
	saved      bool
}

// NewEditorModel creates an editor over an edit session
func NewEditorModel(session *domain.EditSession, sourceName string, format domain.Format, duration float64) EditorModel {
	ta := textarea.New()
	ta.Placeholder = "(empty page)"
	ta.CharLimit = 0
	ta.SetWidth(editorDefaultWidth)
	ta.SetHeight(editorDefaultHeight)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.SetValue(session.CurrentText())
	ta.Focus()

	return EditorModel{
		session:    session,
		textarea:   ta,
		sourceName: sourceName,
		format:     format,
		duration:   duration,
		width:      editorDefaultWidth,
		height:     editorDefaultHeight,
	}
}

func (m EditorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width - 4)
		if msg.Height > 8 {
			m.textarea.SetHeight(msg.Height - 6)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.commitPage()
			m.saved = false
			return m, tea.Quit

		case "ctrl+s":
			m.commitPage()
			m.saved = true
			return m, tea.Quit

		case "pgdown", "ctrl+n":
			m.commitPage()
			if m.session.Next() {
				m.loadPage()
			}
			return m, nil

		case "pgup", "ctrl+p":
			m.commitPage()
			if m.session.Prev() {
				m.loadPage()
			}
			return m, nil

		case "ctrl+r":
			m.session.ResetPage(m.session.Current())
			m.loadPage()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// commitPage writes the textarea content into the working copy
func (m *EditorModel) commitPage() {
	m.session.Edit(m.textarea.Value())
}

// loadPage fills the textarea from the current page
func (m *EditorModel) loadPage() {
	m.textarea.SetValue(m.session.CurrentText())
	m.textarea.CursorStart()
}

func (m EditorModel) View() string {
	var sb strings.Builder

	title := fmt.Sprintf("Editing transcript: %s", m.sourceName)
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")

	sb.WriteString(editorFrame.Render(m.textarea.View()))
	sb.WriteString("\n")

	status := fmt.Sprintf("Page %d of %d • %s • %s",
		m.session.Current()+1, max(m.session.PageCount(), 1),
		m.format, FormatTimecode(m.duration))
	sb.WriteString(statusStyle.Render(status))
	if m.session.Modified() {
		sb.WriteString(" ")
		sb.WriteString(modifiedStyle.Render("[edited]"))
	}
	sb.WriteString("\n")

	sb.WriteString(statusStyle.Render("(pgup/pgdn pages, ctrl+r reset page, ctrl+s save, esc discard)"))
	sb.WriteString("\n")

	return sb.String()
}

// Saved reports whether the user chose to save and export
func (m EditorModel) Saved() bool {
	return m.saved
}

// RunEditor opens the editor over a session and reports whether the
// user saved. The session carries the edits either way.
func RunEditor(session *domain.EditSession, sourceName string, format domain.Format, duration float64) (bool, error) {
	model := NewEditorModel(session, sourceName, format, duration)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	return finalModel.(EditorModel).Saved(), nil
}
