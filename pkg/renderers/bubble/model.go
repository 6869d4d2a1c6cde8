// Package bubble renders a form as a full screen bubbletea program. Keys are
// fed to the form's text fields, so masks format input while it is typed.
package bubble

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/termstyle"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

const defaultFieldWidth = 36

// Model is the bubbletea model editing one form. Views are shared with the
// form, so Update mutates them in place.
type Model struct {
	form      *render.Form
	styles    termstyle.Styles
	focus     int
	width     int
	submitted bool
	aborted   bool
}

// NewModel focuses the first enabled field of form.
func NewModel(form *render.Form, styles termstyle.Styles) Model {
	m := Model{form: form, styles: styles, focus: -1, width: defaultFieldWidth}
	m.focusFrom(0, 1)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Submitted reports whether the form was submitted with every field valid.
func (m Model) Submitted() bool { return m.submitted }

// Aborted reports whether the user cancelled.
func (m Model) Aborted() bool { return m.aborted }

// Focused returns the name of the focused field, or "".
func (m Model) Focused() string {
	if view := m.current(); view != nil {
		return view.Field().Name()
	}
	return ""
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.width = min(msg.Width-4, 2*defaultFieldWidth)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		m.blur()
		return m, tea.Quit
	case "tab", "down":
		m.focusFrom(m.focus+1, 1)
		return m, nil
	case "shift+tab", "up":
		m.focusFrom(m.focus-1, -1)
		return m, nil
	case "enter":
		return m.submit()
	}

	view := m.current()
	if view == nil {
		return m, nil
	}
	field := view.Field()
	switch msg.Type {
	case tea.KeyBackspace:
		field.Backspace()
	case tea.KeyCtrlU:
		field.Clear()
	case tea.KeyLeft:
		field.SetCursor(field.Cursor() - 1)
	case tea.KeyRight:
		field.SetCursor(field.Cursor() + 1)
	case tea.KeySpace:
		field.Type(" ")
	case tea.KeyRunes:
		if msg.Paste {
			field.Paste(string(msg.Runes))
		} else {
			field.Type(string(msg.Runes))
		}
	}
	return m, nil
}

// submit checks the form. On failure focus moves to the first failing field.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	if m.form.Check() {
		m.submitted = true
		m.blur()
		return m, tea.Quit
	}
	for i, view := range m.form.Views {
		if view.HasError() && view.Field().Enabled() {
			m.setFocus(i)
			break
		}
	}
	return m, nil
}

func (m *Model) focusFrom(start, step int) {
	if m.form == nil {
		return
	}
	n := len(m.form.Views)
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		idx := ((start+step*i)%n + n) % n
		if m.form.Views[idx].Field().Enabled() {
			m.setFocus(idx)
			return
		}
	}
}

func (m *Model) setFocus(idx int) {
	if idx == m.focus {
		return
	}
	m.blur()
	m.focus = idx
	m.form.Views[idx].Field().BeginEditing()
}

func (m *Model) blur() {
	if view := m.current(); view != nil {
		view.Field().EndEditing()
	}
}

func (m Model) current() *widgets.TextFieldView {
	if m.form == nil || m.focus < 0 || m.focus >= len(m.form.Views) {
		return nil
	}
	return m.form.Views[m.focus]
}

// View implements tea.Model.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	var b strings.Builder
	if title := strings.TrimSpace(m.form.Spec.Title); title != "" {
		b.WriteString(m.styles.FormTitle.Render(title))
		b.WriteString("\n\n")
	}
	for _, message := range m.form.FormErrors() {
		b.WriteString(m.styles.Error.Render(message))
		b.WriteString("\n")
	}
	for i, view := range m.form.Views {
		b.WriteString(m.renderField(view.Snapshot(), i == m.focus))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("tab next • enter submit • esc cancel"))
	return b.String()
}

func (m Model) renderField(snap widgets.Snapshot, focused bool) string {
	lines := make([]string, 0, 3)
	title := snap.Title
	if snap.TitleHidden {
		title = snap.Name
	}
	lines = append(lines, m.styles.Title.Render(title))

	var content string
	switch {
	case snap.Text == "" && !focused:
		content = m.styles.Placeholder.Render(snap.Placeholder.Text)
	case focused:
		content = withCursor(snap.DisplayText, snap.Cursor, m.styles.Cursor)
	default:
		content = snap.DisplayText
	}
	lines = append(lines, m.styles.Field(snap.State).Width(m.width).Render(content))

	if snap.ErrorText != "" {
		lines = append(lines, m.styles.Error.Render(snap.ErrorText))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func withCursor(text string, cursor int, style lipgloss.Style) string {
	runes := []rune(text)
	if cursor < 0 || cursor > len(runes) {
		cursor = len(runes)
	}
	under := " "
	rest := ""
	if cursor < len(runes) {
		under = string(runes[cursor])
		rest = string(runes[cursor+1:])
	}
	return string(runes[:cursor]) + style.Render(under) + rest
}
