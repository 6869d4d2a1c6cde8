// Package termstyle derives lipgloss styles for terminal renderers from a
// design-token table.
package termstyle

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formwidgets/pkg/tokens"
)

// Color converts a token color to a lipgloss color. Alpha is dropped.
func Color(c tokens.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Styles holds the terminal styles of a form.
type Styles struct {
	table tokens.Table

	FormTitle   lipgloss.Style
	Title       lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
	Success     lipgloss.Style
	Cursor      lipgloss.Style
}

// New derives styles from table.
func New(table tokens.Table) Styles {
	palette := table.Palette()
	scheme := table.Scheme()
	return Styles{
		table:       table,
		FormTitle:   lipgloss.NewStyle().Foreground(Color(scheme.Primary)).Bold(true),
		Title:       lipgloss.NewStyle().Foreground(Color(palette.InkPrimary)).Bold(true),
		Text:        lipgloss.NewStyle().Foreground(Color(palette.InkPrimary)),
		Placeholder: lipgloss.NewStyle().Foreground(Color(palette.InkTertiary)),
		Error:       lipgloss.NewStyle().Foreground(Color(scheme.Error)),
		Help:        lipgloss.NewStyle().Foreground(Color(palette.InfoGray)).Italic(true),
		Success:     lipgloss.NewStyle().Foreground(Color(palette.Forest)),
		Cursor:      lipgloss.NewStyle().Reverse(true),
	}
}

// Field returns the bordered box style for a field in state. Rounded
// borders stand in for the corner radius.
func (s Styles) Field(state tokens.FieldState) lipgloss.Style {
	colors := s.table.FieldColors(state)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Color(colors.Border)).
		Foreground(Color(colors.Text)).
		Padding(0, 1)
}
