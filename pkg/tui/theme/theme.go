// Package theme centralizes Lip Gloss styles for the planner board.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles used by the board UI.
type Theme struct {
	Column       lipgloss.Style
	ColumnToday  lipgloss.Style
	Header       lipgloss.Style
	HeaderToday  lipgloss.Style
	Note         lipgloss.Style
	NoteSelected lipgloss.Style
	NoteDone     lipgloss.Style
	NoteSeries   lipgloss.Style
	Card         lipgloss.Style
	Placeholder  lipgloss.Style
	Help         lipgloss.Style
	Status       lipgloss.Style
}

// Light is the default theme.
func Light() Theme {
	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250")).
		Padding(0, 1)

	return Theme{
		Column:       column,
		ColumnToday:  column.Copy().BorderForeground(lipgloss.Color("33")),
		Header:       lipgloss.NewStyle().Bold(true),
		HeaderToday:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		Note:         lipgloss.NewStyle(),
		NoteSelected: lipgloss.NewStyle().Reverse(true),
		NoteDone:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		NoteSeries:   lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
		Card:         lipgloss.NewStyle().Faint(true),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// Dark adjusts the palette for dark backgrounds.
func Dark() Theme {
	t := Light()
	t.Column = t.Column.Copy().BorderForeground(lipgloss.Color("240"))
	t.ColumnToday = t.ColumnToday.Copy().BorderForeground(lipgloss.Color("39"))
	t.HeaderToday = t.HeaderToday.Copy().Foreground(lipgloss.Color("39"))
	t.NoteSeries = t.NoteSeries.Copy().Foreground(lipgloss.Color("141"))
	t.Placeholder = t.Placeholder.Copy().Foreground(lipgloss.Color("39"))
	return t
}
