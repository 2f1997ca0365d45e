package main

import "github.com/charmbracelet/lipgloss"

// Style controls the demo's rendering, mirroring the small, explicit
// Style struct shape used elsewhere in this codebase's ecosystem rather
// than a theme system.
type Style struct {
	Text      lipgloss.Style
	Atomic    lipgloss.Style
	Selection lipgloss.Style
	Caret     lipgloss.Style
	StatusBar lipgloss.Style
	Inspector lipgloss.Style
}

// DefaultStyle returns the demo's default styling, built from r so colors
// degrade to whatever profile the terminal actually supports.
func DefaultStyle(r *lipgloss.Renderer) Style {
	return Style{
		Text:      r.NewStyle(),
		Atomic:    r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Selection: r.NewStyle().Background(lipgloss.Color("237")),
		Caret:     r.NewStyle().Reverse(true),
		StatusBar: r.NewStyle().Foreground(lipgloss.Color("240")),
		Inspector: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("244")).
			Padding(0, 1),
	}
}
