// Command vibetext-demo is a terminal harness for the caret/selection/
// navigation core: it lays out a small fixed document, binds the default
// key map to it, and renders the live caret and selection as you move
// around. It owns no document mutation — arrows, shift-arrows, Home/End,
// Ctrl+arrows, and Ctrl+A are the whole navigation surface; Tab toggles a
// position inspector and Ctrl+C or Esc quits.
package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func main() {
	// Detecting the terminal's color profile up front lets the demo's
	// lipgloss styles degrade gracefully on a dumb terminal instead of
	// emitting escape codes the host can't render.
	renderer := lipgloss.NewRenderer(os.Stdout)
	renderer.SetColorProfile(termenv.NewOutput(os.Stdout).ColorProfile())

	p := tea.NewProgram(newModel(renderer), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
