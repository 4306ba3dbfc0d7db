package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gctb/internal/ui/theme"
)

// ContentWidth returns the inner width used for centered panels.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Panel wraps content in a rounded-border card at the given content width.
func Panel(content string, cw int) string {
	return theme.Card.
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(content)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
