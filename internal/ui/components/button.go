package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gctb/internal/ui/theme"
)

var (
	buttonActive = lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(theme.Text).
			Bold(true).
			Padding(0, 2)

	buttonInactive = lipgloss.NewStyle().
			Background(theme.BgCard).
			Foreground(theme.TextDim).
			Padding(0, 2)
)

// ButtonRow is a horizontal row of buttons with one focused.
type ButtonRow struct {
	Labels  []string
	Focused int
}

// NewButtonRow creates a row focused on the first button.
func NewButtonRow(labels ...string) ButtonRow {
	return ButtonRow{Labels: labels}
}

// Next moves focus right, wrapping around.
func (b ButtonRow) Next() ButtonRow {
	if len(b.Labels) > 0 {
		b.Focused = (b.Focused + 1) % len(b.Labels)
	}
	return b
}

// Prev moves focus left, wrapping around.
func (b ButtonRow) Prev() ButtonRow {
	if len(b.Labels) > 0 {
		b.Focused = (b.Focused - 1 + len(b.Labels)) % len(b.Labels)
	}
	return b
}

// View renders the row.
func (b ButtonRow) View() string {
	parts := make([]string, 0, 2*len(b.Labels))
	for i, l := range b.Labels {
		if i > 0 {
			parts = append(parts, "  ")
		}
		if i == b.Focused {
			parts = append(parts, buttonActive.Render("▸ "+l))
		} else {
			parts = append(parts, buttonInactive.Render("  "+l))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
