package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gctb/internal/ui/theme"
)

// ChoiceTile is one answer option as drawn on screen.
type ChoiceTile struct {
	Keys string // key hint, such as "1" or "1/b"
	Text string
}

// ChoiceRow lays answer tiles out left to right, wrapping when they do
// not fit, with one tile under the cursor.
type ChoiceRow struct {
	Tiles  []ChoiceTile
	Cursor int
}

// Move shifts the cursor by delta, clamped to the row.
func (c ChoiceRow) Move(delta int) ChoiceRow {
	c.Cursor += delta
	if c.Cursor < 0 {
		c.Cursor = 0
	}
	if c.Cursor > len(c.Tiles)-1 {
		c.Cursor = len(c.Tiles) - 1
	}
	return c
}

// View renders the row within width.
func (c ChoiceRow) View(width int) string {
	if len(c.Tiles) == 0 {
		return ""
	}

	rendered := make([]string, len(c.Tiles))
	for i, t := range c.Tiles {
		style := theme.Tile
		if i == c.Cursor {
			style = theme.TileSelected
		}
		body := t.Text
		if t.Keys != "" {
			body = lipgloss.NewStyle().Foreground(theme.TextDim).Render("["+t.Keys+"]") + "\n" + body
		}
		rendered[i] = style.Render(body)
	}

	var rows []string
	var cur []string
	curWidth := 0
	for _, r := range rendered {
		w := lipgloss.Width(r) + 1
		if len(cur) > 0 && curWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cur...))
			cur, curWidth = nil, 0
		}
		cur = append(cur, r, " ")
		curWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cur...))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(rows, "\n"))
}
