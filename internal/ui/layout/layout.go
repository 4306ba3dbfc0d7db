// Package layout draws the frame around the active screen: a header with
// the test status, the screen body and a footer of key hints.
package layout

import (
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gctb/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border).
	Padding(0, 1)

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

// RenderHeader draws the app name on the left, title in the middle and
// status (may be empty) on the right.
func RenderHeader(title, status string, width int) string {
	inner := max(width-bar.GetHorizontalFrameSize(), 0)

	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("GCTB")
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)
	side := max(lipgloss.Width(name), lipgloss.Width(right))
	mid := max(inner-2*side, 0)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(side, lipgloss.Left, name),
		lipgloss.PlaceHorizontal(mid, lipgloss.Center, lipgloss.NewStyle().Foreground(theme.Text).Render(title)),
		lipgloss.PlaceHorizontal(side, lipgloss.Right, right),
	)
	return bar.Width(width).Render(row)
}

// newHelp returns a short-help renderer in the app palette.
func newHelp(width int) help.Model {
	h := help.New()
	h.ShortSeparator = "   "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.TextDim)
	h.Styles.ShortSeparator = lipgloss.NewStyle()
	h.Styles.Ellipsis = lipgloss.NewStyle().Foreground(theme.TextDim)
	h.SetWidth(width)
	return h
}

// RenderFooter draws the help line for bindings. Disabled bindings are
// skipped and the line is truncated to fit.
func RenderFooter(bindings []key.Binding, width int) string {
	h := newHelp(max(width-bar.GetHorizontalFrameSize(), 0))
	return bar.Width(width).Render(h.ShortHelpView(bindings))
}

// RenderFrame stacks header, content and footer, giving the content all
// the rows the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).MaxHeight(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
