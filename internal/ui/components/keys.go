package components

import "charm.land/bubbles/v2/key"

// Shared navigation bindings.
var (
	KeyUp = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	)
	KeyDown = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	)
	KeyLeft = key.NewBinding(
		key.WithKeys("left", "h", "shift+tab"),
		key.WithHelp("←", "previous"),
	)
	KeyRight = key.NewBinding(
		key.WithKeys("right", "l", "tab"),
		key.WithHelp("→", "next"),
	)
	KeyEnter = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	)
	KeyBack = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	)
	KeyQuit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "quit"),
	)
)

// Hint returns b with its help text replaced, for footers that describe a
// shared binding in a screen's own words.
func Hint(b key.Binding, keys, desc string) key.Binding {
	b.SetHelp(keys, desc)
	return b
}

// AnyKey is a footer-only binding for screens that react to every key.
func AnyKey(desc string) key.Binding {
	return key.NewBinding(key.WithKeys("any"), key.WithHelp("any key", desc))
}
