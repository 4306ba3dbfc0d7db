package notfound

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gctb/internal/registry"
	"github.com/abhisek/gctb/internal/router"
	"github.com/abhisek/gctb/internal/screen"
	"github.com/abhisek/gctb/internal/ui/components"
	"github.com/abhisek/gctb/internal/ui/theme"
)

// NotFoundScreen is shown when a test id does not resolve.
type NotFoundScreen struct {
	id string
}

var (
	_ screen.Screen          = (*NotFoundScreen)(nil)
	_ screen.KeyHintProvider = (*NotFoundScreen)(nil)
)

// New creates a NotFoundScreen for the unknown id.
func New(id string) *NotFoundScreen {
	return &NotFoundScreen{id: id}
}

func (n *NotFoundScreen) Init() tea.Cmd {
	return nil
}

func (n *NotFoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return n, router.Pop()
	}
	return n, nil
}

func (n *NotFoundScreen) KeyHints() []key.Binding {
	return []key.Binding{components.AnyKey("back")}
}

func (n *NotFoundScreen) View(width, height int) string {
	ids := registry.IDs()
	known := ""
	for i, id := range ids {
		if i > 0 {
			known += ", "
		}
		known += id.String()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ Test not found ╌╌\n\n" +
			"There is no test called \"" + n.id + "\".\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Available: "+known))
}

func (n *NotFoundScreen) Title() string {
	return "Not Found"
}

// ID returns the id that failed to resolve.
func (n *NotFoundScreen) ID() string {
	return n.id
}
