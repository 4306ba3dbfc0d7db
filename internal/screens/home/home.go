package home

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gctb/internal/registry"
	"github.com/abhisek/gctb/internal/router"
	"github.com/abhisek/gctb/internal/screen"
	"github.com/abhisek/gctb/internal/screens/testrun"
	"github.com/abhisek/gctb/internal/ui/components"
	"github.com/abhisek/gctb/internal/ui/theme"
)

// HomeScreen lists the registered tests.
type HomeScreen struct {
	menu components.Menu
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a HomeScreen offering one entry per test config.
func New(tests []registry.TestConfig, opts testrun.Options) *HomeScreen {
	items := make([]components.MenuItem, 0, len(tests)+1)
	for _, cfg := range tests {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%-18s", cfg.Title),
			Detail: fmt.Sprintf("%s · %d practice / %d exam", cfg.ID, cfg.PracticeCount, cfg.ExamCount),
			Action: func() tea.Cmd {
				return router.Push(testrun.New(cfg, opts))
			},
		})
	}
	items = append(items, components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
		return tea.Quit
	}})

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []key.Binding {
	return []key.Binding{
		components.Hint(components.KeyDown, "↑↓", "navigate"),
		components.KeyEnter,
		components.KeyQuit,
	}
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Cognitive Test Practice"))
	sections = append(sections, theme.Subtitle.Width(cw).Render("Pick a test. Each one starts with its instructions."))
	sections = append(sections, lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(1, 2).
		Render(h.menu.View()))

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// Selected returns the index of the highlighted entry.
func (h *HomeScreen) Selected() int {
	return h.menu.Selected
}
