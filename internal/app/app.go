package app

import (
	"fmt"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gctb/internal/registry"
	"github.com/abhisek/gctb/internal/router"
	"github.com/abhisek/gctb/internal/screen"
	"github.com/abhisek/gctb/internal/screens/home"
	"github.com/abhisek/gctb/internal/screens/notfound"
	"github.com/abhisek/gctb/internal/screens/testrun"
	"github.com/abhisek/gctb/internal/screens/welcome"
	"github.com/abhisek/gctb/internal/ui/components"
	"github.com/abhisek/gctb/internal/ui/layout"
)

// Options holds dependencies for the app.
type Options struct {
	Logger *slog.Logger

	// Tests are the configs offered on the home screen, in menu order.
	Tests []registry.TestConfig

	// InitialTest, when set, opens that test's intro on launch.
	InitialTest string

	// Splash shows the welcome animation before the home screen. It is
	// ignored when InitialTest is set.
	Splash bool

	Now func() time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen, and the
// requested test on top of it when one was named.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Tests == nil {
		opts.Tests = registry.All()
	}
	runOpts := testrun.Options{Logger: opts.Logger, Now: opts.Now}

	newHome := func() screen.Screen { return home.New(opts.Tests, runOpts) }

	if opts.InitialTest == "" && opts.Splash {
		w := welcome.New(newHome)
		return AppModel{router: router.New(w), initCmd: w.Init()}
	}

	m := AppModel{router: router.New(newHome())}
	if opts.InitialTest != "" {
		m.initCmd = m.router.Push(initialScreen(opts.InitialTest, opts.Tests, runOpts))
	}
	return m
}

func initialScreen(slug string, tests []registry.TestConfig, runOpts testrun.Options) screen.Screen {
	id, err := registry.ParseID(slug)
	if err != nil {
		return notfound.New(slug)
	}
	for _, cfg := range tests {
		if cfg.ID == id {
			return testrun.New(cfg, runOpts)
		}
	}
	return notfound.New(slug)
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []key.Binding
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []key.Binding{components.KeyBack, components.KeyQuit}
	} else {
		footerHints = []key.Binding{components.AnyKey("continue"), components.KeyQuit}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits. Screens
// still on the stack are closed afterwards so no run is left live.
func Run(opts Options) error {
	model := newAppModel(opts)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if fm, ok := final.(AppModel); ok {
		fm.router.Close()
	} else {
		model.router.Close()
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
