// Package testrun is the screen that runs one test: an intro with the
// instructions and mode choice, the timed item phases, and a hand-off to
// the results screen when the run ends.
package testrun

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gctb/internal/itemgen"
	"github.com/abhisek/gctb/internal/registry"
	"github.com/abhisek/gctb/internal/router"
	"github.com/abhisek/gctb/internal/screen"
	"github.com/abhisek/gctb/internal/screens/summary"
	"github.com/abhisek/gctb/internal/session"
	"github.com/abhisek/gctb/internal/ui/components"
)

// introFocus is the intro control holding keyboard focus.
type introFocus int

const (
	focusModes introFocus = iota
	focusSeed
)

// Options configures a TestScreen.
type Options struct {
	Logger *slog.Logger
	Now    func() time.Time
}

// TestScreen implements screen.Screen for one registered test.
type TestScreen struct {
	cfg    registry.TestConfig
	engine *session.Engine
	now    func() time.Time
	errMsg string

	modes components.ButtonRow
	seed  components.TextInput
	focus introFocus

	choices components.ChoiceRow
	gen     int
	stopped bool
}

var (
	_ screen.Screen          = (*TestScreen)(nil)
	_ screen.KeyHintProvider = (*TestScreen)(nil)
	_ screen.StatusProvider  = (*TestScreen)(nil)
	_ screen.Closer          = (*TestScreen)(nil)
	_ screen.EscapeHandler   = (*TestScreen)(nil)
)

// New creates a TestScreen for cfg. A config the engine rejects leaves the
// screen in an error state that any key dismisses.
func New(cfg registry.TestConfig, opts Options) *TestScreen {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	s := &TestScreen{
		cfg:   cfg,
		now:   now,
		modes: components.NewButtonRow("Practice", "Exam"),
		seed:  components.NewTextInput("random", true, 10),
	}

	eng, err := session.New(cfg,
		session.WithClock(now),
		session.WithLogger(opts.Logger),
	)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.engine = eng
	return s
}

func (s *TestScreen) Init() tea.Cmd {
	return nil
}

func (s *TestScreen) Title() string {
	return s.cfg.Title
}

// Status shows the item position while a run is in progress.
func (s *TestScreen) Status() string {
	if !s.running() {
		return ""
	}
	return s.engine.Mode().String() + "  " + itemPosition(s.engine)
}

// HandlesEscape is true while running, where Esc aborts the run instead of
// leaving the screen.
func (s *TestScreen) HandlesEscape() bool {
	return s.running()
}

// Close aborts any run in progress so its timer is released.
func (s *TestScreen) Close() {
	if s.engine != nil {
		s.engine.Abort()
	}
}

func (s *TestScreen) KeyHints() []key.Binding {
	stop := components.Hint(components.KeyBack, "Esc", "stop")
	if s.errMsg != "" {
		return []key.Binding{components.AnyKey("back")}
	}
	if !s.running() {
		return []key.Binding{
			components.Hint(components.KeyRight, "←→", "mode"),
			components.Hint(components.KeyDown, "↑↓", "seed"),
			components.Hint(components.KeyEnter, "Enter", "start"),
			components.KeyBack,
		}
	}
	if p, _ := s.engine.Phase(); p.Terminal {
		answer := key.NewBinding(
			key.WithKeys(slices.Sorted(maps.Keys(s.cfg.Keymap))...),
			key.WithHelp(keysHint(s.cfg.Keymap), "answer"),
		)
		return []key.Binding{
			answer,
			components.Hint(components.KeyEnter, "←→ Enter", "pick"),
			stop,
		}
	}
	return []key.Binding{stop}
}

func (s *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case phaseExpiredMsg:
		return s.handleExpired(msg)
	case frameMsg:
		if msg.Gen != s.gen || !s.running() {
			return s, nil
		}
		return s, s.frameCmd()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focus == focusSeed && !s.running() {
		var cmd tea.Cmd
		s.seed, cmd = s.seed.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *TestScreen) running() bool {
	return s.engine != nil && s.engine.Status() == session.StatusRunning
}

func (s *TestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, router.Pop()
	}
	if s.running() {
		return s.handleRunningKey(msg)
	}
	return s.handleIntroKey(msg)
}

func (s *TestScreen) handleIntroKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, components.KeyEnter):
		return s.start()
	case key.Matches(msg, components.KeyUp), key.Matches(msg, components.KeyDown):
		if s.focus == focusModes {
			s.focus = focusSeed
			return s, s.seed.Focus()
		}
		s.focus = focusModes
		s.seed.Blur()
		return s, nil
	}

	if s.focus == focusSeed {
		var cmd tea.Cmd
		s.seed, cmd = s.seed.Update(msg)
		return s, cmd
	}

	switch {
	case key.Matches(msg, components.KeyLeft):
		s.modes = s.modes.Prev()
	case key.Matches(msg, components.KeyRight):
		s.modes = s.modes.Next()
	}
	return s, nil
}

func (s *TestScreen) handleRunningKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, components.KeyBack):
		s.engine.Abort()
		s.stopped = true
		return s, nil
	case key.Matches(msg, components.KeyLeft):
		s.choices = s.choices.Move(-1)
		return s, nil
	case key.Matches(msg, components.KeyRight):
		s.choices = s.choices.Move(1)
		return s, nil
	case key.Matches(msg, components.KeyEnter):
		item := s.engine.Item()
		if item == nil {
			return s, nil
		}
		labels := itemgen.ChoiceLabels(item)
		if s.choices.Cursor >= len(labels) {
			return s, nil
		}
		t, ok := s.engine.Respond(labels[s.choices.Cursor])
		return s.advanced(t, ok)
	}

	t, ok := s.engine.Key(msg.String())
	return s.advanced(t, ok)
}

func (s *TestScreen) handleExpired(msg phaseExpiredMsg) (screen.Screen, tea.Cmd) {
	if s.engine == nil {
		return s, nil
	}
	t, ok := s.engine.Expire(msg.Token)
	return s.advanced(t, ok)
}

// start begins a run in the focused mode, using the typed seed if any.
func (s *TestScreen) start() (screen.Screen, tea.Cmd) {
	mode := session.ModePractice
	if s.modes.Focused == 1 {
		mode = session.ModeExam
	}

	var (
		t   *session.PhaseTimer
		err error
	)
	if seed, ok := s.seed.Uint32Value(); ok {
		t, err = s.engine.StartWithSeed(mode, seed)
	} else {
		t, err = s.engine.Start(mode)
	}
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.focus = focusModes
	s.seed.Blur()
	s.stopped = false
	s.gen++
	s.resetChoices()
	return s, tea.Batch(schedule(t), s.frameCmd())
}

// advanced reacts to an engine transition: schedule the next phase timer,
// or hand the finished run to the results screen.
func (s *TestScreen) advanced(t *session.PhaseTimer, ok bool) (screen.Screen, tea.Cmd) {
	if !ok {
		return s, nil
	}
	if t != nil {
		if _, idx := s.engine.Phase(); idx == 0 {
			s.resetChoices()
		}
		return s, schedule(t)
	}
	if s.engine.Status() == session.StatusDone {
		return s, router.Push(summary.New(session.BuildSummary(s.engine)))
	}
	return s, nil
}

func (s *TestScreen) resetChoices() {
	item := s.engine.Item()
	if item == nil {
		s.choices = components.ChoiceRow{}
		return
	}
	inverse := invertKeymap(s.cfg.Keymap)
	choices := item.Choices()
	tiles := make([]components.ChoiceTile, len(choices))
	for i, c := range choices {
		tiles[i] = components.ChoiceTile{Keys: strings.Join(inverse[c.Label], "/"), Text: c.Text}
	}
	s.choices = components.ChoiceRow{Tiles: tiles}
}

func (s *TestScreen) frameCmd() tea.Cmd {
	gen := s.gen
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{Gen: gen, At: t}
	})
}

// schedule turns a phase timer into a delayed expiry message.
func schedule(t *session.PhaseTimer) tea.Cmd {
	if t == nil {
		return nil
	}
	token := t.Token
	return tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return phaseExpiredMsg{Token: token}
	})
}
