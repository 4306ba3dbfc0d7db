package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gctb/internal/router"
	"github.com/abhisek/gctb/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcomeWithCounter() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) (screen.Screen, tea.Cmd) {
	var s screen.Screen = w
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		s, cmd = s.Update(tickMsg(time.Now()))
	}
	return s, cmd
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()

	view := w.View(80, 24)
	if strings.Contains(view, "██") {
		t.Error("banner should not be visible at start")
	}

	sendTicks(w, 3)
	if w.elapsed != 300*time.Millisecond {
		t.Errorf("expected elapsed 300ms, got %v", w.elapsed)
	}
	view = w.View(80, 24)
	if !strings.Contains(view, "██") {
		t.Error("banner should be visible after 300ms")
	}
	if strings.Contains(view, "press any key") {
		t.Error("hint should not be visible yet")
	}

	sendTicks(w, 5)
	if !strings.Contains(w.View(80, 24), "press any key") {
		t.Error("hint should be visible after 800ms")
	}
}

func TestCompactBanner(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	sendTicks(w, 3)
	if !strings.Contains(w.View(30, 20), "G C T B") {
		t.Error("expected compact banner on a narrow terminal")
	}
}

func TestKeypressDuringAnimationSkipsToTransition(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress during animation should trigger transition")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestAutoTransitionAfterAnimation(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	_, cmd := sendTicks(w, int(totalDur/tickInterval))
	if cmd == nil {
		t.Fatal("expected transition when the animation ends")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok || msg.Screen == nil {
		t.Fatal("expected ReplaceScreenMsg with a screen")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}

	// Ticks already in flight stop the loop.
	if _, cmd := sendTicks(w, 1); cmd != nil {
		t.Error("ticks after the transition should not reschedule")
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
