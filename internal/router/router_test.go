package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gctb/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

type closingScreen struct {
	stubScreen
	closed int
}

func (c *closingScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return c, nil }
func (c *closingScreen) Close()                                  { c.closed++ }

func TestPopClosesScreen(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	c := &closingScreen{stubScreen: stubScreen{title: "test"}}
	r.Push(c)
	r.Update(PopScreenMsg{})

	if c.closed != 1 {
		t.Errorf("expected Close() once, got %d", c.closed)
	}
}

func TestReplaceClosesOld(t *testing.T) {
	c := &closingScreen{stubScreen: stubScreen{title: "test"}}
	r := New(c)
	r.Replace(&stubScreen{title: "other"})

	if c.closed != 1 {
		t.Errorf("expected Close() once, got %d", c.closed)
	}
}

func TestPopAtBottomDoesNotClose(t *testing.T) {
	c := &closingScreen{stubScreen: stubScreen{title: "test"}}
	r := New(c)
	r.Pop()

	if c.closed != 0 {
		t.Errorf("expected no Close() at bottom, got %d", c.closed)
	}
}

func TestCloseAll(t *testing.T) {
	a := &closingScreen{stubScreen: stubScreen{title: "a"}}
	b := &closingScreen{stubScreen: stubScreen{title: "b"}}
	r := New(a)
	r.Push(b)
	r.Close()

	if a.closed != 1 || b.closed != 1 {
		t.Errorf("expected both closed, got %d and %d", a.closed, b.closed)
	}
}

func TestCommandHelpers(t *testing.T) {
	s := &stubScreen{title: "x"}
	if msg, ok := Push(s)().(PushScreenMsg); !ok || msg.Screen != s {
		t.Error("Push should emit PushScreenMsg")
	}
	if _, ok := Pop()().(PopScreenMsg); !ok {
		t.Error("Pop should emit PopScreenMsg")
	}
	if msg, ok := ReplaceWith(s)().(ReplaceScreenMsg); !ok || msg.Screen != s {
		t.Error("ReplaceWith should emit ReplaceScreenMsg")
	}
}
