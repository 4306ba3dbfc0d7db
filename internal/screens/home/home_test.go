package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gctb/internal/registry"
	"github.com/abhisek/gctb/internal/router"
	"github.com/abhisek/gctb/internal/screens/testrun"
)

func newTestHome() *HomeScreen {
	return New(registry.All(), testrun.Options{})
}

func TestView_ListsEveryTest(t *testing.T) {
	h := newTestHome()
	view := h.View(100, 30)
	for _, cfg := range registry.All() {
		if !strings.Contains(view, cfg.Title) {
			t.Errorf("expected %q in home view", cfg.Title)
		}
	}
	if !strings.Contains(view, "Exit") {
		t.Error("expected Exit entry")
	}
}

func TestEnterPushesTestScreen(t *testing.T) {
	h := newTestHome()
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if h.Selected() != 1 {
		t.Fatalf("expected selection 1, got %d", h.Selected())
	}

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	want := registry.All()[1].Title
	if push.Screen.Title() != want {
		t.Errorf("pushed %q, want %q", push.Screen.Title(), want)
	}
}

func TestExitQuits(t *testing.T) {
	h := newTestHome()
	for range registry.IDs() {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected Exit to quit")
	}
}
