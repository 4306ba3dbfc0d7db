package notfound

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gctb/internal/router"
)

func TestView_NamesIDAndAlternatives(t *testing.T) {
	n := New("chess")
	view := n.View(80, 20)
	for _, want := range []string{"Test not found", "chess", "arith", "fout"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestAnyKeyGoesBack(t *testing.T) {
	n := New("chess")
	_, cmd := n.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestNonKeyIgnored(t *testing.T) {
	n := New("chess")
	if _, cmd := n.Update(tea.WindowSizeMsg{Width: 10}); cmd != nil {
		t.Error("expected no command for non-key messages")
	}
}
