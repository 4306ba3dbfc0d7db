package layout

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
)

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Numerical Skills", "Practice  Item 2/9", 100)
	for _, want := range []string{"GCTB", "Numerical Skills", "Item 2/9"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if w := lipgloss.Width(h); w != 100 {
		t.Errorf("header width = %d, want 100", w)
	}
}

func TestRenderFooter_SkipsDisabled(t *testing.T) {
	start := key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "start"))
	hidden := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	hidden.SetEnabled(false)

	f := RenderFooter([]key.Binding{start, hidden}, 80)
	if !strings.Contains(f, "Enter") || !strings.Contains(f, "start") {
		t.Errorf("footer missing enabled binding: %q", f)
	}
	if strings.Contains(f, "hidden") {
		t.Error("footer should skip disabled bindings")
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Home", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if h := lipgloss.Height(frame); h != 24 {
		t.Errorf("frame height = %d, want 24", h)
	}

	long := strings.Repeat("line\n", 40)
	if h := lipgloss.Height(RenderFrame(header, long, footer, 80, 24)); h != 24 {
		t.Errorf("overflowing content: frame height = %d, want 24", h)
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("narrow terminal should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}
