package testrun

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gctb/internal/itemgen"
	"github.com/abhisek/gctb/internal/session"
	"github.com/abhisek/gctb/internal/ui/components"
	"github.com/abhisek/gctb/internal/ui/theme"
)

func (s *TestScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.running() {
		return s.renderRunning(width, height)
	}
	return s.renderIntro(width, height)
}

func renderError(width, height int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Error).
		Render("Cannot run this test\n\n" + msg)
}

func (s *TestScreen) renderIntro(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw - 6).Render(s.cfg.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(cw - 6).Render(s.cfg.Instructions))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(cw - 6).Render(fmt.Sprintf(
		"Practice: %d items    Exam: %d items in %s",
		s.cfg.PracticeCount, s.cfg.ExamCount, formatDuration(s.cfg.TimeLimit))))
	b.WriteString("\n\n")
	b.WriteString(s.modes.View())
	b.WriteString("\n\n")

	seedLabel := "Seed "
	if s.focus == focusSeed {
		seedLabel = theme.Selected.Render("▸ Seed ")
	}
	b.WriteString(seedLabel + s.seed.View())

	if s.stopped {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Previous run stopped."))
	}

	return components.Center(components.Panel(b.String(), cw), width, height)
}

func (s *TestScreen) renderRunning(width, height int) string {
	item := s.engine.Item()
	phase, _ := s.engine.Phase()
	cw := components.ContentWidth(width)

	var b strings.Builder

	info := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("%s  %s", itemPosition(s.engine), phaseLabel(phase.Name)))
	b.WriteString(info)
	b.WriteString("\n")

	var frac float64
	if t := s.engine.Timer(); t != nil {
		frac = t.Fraction(s.now())
	}
	b.WriteString(components.NewCountdownBar(frac, cw).View())
	b.WriteString("\n\n")

	if phase.Terminal {
		b.WriteString(renderScreen(item.Prompt(), cw))
		b.WriteString("\n\n")
		b.WriteString(s.choices.View(cw))
	} else {
		_, idx := s.engine.Phase()
		b.WriteString(renderScreen(item.Stimuli()[idx], cw))
	}

	return components.Center(b.String(), width, height)
}

func renderScreen(sc itemgen.Screen, width int) string {
	var b strings.Builder
	if sc.Title != "" {
		b.WriteString(theme.Subtitle.Width(width).Render(sc.Title))
		b.WriteString("\n\n")
	}
	for i, line := range sc.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Stimulus.Width(width).Render(line))
	}
	return b.String()
}

func itemPosition(e *session.Engine) string {
	return fmt.Sprintf("Item %d/%d", e.Index()+1, e.Total())
}

func phaseLabel(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func formatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// invertKeymap groups the keys of a keymap by the label they select.
func invertKeymap(m map[string]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, label := range m {
		out[label] = append(out[label], k)
	}
	for _, keys := range out {
		slices.Sort(keys)
	}
	return out
}

// keysHint lists every answer key in a stable order.
func keysHint(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return strings.Join(keys, " ")
}
