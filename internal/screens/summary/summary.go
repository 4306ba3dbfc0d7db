package summary

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/gctb/internal/itemgen"
	"github.com/abhisek/gctb/internal/router"
	"github.com/abhisek/gctb/internal/screen"
	"github.com/abhisek/gctb/internal/session"
	"github.com/abhisek/gctb/internal/ui/components"
	"github.com/abhisek/gctb/internal/ui/theme"
)

// fixedLines is the height taken by everything except table rows.
const fixedLines = 10

// SummaryScreen displays the results of a finished run.
type SummaryScreen struct {
	summary *session.SessionSummary
	offset  int
}

var (
	_ screen.Screen          = (*SummaryScreen)(nil)
	_ screen.KeyHintProvider = (*SummaryScreen)(nil)
	_ screen.EscapeHandler   = (*SummaryScreen)(nil)
)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []key.Binding {
	return []key.Binding{
		components.Hint(components.KeyDown, "↑↓", "scroll"),
		components.Hint(components.KeyEnter, "Enter", "try again"),
		components.Hint(components.KeyBack, "Esc", "home"),
	}
}

// HandlesEscape is always true: Esc leaves both the results and the test.
func (s *SummaryScreen) HandlesEscape() bool {
	return true
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, components.KeyEnter):
		// Back to the test intro for another run.
		return s, router.Pop()
	case key.Matches(kmsg, components.KeyBack):
		return s, tea.Sequence(router.Pop(), router.Pop())
	case key.Matches(kmsg, components.KeyUp):
		if s.offset > 0 {
			s.offset--
		}
	case key.Matches(kmsg, components.KeyDown):
		if s.summary != nil && s.offset < len(s.summary.Entries)-1 {
			s.offset++
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s · %s", sum.Title, sum.Mode)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d    Seed: %d", mins, secs, sum.Seed)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Items: %d        Correct: %d        Timed out: %d        Accuracy: %.0f%%",
		sum.Total, sum.Correct, sum.TimedOut, sum.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	visible := height - fixedLines
	if visible < 1 {
		visible = 1
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTable(visible)))

	return b.String()
}

func (s *SummaryScreen) renderTable(visible int) string {
	sum := s.summary
	end := min(s.offset+visible, len(sum.Entries))
	entries := sum.Entries[s.offset:end]

	headers := append([]string{"#"}, sum.RecapHeaders...)
	headers = append(headers, "Answer", "Given", "")

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row(e, len(sum.RecapHeaders)))
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Foreground(theme.TextDim).Bold(true)
			}
			if col != len(headers)-1 || row < 0 || row >= len(entries) {
				return style.Foreground(theme.Text)
			}
			return style.Inherit(resultStyle(entries[row]))
		}).
		String()
}

// Row renders one log entry as table cells: position, one cell per recap
// column, the correct answer, the given answer and a result mark.
func Row(e session.LogEntry, recapCols int) []string {
	recap := e.Item.Recap()
	if len(recap) != recapCols && recapCols > 0 {
		recap = fitRecap(recap, recapCols)
	}

	row := make([]string, 0, recapCols+4)
	row = append(row, strconv.Itoa(e.Index+1))
	row = append(row, recap...)
	row = append(row, AnswerText(e.Item, e.Item.Answer()), Given(e), mark(e))
	return row
}

// AnswerText names a choice label together with its text.
func AnswerText(item itemgen.Item, label string) string {
	text := itemgen.ChoiceText(item, label)
	if text == "" || text == label {
		return label
	}
	return label + " " + strings.ReplaceAll(text, "\n", " ")
}

// Given describes what the user answered.
func Given(e session.LogEntry) string {
	switch {
	case e.Unreached:
		return "not reached"
	case e.TimedOut:
		return "timeout"
	default:
		return AnswerText(e.Item, e.Response)
	}
}

func mark(e session.LogEntry) string {
	switch {
	case e.Correct:
		return "✓"
	case e.TimedOut:
		return "–"
	default:
		return "✗"
	}
}

func resultStyle(e session.LogEntry) lipgloss.Style {
	switch {
	case e.Correct:
		return theme.Correct
	case e.TimedOut:
		return theme.Missed
	default:
		return theme.Incorrect
	}
}

// fitRecap pads or folds recap values so the row has exactly n of them.
func fitRecap(recap []string, n int) []string {
	out := make([]string, n)
	for i := range n {
		if i < len(recap) {
			out[i] = recap[i]
		}
	}
	if len(recap) > n {
		out[n-1] = strings.Join(recap[n-1:], " ")
	}
	return out
}
