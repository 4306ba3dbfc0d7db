package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gctb/internal/itemgen"
	"github.com/abhisek/gctb/internal/router"
	"github.com/abhisek/gctb/internal/session"
)

func testSummary() *session.SessionSummary {
	items := itemgen.ArithSequence(7, 3, itemgen.DefaultArithParams())
	wrong := itemgen.FirstLarger
	if items[1].Answer() == itemgen.FirstLarger {
		wrong = itemgen.SecondLarger
	}
	entries := []session.LogEntry{
		{Index: 0, Item: items[0], Response: items[0].Answer(), Correct: true},
		{Index: 1, Item: items[1], Response: wrong},
		{Index: 2, Item: items[2], TimedOut: true},
	}
	return &session.SessionSummary{
		Title:        "Numerical Skills",
		Mode:         session.ModePractice,
		Seed:         7,
		RecapHeaders: []string{"Screen 1", "Screen 2"},
		Entries:      entries,
		Total:        3,
		Correct:      1,
		TimedOut:     1,
		Accuracy:     1.0 / 3,
		Duration:     42 * time.Second,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(100, 30)
	for _, want := range []string{"Numerical Skills", "Seed: 7", "Correct: 1", "timeout", "Screen 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected Enter to pop back to the test intro")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	if !s.HandlesEscape() {
		t.Error("summary should handle Esc itself")
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc")
	}
}

func TestSummaryScreen_Scroll(t *testing.T) {
	s := New(testSummary())
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.offset != 0 {
		t.Errorf("offset should not go negative, got %d", s.offset)
	}
	for range 5 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.offset != 2 {
		t.Errorf("offset should stop at last entry, got %d", s.offset)
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
}

func TestRow(t *testing.T) {
	sum := testSummary()

	row := Row(sum.Entries[0], 2)
	if len(row) != 6 {
		t.Fatalf("row has %d cells, want 6", len(row))
	}
	if row[0] != "1" || row[5] != "✓" {
		t.Errorf("unexpected row %v", row)
	}
	if row[1] != sum.Entries[0].Item.Recap()[0] {
		t.Errorf("recap cell = %q", row[1])
	}

	if got := Row(sum.Entries[1], 2)[5]; got != "✗" {
		t.Errorf("wrong answer mark = %q", got)
	}
	if got := Given(sum.Entries[2]); got != "timeout" {
		t.Errorf("Given = %q, want timeout", got)
	}
	if got := Given(session.LogEntry{Item: sum.Entries[0].Item, TimedOut: true, Unreached: true}); got != "not reached" {
		t.Errorf("Given = %q, want not reached", got)
	}
}

func TestFitRecap(t *testing.T) {
	if got := fitRecap([]string{"a"}, 3); len(got) != 3 || got[0] != "a" || got[2] != "" {
		t.Errorf("pad: %v", got)
	}
	if got := fitRecap([]string{"a", "b", "c"}, 2); got[1] != "b c" {
		t.Errorf("fold: %v", got)
	}
}
