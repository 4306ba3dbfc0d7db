package session

import (
	"time"

	"github.com/abhisek/gctb/internal/registry"
)

// SessionSummary holds the data displayed on the results screen.
type SessionSummary struct {
	SessionID string
	Test      registry.TestID
	Title     string
	Mode      Mode
	Seed      uint32

	// RecapHeaders name the columns of each entry's Item.Recap.
	RecapHeaders []string

	Entries  []LogEntry
	Total    int
	Correct  int
	TimedOut int
	Accuracy float64
	Duration time.Duration
}

// BuildSummary creates a SessionSummary from the engine's current log.
func BuildSummary(e *Engine) *SessionSummary {
	entries := e.Log()

	var correct, timedOut int
	for _, l := range entries {
		if l.Correct {
			correct++
		}
		if l.TimedOut {
			timedOut++
		}
	}

	var accuracy float64
	if len(entries) > 0 {
		accuracy = float64(correct) / float64(len(entries))
	}

	end := e.endedAt
	if end.IsZero() {
		end = e.now()
	}

	cfg := e.Config()
	return &SessionSummary{
		SessionID:    e.id,
		Test:         cfg.ID,
		Title:        cfg.Title,
		Mode:         e.mode,
		Seed:         e.seed,
		RecapHeaders: cfg.RecapHeaders,
		Entries:      entries,
		Total:        len(entries),
		Correct:      correct,
		TimedOut:     timedOut,
		Accuracy:     accuracy,
		Duration:     end.Sub(e.startedAt),
	}
}
