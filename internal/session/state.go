package session

import (
	"errors"
	"time"

	"github.com/abhisek/gctb/internal/itemgen"
)

// ErrInvalidConfig wraps configuration problems detected at session start.
var ErrInvalidConfig = errors.New("invalid test config")

// Mode selects the item count and whether the overall time limit applies.
type Mode int

const (
	ModePractice Mode = iota
	ModeExam
)

func (m Mode) String() string {
	if m == ModeExam {
		return "exam"
	}
	return "practice"
}

// Status is the outer state of a session.
type Status int

const (
	StatusIdle    Status = iota // Not started, or aborted
	StatusRunning               // Presenting items
	StatusDone                  // Every item has a log entry
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusDone:
		return "done"
	default:
		return "idle"
	}
}

// LogEntry records the outcome of one item.
type LogEntry struct {
	Index int
	Item  itemgen.Item

	// Response is the chosen label; empty when TimedOut.
	Response string
	TimedOut bool

	// Unreached marks items skipped because an exam ran out of time.
	Unreached bool

	Correct bool

	// Latency is measured from the start of the response phase.
	Latency time.Duration
}
