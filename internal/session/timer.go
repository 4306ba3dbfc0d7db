package session

import (
	"sync/atomic"
	"time"
)

// tokenSeq is shared by all engines so a token from a discarded engine can
// never match a live one.
var tokenSeq atomic.Uint64

// PhaseTimer is the single countdown owned by the current phase. The host
// schedules a callback after Duration and hands Token back to
// Engine.Expire; any token other than the live one is ignored.
type PhaseTimer struct {
	Token    uint64
	Duration time.Duration
	Started  time.Time
}

func newPhaseTimer(d time.Duration, now time.Time) *PhaseTimer {
	return &PhaseTimer{Token: tokenSeq.Add(1), Duration: d, Started: now}
}

// Remaining returns the time left at now, never negative.
func (t PhaseTimer) Remaining(now time.Time) time.Duration {
	left := t.Duration - now.Sub(t.Started)
	if left < 0 {
		return 0
	}
	return left
}

// Fraction returns the share of the duration still left at now, in [0, 1].
func (t PhaseTimer) Fraction(now time.Time) float64 {
	if t.Duration <= 0 {
		return 0
	}
	return float64(t.Remaining(now)) / float64(t.Duration)
}
