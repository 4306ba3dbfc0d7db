package testrun

import "time"

// phaseExpiredMsg is delivered when a scheduled phase timer fires.
type phaseExpiredMsg struct {
	Token uint64
}

// frameMsg redraws the countdown bar. Gen ties it to one run so a tick
// left over from an earlier run does not start a second loop.
type frameMsg struct {
	Gen int
	At  time.Time
}

// frameInterval is how often the countdown bar is redrawn.
const frameInterval = 100 * time.Millisecond
