// Package session runs one test: it walks the generated items through
// their presentation phases, owns the single phase timer and keeps the
// response log. An Engine is driven from one goroutine (the UI loop) and is
// not safe for concurrent use.
package session

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/abhisek/gctb/internal/itemgen"
	"github.com/abhisek/gctb/internal/registry"
	"github.com/abhisek/gctb/internal/rng"
)

// Engine is the phase state machine for one test.
type Engine struct {
	cfg    registry.TestConfig
	now    func() time.Time
	logger *slog.Logger

	id     string
	mode   Mode
	seed   uint32
	status Status
	items  []itemgen.Item
	index  int
	phase  int
	timer  *PhaseTimer
	log    []LogEntry

	startedAt  time.Time
	endedAt    time.Time
	phaseStart time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the logger for session events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an idle Engine for cfg. A malformed config is rejected here
// rather than surfacing mid-session.
func New(cfg registry.TestConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	e := &Engine{
		cfg:    cfg,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(e)
	}
	e.logger = e.logger.With("test", cfg.ID.String())
	return e, nil
}

// Start begins a run with a seed taken from the clock. Any previous run is
// discarded. The returned timer must be scheduled by the caller.
func (e *Engine) Start(mode Mode) (*PhaseTimer, error) {
	return e.StartWithSeed(mode, rng.SeedFromTime(e.now()))
}

// StartWithSeed begins a run with an explicit seed.
// A config error leaves any live run untouched.
func (e *Engine) StartWithSeed(mode Mode, seed uint32) (*PhaseTimer, error) {
	n := e.cfg.Count(mode == ModeExam)
	items := e.cfg.Generate(seed, n)
	if len(items) != n {
		return nil, fmt.Errorf("%w: generator returned %d items, want %d", ErrInvalidConfig, len(items), n)
	}
	stimuli := len(e.cfg.Phases) - 1
	for i, item := range items {
		if got := len(item.Stimuli()); got != stimuli {
			return nil, fmt.Errorf("%w: item %d has %d screens for %d presentation phases",
				ErrInvalidConfig, i, got, stimuli)
		}
	}

	e.release()
	e.id = uuid.NewString()
	e.mode = mode
	e.seed = seed
	e.items = items
	e.index = 0
	e.phase = 0
	e.log = make([]LogEntry, 0, n)
	e.status = StatusRunning
	e.startedAt = e.now()
	e.endedAt = time.Time{}

	e.logger.Info("session started",
		"session_id", e.id, "mode", mode.String(), "seed", seed, "items", n)
	return e.enterPhase(), nil
}

// Expire handles a fired timer. Tokens that do not belong to the live timer
// are dropped and reported as not applied.
func (e *Engine) Expire(token uint64) (*PhaseTimer, bool) {
	if e.status != StatusRunning || e.timer == nil || e.timer.Token != token {
		e.logger.Debug("stale timer dropped", "token", token)
		return nil, false
	}
	e.release()

	if !e.cfg.Phases[e.phase].Terminal {
		e.phase++
		return e.enterPhase(), true
	}

	e.logger.Debug("response timed out", "session_id", e.id, "item", e.index)
	e.record("", true)
	return e.nextItem(), true
}

// Respond records label as the answer to the current item. It is ignored
// outside the response phase and for labels the item does not offer.
func (e *Engine) Respond(label string) (*PhaseTimer, bool) {
	if e.status != StatusRunning || !e.cfg.Phases[e.phase].Terminal {
		return nil, false
	}
	if !slices.Contains(itemgen.ChoiceLabels(e.items[e.index]), label) {
		return nil, false
	}
	e.release()
	e.record(label, false)
	return e.nextItem(), true
}

// Key maps a key through the test's keymap and responds with the result.
// Single characters also match their lower-case binding.
func (e *Engine) Key(key string) (*PhaseTimer, bool) {
	label, ok := e.cfg.Keymap[key]
	if !ok && utf8.RuneCountInString(key) == 1 {
		label, ok = e.cfg.Keymap[strings.ToLower(key)]
	}
	if !ok {
		return nil, false
	}
	return e.Respond(label)
}

// Abort stops a run, releasing the timer. The log is kept for inspection.
func (e *Engine) Abort() {
	if e.status != StatusRunning {
		return
	}
	e.release()
	e.status = StatusIdle
	e.endedAt = e.now()
	e.logger.Info("session aborted", "session_id", e.id, "answered", len(e.log))
}

func (e *Engine) enterPhase() *PhaseTimer {
	p := e.cfg.Phases[e.phase]
	e.phaseStart = e.now()
	e.timer = newPhaseTimer(p.Duration, e.phaseStart)
	e.logger.Debug("phase entered",
		"session_id", e.id, "item", e.index, "phase", p.Name, "token", e.timer.Token)
	t := *e.timer
	return &t
}

func (e *Engine) release() {
	e.timer = nil
}

func (e *Engine) record(response string, timedOut bool) {
	item := e.items[e.index]
	entry := LogEntry{
		Index:    e.index,
		Item:     item,
		Response: response,
		TimedOut: timedOut,
		Correct:  !timedOut && e.cfg.Validate(item, response),
		Latency:  e.now().Sub(e.phaseStart),
	}
	e.log = append(e.log, entry)
	e.logger.Debug("response recorded",
		"session_id", e.id, "item", e.index, "response", response,
		"timed_out", timedOut, "correct", entry.Correct)
}

func (e *Engine) nextItem() *PhaseTimer {
	e.index++
	e.phase = 0

	if e.mode == ModeExam && e.index < len(e.items) && e.now().Sub(e.startedAt) >= e.cfg.TimeLimit {
		e.logger.Info("time limit reached", "session_id", e.id, "unreached", len(e.items)-e.index)
		for ; e.index < len(e.items); e.index++ {
			e.log = append(e.log, LogEntry{
				Index:     e.index,
				Item:      e.items[e.index],
				TimedOut:  true,
				Unreached: true,
			})
		}
	}

	if e.index >= len(e.items) {
		e.finish()
		return nil
	}
	return e.enterPhase()
}

func (e *Engine) finish() {
	e.release()
	e.status = StatusDone
	e.endedAt = e.now()
	correct := 0
	for _, l := range e.log {
		if l.Correct {
			correct++
		}
	}
	e.logger.Info("session finished",
		"session_id", e.id, "correct", correct, "total", len(e.log),
		"duration", e.endedAt.Sub(e.startedAt))
}

// ID returns the id of the current run.
func (e *Engine) ID() string { return e.id }

// Config returns the test config the engine runs.
func (e *Engine) Config() registry.TestConfig { return e.cfg }

// Mode returns the mode of the current run.
func (e *Engine) Mode() Mode { return e.mode }

// Seed returns the seed of the current run.
func (e *Engine) Seed() uint32 { return e.seed }

// Status returns the outer state.
func (e *Engine) Status() Status { return e.status }

// Index returns the 0-based position of the current item.
func (e *Engine) Index() int { return e.index }

// Total returns the number of items in the current run.
func (e *Engine) Total() int { return len(e.items) }

// Item returns the current item, or nil when no item is being shown.
func (e *Engine) Item() itemgen.Item {
	if e.status != StatusRunning {
		return nil
	}
	return e.items[e.index]
}

// Phase returns the current phase and its position in the phase list.
func (e *Engine) Phase() (registry.Phase, int) {
	return e.cfg.Phases[e.phase], e.phase
}

// Timer returns a copy of the live timer, or nil when none is pending.
func (e *Engine) Timer() *PhaseTimer {
	if e.timer == nil {
		return nil
	}
	t := *e.timer
	return &t
}

// Log returns a copy of the entries recorded so far.
func (e *Engine) Log() []LogEntry {
	return slices.Clone(e.log)
}
