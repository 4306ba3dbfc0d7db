// Package registry holds the static table of available tests.
package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/abhisek/gctb/internal/itemgen"
)

// ErrTestNotFound is returned when an identifier names no registered test.
var ErrTestNotFound = errors.New("test not found")

// TestID is the closed set of registered tests.
type TestID int

const (
	Arith TestID = iota
	Arrows
	Words
	Reasoning
	Diff

	numTests
)

var slugs = [numTests]string{
	Arith:     "arith",
	Arrows:    "plaats",
	Words:     "woord",
	Reasoning: "rede",
	Diff:      "fout",
}

// String returns the short identifier used on the command line and in
// config files.
func (id TestID) String() string {
	if !id.valid() {
		return fmt.Sprintf("TestID(%d)", int(id))
	}
	return slugs[id]
}

func (id TestID) valid() bool {
	return id >= 0 && id < numTests
}

// ParseID maps a short identifier back to its TestID.
func ParseID(s string) (TestID, error) {
	for i, slug := range slugs {
		if slug == s {
			return TestID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrTestNotFound, s)
}

// IDs returns every TestID in menu order.
func IDs() []TestID {
	ids := make([]TestID, numTests)
	for i := range ids {
		ids[i] = TestID(i)
	}
	return ids
}

// Phase is one presentation stage of an item.
type Phase struct {
	Name     string
	Duration time.Duration

	// Terminal marks the response phase. Exactly the last phase is terminal.
	Terminal bool
}

// TestConfig describes one test. Values returned by this package are
// copies; changing them does not affect the registry.
type TestConfig struct {
	ID            TestID
	Title         string
	Instructions  string
	PracticeCount int
	ExamCount     int

	// TimeLimit caps an exam run. It is checked between items.
	TimeLimit time.Duration

	Phases []Phase

	// Keymap maps a key string (as reported by the terminal) to a choice
	// label.
	Keymap map[string]string

	Generate itemgen.SetFunc

	// RecapHeaders name the columns of itemgen.Item.Recap.
	RecapHeaders []string
}

// Validate reports whether response is the correct answer to item.
func (c TestConfig) Validate(item itemgen.Item, response string) bool {
	return response != "" && response == item.Answer()
}

// Count returns the number of items for a practice or exam run.
func (c TestConfig) Count(exam bool) int {
	if exam {
		return c.ExamCount
	}
	return c.PracticeCount
}

// Check reports configuration errors that would break a session.
func (c TestConfig) Check() error {
	if !c.ID.valid() {
		return fmt.Errorf("unknown test id %d", int(c.ID))
	}
	if c.Generate == nil {
		return fmt.Errorf("%s: no generator", c.ID)
	}
	if c.PracticeCount <= 0 || c.ExamCount <= 0 {
		return fmt.Errorf("%s: item counts must be positive (practice %d, exam %d)", c.ID, c.PracticeCount, c.ExamCount)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("%s: time limit must be positive", c.ID)
	}
	if len(c.Phases) == 0 {
		return fmt.Errorf("%s: no phases", c.ID)
	}
	for i, p := range c.Phases {
		if p.Duration <= 0 {
			return fmt.Errorf("%s: phase %q has non-positive duration", c.ID, p.Name)
		}
		if p.Terminal != (i == len(c.Phases)-1) {
			return fmt.Errorf("%s: only the last phase may be terminal (phase %q)", c.ID, p.Name)
		}
	}
	return nil
}

// Lookup returns the config registered for id.
func Lookup(id TestID) (TestConfig, bool) {
	if !id.valid() {
		return TestConfig{}, false
	}
	return table[id].clone(), true
}

// Get resolves a short identifier to its config.
func Get(slug string) (TestConfig, error) {
	id, err := ParseID(slug)
	if err != nil {
		return TestConfig{}, err
	}
	cfg, _ := Lookup(id)
	return cfg, nil
}

// All returns every registered config in menu order.
func All() []TestConfig {
	out := make([]TestConfig, 0, numTests)
	for _, id := range IDs() {
		cfg, _ := Lookup(id)
		out = append(out, cfg)
	}
	return out
}

func (c TestConfig) clone() TestConfig {
	c.Phases = slices.Clone(c.Phases)
	c.Keymap = maps.Clone(c.Keymap)
	c.RecapHeaders = slices.Clone(c.RecapHeaders)
	return c
}
