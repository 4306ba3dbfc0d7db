package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gctb/internal/itemgen"
)

func TestLookup_AllRegistered(t *testing.T) {
	for _, id := range IDs() {
		cfg, ok := Lookup(id)
		if !ok {
			t.Fatalf("Lookup(%s) not found", id)
		}
		if cfg.ID != id {
			t.Errorf("Lookup(%s).ID = %s", id, cfg.ID)
		}
		if err := cfg.Check(); err != nil {
			t.Errorf("%s: %v", id, err)
		}
		if cfg.Title == "" || cfg.Instructions == "" {
			t.Errorf("%s: missing title or instructions", id)
		}
	}
}

func TestLookup_NotFound(t *testing.T) {
	for _, id := range []TestID{-1, numTests, 99} {
		if _, ok := Lookup(id); ok {
			t.Errorf("Lookup(%d) should not be found", int(id))
		}
	}
}

func TestParseID(t *testing.T) {
	for _, id := range IDs() {
		got, err := ParseID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}

	_, err := ParseID("nope")
	assert.True(t, errors.Is(err, ErrTestNotFound))

	_, err = Get("")
	assert.ErrorIs(t, err, ErrTestNotFound)
}

func TestGet_Slugs(t *testing.T) {
	want := map[string]TestID{"arith": Arith, "plaats": Arrows, "woord": Words, "rede": Reasoning, "fout": Diff}
	for slug, id := range want {
		cfg, err := Get(slug)
		require.NoError(t, err, slug)
		assert.Equal(t, id, cfg.ID)
	}
}

func TestLookup_ReturnsCopies(t *testing.T) {
	a, _ := Lookup(Arith)
	a.Keymap["1"] = "mutated"
	a.Phases[0].Duration = time.Hour

	b, _ := Lookup(Arith)
	assert.Equal(t, itemgen.FirstLarger, b.Keymap["1"])
	assert.Equal(t, 3*time.Second, b.Phases[0].Duration)
}

func TestKeymap_TargetsChoiceLabels(t *testing.T) {
	for _, cfg := range All() {
		items := cfg.Generate(123, 3)
		require.Len(t, items, 3, cfg.ID.String())
		for _, item := range items {
			labels := itemgen.ChoiceLabels(item)
			for key, label := range cfg.Keymap {
				assert.Contains(t, labels, label, "%s key %q", cfg.ID, key)
			}
			for _, l := range labels {
				assert.Contains(t, values(cfg.Keymap), l, "%s: choice %q has no key", cfg.ID, l)
			}
		}
	}
}

func TestPhases_MatchItemStimuli(t *testing.T) {
	for _, cfg := range All() {
		item := cfg.Generate(1, 1)[0]
		assert.Equal(t, len(cfg.Phases)-1, len(item.Stimuli()), cfg.ID.String())
		assert.Len(t, item.Recap(), len(cfg.RecapHeaders), cfg.ID.String())
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := Lookup(Words)
	item := cfg.Generate(77, 1)[0]
	assert.True(t, cfg.Validate(item, item.Answer()))
	assert.False(t, cfg.Validate(item, ""), "a timeout is never correct")
	wrong := "0"
	if item.Answer() == "0" {
		wrong = "1"
	}
	assert.False(t, cfg.Validate(item, wrong))
}

func TestArithGenerate_SingleStream(t *testing.T) {
	cfg, _ := Lookup(Arith)
	long := cfg.Generate(99, 250)
	short := cfg.Generate(99, 9)
	assert.Equal(t, long[:9], short)
}

func TestCount(t *testing.T) {
	cfg, _ := Lookup(Arith)
	assert.Equal(t, 9, cfg.Count(false))
	assert.Equal(t, 25, cfg.Count(true))
}

func TestWithOverrides(t *testing.T) {
	cfg, _ := Lookup(Diff)
	practice := 3
	limit := 90 * time.Second

	got, err := cfg.WithOverrides(Overrides{
		PracticeCount:  &practice,
		TimeLimit:      &limit,
		PhaseDurations: []time.Duration{time.Second, 2 * time.Second},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, got.PracticeCount)
	assert.Equal(t, cfg.ExamCount, got.ExamCount)
	assert.Equal(t, limit, got.TimeLimit)
	assert.Equal(t, 2*time.Second, got.Phases[1].Duration)

	again, _ := Lookup(Diff)
	assert.Equal(t, 10*time.Second, again.Phases[1].Duration, "registry must stay untouched")
}

func TestWithOverrides_Errors(t *testing.T) {
	cfg, _ := Lookup(Arith)
	zero := 0
	tests := []struct {
		name string
		o    Overrides
	}{
		{"phase count", Overrides{PhaseDurations: []time.Duration{time.Second}}},
		{"zero count", Overrides{PracticeCount: &zero}},
		{"zero duration", Overrides{PhaseDurations: []time.Duration{time.Second, 0, time.Second}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cfg.WithOverrides(tt.o)
			assert.Error(t, err)
		})
	}
}

func TestCheck_TerminalPhase(t *testing.T) {
	cfg, _ := Lookup(Words)
	cfg.Phases[len(cfg.Phases)-1].Terminal = false
	assert.Error(t, cfg.Check())

	cfg, _ = Lookup(Words)
	cfg.Phases = nil
	assert.Error(t, cfg.Check())

	cfg, _ = Lookup(Words)
	cfg.Generate = nil
	assert.Error(t, cfg.Check())
}

func values(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
