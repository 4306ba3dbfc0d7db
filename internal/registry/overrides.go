package registry

import (
	"fmt"
	"time"
)

// Overrides adjusts a TestConfig. Nil and empty fields keep the default.
type Overrides struct {
	PracticeCount  *int
	ExamCount      *int
	TimeLimit      *time.Duration
	PhaseDurations []time.Duration
}

// WithOverrides returns a copy of c with o applied. The result is checked
// before it is returned.
func (c TestConfig) WithOverrides(o Overrides) (TestConfig, error) {
	out := c.clone()
	if o.PracticeCount != nil {
		out.PracticeCount = *o.PracticeCount
	}
	if o.ExamCount != nil {
		out.ExamCount = *o.ExamCount
	}
	if o.TimeLimit != nil {
		out.TimeLimit = *o.TimeLimit
	}
	if len(o.PhaseDurations) > 0 {
		if len(o.PhaseDurations) != len(out.Phases) {
			return TestConfig{}, fmt.Errorf("%s: got %d phase durations, test has %d phases",
				c.ID, len(o.PhaseDurations), len(out.Phases))
		}
		for i, d := range o.PhaseDurations {
			out.Phases[i].Duration = d
		}
	}
	if err := out.Check(); err != nil {
		return TestConfig{}, err
	}
	return out, nil
}
