package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gctb/internal/registry"
)

func TestBuildSummary(t *testing.T) {
	e, clock := testEngine(t, registry.Words)
	timer, err := e.StartWithSeed(ModePractice, 31)
	require.NoError(t, err)

	answered := 0
	for e.Status() == StatusRunning {
		timer = runToChoice(t, e, timer)
		clock.Advance(time.Second)
		if answered < 4 {
			timer, _ = e.Respond(e.Item().Answer())
			answered++
			continue
		}
		timer, _ = e.Expire(timer.Token)
	}

	sum := BuildSummary(e)
	assert.Equal(t, e.ID(), sum.SessionID)
	assert.Equal(t, registry.Words, sum.Test)
	assert.Equal(t, uint32(31), sum.Seed)
	assert.Equal(t, 12, sum.Total)
	assert.Equal(t, 4, sum.Correct)
	assert.Equal(t, 8, sum.TimedOut)
	assert.InDelta(t, 4.0/12.0, sum.Accuracy, 1e-9)
	assert.Equal(t, 12*time.Second, sum.Duration)
	assert.Equal(t, []string{"Rules", "Words"}, sum.RecapHeaders)
}

func TestBuildSummary_Empty(t *testing.T) {
	e, _ := testEngine(t, registry.Arith)
	sum := BuildSummary(e)
	assert.Zero(t, sum.Total)
	assert.Zero(t, sum.Accuracy)
}
