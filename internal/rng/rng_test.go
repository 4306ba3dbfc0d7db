package rng

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownSequences(t *testing.T) {
	tests := []struct {
		seed uint32
		want []float64
	}{
		{12345, []float64{0.9797282677609473, 0.3067522644996643, 0.484205421525985, 0.817934412509203, 0.5094283693470061}},
		{0, []float64{0.26642920868471265, 0.0003297457005828619, 0.2232720274478197}},
	}
	for _, tt := range tests {
		s := New(tt.seed)
		for i, want := range tt.want {
			assert.Equal(t, want, s.Float64(), "seed %d draw %d", tt.seed, i)
		}
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(12345)
	b := New(12345)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 50; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	assert.Less(t, same, 50)
}

func TestFloat64Range(t *testing.T) {
	for _, seed := range []uint32{0, 1, 42, 0xFFFFFFFF, 0x6D2B79F5} {
		s := New(seed)
		for i := 0; i < 5000; i++ {
			f := s.Float64()
			if f < 0 || f >= 1 {
				t.Fatalf("seed %d draw %d: %v out of [0,1)", seed, i, f)
			}
		}
	}
}

func TestIntRangeInclusive(t *testing.T) {
	s := New(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := s.IntRange(3, 8)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 8)
		seen[v] = true
	}
	assert.Len(t, seen, 6, "every value in [3,8] should appear")
}

func TestIntRangeSingleValue(t *testing.T) {
	s := New(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, 5, s.IntRange(5, 5))
	}
}

func TestPickExcluding(t *testing.T) {
	s := New(3)
	xs := []string{"a", "b", "c", "d"}
	for i := 0; i < 500; i++ {
		v := PickExcluding(s, xs, "b", "d")
		assert.Contains(t, []string{"a", "c"}, v)
	}
}

func TestPickExcludingPanicsWhenEmpty(t *testing.T) {
	assert.Panics(t, func() {
		PickExcluding(New(1), []int{1, 2}, 1, 2)
	})
}

func TestShuffleIsPermutationAndStable(t *testing.T) {
	base := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	a := slices.Clone(base)
	b := slices.Clone(base)
	Shuffle(New(2024), a)
	Shuffle(New(2024), b)
	assert.Equal(t, a, b, "same seed must give the same permutation")

	sorted := slices.Clone(a)
	slices.Sort(sorted)
	assert.Equal(t, base, sorted)
}

func TestSampleLeavesInputUntouched(t *testing.T) {
	xs := []string{"x", "y", "z", "w"}
	got := Sample(New(11), xs, 3)
	assert.Len(t, got, 3)
	assert.Equal(t, []string{"x", "y", "z", "w"}, xs)
	for _, v := range got {
		assert.Contains(t, xs, v)
	}
}

func TestSeedFromTime(t *testing.T) {
	ts := time.UnixMilli(1_700_000_000_123)
	assert.Equal(t, uint32(1_700_000_000_123&0xFFFFFFFF), SeedFromTime(ts))
	assert.Equal(t, uint32(77), New(77).Seed())
}
