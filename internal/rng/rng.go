// Package rng provides the seeded mulberry32 generator that every item
// generator draws from, plus the small set of helpers built on it.
package rng

import "time"

// Source is a mulberry32 generator. It produces the same float sequence for
// the same seed on every platform. A Source is not safe for concurrent use.
type Source struct {
	state uint32
	seed  uint32
}

// New creates a Source seeded with seed.
func New(seed uint32) *Source {
	return &Source{state: seed, seed: seed}
}

// SeedFromTime derives a session seed from a wall-clock instant.
func SeedFromTime(t time.Time) uint32 {
	return uint32(t.UnixMilli())
}

// Seed returns the seed the Source was created with.
func (s *Source) Seed() uint32 {
	return s.seed
}

// Float64 advances the state once and returns a float in [0, 1).
func (s *Source) Float64() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Chance reports whether a single draw falls below p.
func (s *Source) Chance(p float64) bool {
	return s.Float64() < p
}

// Intn returns floor(draw * n), a uniform int in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with non-positive n")
	}
	return int(s.Float64() * float64(n))
}

// IntRange returns a uniform int in [lo, hi], inclusive on both ends.
func (s *Source) IntRange(lo, hi int) int {
	if hi < lo {
		panic("rng: IntRange called with hi < lo")
	}
	return s.Intn(hi-lo+1) + lo
}
