package itemgen

// SetFunc builds the n items of one session from a session seed.
type SetFunc func(seed uint32, n int) []Item

// ArithSet draws all n items from one stream seeded with seed.
func ArithSet(p ArithParams) SetFunc {
	return func(seed uint32, n int) []Item {
		seq := ArithSequence(seed, n, p)
		out := make([]Item, len(seq))
		for i, it := range seq {
			out[i] = it
		}
		return out
	}
}

// PerSeed builds item i from seed+i, wrapping around on overflow.
func PerSeed[T Item](gen func(seed uint32) T) SetFunc {
	return func(seed uint32, n int) []Item {
		out := make([]Item, n)
		for i := range out {
			out[i] = gen(seed + uint32(i))
		}
		return out
	}
}
