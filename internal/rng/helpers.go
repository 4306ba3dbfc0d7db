package rng

// PickOne returns a uniformly chosen element of xs. xs must not be empty.
func PickOne[T any](s *Source, xs []T) T {
	if len(xs) == 0 {
		panic("rng: PickOne from empty slice")
	}
	return xs[s.Intn(len(xs))]
}

// PickExcluding removes every excluded value from xs and picks uniformly from
// what remains. At least one element must survive the filter.
func PickExcluding[T comparable](s *Source, xs []T, excluded ...T) T {
	rest := make([]T, 0, len(xs))
	for _, x := range xs {
		if !contains(excluded, x) {
			rest = append(rest, x)
		}
	}
	if len(rest) == 0 {
		panic("rng: PickExcluding excluded every element")
	}
	return PickOne(s, rest)
}

// Shuffle permutes xs in place with Fisher-Yates, walking from the end and
// drawing j = floor(draw * (i+1)).
func Shuffle[T any](s *Source, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Sample returns n elements of xs in random order without modifying xs.
func Sample[T any](s *Source, xs []T, n int) []T {
	cp := make([]T, len(xs))
	copy(cp, xs)
	Shuffle(s, cp)
	if n > len(cp) {
		n = len(cp)
	}
	return cp[:n]
}

func contains[T comparable](xs []T, v T) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
