package itemgen

import "github.com/abhisek/gctb/internal/rng"

func newTestSource(seed uint32) *rng.Source {
	return rng.New(seed)
}
