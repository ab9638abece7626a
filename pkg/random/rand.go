package random

import (
	"fmt"
	"io"
	"math/rand/v2"
)

// Source yields uniformly distributed integers. It is the only source of
// nondeterminism in the library; swap it for a scripted implementation to
// make generator output fully predictable in tests.
type Source interface {
	// Int returns a uniformly distributed integer in [0, max] inclusive.
	Int(max int) int
}

// Rand is a deterministic Source backed by a math/rand/v2 PCG generator.
// The same seed always yields the same draw sequence.
type Rand struct {
	src *rand.Rand
}

// New creates a Rand seeded with the given value.
func New(seed uint64) *Rand {
	return &Rand{src: rand.New(rand.NewPCG(seed, 0))}
}

// Int returns a uniformly distributed integer in [0, max] inclusive.
// A negative bound is a programming error and panics.
func (r *Rand) Int(max int) int {
	if max < 0 {
		panic(fmt.Sprintf("random: negative bound %d", max))
	}
	return r.src.IntN(max + 1)
}

// Read fills p with deterministic pseudo-random bytes, advancing the same
// internal state as Int. It never returns an error, satisfying io.Reader for
// collaborators that consume raw bytes (e.g. UUID construction).
func (r *Rand) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.UintN(256))
	}
	return len(p), nil
}

var (
	_ Source    = (*Rand)(nil)
	_ io.Reader = (*Rand)(nil)
)

// Pick returns a uniformly chosen element of items. An empty slice means a
// category was left without candidates, which is a programming error, so
// Pick panics rather than returning a zero value.
func Pick[T any](src Source, items []T) T {
	if len(items) == 0 {
		panic("random: pick from empty list")
	}
	return items[src.Int(len(items)-1)]
}
