// Package random provides the entropy sources used by the name synthesizer
// and the predefined-variable resolver.
//
// Every generator in mockvars draws through a Source so that output can be
// made reproducible by injecting a seeded source:
//
//	src := random.NewSeeded(42)
//	r := vars.New(vars.WithSource(src))
//
// Without an explicit source, Global is used, which delegates to the
// automatically seeded math/rand/v2 top-level functions.
package random

import (
	mathrand "math/rand/v2"
	"sync"
)

// Source is a uniform random capability.
// *math/rand/v2.Rand satisfies it, but is not safe for concurrent use;
// prefer NewSeeded when a seeded source is shared between goroutines.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Uint64 returns a uniform 64-bit value.
	Uint64() uint64
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return mathrand.IntN(n) }

func (globalSource) Uint64() uint64 { return mathrand.Uint64() }

// Global returns a Source backed by the math/rand/v2 global generator.
// It is safe for concurrent use.
func Global() Source {
	return globalSource{}
}

// Seeded is a deterministic, mutex-guarded PCG source.
type Seeded struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewSeeded creates a Seeded source. Two sources created with the same seed
// produce the same sequence.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: mathrand.New(mathrand.NewPCG(seed, 0))}
}

// IntN implements Source.
func (s *Seeded) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Uint64 implements Source.
func (s *Seeded) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64()
}

// Or returns src, or Global if src is nil.
func Or(src Source) Source {
	if src == nil {
		return Global()
	}
	return src
}

// Pick returns a uniformly chosen element of items.
// It panics on an empty slice.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Chance reports whether a draw in [0, 10) falls below tenths.
// Chance(src, 8) is true with probability 0.8.
func Chance(src Source, tenths int) bool {
	return src.IntN(10) < tenths
}

// Reader adapts a Source to io.Reader, one byte per IntN(256) draw.
// It is used to feed seeded bytes to UUID generation.
type Reader struct {
	Src Source
}

// Read fills p with random bytes. It never returns an error.
func (r Reader) Read(p []byte) (int, error) {
	src := Or(r.Src)
	for i := range p {
		p[i] = byte(src.IntN(256))
	}
	return len(p), nil
}
