// Package random provides the seedable randomness source that all fakeit
// generators draw from.
//
// The package exposes two things: the Source interface, which is the single
// substitution point for deterministic test doubles, and Rand, a concrete
// Source backed by a PCG generator from math/rand/v2. A Rand created with a
// given seed always produces the same draw sequence, so any generation
// session built on top of it is fully reproducible and snapshot-testable.
//
// # Usage
//
//	src := random.New(42)
//	n := src.Int(99)                         // uniform in [0, 99]
//	word := random.Pick(src, []string{"a", "b", "c"})
//
// Bounds are inclusive on both ends: Int(max) returns a value in [0, max].
//
// # Error handling
//
// Misuse is a programming error and fails loudly: Int panics on a negative
// bound and Pick panics on an empty slice. Neither condition is ever
// silently substituted with a default value.
//
// # Concurrency
//
// A Rand is not safe for concurrent use. One Rand belongs to one logical
// generation session; independent sessions should each own their own Rand.
package random
