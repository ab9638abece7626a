// Package fakeit synthesizes human-plausible fake data — emails, usernames,
// passwords, network addresses, colors — from a seedable source of randomness
// combined with locale-specific word lists.
//
// FakeIt is built for test fixtures and demo datasets: output looks real,
// never is real (example-only email domains are available for that reason),
// and is fully reproducible for a fixed seed.
//
// Key Features:
//
//   - Deterministic: one seed, one output sequence, snapshot-testable
//   - Locale-aware: word lists resolve through an ordered fallback chain
//   - Composable: generators build on each other (email → username → names)
//   - Explicit sessions: no global mutable state, parallel sessions are free
//
// Basic Usage:
//
//	f, err := fakeit.New(ctx, fakeit.WithSeed(42))
//	if err != nil {
//		return err
//	}
//
//	f.Internet.Email("", "", "")  // "vera_watson12@hotmail.com"
//	f.Internet.IPv4()             // "61.224.7.139"
//	f.Person.FirstName()          // "Jeanne"
//
// Locale Selection:
//
//	f, err := fakeit.New(ctx,
//		fakeit.WithSeed(42),
//		fakeit.WithLocaleChain("de", "en"), // de first, en fills the gaps
//	)
//
// Custom locale data can be supplied with WithAdapter; see pkg/locale for
// the adapter and parser surface.
//
// Concurrency:
//
// A Faker owns one randomness source and must be treated as a single
// generation session: concurrent callers sharing one Faker must serialize
// access themselves. Independent Fakers are fully isolated and can run in
// parallel.
package fakeit
