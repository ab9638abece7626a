// Package internet generates plausible internet-flavored fake data:
// usernames, email addresses, domains, URLs, network addresses, hex colors,
// and passwords.
//
// All generators hang off a Generator, which composes three collaborators:
// a random.Source (the only source of nondeterminism), a locale.Registry
// (word lists with fallback), and a Namer (person names for derived
// identities). Generators are stateless apart from advancing the source, so
// a Generator built on a seeded source replays the same output sequence for
// the same call sequence.
//
//	src := random.New(42)
//	reg, _ := locale.NewRegistry(ctx, locale.Builtin())
//	gen := internet.New(src, reg, nil)
//	gen.Email("", "", "")   // "vera_watson12@hotmail.com"
//	gen.IPv4()              // "61.224.7.139"
//
// Generators compose: Email builds on UserName, URL builds on Protocol and
// DomainName. Every method returns a concrete value synchronously; there is
// no I/O and no blocking anywhere in the package.
//
// A Generator must be owned by one logical session. Concurrent callers
// sharing one Generator must serialize access externally because draws from
// the source are not atomic; independent sessions with separate sources need
// no coordination.
package internet
