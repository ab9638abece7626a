// Package locale resolves word-list categories against an ordered chain of
// locale definitions.
//
// A locale definition is a table mapping a category key (e.g. "first_name",
// "domain_suffix") to a non-empty ordered list of candidate strings. Locales
// compose into a fallback chain: the registry walks the chain in order and
// returns the first locale that defines the requested category. The built-in
// "en" locale defines every category the generators reference, so a chain
// ending in "en" can never fail to resolve a known category.
//
// # Architecture
//
//   - Definitions are loaded through the Adapter interface. MapAdapter wraps
//     an in-memory bundle, FileAdapter reads a single file through a Parser
//     (YAML or JSON), and EmbedAdapter walks an embedded filesystem.
//   - Builtin returns the adapter for the locale data shipped with the
//     library (data/*.yaml).
//   - NewRegistry validates the loaded bundle up front: every category list
//     must be non-empty, and every code in the requested chain must exist.
//
// # Usage
//
//	reg, err := locale.NewRegistry(ctx, locale.Builtin(), locale.WithChain("de", "en"))
//	if err != nil { ... }
//	words, err := reg.Resolve(locale.CategoryFirstName)
//
// # Error handling
//
// Resolving a category that no locale in the chain defines returns
// ErrUnknownCategory immediately; an empty list is never returned. That case
// indicates a typo or a missing fallback locale, not recoverable input, and
// MustResolve turns it into a panic for call sites whose categories are
// guaranteed by construction.
//
// # Concurrency
//
// A Registry is read-only after construction and safe to share between
// goroutines without locking.
package locale
