package fakeit

import (
	"log/slog"

	"github.com/dmitrymomot/fakeit/pkg/locale"
	"github.com/dmitrymomot/fakeit/pkg/random"
)

// Option configures a Faker session.
type Option func(*config)

type config struct {
	seed    uint64
	seeded  bool
	source  random.Source
	adapter locale.Adapter
	chain   []string
	logger  *slog.Logger
}

// WithSeed makes the session deterministic: the same seed and call sequence
// always produce the same outputs.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithSource substitutes the randomness source entirely, e.g. a scripted
// test double. Takes precedence over WithSeed.
func WithSource(src random.Source) Option {
	return func(c *config) {
		if src != nil {
			c.source = src
		}
	}
}

// WithLocaleChain sets the locale fallback chain, primary first. End the
// chain with locale.DefaultLocale unless the primary defines every category.
func WithLocaleChain(codes ...string) Option {
	return func(c *config) {
		if len(codes) > 0 {
			c.chain = codes
		}
	}
}

// WithAdapter replaces the built-in locale data source.
func WithAdapter(adapter locale.Adapter) Option {
	return func(c *config) {
		if adapter != nil {
			c.adapter = adapter
		}
	}
}

// WithLogger wires a logger for locale fallback diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
