package fakeit

import (
	"context"
	"time"

	"github.com/dmitrymomot/fakeit/pkg/internet"
	"github.com/dmitrymomot/fakeit/pkg/locale"
	"github.com/dmitrymomot/fakeit/pkg/person"
	"github.com/dmitrymomot/fakeit/pkg/random"
)

// Faker is one generation session: a randomness source, a locale registry,
// and the generator families built on top of them. Create independent Fakers
// for independent (or parallel) sessions.
type Faker struct {
	rand    random.Source
	locales *locale.Registry

	// Generator families, all drawing from the same source.
	Person   *person.Generator
	Internet *internet.Generator
}

// New creates a Faker. Without WithSeed or WithSource the session is seeded
// from the wall clock, so every run differs; supply a seed for reproducible
// fixtures.
func New(ctx context.Context, opts ...Option) (*Faker, error) {
	cfg := &config{
		adapter: locale.Builtin(),
		chain:   []string{locale.DefaultLocale},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	src := cfg.source
	if src == nil {
		seed := cfg.seed
		if !cfg.seeded {
			seed = uint64(time.Now().UnixNano())
		}
		src = random.New(seed)
	}

	regOpts := []locale.Option{locale.WithChain(cfg.chain...)}
	if cfg.logger != nil {
		regOpts = append(regOpts, locale.WithLogger(cfg.logger))
	}
	locales, err := locale.NewRegistry(ctx, cfg.adapter, regOpts...)
	if err != nil {
		return nil, err
	}

	names := person.New(src, locales)
	return &Faker{
		rand:     src,
		locales:  locales,
		Person:   names,
		Internet: internet.New(src, locales, names),
	}, nil
}

// Locales exposes the registry resolution order, primary locale first.
func (f *Faker) Locales() []string {
	return f.locales.Chain()
}
