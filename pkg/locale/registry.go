package locale

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Registry resolves category keys against an ordered fallback chain of
// locale definitions. It is read-only after construction.
type Registry struct {
	chain  []chainEntry
	logger *slog.Logger
}

type chainEntry struct {
	code string
	def  Definition
}

// Option configures registry construction.
type Option func(*registryConfig)

type registryConfig struct {
	chain  []string
	logger *slog.Logger
}

// WithChain sets the ordered fallback chain, primary locale first. Every
// code must exist in the adapter's bundle. Default is the built-in
// total-coverage locale alone.
func WithChain(codes ...string) Option {
	return func(c *registryConfig) {
		if len(codes) > 0 {
			c.chain = codes
		}
	}
}

// WithLogger wires a logger for fallback diagnostics. Nil loggers are
// ignored; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *registryConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewRegistry loads a locale bundle through the adapter and builds the
// fallback chain. The bundle is validated up front: empty word lists and
// chain codes missing from the bundle are construction errors, not
// resolution-time surprises.
func NewRegistry(ctx context.Context, adapter Adapter, opts ...Option) (*Registry, error) {
	if adapter == nil {
		return nil, fmt.Errorf("adapter is nil")
	}

	cfg := &registryConfig{
		chain:  []string{DefaultLocale},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if len(cfg.chain) == 0 {
		return nil, ErrEmptyChain
	}

	bundle, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateBundle(bundle); err != nil {
		return nil, err
	}

	chain := make([]chainEntry, 0, len(cfg.chain))
	for _, code := range cfg.chain {
		def, ok := bundle[code]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, code)
		}
		chain = append(chain, chainEntry{code: code, def: def})
	}

	cfg.logger.InfoContext(ctx, "locale registry ready", "chain", cfg.chain)
	return &Registry{chain: chain, logger: cfg.logger}, nil
}

func validateBundle(bundle map[string]Definition) error {
	for code, def := range bundle {
		if code == "" {
			return ErrEmptyLocaleCode
		}
		for category, words := range def {
			if len(words) == 0 {
				return fmt.Errorf("%w: %s.%s", ErrEmptyWordList, code, category)
			}
		}
	}
	return nil
}

// Chain returns the resolution order as locale codes, primary first.
func (r *Registry) Chain() []string {
	codes := make([]string, len(r.chain))
	for i, e := range r.chain {
		codes[i] = e.code
	}
	return codes
}

// Resolve walks the chain and returns the first word list defined for the
// category. A category no locale in the chain defines yields
// ErrUnknownCategory; Resolve never returns an empty list.
func (r *Registry) Resolve(category string) ([]string, error) {
	for i, e := range r.chain {
		if words, ok := e.def[category]; ok {
			if i > 0 {
				r.logger.Debug("category resolved via fallback",
					"category", category, "locale", e.code, "primary", r.chain[0].code)
			}
			return words, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (chain %v)", ErrUnknownCategory, category, r.Chain())
}

// MustResolve is Resolve for categories guaranteed by construction (every
// generator category is defined by the built-in default locale). An unknown
// category is a programming error and panics.
func (r *Registry) MustResolve(category string) []string {
	words, err := r.Resolve(category)
	if err != nil {
		panic(err)
	}
	return words
}
