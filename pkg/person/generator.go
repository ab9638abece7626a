package person

import (
	"github.com/dmitrymomot/fakeit/pkg/locale"
	"github.com/dmitrymomot/fakeit/pkg/random"
)

// Generator draws person names from locale word lists. Stateless apart from
// advancing the shared randomness source.
type Generator struct {
	rand    random.Source
	locales *locale.Registry
}

// New creates a name generator over the given randomness source and locale
// registry.
func New(src random.Source, locales *locale.Registry) *Generator {
	return &Generator{rand: src, locales: locales}
}

// FirstName returns a uniformly chosen first name from the active locale.
func (g *Generator) FirstName() string {
	return random.Pick(g.rand, g.locales.MustResolve(locale.CategoryFirstName))
}

// LastName returns a uniformly chosen last name from the active locale.
func (g *Generator) LastName() string {
	return random.Pick(g.rand, g.locales.MustResolve(locale.CategoryLastName))
}

// FullName returns "first last".
func (g *Generator) FullName() string {
	return g.FirstName() + " " + g.LastName()
}
