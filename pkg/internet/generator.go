package internet

import (
	"github.com/dmitrymomot/fakeit/pkg/locale"
	"github.com/dmitrymomot/fakeit/pkg/person"
	"github.com/dmitrymomot/fakeit/pkg/random"
)

// Namer supplies person names for generators that derive an identity when
// the caller does not pass one explicitly.
type Namer interface {
	FirstName() string
	LastName() string
}

// Generator produces internet-flavored fake data. One Generator equals one
// generation session; see the package documentation for the concurrency
// contract.
type Generator struct {
	rand    random.Source
	locales *locale.Registry
	names   Namer
}

// New creates a Generator. A nil names falls back to a locale-backed person
// generator sharing the same randomness source.
func New(src random.Source, locales *locale.Registry, names Namer) *Generator {
	if names == nil {
		names = person.New(src, locales)
	}
	return &Generator{rand: src, locales: locales, names: names}
}

func (g *Generator) pick(category string) string {
	return random.Pick(g.rand, g.locales.MustResolve(category))
}
