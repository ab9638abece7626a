package internet

import (
	"github.com/dmitrymomot/fakeit/pkg/locale"
	"github.com/dmitrymomot/fakeit/pkg/random"
	"github.com/dmitrymomot/fakeit/pkg/slug"
)

var protocols = []string{"http", "https"}

var httpMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH"}

// Characters removed from domain words instead of being hyphenated away.
const domainStripChars = "'\"~#&*{}/:<>?|\\"

// DomainWord builds an adjective-noun label, strips punctuation, converts
// spaces to hyphens, collapses hyphen runs, and lowercases.
func (g *Generator) DomainWord() string {
	word := g.pick(locale.CategoryAdjective) + "-" + g.pick(locale.CategoryNoun)
	return slug.Make(word, slug.StripChars(domainStripChars))
}

// DomainSuffix returns a uniformly chosen top-level domain.
func (g *Generator) DomainSuffix() string {
	return g.pick(locale.CategoryDomainSuffix)
}

// DomainName composes "domainWord.domainSuffix".
func (g *Generator) DomainName() string {
	return g.DomainWord() + "." + g.DomainSuffix()
}

// Protocol returns "http" or "https" uniformly.
func (g *Generator) Protocol() string {
	return random.Pick(g.rand, protocols)
}

// URL composes "protocol://domainName".
func (g *Generator) URL() string {
	return g.Protocol() + "://" + g.DomainName()
}

// HTTPMethod returns one of GET, POST, PUT, DELETE, PATCH uniformly.
func (g *Generator) HTTPMethod() string {
	return random.Pick(g.rand, httpMethods)
}
