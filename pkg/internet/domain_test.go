package internet_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fakeit/pkg/internet"
	"github.com/dmitrymomot/fakeit/pkg/locale"
	"github.com/dmitrymomot/fakeit/pkg/random"
)

func TestDomainWord(t *testing.T) {
	reg := builtinRegistry(t)

	t.Run("first entries compose adjective-noun", func(t *testing.T) {
		gen := internet.New(script(t, 0, 0), reg, nil)
		assert.Equal(t, "brave-badger", gen.DomainWord())
	})

	t.Run("always a lowercase hyphenated label", func(t *testing.T) {
		gen := internet.New(random.New(8), reg, nil)
		shape := regexp.MustCompile(`^[a-z]+-[a-z]+$`)
		for i := 0; i < 200; i++ {
			assert.Regexp(t, shape, gen.DomainWord())
		}
	})
}

func TestDomainName(t *testing.T) {
	reg := builtinRegistry(t)
	gen := internet.New(random.New(8), reg, nil)

	shape := regexp.MustCompile(`^[a-z]+-[a-z]+\.[a-z]+$`)
	suffixes := reg.MustResolve(locale.CategoryDomainSuffix)

	for i := 0; i < 200; i++ {
		name := gen.DomainName()
		assert.Regexp(t, shape, name)

		dot := strings.LastIndex(name, ".")
		assert.Contains(t, suffixes, name[dot+1:])
	}
}

func TestProtocolAndMethod(t *testing.T) {
	reg := builtinRegistry(t)
	gen := internet.New(random.New(8), reg, nil)

	for i := 0; i < 100; i++ {
		assert.Contains(t, []string{"http", "https"}, gen.Protocol())
		assert.Contains(t, []string{"GET", "POST", "PUT", "DELETE", "PATCH"}, gen.HTTPMethod())
	}
}

func TestURL(t *testing.T) {
	reg := builtinRegistry(t)
	gen := internet.New(random.New(8), reg, nil)

	shape := regexp.MustCompile(`^https?://[a-z]+-[a-z]+\.[a-z]+$`)
	for i := 0; i < 200; i++ {
		assert.Regexp(t, shape, gen.URL())
	}
}
