package person_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakeit/pkg/locale"
	"github.com/dmitrymomot/fakeit/pkg/person"
	"github.com/dmitrymomot/fakeit/pkg/random"
)

func newTestRegistry(t *testing.T) *locale.Registry {
	t.Helper()
	reg, err := locale.NewRegistry(context.Background(), locale.Builtin())
	require.NoError(t, err)
	return reg
}

func TestNames(t *testing.T) {
	reg := newTestRegistry(t)

	t.Run("names come from the locale word lists", func(t *testing.T) {
		g := person.New(random.New(11), reg)
		firsts := reg.MustResolve(locale.CategoryFirstName)
		lasts := reg.MustResolve(locale.CategoryLastName)

		for i := 0; i < 200; i++ {
			assert.Contains(t, firsts, g.FirstName())
			assert.Contains(t, lasts, g.LastName())
		}
	})

	t.Run("full name joins first and last", func(t *testing.T) {
		g := person.New(random.New(11), reg)
		full := g.FullName()
		assert.Contains(t, full, " ")
		assert.NotEmpty(t, strings.Fields(full))
	})

	t.Run("equal seeds generate equal names", func(t *testing.T) {
		a := person.New(random.New(7), reg)
		b := person.New(random.New(7), reg)
		for i := 0; i < 50; i++ {
			require.Equal(t, a.FirstName(), b.FirstName())
			require.Equal(t, a.LastName(), b.LastName())
		}
	})
}
