package internet_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakeit/pkg/internet"
	"github.com/dmitrymomot/fakeit/pkg/random"
)

const (
	vowels     = "aeiou"
	consonants = "bcdfghjklmnpqrstvwxyz"
)

func TestPassword(t *testing.T) {
	reg := builtinRegistry(t)

	t.Run("prefix at or beyond length is returned unchanged", func(t *testing.T) {
		gen := internet.New(random.New(1), reg, nil)
		assert.Equal(t, "abcdef", gen.Password(5, false, nil, "abcdef"))
		assert.Equal(t, "abcde", gen.Password(5, false, nil, "abcde"))
	})

	t.Run("memorable mode alternates consonant and vowel", func(t *testing.T) {
		gen := internet.New(random.New(2), reg, nil)
		// The supplied pattern is ignored while memorable mode is active;
		// output is lowercase letters starting with a consonant.
		pw := gen.Password(20, true, regexp.MustCompile(`[A-Z]`), "")

		require.Len(t, pw, 20)
		assert.Regexp(t, regexp.MustCompile(`^[a-z]{20}$`), pw)

		for i, ch := range pw {
			if i%2 == 0 {
				assert.Contains(t, consonants, string(ch), "position %d of %q", i, pw)
			} else {
				assert.Contains(t, vowels, string(ch), "position %d of %q", i, pw)
			}
		}
	})

	t.Run("pattern constrains every generated character", func(t *testing.T) {
		gen := internet.New(random.New(3), reg, nil)
		pw := gen.Password(20, false, regexp.MustCompile(`[A-Z]`), "")

		require.Len(t, pw, 20)
		assert.Regexp(t, regexp.MustCompile(`^[A-Z]{20}$`), pw)
	})

	t.Run("nil pattern defaults to word characters", func(t *testing.T) {
		gen := internet.New(random.New(4), reg, nil)
		pw := gen.Password(15, false, nil, "")

		require.Len(t, pw, 15)
		assert.Regexp(t, regexp.MustCompile(`^\w{15}$`), pw)
	})

	t.Run("prefix is preserved and extended", func(t *testing.T) {
		gen := internet.New(random.New(5), reg, nil)
		pw := gen.Password(10, false, nil, "abc")

		require.Len(t, pw, 10)
		assert.True(t, strings.HasPrefix(pw, "abc"))
		assert.Regexp(t, regexp.MustCompile(`^abc\w{7}$`), pw)
	})

	t.Run("memorable continues the prefix class alternation", func(t *testing.T) {
		gen := internet.New(random.New(6), reg, nil)
		// Prefix ends in a consonant, so the next character must be a vowel.
		pw := gen.Password(4, true, nil, "xyz")

		require.Len(t, pw, 4)
		assert.Contains(t, vowels, string(pw[3]))
	})

	t.Run("equal seeds produce equal passwords", func(t *testing.T) {
		a := internet.New(random.New(7), reg, nil)
		b := internet.New(random.New(7), reg, nil)
		for i := 0; i < 20; i++ {
			assert.Equal(t, a.Password(12, true, nil, ""), b.Password(12, true, nil, ""))
		}
	})
}
