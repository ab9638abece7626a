package internet_test

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakeit/pkg/internet"
	"github.com/dmitrymomot/fakeit/pkg/random"
)

func TestColor(t *testing.T) {
	reg := builtinRegistry(t)

	t.Run("channels are averaged with the base", func(t *testing.T) {
		gen := internet.New(script(t, 100, 50, 30), reg, nil)
		// (100+0)/2=0x32, (50+0)/2=0x19, (30+0)/2=0x0f
		assert.Equal(t, "#32190f", gen.Color(0, 0, 0))
	})

	t.Run("base biases toward the base color", func(t *testing.T) {
		gen := internet.New(script(t, 0, 0, 0), reg, nil)
		// (0+255)/2 = 127 per channel
		assert.Equal(t, "#7f7f7f", gen.Color(255, 255, 255))
	})

	t.Run("always a hash and six lowercase hex digits", func(t *testing.T) {
		gen := internet.New(random.New(17), reg, nil)
		shape := regexp.MustCompile(`^#[0-9a-f]{6}$`)
		for i := 0; i < 500; i++ {
			assert.Regexp(t, shape, gen.Color(0, 0, 0))
		}
	})
}

func TestAvatar(t *testing.T) {
	reg := builtinRegistry(t)

	t.Run("fixed template with drawn index", func(t *testing.T) {
		gen := internet.New(script(t, 731), reg, nil)
		assert.Equal(t,
			"https://cloudflare-ipfs.com/ipfs/Qmd3W5DuhgHirLHGVixi6V76LhCkZUz6pnFt5AJBiyvHye/avatar/731.jpg",
			gen.Avatar())
	})

	t.Run("index stays in range", func(t *testing.T) {
		gen := internet.New(random.New(17), reg, nil)
		shape := regexp.MustCompile(`/avatar/(\d+)\.jpg$`)
		for i := 0; i < 100; i++ {
			m := shape.FindStringSubmatch(gen.Avatar())
			require.Len(t, m, 2)
		}
	})
}

func TestUUID(t *testing.T) {
	reg := builtinRegistry(t)

	t.Run("parses as a version 4 uuid", func(t *testing.T) {
		gen := internet.New(random.New(29), reg, nil)
		for i := 0; i < 100; i++ {
			u, err := uuid.Parse(gen.UUID())
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(4), u.Version())
		}
	})

	t.Run("equal seeds produce equal uuids", func(t *testing.T) {
		a := internet.New(random.New(29), reg, nil)
		b := internet.New(random.New(29), reg, nil)
		for i := 0; i < 20; i++ {
			assert.Equal(t, a.UUID(), b.UUID())
		}
	})
}
