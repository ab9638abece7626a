package internet

import (
	"fmt"

	"github.com/google/uuid"
)

const avatarURLTemplate = "https://cloudflare-ipfs.com/ipfs/Qmd3W5DuhgHirLHGVixi6V76LhCkZUz6pnFt5AJBiyvHye/avatar/%d.jpg"

// Avatar returns a CDN avatar URL with a uniformly drawn image index.
func (g *Generator) Avatar() string {
	return fmt.Sprintf(avatarURLTemplate, g.rand.Int(1249))
}

// UUID returns a version 4 UUID built from sixteen deterministic byte draws,
// so fixtures stay reproducible for a fixed seed.
func (g *Generator) UUID() string {
	var b [16]byte
	for i := range b {
		b[i] = byte(g.rand.Int(255))
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return uuid.Must(uuid.FromBytes(b[:])).String()
}
