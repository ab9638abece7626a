package internet

import (
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

func (g *Generator) hexDigit() byte {
	return hexDigits[g.rand.Int(15)]
}

// IPv4 returns four dot-separated octets, each uniform in [0, 255]. Reserved
// and special-purpose ranges are not avoided; any 32-bit value is admissible.
func (g *Generator) IPv4() string {
	octets := make([]string, 4)
	for i := range octets {
		octets[i] = strconv.Itoa(g.rand.Int(255))
	}
	return strings.Join(octets, ".")
}

// IPv6 returns eight colon-separated groups of four independently drawn hex
// digits. Any 128-bit value is admissible.
func (g *Generator) IPv6() string {
	var b strings.Builder
	b.Grow(39)
	for group := 0; group < 8; group++ {
		if group > 0 {
			b.WriteByte(':')
		}
		for i := 0; i < 4; i++ {
			b.WriteByte(g.hexDigit())
		}
	}
	return b.String()
}

// Port returns a uniform port number in [0, 65535].
func (g *Generator) Port() int {
	return g.rand.Int(65535)
}

// MAC returns twelve hex digits with the separator inserted after every
// second digit except the last pair. The separator must be ":", "-", or "";
// anything else is silently replaced with the default ":" rather than
// rejected — a deliberate quirk, pinned by tests.
func (g *Generator) MAC(separator string) string {
	switch separator {
	case ":", "-", "":
	default:
		separator = ":"
	}

	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteByte(g.hexDigit())
		if i%2 == 1 && i < 11 {
			b.WriteString(separator)
		}
	}
	return b.String()
}
