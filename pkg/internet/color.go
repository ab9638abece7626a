package internet

import "fmt"

// Color returns a hex color string "#rrggbb". Each channel is a fresh
// uniform draw averaged with the supplied base value (floor((draw+base)/2)),
// which biases output toward the base color without clamping the draw
// itself. A zero base leaves the channel fully random.
func (g *Generator) Color(baseRed, baseGreen, baseBlue int) string {
	red := (g.rand.Int(256) + baseRed) / 2
	green := (g.rand.Int(256) + baseGreen) / 2
	blue := (g.rand.Int(256) + baseBlue) / 2
	return fmt.Sprintf("#%02x%02x%02x", red, green, blue)
}
