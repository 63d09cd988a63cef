package canvas

import (
	"fmt"
	"image/color"
	"strconv"
)

// Hex encodes a color the way the wire format wants it: upper-case
// RRGGBBAA, such as FF00FFFF for opaque magenta.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseColor reads an RRGGBB or RRGGBBAA hex string; a missing alpha
// channel means opaque. A leading '#' is accepted.
func ParseColor(s string) (color.RGBA, error) {
	raw := s
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("canvas: bad color %q: %w", raw, err)
	}
	switch len(s) {
	case 6:
		return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
	case 8:
		return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
	default:
		return color.RGBA{}, fmt.Errorf("canvas: bad color %q: want RRGGBB or RRGGBBAA", raw)
	}
}
