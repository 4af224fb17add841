// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Common colors.
var (
	Transparent = color.NRGBA{}
	Black       = color.NRGBA{A: 0xff}
	White       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// MulAlpha scales the alpha of c by a, clamped to [0, 1].
func MulAlpha(c color.NRGBA, a float32) color.NRGBA {
	a = min(max(a, 0), 1)
	c.A = uint8(float32(c.A)*a + .5)
	return c
}

// ParseHex parses colors in the #rgb, #rrggbb and #rrggbbaa forms.
func ParseHex(s string) (color.NRGBA, error) {
	h, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("paint: color %q: missing #", s)
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("paint: color %q: invalid length", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("paint: color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
