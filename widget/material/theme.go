// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"
)

// Theme holds the colors and text size shared by themed widgets.
type Theme struct {
	Color struct {
		Primary color.NRGBA
		Text    color.NRGBA
		Hint    color.NRGBA
		InvText color.NRGBA
	}
	TextSize float32
}

// NewTheme returns the default theme.
func NewTheme() *Theme {
	t := new(Theme)
	t.Color.Primary = rgb(0x3f51b5)
	t.Color.Text = rgb(0x000000)
	t.Color.Hint = rgb(0xbbbbbb)
	t.Color.InvText = rgb(0xffffff)
	t.TextSize = 16
	return t
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
