// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint defines the drawing context views render into.

A Context is a stateful 2D canvas with a save/restore stack. Views
receive a Context already translated into their local coordinate
space, so drawing at the origin draws at the top left corner of the
view bounds.

Package ggpaint implements Context on top of the gg rasterizer; package
painttest records calls for tests.
*/
package paint

import (
	"image/color"

	"viewkit.org/f32"
)

// Context is the drawing context passed to views during rendering.
type Context interface {
	// Push saves the transform, clip and alpha state.
	Push()
	// Pop restores the state saved by the matching Push.
	Pop()
	// Translate moves the origin by (x, y).
	Translate(x, y float32)
	// ClipRect intersects the clip area with r.
	ClipRect(r f32.Rect)
	// MultiplyAlpha multiplies the opacity of all subsequent drawing
	// by a.
	MultiplyAlpha(a float32)
	// FillRect fills r with c.
	FillRect(r f32.Rect, c color.NRGBA)
	// FillPath fills the area enclosed by p with c.
	FillPath(p *Path, c color.NRGBA)
	// StrokePath strokes the outline of p with c.
	StrokePath(p *Path, c color.NRGBA, width float32)
	// MeasureText returns the advance width and line height of s
	// set in the default face at the given size.
	MeasureText(s string, size float32) f32.Size
	// DrawText draws s with its baseline starting at origin.
	DrawText(s string, origin f32.Point, size float32, c color.NRGBA)
}
