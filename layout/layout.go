// SPDX-License-Identifier: Unlicense OR MIT

// Package layout implements behaviors that position the subviews of
// a view: Flex along an axis, Stack on top of each other and Inset
// filling the inset bounds.
package layout

import (
	"fmt"

	"viewkit.org/f32"
	"viewkit.org/ui"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the mutual alignment of a list of views in the cross
// axis.
type Alignment uint8

// Direction is the alignment of views relative to a containing
// space.
type Direction uint8

const (
	Start Alignment = iota
	End
	Middle
	// Stretch sizes views to the full cross axis.
	Stretch
)

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

const (
	Horizontal Axis = iota
	Vertical
)

// Inset is space around the content of a view. As a behavior, it
// resizes every subview to the inset bounds.
type Inset struct {
	Top, Right, Bottom, Left float32
}

var (
	_ ui.Layouter = Inset{}
	_ ui.Sizer    = Inset{}
)

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v float32) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// Rect returns r shrunk by the inset. An inset larger than r
// collapses the corresponding axis to zero size at the near edge.
func (in Inset) Rect(r f32.Rect) f32.Rect {
	r = r.Standardize()
	left, top := in.Left, in.Top
	r.Size.Width -= in.Left + in.Right
	if r.Size.Width < 0 {
		left = 0
		r.Size.Width = 0
	}
	r.Size.Height -= in.Top + in.Bottom
	if r.Size.Height < 0 {
		top = 0
		r.Size.Height = 0
	}
	r.Origin = r.Origin.Add(f32.Pt(left, top))
	return r
}

// grow returns sz enlarged by the inset.
func (in Inset) grow(sz f32.Size) f32.Size {
	return f32.Sz(sz.Width+in.Left+in.Right, sz.Height+in.Top+in.Bottom)
}

// LayoutSubviews resizes the subviews of v to the inset bounds.
func (in Inset) LayoutSubviews(v *ui.View) {
	r := in.Rect(v.Bounds())
	for _, c := range v.Subviews() {
		c.SetFrame(r)
	}
}

// SizeThatFits returns the largest preferred subview size plus the
// inset.
func (in Inset) SizeThatFits(v *ui.View, size f32.Size) f32.Size {
	avail := in.Rect(f32.Rect{Size: size}).Size
	var sz f32.Size
	for _, c := range v.Subviews() {
		cs := c.SizeThatFits(avail)
		sz.Width = max(sz.Width, cs.Width)
		sz.Height = max(sz.Height, cs.Height)
	}
	return in.grow(sz)
}

// Position returns the offset of a child of size sz aligned in
// space according to d.
func (d Direction) Position(space, sz f32.Size) f32.Point {
	var p f32.Point
	switch d {
	case N, S, Center:
		p.X = (space.Width - sz.Width) / 2
	case NE, SE, E:
		p.X = space.Width - sz.Width
	}
	switch d {
	case W, Center, E:
		p.Y = (space.Height - sz.Height) / 2
	case SW, S, SE:
		p.Y = space.Height - sz.Height
	}
	return p
}

func clampSize(sz, limit f32.Size) f32.Size {
	return f32.Sz(
		max(0, min(sz.Width, limit.Width)),
		max(0, min(sz.Height, limit.Height)),
	)
}

var (
	alignmentNames = [...]string{"Start", "End", "Middle", "Stretch"}
	axisNames      = [...]string{"Horizontal", "Vertical"}
	directionNames = [...]string{"NW", "N", "NE", "E", "SE", "S", "SW", "W", "Center"}
)

func name[T ~uint8](names []string, v T) string {
	if int(v) >= len(names) {
		panic(fmt.Sprintf("layout: invalid %T %d", v, v))
	}
	return names[v]
}

func (a Alignment) String() string { return name(alignmentNames[:], a) }
func (a Axis) String() string      { return name(axisNames[:], a) }
func (d Direction) String() string { return name(directionNames[:], d) }
