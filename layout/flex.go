// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"viewkit.org/f32"
	"viewkit.org/ui"
)

// Flex is a behavior that lays out the subviews of its view along an
// axis, in subview order. Subviews with a weight share the space left
// by the others, which keep their preferred size.
type Flex struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis
	// Spacing controls the distribution of space left after
	// layout.
	Spacing Spacing
	// Alignment is the alignment in the cross axis.
	Alignment Alignment
	// Inset is the space around the laid out subviews.
	Inset Inset

	weights map[*ui.View]float32
}

// Spacing determine the spacing mode for a Flex.
type Spacing uint8

const (
	// SpaceEnd leaves space at the end.
	SpaceEnd Spacing = iota
	// SpaceStart leaves space at the start.
	SpaceStart
	// SpaceSides shares space between the start and end.
	SpaceSides
	// SpaceAround distributes space evenly between children,
	// with half as much space at the start and end.
	SpaceAround
	// SpaceBetween distributes space evenly between children,
	// leaving no space at the start and end.
	SpaceBetween
	// SpaceEvenly distributes space evenly between children and
	// at the start and end.
	SpaceEvenly
)

var (
	_ ui.Layouter = (*Flex)(nil)
	_ ui.Sizer    = (*Flex)(nil)
)

// SetWeight makes v take the fraction weight of the space left by
// the rigid subviews. A zero weight makes v rigid again.
func (f *Flex) SetWeight(v *ui.View, weight float32) {
	if weight <= 0 {
		delete(f.weights, v)
	} else {
		if f.weights == nil {
			f.weights = make(map[*ui.View]float32)
		}
		f.weights[v] = weight
	}
	if s := v.Superview(); s != nil {
		s.SetNeedsLayout()
	}
}

// Weight returns the weight of v.
func (f *Flex) Weight(v *ui.View) float32 {
	return f.weights[v]
}

// LayoutSubviews sets the frames of the subviews of v.
func (f *Flex) LayoutSubviews(v *ui.View) {
	content := f.Inset.Rect(v.Bounds())
	children := v.Subviews()
	sizes := make([]f32.Size, len(children))
	mainMax := axisMain(f.Axis, content.Size)
	crossMax := axisCross(f.Axis, content.Size)
	var size float32
	// Lay out rigid children.
	for i, c := range children {
		if f.weights[c] > 0 {
			continue
		}
		avail := axisSize(f.Axis, max(0, mainMax-size), crossMax)
		sz := clampSize(c.SizeThatFits(avail), avail)
		sizes[i] = sz
		size += axisMain(f.Axis, sz)
	}
	rigidSize := size
	// Lay out flexed children.
	for i, c := range children {
		w := f.weights[c]
		if w <= 0 {
			continue
		}
		var flexSize float32
		if mainMax > size {
			flexSize = min((mainMax-rigidSize)*w, mainMax-size)
		}
		pref := c.SizeThatFits(axisSize(f.Axis, flexSize, crossMax))
		cross := max(0, min(axisCross(f.Axis, pref), crossMax))
		sizes[i] = axisSize(f.Axis, flexSize, cross)
		size += flexSize
	}
	var space float32
	if mainMax > size {
		space = mainMax - size
	}
	pos, gap := f.Spacing.distribute(space, len(children))
	for i, c := range children {
		sz := sizes[i]
		var cross float32
		switch f.Alignment {
		case End:
			cross = crossMax - axisCross(f.Axis, sz)
		case Middle:
			cross = (crossMax - axisCross(f.Axis, sz)) / 2
		case Stretch:
			sz = axisSize(f.Axis, axisMain(f.Axis, sz), crossMax)
		}
		origin := content.Origin.Add(axisPoint(f.Axis, pos, cross))
		c.SetFrame(f32.Rect{Origin: origin, Size: sz})
		pos += axisMain(f.Axis, sz) + gap
	}
}

// distribute splits the free space along the main axis of n views
// into the offset of the first view and the gap between neighbors.
func (s Spacing) distribute(space float32, n int) (lead, gap float32) {
	if n == 0 {
		return 0, 0
	}
	fn := float32(n)
	switch s {
	case SpaceStart:
		return space, 0
	case SpaceSides:
		return space / 2, 0
	case SpaceEvenly:
		return space / (fn + 1), space / (fn + 1)
	case SpaceAround:
		return space / (fn * 2), space / fn
	case SpaceBetween:
		if n == 1 {
			return 0, 0
		}
		return 0, space / (fn - 1)
	}
	return 0, 0
}

// SizeThatFits returns the sum of the preferred subview sizes along
// the axis and their largest cross size, plus the inset.
func (f *Flex) SizeThatFits(v *ui.View, size f32.Size) f32.Size {
	avail := f.Inset.Rect(f32.Rect{Size: size}).Size
	var main, cross float32
	for _, c := range v.Subviews() {
		sz := c.SizeThatFits(avail)
		main += axisMain(f.Axis, sz)
		cross = max(cross, axisCross(f.Axis, sz))
	}
	return f.Inset.grow(axisSize(f.Axis, main, cross))
}

func axisPoint(a Axis, main, cross float32) f32.Point {
	if a == Horizontal {
		return f32.Pt(main, cross)
	}
	return f32.Pt(cross, main)
}

func axisSize(a Axis, main, cross float32) f32.Size {
	if a == Horizontal {
		return f32.Sz(main, cross)
	}
	return f32.Sz(cross, main)
}

func axisMain(a Axis, sz f32.Size) float32 {
	if a == Horizontal {
		return sz.Width
	}
	return sz.Height
}

func axisCross(a Axis, sz f32.Size) float32 {
	if a == Horizontal {
		return sz.Height
	}
	return sz.Width
}

var spacingNames = [...]string{"SpaceEnd", "SpaceStart", "SpaceSides", "SpaceAround", "SpaceBetween", "SpaceEvenly"}

func (s Spacing) String() string { return name(spacingNames[:], s) }
