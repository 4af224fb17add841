// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"viewkit.org/f32"
)

// localOffset returns the translation from superview coordinates to
// the coordinates of v.
func (v *View) localOffset() f32.Point {
	return v.frame.Origin.Sub(v.bounds.Origin)
}

// toRoot converts p from the coordinates of v to the coordinates of
// the root of its tree, and returns the root.
func (v *View) toRoot(p f32.Point) (f32.Point, *View) {
	a := v
	for ; a.superview != nil; a = a.superview {
		p = p.Add(a.localOffset())
	}
	return p, a
}

// root returns the topmost ancestor of v.
func (v *View) root() *View {
	a := v
	for a.superview != nil {
		a = a.superview
	}
	return a
}

// ConvertPoint converts p from the coordinates of v to the
// coordinates of to. A nil to means the coordinates of the window,
// or of the topmost ancestor for detached views. Converting between
// views in different windows panics.
func (v *View) ConvertPoint(p f32.Point, to *View) f32.Point {
	p, r := v.toRoot(p)
	if to == nil {
		return p
	}
	q, tr := to.toRoot(f32.Point{})
	if r != tr {
		panic("ui: converting between views in different windows")
	}
	return p.Sub(q)
}

// ConvertPointFrom converts p from the coordinates of from to the
// coordinates of v. A nil from means window coordinates.
func (v *View) ConvertPointFrom(p f32.Point, from *View) f32.Point {
	if from == nil {
		from = v.root()
	}
	return from.ConvertPoint(p, v)
}

// ConvertRect converts r from the coordinates of v to the
// coordinates of to, with the same rules as ConvertPoint.
func (v *View) ConvertRect(r f32.Rect, to *View) f32.Rect {
	r.Origin = v.ConvertPoint(r.Origin, to)
	return r
}

// ConvertRectFrom converts r from the coordinates of from to the
// coordinates of v.
func (v *View) ConvertRectFrom(r f32.Rect, from *View) f32.Rect {
	r.Origin = v.ConvertPointFrom(r.Origin, from)
	return r
}
