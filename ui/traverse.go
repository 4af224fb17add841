// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"viewkit.org/f32"
	"viewkit.org/paint"
)

type pass uint8

const (
	renderPass pass = iota
	hitPass
)

// walk is the traversal shared by rendering and hit testing. origin
// is the window position of the coordinate space of the superview of
// v. When rendering, ctx is already translated to that space.
type walk struct {
	pass  pass
	ctx   paint.Context
	dirty f32.Rect
	// pt is the hit test point in window coordinates.
	pt f32.Point
}

func (w *walk) visit(v *View, origin f32.Point) *View {
	if v.hidden || v.Alpha() <= 0 {
		return nil
	}
	local := origin.Add(v.localOffset())
	switch w.pass {
	case hitPass:
		if v.inert || !v.bounds.Contains(w.pt.Sub(local)) {
			return nil
		}
		for i := len(v.subviews) - 1; i >= 0; i-- {
			if hit := w.visit(v.subviews[i], local); hit != nil {
				return hit
			}
		}
		return v
	case renderPass:
		// Subviews may draw outside an unclipped frame, so only a
		// clipping view prunes its subtree.
		visible := v.frame.Add(origin).Intersects(w.dirty)
		if !visible && (v.clips || len(v.subviews) == 0) {
			return nil
		}
		ctx := w.ctx
		ctx.Push()
		off := v.localOffset()
		ctx.Translate(off.X, off.Y)
		if a := v.Alpha(); a < 1 {
			ctx.MultiplyAlpha(a)
		}
		if v.clips {
			ctx.ClipRect(v.bounds)
		}
		if visible {
			if v.background.A > 0 {
				ctx.FillRect(v.bounds, v.background)
			}
			if d, ok := v.behavior.(Drawer); ok {
				d.Draw(ctx, v.bounds)
			}
		}
		for _, c := range v.subviews {
			w.visit(c, local)
		}
		ctx.Pop()
	}
	return nil
}

// render draws v and its subtree where it intersects dirty. origin
// is the window position of the superview coordinate space.
func render(ctx paint.Context, v *View, origin f32.Point, dirty f32.Rect) {
	w := walk{pass: renderPass, ctx: ctx, dirty: dirty}
	w.visit(v, origin)
}

// HitTest returns the deepest visible, interactive view in the
// subtree rooted at v containing p, in the coordinates of v. Later
// subviews are probed first. It returns nil if p is outside v.
func (v *View) HitTest(p f32.Point) *View {
	// Place v so that its local space coincides with window space.
	w := walk{pass: hitPass, pt: p}
	return w.visit(v, v.localOffset().Mul(-1))
}

// Render draws the subtree rooted at v into ctx, which is taken to be
// in the coordinate space of the superview of v.
func (v *View) Render(ctx paint.Context) {
	var origin f32.Point
	if v.superview != nil {
		origin = v.superview.ConvertPoint(f32.Point{}, nil)
	}
	render(ctx, v, origin, v.frame.Add(origin))
}
