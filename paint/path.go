// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"math"

	"viewkit.org/f32"
)

// Path is an outline made of lines and Bézier curves. The zero
// value is an empty path.
type Path struct {
	segs []Segment
	pen  f32.Point
}

// Segment is a single path command.
type Segment struct {
	Op SegmentOp
	// Args holds the control points and end point, in that order.
	// Unused entries are zero.
	Args [3]f32.Point
}

// SegmentOp identifies a path command.
type SegmentOp uint8

const (
	SegMoveTo SegmentOp = iota
	SegLineTo
	SegQuadTo
	SegCubeTo
	SegClose
)

// MoveTo starts a new contour at to.
func (p *Path) MoveTo(to f32.Point) {
	p.segs = append(p.segs, Segment{Op: SegMoveTo, Args: [3]f32.Point{to}})
	p.pen = to
}

// LineTo adds a line from the pen to to.
func (p *Path) LineTo(to f32.Point) {
	p.segs = append(p.segs, Segment{Op: SegLineTo, Args: [3]f32.Point{to}})
	p.pen = to
}

// QuadTo adds a quadratic Bézier curve from the pen to to with the
// control point ctrl.
func (p *Path) QuadTo(ctrl, to f32.Point) {
	p.segs = append(p.segs, Segment{Op: SegQuadTo, Args: [3]f32.Point{ctrl, to}})
	p.pen = to
}

// CubeTo adds a cubic Bézier curve from the pen to to with the
// control points ctrl0 and ctrl1.
func (p *Path) CubeTo(ctrl0, ctrl1, to f32.Point) {
	p.segs = append(p.segs, Segment{Op: SegCubeTo, Args: [3]f32.Point{ctrl0, ctrl1, to}})
	p.pen = to
}

// Close closes the current contour.
func (p *Path) Close() {
	p.segs = append(p.segs, Segment{Op: SegClose})
}

// Pos returns the current pen position.
func (p *Path) Pos() f32.Point { return p.pen }

// Segments returns the recorded commands. The slice must not be
// modified.
func (p *Path) Segments() []Segment {
	if p == nil {
		return nil
	}
	return p.segs
}

// Rect returns the closed path outlining r.
func Rect(r f32.Rect) *Path {
	lo, hi := r.Min(), r.Max()
	p := new(Path)
	p.MoveTo(lo)
	p.LineTo(f32.Pt(hi.X, lo.Y))
	p.LineTo(hi)
	p.LineTo(f32.Pt(lo.X, hi.Y))
	p.Close()
	return p
}

// RoundRect returns the closed path outlining r with corners rounded
// by radius. The radius is limited to half the shorter side.
func RoundRect(r f32.Rect, radius float32) *Path {
	r = r.Standardize()
	radius = min(radius, r.Size.Width/2, r.Size.Height/2)
	if radius <= 0 {
		return Rect(r)
	}
	// https://pomax.github.io/bezierinfo/#circles_cubic.
	const q = 4 * (math.Sqrt2 - 1) / 3
	const iq = 1 - q
	lo, hi := r.Min(), r.Max()
	w, n, e, s := lo.X, lo.Y, hi.X, hi.Y
	rr := radius
	p := new(Path)
	p.MoveTo(f32.Pt(w+rr, n))
	p.LineTo(f32.Pt(e-rr, n))
	p.CubeTo(f32.Pt(e-rr*iq, n), f32.Pt(e, n+rr*iq), f32.Pt(e, n+rr))
	p.LineTo(f32.Pt(e, s-rr))
	p.CubeTo(f32.Pt(e, s-rr*iq), f32.Pt(e-rr*iq, s), f32.Pt(e-rr, s))
	p.LineTo(f32.Pt(w+rr, s))
	p.CubeTo(f32.Pt(w+rr*iq, s), f32.Pt(w, s-rr*iq), f32.Pt(w, s-rr))
	p.LineTo(f32.Pt(w, n+rr))
	p.CubeTo(f32.Pt(w, n+rr*iq), f32.Pt(w+rr*iq, n), f32.Pt(w+rr, n))
	p.Close()
	return p
}

// Ellipse returns the closed path of the ellipse inscribed in r.
func Ellipse(r f32.Rect) *Path {
	r = r.Standardize()
	const q = 4 * (math.Sqrt2 - 1) / 3
	c := r.Center()
	rx, ry := r.Size.Width/2, r.Size.Height/2
	kx, ky := rx*q, ry*q
	p := new(Path)
	p.MoveTo(f32.Pt(c.X+rx, c.Y))
	p.CubeTo(f32.Pt(c.X+rx, c.Y+ky), f32.Pt(c.X+kx, c.Y+ry), f32.Pt(c.X, c.Y+ry))
	p.CubeTo(f32.Pt(c.X-kx, c.Y+ry), f32.Pt(c.X-rx, c.Y+ky), f32.Pt(c.X-rx, c.Y))
	p.CubeTo(f32.Pt(c.X-rx, c.Y-ky), f32.Pt(c.X-kx, c.Y-ry), f32.Pt(c.X, c.Y-ry))
	p.CubeTo(f32.Pt(c.X+kx, c.Y-ry), f32.Pt(c.X+rx, c.Y-ky), f32.Pt(c.X+rx, c.Y))
	p.Close()
	return p
}

// Bounds returns the bounding box of the path control points.
func (p *Path) Bounds() f32.Rect {
	var b f32.Rect
	first := true
	for _, s := range p.Segments() {
		n := 0
		switch s.Op {
		case SegMoveTo, SegLineTo:
			n = 1
		case SegQuadTo:
			n = 2
		case SegCubeTo:
			n = 3
		}
		for _, pt := range s.Args[:n] {
			if first {
				b = f32.Rect{Origin: pt}
				first = false
				continue
			}
			lo, hi := b.Min(), b.Max()
			lo = f32.Pt(min(lo.X, pt.X), min(lo.Y, pt.Y))
			hi = f32.Pt(max(hi.X, pt.X), max(hi.Y, pt.Y))
			b = f32.Rect{Origin: lo, Size: f32.Sz(hi.X-lo.X, hi.Y-lo.Y)}
		}
	}
	return b
}
