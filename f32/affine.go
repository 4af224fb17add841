// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"fmt"
	"math"
)

// Affine2D is an affine 2D transformation. The zero value is the
// identity transform.
//
// The represented matrix is
//
//	[sx hx ox]
//	[hy sy oy]
//	[ 0  0  1]
//
// stored with the identity subtracted from the diagonal.
type Affine2D struct {
	sx, hx, ox float32
	hy, sy, oy float32
}

// NewAffine2D returns the transform with the given matrix elements
// in row major order.
func NewAffine2D(sx, hx, ox, hy, sy, oy float32) Affine2D {
	return Affine2D{sx: sx - 1, hx: hx, ox: ox, hy: hy, sy: sy - 1, oy: oy}
}

// Elems returns the matrix elements in row major order.
func (a Affine2D) Elems() (sx, hx, ox, hy, sy, oy float32) {
	return a.sx + 1, a.hx, a.ox, a.hy, a.sy + 1, a.oy
}

// Offset returns a followed by a translation by o.
func (a Affine2D) Offset(o Point) Affine2D {
	a.ox += o.X
	a.oy += o.Y
	return a
}

// Scale returns a followed by a scale by factor around origin.
func (a Affine2D) Scale(origin, factor Point) Affine2D {
	s := NewAffine2D(factor.X, 0, 0, 0, factor.Y, 0)
	return around(origin, s).Mul(a)
}

// Rotate returns a followed by a counter clockwise rotation by
// radians around origin.
func (a Affine2D) Rotate(origin Point, radians float32) Affine2D {
	sin, cos := math.Sincos(float64(radians))
	s, c := float32(sin), float32(cos)
	r := NewAffine2D(c, -s, 0, s, c, 0)
	return around(origin, r).Mul(a)
}

// around conjugates t with a translation to origin.
func around(origin Point, t Affine2D) Affine2D {
	if origin == (Point{}) {
		return t
	}
	return Affine2D{}.Offset(origin).Mul(t).Mul(Affine2D{}.Offset(origin.Mul(-1)))
}

// Mul returns the composition A*B, the transform applying B first.
func (A Affine2D) Mul(B Affine2D) Affine2D {
	asx, ahx, aox, ahy, asy, aoy := A.Elems()
	bsx, bhx, box, bhy, bsy, boy := B.Elems()
	return NewAffine2D(
		asx*bsx+ahx*bhy, asx*bhx+ahx*bsy, asx*box+ahx*boy+aox,
		ahy*bsx+asy*bhy, ahy*bhx+asy*bsy, ahy*box+asy*boy+aoy,
	)
}

// Invert the transformation. A singular matrix produces infinities.
func (a Affine2D) Invert() Affine2D {
	if a.sx == 0 && a.hx == 0 && a.hy == 0 && a.sy == 0 {
		// Pure translation.
		return Affine2D{ox: -a.ox, oy: -a.oy}
	}
	sx, hx, ox, hy, sy, oy := a.Elems()
	det := sx*sy - hx*hy
	isx, ihx := sy/det, -hx/det
	ihy, isy := -hy/det, sx/det
	return NewAffine2D(
		isx, ihx, -isx*ox-ihx*oy,
		ihy, isy, -ihy*ox-isy*oy,
	)
}

// Transform p by returning a*p.
func (a Affine2D) Transform(p Point) Point {
	sx, hx, ox, hy, sy, oy := a.Elems()
	return Point{
		X: sx*p.X + hx*p.Y + ox,
		Y: hy*p.X + sy*p.Y + oy,
	}
}

// TransformRect returns the bounding box of r transformed by a.
func (a Affine2D) TransformRect(r Rect) Rect {
	r0, r1 := r.Min(), r.Max()
	c := [4]Point{
		a.Transform(r0),
		a.Transform(Point{X: r1.X, Y: r0.Y}),
		a.Transform(Point{X: r0.X, Y: r1.Y}),
		a.Transform(r1),
	}
	lo, hi := c[0], c[0]
	for _, p := range c[1:] {
		lo = Point{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = Point{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	return Rect{Origin: lo, Size: Size{Width: hi.X - lo.X, Height: hi.Y - lo.Y}}
}

// Translation reports the offset of a and whether a is a pure
// translation.
func (a Affine2D) Translation() (Point, bool) {
	pure := a.sx == 0 && a.hx == 0 && a.hy == 0 && a.sy == 0
	return Point{X: a.ox, Y: a.oy}, pure
}

func (a Affine2D) String() string {
	sx, hx, ox, hy, sy, oy := a.Elems()
	return fmt.Sprintf("[[%f %f %f] [%f %f %f]]", sx, hx, ox, hy, sy, oy)
}
