// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 implements float32 points, sizes, rectangles and affine
transforms for view geometry.

The coordinate space has the origin in the top left
corner with the axes extending right and down.

A Rect is an origin and a size. Sizes may be negative; the
rectangle functions operate on the standardized rectangle, where the
size is non-negative and the origin is the top left corner.
*/
package f32

import (
	"fmt"
	"image"
	"math"
)

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// A Size is a width and a height.
type Size struct {
	Width, Height float32
}

// A Rect is an origin point and a size.
type Rect struct {
	Origin Point
	Size   Size
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// R is shorthand for Rect{Origin: Pt(x, y), Size: Sz(w, h)}.
func R(x, y, w, h float32) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the vector p/s.
func (p Point) Div(s float32) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Len returns the length of the vector p.
func (p Point) Len() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Empty reports whether s covers no area.
func (s Size) Empty() bool {
	return s.Width == 0 || s.Height == 0
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Point returns s as the vector (Width, Height).
func (s Size) Point() Point {
	return Point{X: s.Width, Y: s.Height}
}

// Standardize returns r with a non-negative size, moving the
// origin to compensate for negative widths and heights.
func (r Rect) Standardize() Rect {
	if r.Size.Width < 0 {
		r.Origin.X += r.Size.Width
		r.Size.Width = -r.Size.Width
	}
	if r.Size.Height < 0 {
		r.Origin.Y += r.Size.Height
		r.Size.Height = -r.Size.Height
	}
	return r
}

// Min returns the top left corner of the standardized r.
func (r Rect) Min() Point {
	return r.Standardize().Origin
}

// Max returns the bottom right corner of the standardized r.
func (r Rect) Max() Point {
	s := r.Standardize()
	return Point{X: s.Origin.X + s.Size.Width, Y: s.Origin.Y + s.Size.Height}
}

// Center returns the center point of r.
func (r Rect) Center() Point {
	return Point{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}

// Empty reports whether r represents the empty area.
func (r Rect) Empty() bool {
	return r.Size.Width == 0 || r.Size.Height == 0
}

// Contains reports whether p is inside r. The right and bottom edges
// are excluded, so a rectangle without area contains no points.
func (r Rect) Contains(p Point) bool {
	lo, hi := r.Min(), r.Max()
	return lo.X <= p.X && p.X < hi.X && lo.Y <= p.Y && p.Y < hi.Y
}

// Add offsets r with the vector p.
func (r Rect) Add(p Point) Rect {
	r.Origin = r.Origin.Add(p)
	return r
}

// Sub offsets r with the vector -p.
func (r Rect) Sub(p Point) Rect {
	r.Origin = r.Origin.Sub(p)
	return r
}

// Inset shrinks the standardized r by d on every side. The size
// never goes below zero.
func (r Rect) Inset(d float32) Rect {
	r = r.Standardize()
	r.Origin = r.Origin.Add(Point{X: d, Y: d})
	r.Size.Width = max(r.Size.Width-2*d, 0)
	r.Size.Height = max(r.Size.Height-2*d, 0)
	return r
}

// Intersect returns the intersection of r and s. The result is
// the zero Rect if they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	rmin, rmax := r.Min(), r.Max()
	smin, smax := s.Min(), s.Max()
	lo := Point{X: max(rmin.X, smin.X), Y: max(rmin.Y, smin.Y)}
	hi := Point{X: min(rmax.X, smax.X), Y: min(rmax.Y, smax.Y)}
	if lo.X >= hi.X || lo.Y >= hi.Y {
		return Rect{}
	}
	return Rect{Origin: lo, Size: Size{Width: hi.X - lo.X, Height: hi.Y - lo.Y}}
}

// Intersects reports whether r and s share any area.
func (r Rect) Intersects(s Rect) bool {
	return !r.Intersect(s).Empty()
}

// Union returns the smallest rectangle containing r and s. Empty
// rectangles are ignored.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s.Standardize()
	}
	if s.Empty() {
		return r.Standardize()
	}
	rmin, rmax := r.Min(), r.Max()
	smin, smax := s.Min(), s.Max()
	lo := Point{X: min(rmin.X, smin.X), Y: min(rmin.Y, smin.Y)}
	hi := Point{X: max(rmax.X, smax.X), Y: max(rmax.Y, smax.Y)}
	return Rect{Origin: lo, Size: Size{Width: hi.X - lo.X, Height: hi.Y - lo.Y}}
}

// Round returns the smallest integer rectangle that covers r.
func (r Rect) Round() image.Rectangle {
	lo, hi := r.Min(), r.Max()
	return image.Rect(
		int(math.Floor(float64(lo.X))),
		int(math.Floor(float64(lo.Y))),
		int(math.Ceil(float64(hi.X))),
		int(math.Ceil(float64(hi.Y))),
	)
}

func (r Rect) String() string {
	return fmt.Sprintf("{%v %v}", r.Origin, r.Size)
}

// FRect converts an integer rectangle to a Rect.
func FRect(r image.Rectangle) Rect {
	return R(float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()))
}
