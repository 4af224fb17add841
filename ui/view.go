// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"image/color"

	"golang.org/x/exp/slices"

	"viewkit.org/f32"
	"viewkit.org/paint"
)

// View is a rectangular node of the view tree. A view owns its
// subviews; the superview and window links are back references.
//
// The zero value is a visible, opaque, interactive view with an
// empty frame.
type View struct {
	frame  f32.Rect
	bounds f32.Rect
	// transparency is one minus the alpha, so the zero view is
	// opaque.
	transparency float32
	background   color.NRGBA
	hidden       bool
	inert        bool
	clips        bool
	tag          int

	subviews   []*View
	superview  *View
	window     *Window
	controller *ViewController

	recognizers []Recognizer
	behavior    any

	needsLayout bool
	// firstResponder is set while the view is the first responder of
	// its window.
	firstResponder bool
}

// Drawer is implemented by behaviors that draw view content. Draw is
// called in the view's local coordinate space after the background
// is filled.
type Drawer interface {
	Draw(ctx paint.Context, bounds f32.Rect)
}

// Layouter is implemented by behaviors that position subviews.
type Layouter interface {
	LayoutSubviews(v *View)
}

// Sizer is implemented by behaviors with an intrinsic size.
type Sizer interface {
	SizeThatFits(v *View, size f32.Size) f32.Size
}

// NewView returns a view with the given frame.
func NewView(frame f32.Rect) *View {
	v := new(View)
	v.frame = frame
	v.bounds = f32.Rect{Size: frame.Size}
	return v
}

// SetBehavior sets the value providing the optional capabilities of
// the view, such as Drawer, Layouter, TouchHandler, WheelHandler,
// PressHandler and Sizer.
func (v *View) SetBehavior(b any) {
	v.behavior = b
	v.SetNeedsLayout()
	v.SetNeedsDisplay()
}

// Behavior returns the value set by SetBehavior.
func (v *View) Behavior() any { return v.behavior }

// Frame returns the view rectangle in superview coordinates.
func (v *View) Frame() f32.Rect { return v.frame }

// Bounds returns the view rectangle in its own coordinates.
func (v *View) Bounds() f32.Rect { return v.bounds }

// SetFrame moves and resizes the view. The bounds size follows the
// frame size.
func (v *View) SetFrame(r f32.Rect) {
	if r == v.frame {
		return
	}
	v.invalidateFrame()
	resized := r.Size != v.frame.Size
	v.frame = r
	if resized {
		v.bounds.Size = r.Size
		v.SetNeedsLayout()
	}
	v.invalidateFrame()
}

// SetBounds sets the local coordinate rectangle. A bounds origin
// other than zero shifts the content, which is how scrolling is
// expressed. The frame is not changed.
func (v *View) SetBounds(r f32.Rect) {
	if r == v.bounds {
		return
	}
	resized := r.Size != v.bounds.Size
	v.bounds = r
	if resized {
		v.SetNeedsLayout()
	}
	v.SetNeedsDisplay()
}

// Center returns the center of the frame.
func (v *View) Center() f32.Point { return v.frame.Center() }

// SetCenter moves the view so its frame is centered on c.
func (v *View) SetCenter(c f32.Point) {
	r := v.frame
	r.Origin = c.Sub(f32.Pt(r.Size.Width/2, r.Size.Height/2))
	v.SetFrame(r)
}

// Alpha returns the opacity of the view, in [0, 1].
func (v *View) Alpha() float32 { return 1 - v.transparency }

// SetAlpha sets the opacity, clamped to [0, 1].
func (v *View) SetAlpha(a float32) {
	a = min(max(a, 0), 1)
	if a == v.Alpha() {
		return
	}
	v.transparency = 1 - a
	v.SetNeedsDisplay()
}

// BackgroundColor returns the color filling the bounds before
// drawing.
func (v *View) BackgroundColor() color.NRGBA { return v.background }

func (v *View) SetBackgroundColor(c color.NRGBA) {
	if c == v.background {
		return
	}
	v.background = c
	v.SetNeedsDisplay()
}

// IsHidden reports whether the view and its subtree are excluded
// from drawing and hit testing.
func (v *View) IsHidden() bool { return v.hidden }

func (v *View) SetHidden(hidden bool) {
	if hidden == v.hidden {
		return
	}
	v.hidden = hidden
	v.invalidateFrame()
}

// IsUserInteractionEnabled reports whether hit testing considers the
// view and its subtree.
func (v *View) IsUserInteractionEnabled() bool { return !v.inert }

func (v *View) SetUserInteractionEnabled(enabled bool) { v.inert = !enabled }

// ClipsToBounds reports whether drawing of the view and its subtree
// is clipped to the bounds.
func (v *View) ClipsToBounds() bool { return v.clips }

func (v *View) SetClipsToBounds(clips bool) {
	if clips == v.clips {
		return
	}
	v.clips = clips
	v.SetNeedsDisplay()
}

func (v *View) Tag() int { return v.tag }

func (v *View) SetTag(tag int) { v.tag = tag }

// Superview returns the parent view, or nil.
func (v *View) Superview() *View { return v.superview }

// Window returns the window the view is attached to, or nil.
func (v *View) Window() *Window { return v.window }

// Subviews returns a copy of the children, back to front.
func (v *View) Subviews() []*View {
	return slices.Clone(v.subviews)
}

// Controller returns the view controller managing v as its root
// view, or nil.
func (v *View) Controller() *ViewController { return v.controller }

// AddSubview adds c in front of the other subviews. A view owned by
// another parent is removed from it first. Adding a view to itself or
// to one of its descendants panics.
func (v *View) AddSubview(c *View) {
	v.InsertSubview(c, len(v.subviews))
}

// InsertSubview inserts c at index i of the subviews, clamped to the
// valid range. Index 0 is the back.
func (v *View) InsertSubview(c *View, i int) {
	if c == nil {
		panic("ui: nil subview")
	}
	if v.IsDescendant(c) {
		panic("ui: view added to itself or its descendant")
	}
	if c.superview == v {
		v.subviews = slices.Delete(v.subviews, v.indexOf(c), v.indexOf(c)+1)
	} else {
		c.RemoveFromSuperview()
	}
	i = min(max(i, 0), len(v.subviews))
	v.subviews = slices.Insert(v.subviews, i, c)
	c.superview = v
	c.setWindow(v.window)
	c.setNeedsLayoutTree()
	v.SetNeedsLayout()
	c.invalidateFrame()
}

// RemoveFromSuperview detaches v from its parent and window.
func (v *View) RemoveFromSuperview() {
	p := v.superview
	if p == nil {
		return
	}
	v.invalidateFrame()
	p.subviews = slices.Delete(p.subviews, p.indexOf(v), p.indexOf(v)+1)
	v.superview = nil
	v.setWindow(nil)
	p.SetNeedsLayout()
	p.SetNeedsDisplay()
}

// BringSubviewToFront moves the subview c to the front.
func (v *View) BringSubviewToFront(c *View) {
	if c.superview != v {
		return
	}
	v.InsertSubview(c, len(v.subviews))
}

// SendSubviewToBack moves the subview c to the back.
func (v *View) SendSubviewToBack(c *View) {
	if c.superview != v {
		return
	}
	v.InsertSubview(c, 0)
}

func (v *View) indexOf(c *View) int {
	return slices.Index(v.subviews, c)
}

// IsDescendant reports whether v is of or one of its descendants.
func (v *View) IsDescendant(of *View) bool {
	for a := v; a != nil; a = a.superview {
		if a == of {
			return true
		}
	}
	return false
}

// ViewWithTag returns the first view in the subtree rooted at v,
// depth first, with the given tag.
func (v *View) ViewWithTag(tag int) *View {
	if v.tag == tag {
		return v
	}
	for _, c := range v.subviews {
		if m := c.ViewWithTag(tag); m != nil {
			return m
		}
	}
	return nil
}

func (v *View) setWindow(w *Window) {
	if v.window == w {
		return
	}
	if v.window != nil && v.firstResponder {
		v.window.setFirstResponder(nil)
	}
	v.window = w
	for _, c := range v.subviews {
		c.setWindow(w)
	}
}

// SetNeedsLayout marks the view for layout in the next layout pass.
func (v *View) SetNeedsLayout() {
	v.needsLayout = true
	if v.window != nil {
		v.window.layoutPending = true
	}
}

// NeedsLayout reports whether the view is marked for layout.
func (v *View) NeedsLayout() bool { return v.needsLayout }

func (v *View) setNeedsLayoutTree() {
	v.SetNeedsLayout()
	for _, c := range v.subviews {
		c.setNeedsLayoutTree()
	}
}

// LayoutIfNeeded lays out the subtree rooted at v, parents before
// children.
func (v *View) LayoutIfNeeded() {
	if v.needsLayout {
		if l, ok := v.behavior.(Layouter); ok {
			l.LayoutSubviews(v)
		}
		v.needsLayout = false
	}
	for _, c := range slices.Clone(v.subviews) {
		c.LayoutIfNeeded()
	}
}

// SizeThatFits returns the preferred size of v for the available
// size. Views without a Sizer behavior prefer their current size.
func (v *View) SizeThatFits(size f32.Size) f32.Size {
	if s, ok := v.behavior.(Sizer); ok {
		return s.SizeThatFits(v, size)
	}
	return v.bounds.Size
}

// SizeToFit resizes the frame to the preferred size.
func (v *View) SizeToFit() {
	r := v.frame
	r.Size = v.SizeThatFits(r.Size)
	v.SetFrame(r)
}

// SetNeedsDisplay marks the whole view for redrawing.
func (v *View) SetNeedsDisplay() {
	v.SetNeedsDisplayIn(v.bounds)
}

// SetNeedsDisplayIn marks the rectangle r, in local coordinates, for
// redrawing.
func (v *View) SetNeedsDisplayIn(r f32.Rect) {
	if v.window == nil {
		return
	}
	v.window.invalidate(v.ConvertRect(r, nil))
}

func (v *View) invalidateFrame() {
	if v.window == nil {
		return
	}
	if v.superview == nil {
		v.window.invalidate(v.frame)
		return
	}
	v.window.invalidate(v.superview.ConvertRect(v.frame, nil))
}

// AddGestureRecognizer attaches r to v, detaching it from any other
// view.
func (v *View) AddGestureRecognizer(r Recognizer) {
	g := r.gestureRecognizer()
	if g.view == v {
		return
	}
	if g.view != nil {
		g.view.RemoveGestureRecognizer(r)
	}
	g.view = v
	g.self = r
	v.recognizers = append(v.recognizers, r)
}

// RemoveGestureRecognizer detaches r from v. A recognizer in progress
// is cancelled.
func (v *View) RemoveGestureRecognizer(r Recognizer) {
	i := slices.Index(v.recognizers, r)
	if i == -1 {
		return
	}
	v.recognizers = slices.Delete(v.recognizers, i, i+1)
	g := r.gestureRecognizer()
	g.abort()
	g.view = nil
}

// GestureRecognizers returns a copy of the attached recognizers.
func (v *View) GestureRecognizers() []Recognizer {
	return slices.Clone(v.recognizers)
}
