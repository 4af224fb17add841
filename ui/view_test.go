// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"testing"

	"golang.org/x/exp/slices"

	"viewkit.org/f32"
)

func TestHitTestZOrder(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	a := NewView(f32.R(10, 10, 50, 50))
	b := NewView(f32.R(30, 30, 50, 50))
	w.AddSubview(a)
	w.AddSubview(b)
	if got := w.HitTest(f32.Pt(40, 40)); got != b {
		t.Errorf("overlap hit %p, want front view %p", got, b)
	}
	if got := w.HitTest(f32.Pt(15, 15)); got != a {
		t.Errorf("back-only hit %p, want %p", got, a)
	}
	// A child of the front view still wins over the back sibling.
	bc := NewView(f32.R(0, 0, 20, 20))
	b.AddSubview(bc)
	if got := w.HitTest(f32.Pt(40, 40)); got != bc {
		t.Errorf("hit %p, want front grandchild %p", got, bc)
	}
	w.BringSubviewToFront(a)
	if got := w.HitTest(f32.Pt(40, 40)); got != a {
		t.Errorf("after BringSubviewToFront hit %p, want %p", got, a)
	}
	w.SendSubviewToBack(a)
	if got := w.Subviews(); !slices.Equal(got, []*View{a, b}) {
		t.Errorf("subviews after SendSubviewToBack = %v", got)
	}
	if got := w.HitTest(f32.Pt(200, 200)); got != nil {
		t.Errorf("miss returned %p", got)
	}
}

func TestHitTestExclusions(t *testing.T) {
	for _, tc := range []struct {
		label string
		setup func(v *View)
	}{
		{"hidden", func(v *View) { v.SetHidden(true) }},
		{"transparent", func(v *View) { v.SetAlpha(0) }},
		{"interaction disabled", func(v *View) { v.SetUserInteractionEnabled(false) }},
		{"zero size", func(v *View) { v.SetFrame(f32.R(10, 10, 0, 0)) }},
	} {
		t.Run(tc.label, func(t *testing.T) {
			w := NewWindow(f32.Sz(100, 100))
			v := NewView(f32.R(10, 10, 50, 50))
			child := NewView(f32.R(0, 0, 50, 50))
			v.AddSubview(child)
			w.AddSubview(v)
			tc.setup(v)
			if got := w.HitTest(f32.Pt(20, 20)); got != &w.View {
				t.Errorf("hit %p, want the window view", got)
			}
		})
	}
}

func TestHitTestScrolledBounds(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	scroll := NewView(f32.R(10, 10, 50, 50))
	content := NewView(f32.R(0, 100, 50, 20))
	scroll.AddSubview(content)
	w.AddSubview(scroll)
	if got := w.HitTest(f32.Pt(20, 20)); got != scroll {
		t.Fatalf("unscrolled hit %p, want %p", got, scroll)
	}
	scroll.SetBounds(f32.R(0, 95, 50, 50))
	if got := w.HitTest(f32.Pt(20, 20)); got != content {
		t.Errorf("scrolled hit %p, want content %p", got, content)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	w := NewWindow(f32.Sz(200, 200))
	a := NewView(f32.R(10, 20, 100, 100))
	b := NewView(f32.R(5, 7, 50, 50))
	c := NewView(f32.R(-3, 4, 20, 20))
	w.AddSubview(a)
	a.AddSubview(b)
	b.AddSubview(c)
	b.SetBounds(f32.R(2, 30, 50, 50))
	views := []*View{&w.View, a, b, c}
	for _, p := range []f32.Point{{}, f32.Pt(1, 2), f32.Pt(-7.5, 13.25)} {
		for _, v := range views {
			for _, u := range views {
				if got := u.ConvertPoint(v.ConvertPoint(p, u), v); got != p {
					t.Errorf("round trip of %v through %p and %p = %v", p, v, u, got)
				}
				if got := v.ConvertPointFrom(v.ConvertPoint(p, u), u); got != p {
					t.Errorf("ConvertPointFrom round trip of %v = %v", p, got)
				}
			}
		}
	}
	if got, want := c.ConvertPoint(f32.Point{}, nil), f32.Pt(10+5-3-2, 20+7+4-30); got != want {
		t.Errorf("window position of c = %v, want %v", got, want)
	}
	if got, want := c.ConvertRect(f32.R(1, 1, 4, 4), a), f32.R(1, -18, 4, 4); got != want {
		t.Errorf("ConvertRect = %v, want %v", got, want)
	}
}

func TestConvertAcrossWindowsPanics(t *testing.T) {
	a := NewView(f32.R(0, 0, 10, 10))
	b := NewView(f32.R(0, 0, 10, 10))
	NewWindow(f32.Sz(10, 10)).AddSubview(a)
	NewWindow(f32.Sz(10, 10)).AddSubview(b)
	defer func() {
		if recover() == nil {
			t.Error("conversion between windows did not panic")
		}
	}()
	a.ConvertPoint(f32.Point{}, b)
}

func TestAddSubviewDetaches(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	p1 := NewView(f32.R(0, 0, 10, 10))
	p2 := NewView(f32.R(0, 0, 10, 10))
	c := NewView(f32.R(0, 0, 5, 5))
	w.AddSubview(p1)
	p1.AddSubview(c)
	if c.Window() != w {
		t.Fatal("window link not propagated")
	}
	p2.AddSubview(c)
	if len(p1.Subviews()) != 0 {
		t.Error("old parent still owns the view")
	}
	if c.Superview() != p2 || c.Window() != nil {
		t.Errorf("superview %p window %p after move to detached parent", c.Superview(), c.Window())
	}
	c.RemoveFromSuperview()
	if c.Superview() != nil || len(p2.Subviews()) != 0 {
		t.Error("RemoveFromSuperview left links behind")
	}
	c.RemoveFromSuperview()
}

func TestAddSubviewCyclePanics(t *testing.T) {
	a := NewView(f32.R(0, 0, 10, 10))
	b := NewView(f32.R(0, 0, 10, 10))
	a.AddSubview(b)
	for _, tc := range []struct {
		label         string
		parent, child *View
	}{
		{"self", a, a},
		{"ancestor", b, a},
	} {
		t.Run(tc.label, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("cyclic AddSubview did not panic")
				}
			}()
			tc.parent.AddSubview(tc.child)
		})
	}
}

func TestInsertSubviewOrder(t *testing.T) {
	p := NewView(f32.R(0, 0, 10, 10))
	a, b, c := new(View), new(View), new(View)
	p.AddSubview(a)
	p.AddSubview(b)
	p.InsertSubview(c, 1)
	if got := p.Subviews(); !slices.Equal(got, []*View{a, c, b}) {
		t.Errorf("order = %v", got)
	}
	p.InsertSubview(a, 99)
	if got := p.Subviews(); !slices.Equal(got, []*View{c, b, a}) {
		t.Errorf("order after reinsert = %v", got)
	}
}

func TestViewWithTag(t *testing.T) {
	root := new(View)
	a, b := new(View), new(View)
	a.SetTag(1)
	b.SetTag(2)
	root.AddSubview(a)
	a.AddSubview(b)
	if got := root.ViewWithTag(2); got != b {
		t.Errorf("ViewWithTag(2) = %p, want %p", got, b)
	}
	if got := root.ViewWithTag(3); got != nil {
		t.Errorf("ViewWithTag(3) = %p, want nil", got)
	}
	if !b.IsDescendant(root) || root.IsDescendant(b) {
		t.Error("IsDescendant is wrong")
	}
}

func TestAlphaClamped(t *testing.T) {
	var v View
	if got := v.Alpha(); got != 1 {
		t.Errorf("zero view alpha = %v, want 1", got)
	}
	v.SetAlpha(2)
	if got := v.Alpha(); got != 1 {
		t.Errorf("alpha = %v after SetAlpha(2)", got)
	}
	v.SetAlpha(-1)
	if got := v.Alpha(); got != 0 {
		t.Errorf("alpha = %v after SetAlpha(-1)", got)
	}
}

type layoutRecorder struct {
	calls int
}

func (l *layoutRecorder) LayoutSubviews(v *View) {
	l.calls++
	for _, c := range v.Subviews() {
		c.SetFrame(f32.Rect{Size: v.Bounds().Size})
	}
}

func TestLayoutDeferred(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	l := new(layoutRecorder)
	v := NewView(f32.R(0, 0, 10, 10))
	v.SetBehavior(l)
	c := new(View)
	v.AddSubview(c)
	w.AddSubview(v)
	w.LayoutIfNeeded()
	if l.calls != 1 || c.Frame() != f32.R(0, 0, 10, 10) {
		t.Fatalf("calls %d, child frame %v", l.calls, c.Frame())
	}
	v.SetFrame(f32.R(0, 0, 30, 20))
	if l.calls != 1 {
		t.Error("SetFrame laid out immediately")
	}
	if !w.NeedsLayout() || !v.NeedsLayout() {
		t.Error("SetFrame did not mark layout")
	}
	w.LayoutIfNeeded()
	if l.calls != 2 || c.Frame() != f32.R(0, 0, 30, 20) {
		t.Errorf("calls %d, child frame %v", l.calls, c.Frame())
	}
	w.LayoutIfNeeded()
	if l.calls != 2 {
		t.Error("layout ran without invalidation")
	}
}

func TestSetFrameTracksBounds(t *testing.T) {
	v := NewView(f32.R(0, 0, 10, 10))
	v.SetBounds(f32.R(0, 40, 10, 10))
	v.SetFrame(f32.R(5, 5, 20, 30))
	if got, want := v.Bounds(), f32.R(0, 40, 20, 30); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
	v.SetBounds(f32.R(0, 0, 100, 100))
	if got := v.Frame().Size; got != f32.Sz(20, 30) {
		t.Errorf("SetBounds changed the frame size to %v", got)
	}
}

type fixedSizer f32.Size

func (s fixedSizer) SizeThatFits(v *View, size f32.Size) f32.Size { return f32.Size(s) }

func TestSizeToFit(t *testing.T) {
	v := NewView(f32.R(3, 4, 1, 1))
	v.SizeToFit()
	if got := v.Frame(); got != f32.R(3, 4, 1, 1) {
		t.Errorf("frame without sizer = %v", got)
	}
	v.SetBehavior(fixedSizer(f32.Sz(40, 12)))
	v.SizeToFit()
	if got := v.Frame(); got != f32.R(3, 4, 40, 12) {
		t.Errorf("frame = %v", got)
	}
}
