// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"testing"

	"viewkit.org/f32"
	"viewkit.org/io/key"
	"viewkit.org/io/pointer"
)

type delegate struct {
	launched, terminated bool
	presses              []key.Name
}

func (d *delegate) WillFinishLaunching(*Application, LaunchOptions) error { return nil }

func (d *delegate) DidFinishLaunching(*Application, LaunchOptions) error {
	d.launched = true
	return nil
}

func (d *delegate) WillTerminate(*Application, LaunchOptions) { d.terminated = true }

func (d *delegate) HandlePresses(e *Event) bool {
	for _, p := range e.Presses() {
		d.presses = append(d.presses, p.Name)
	}
	return true
}

func TestResponderChain(t *testing.T) {
	app := NewApplication(new(delegate))
	w := NewWindow(f32.Sz(100, 100))
	app.AddWindow(w)
	vc := NewViewController(nil, nil)
	w.SetRootViewController(vc)
	leaf := NewView(f32.R(0, 0, 10, 10))
	vc.View().AddSubview(leaf)

	want := []Responder{leaf, vc.View(), vc, &w.View, w, app}
	var got []Responder
	for r := Responder(leaf); r != nil; r = r.NextResponder() {
		got = append(got, r)
	}
	if len(got) != len(want) {
		t.Fatalf("chain length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chain[%d] = %T %p, want %T %p", i, got[i], got[i], want[i], want[i])
		}
	}
	if app.KeyWindow() != w || !w.IsKey() {
		t.Error("first window is not key")
	}
	if new(View).NextResponder() != nil {
		t.Error("detached view has a next responder")
	}
}

func TestTouchesForwardToController(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	ctl := &touchLog{consume: true}
	vc := NewViewController(nil, ctl)
	w.SetRootViewController(vc)
	unhandled := &touchLog{consume: false}
	leaf := NewView(f32.R(0, 0, 10, 10))
	leaf.SetBehavior(unhandled)
	vc.View().AddSubview(leaf)
	w.HandlePointer(press(1, 1, 5, 5), release(1, 2, 5, 5))
	if len(unhandled.events) != 2 || len(ctl.events) != 2 {
		t.Errorf("leaf saw %v, controller saw %v", unhandled.events, ctl.events)
	}
}

func TestPressesFollowFirstResponder(t *testing.T) {
	d := new(delegate)
	app := NewApplication(d)
	w := NewWindow(f32.Sz(100, 100))
	app.AddWindow(w)
	v := NewView(f32.R(0, 0, 10, 10))
	if v.BecomeFirstResponder() {
		t.Error("detached view became first responder")
	}
	w.AddSubview(v)
	if !v.BecomeFirstResponder() || w.FirstResponder() != v {
		t.Fatal("BecomeFirstResponder failed")
	}
	w.HandleKey(key.Event{Name: key.NameReturn, State: key.Press})
	v.RemoveFromSuperview()
	if v.IsFirstResponder() || w.FirstResponder() != nil {
		t.Error("removed view is still first responder")
	}
	w.HandleKey(key.Event{Name: key.NameEscape, State: key.Press})
	if want := []key.Name{key.NameReturn, key.NameEscape}; len(d.presses) != 2 || d.presses[0] != want[0] || d.presses[1] != want[1] {
		t.Errorf("application saw %v, want %v", d.presses, want)
	}
}

type wheelLog struct {
	got []f32.Point
}

func (l *wheelLog) HandleWheel(e *Event) bool {
	l.got = append(l.got, e.Translation())
	return true
}

func TestWheelHitTested(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	outer := NewView(f32.R(0, 0, 50, 50))
	l := new(wheelLog)
	outer.SetBehavior(l)
	inner := NewView(f32.R(10, 10, 10, 10))
	outer.AddSubview(inner)
	w.AddSubview(outer)
	w.HandlePointer(pointer.Event{Kind: pointer.Scroll, Position: f32.Pt(15, 15), Scroll: f32.Pt(2, 2)})
	w.HandlePointer(pointer.Event{Kind: pointer.Scroll, Position: f32.Pt(80, 80), Scroll: f32.Pt(1, 0)})
	if len(l.got) != 1 || l.got[0] != f32.Pt(2, 2) {
		t.Errorf("wheel translations = %v, want [(2,2)]", l.got)
	}
}

func TestFocusLossCancelsTouches(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	l := &touchLog{consume: true}
	w.SetBehavior(l)
	w.HandlePointer(press(1, 1, 5, 5))
	w.SetFocus(false)
	if len(l.events) != 2 || l.events[1] != "Cancelled [1] all=1" {
		t.Errorf("events = %v", l.events)
	}
	if w.IsKey() || len(w.ActiveTouches()) != 0 {
		t.Error("window kept key state or touches after losing focus")
	}
}
