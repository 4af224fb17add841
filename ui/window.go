// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"time"

	"golang.org/x/exp/slices"

	"viewkit.org/f32"
	"viewkit.org/io/key"
	"viewkit.org/io/pointer"
	"viewkit.org/paint"
)

// Window is the root of a view tree. It converts raw input into
// touches and events, tracks the region needing redrawing and renders
// the tree.
type Window struct {
	View

	app  *Application
	root *ViewController
	key  bool

	first Responder

	touches map[pointer.ID]*Touch
	// order lists the active touches in press order.
	order   []*Touch
	lastTap struct {
		valid bool
		time  time.Duration
		loc   f32.Point
		count int
	}

	// delivering is the touches event being sent, if any.
	delivering *Event

	dirty         f32.Rect
	layoutPending bool
	animators     []Animator
}

// Animator is advanced once per frame until it reports that it has
// finished.
type Animator interface {
	Animate(now time.Time) (running bool)
}

// NewWindow returns a window of the given size with a white
// background.
func NewWindow(size f32.Size) *Window {
	w := &Window{touches: make(map[pointer.ID]*Touch)}
	w.View.frame = f32.Rect{Size: size}
	w.View.bounds = f32.Rect{Size: size}
	w.View.background = paint.White
	w.View.window = w
	w.View.needsLayout = true
	w.layoutPending = true
	w.dirty = w.View.frame
	return w
}

// NextResponder returns the application of the window, or nil.
func (w *Window) NextResponder() Responder {
	if w.app == nil {
		return nil
	}
	return w.app
}

// Application returns the application the window belongs to.
func (w *Window) Application() *Application { return w.app }

// SetSize resizes the window content.
func (w *Window) SetSize(size f32.Size) {
	w.View.SetFrame(f32.Rect{Size: size})
	if w.root != nil {
		w.root.view.SetFrame(w.View.bounds)
	}
	w.invalidate(w.View.frame)
}

// SetRootViewController replaces the content of the window with the
// root view of vc, sized to the window.
func (w *Window) SetRootViewController(vc *ViewController) {
	if w.root != nil {
		w.root.view.RemoveFromSuperview()
	}
	w.root = vc
	if vc == nil {
		return
	}
	vc.view.SetFrame(w.View.bounds)
	w.View.AddSubview(vc.view)
}

// RootViewController returns the controller set by
// SetRootViewController.
func (w *Window) RootViewController() *ViewController { return w.root }

// MakeKey makes w the key window of its application.
func (w *Window) MakeKey() {
	if w.app != nil {
		if k := w.app.keyWindow; k != nil && k != w {
			k.key = false
		}
		w.app.keyWindow = w
	}
	w.key = true
}

// SetFocus records whether the platform window has input focus. A
// window losing focus cancels its active touches.
func (w *Window) SetFocus(focus bool) {
	if focus {
		w.MakeKey()
		return
	}
	w.key = false
	if w.app != nil && w.app.keyWindow == w {
		w.app.keyWindow = nil
	}
	w.cancelTouches(0)
}

// IsKey reports whether the window receives input.
func (w *Window) IsKey() bool { return w.key }

// FirstResponder returns the responder receiving key presses, or nil.
func (w *Window) FirstResponder() Responder { return w.first }

func (w *Window) setFirstResponder(v *View) {
	if old, ok := w.first.(*View); ok {
		old.firstResponder = false
	}
	w.first = nil
	if v != nil {
		v.firstResponder = true
		w.first = v
	}
}

func (w *Window) invalidate(r f32.Rect) {
	r = r.Standardize().Intersect(w.View.bounds)
	w.dirty = w.dirty.Union(r)
}

// NeedsDisplay reports whether any region needs redrawing.
func (w *Window) NeedsDisplay() bool { return !w.dirty.Empty() }

// DirtyRect returns the region needing redrawing, in window
// coordinates.
func (w *Window) DirtyRect() f32.Rect { return w.dirty }

// NeedsLayout reports whether a view of the window is marked for
// layout.
func (w *Window) NeedsLayout() bool { return w.layoutPending }

// LayoutIfNeeded lays out every view marked for layout.
func (w *Window) LayoutIfNeeded() {
	if !w.layoutPending {
		return
	}
	w.layoutPending = false
	w.View.LayoutIfNeeded()
}

// Draw renders the dirty region into ctx, which must map window
// coordinates to the surface, and clears it. It returns the region
// drawn.
func (w *Window) Draw(ctx paint.Context) f32.Rect {
	dirty := w.dirty
	w.dirty = f32.Rect{}
	if dirty.Empty() {
		return dirty
	}
	ctx.Push()
	ctx.ClipRect(dirty)
	render(ctx, &w.View, f32.Point{}, dirty)
	ctx.Pop()
	return dirty
}

// AddAnimator registers a to be advanced on every frame.
func (w *Window) AddAnimator(a Animator) {
	if !slices.Contains(w.animators, a) {
		w.animators = append(w.animators, a)
	}
}

// Animating reports whether any animator is registered.
func (w *Window) Animating() bool { return len(w.animators) > 0 }

// Animate advances the animators and drops the finished ones.
func (w *Window) Animate(now time.Time) {
	for _, a := range slices.Clone(w.animators) {
		if !a.Animate(now) {
			w.animators = slices.DeleteFunc(w.animators, func(b Animator) bool { return b == a })
		}
	}
}

// HandlePointer converts raw pointer events into touches and
// delivers them. Events with the same time form one batch and one
// Event, unless a pointer appears twice. Scroll events are delivered
// as wheel events.
func (w *Window) HandlePointer(events ...pointer.Event) {
	var batch []pointer.Event
	flush := func() {
		if len(batch) > 0 {
			w.handleBatch(batch)
			batch = batch[:0]
		}
	}
	for _, pe := range events {
		if pe.Kind == pointer.Scroll {
			flush()
			w.HandleWheel(pe)
			continue
		}
		if len(batch) > 0 {
			last := batch[len(batch)-1]
			dup := slices.ContainsFunc(batch, func(b pointer.Event) bool { return b.PointerID == pe.PointerID })
			if last.Time != pe.Time || dup {
				flush()
			}
		}
		batch = append(batch, pe)
	}
	flush()
}

func (w *Window) handleBatch(batch []pointer.Event) {
	stamp := batch[0].Time
	for _, pe := range batch {
		switch pe.Kind {
		case pointer.Cancel:
			w.cancelTouches(stamp)
		case pointer.Press:
			if _, ok := w.touches[pe.PointerID]; ok {
				// A press without release; the old touch is gone.
				w.cancelTouch(pe.PointerID, stamp)
			}
		}
	}
	var changed []*Touch
	for _, pe := range batch {
		switch pe.Kind {
		case pointer.Press:
			t := w.beginTouch(pe)
			changed = append(changed, t)
		case pointer.Move:
			t, ok := w.touches[pe.PointerID]
			if !ok {
				continue
			}
			t.prevLoc, t.loc = t.loc, pe.Position
			t.time = pe.Time
			t.phase = PhaseMoved
			changed = append(changed, t)
		case pointer.Release:
			t, ok := w.touches[pe.PointerID]
			if !ok {
				continue
			}
			t.prevLoc, t.loc = t.loc, pe.Position
			t.time = pe.Time
			t.phase = PhaseEnded
			w.lastTap.valid = true
			w.lastTap.time = pe.Time
			w.lastTap.loc = pe.Position
			w.lastTap.count = t.tapCount
			changed = append(changed, t)
		}
	}
	if len(changed) == 0 {
		return
	}
	w.sendTouches(changed, stamp)
}

func (w *Window) beginTouch(pe pointer.Event) *Touch {
	t := &Touch{
		id:       pe.PointerID,
		source:   pe.Source,
		loc:      pe.Position,
		prevLoc:  pe.Position,
		time:     pe.Time,
		phase:    PhaseBegan,
		tapCount: 1,
		window:   w,
	}
	if lt := w.lastTap; lt.valid && pe.Time-lt.time <= DoubleTapInterval && pe.Position.Sub(lt.loc).Len() <= DoubleTapDistance {
		t.tapCount = lt.count + 1
	}
	t.view = w.HitTest(pe.Position)
	for v := t.view; v != nil; v = v.superview {
		t.recognizers = append(t.recognizers, v.recognizers...)
	}
	w.touches[pe.PointerID] = t
	w.order = append(w.order, t)
	return t
}

// sendTouches builds the event for the changed touches, marks the
// other active touches stationary and delivers it.
func (w *Window) sendTouches(changed []*Touch, stamp time.Duration) {
	e := &Event{typ: TouchesEvent, time: stamp}
	for _, t := range w.order {
		if !slices.Contains(changed, t) {
			t.phase = PhaseStationary
		}
		e.touches = append(e.touches, t)
	}
	for _, t := range changed {
		if !slices.Contains(e.touches, t) {
			e.touches = append(e.touches, t)
		}
	}
	w.SendEvent(e)
}

func (w *Window) cancelTouch(id pointer.ID, stamp time.Duration) {
	t := w.touches[id]
	t.phase = PhaseCancelled
	t.time = stamp
	w.sendTouches([]*Touch{t}, stamp)
}

// cancelTouches cancels every active touch.
func (w *Window) cancelTouches(stamp time.Duration) {
	if len(w.order) == 0 {
		return
	}
	for _, t := range w.order {
		t.phase = PhaseCancelled
		if stamp > t.time {
			t.time = stamp
		}
	}
	w.sendTouches(slices.Clone(w.order), stamp)
}

// SendEvent delivers e to the gesture recognizers and then to the
// responder chains of the bound views. Finished touches are dropped
// afterwards.
func (w *Window) SendEvent(e *Event) {
	switch e.typ {
	case TouchesEvent:
		prev := w.delivering
		w.delivering = e
		deliverToRecognizers(e)
		deliverToViews(e)
		w.delivering = prev
		for _, t := range e.touches {
			if t.finished() && w.touches[t.id] == t {
				delete(w.touches, t.id)
			}
		}
		w.order = slices.DeleteFunc(w.order, func(t *Touch) bool { return t.finished() })
	case WheelEvent:
		v := w.HitTest(e.loc)
		if v == nil {
			v = &w.View
		}
		dispatchWheel(v, e)
	case PressesEvent:
		r := w.first
		if r == nil {
			r = &w.View
		}
		dispatchPresses(r, e)
	}
}

// HandleWheel delivers a scroll event to the wheel handlers along the
// responder chain of the view under the pointer.
func (w *Window) HandleWheel(pe pointer.Event) {
	w.SendEvent(&Event{typ: WheelEvent, time: pe.Time, loc: pe.Position, delta: pe.Scroll})
}

// HandleKey delivers a key event to the first responder chain.
func (w *Window) HandleKey(ke key.Event) {
	w.SendEvent(&Event{typ: PressesEvent, time: ke.Time, presses: []key.Event{ke}})
}

// ActiveTouches returns the touches currently down, in press order.
func (w *Window) ActiveTouches() []*Touch { return slices.Clone(w.order) }
