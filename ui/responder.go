// SPDX-License-Identifier: Unlicense OR MIT

package ui

// Responder is an object in the chain that events travel along when
// they are not handled. The chain is view, view controller when the
// view is the controller's root view, superview, and so on up to the
// window and the application.
type Responder interface {
	// NextResponder returns the next responder in the chain, or nil.
	NextResponder() Responder
}

// TouchHandler is implemented by behaviors that handle touches. The
// handler reports whether it consumed the touches; unconsumed touches
// continue along the responder chain.
type TouchHandler interface {
	HandleTouches(phase Phase, touches []*Touch, e *Event) bool
}

// WheelHandler is implemented by behaviors that handle scroll wheel
// events.
type WheelHandler interface {
	HandleWheel(e *Event) bool
}

// PressHandler is implemented by behaviors that handle key presses.
type PressHandler interface {
	HandlePresses(e *Event) bool
}

var (
	_ Responder = (*View)(nil)
	_ Responder = (*ViewController)(nil)
	_ Responder = (*Window)(nil)
	_ Responder = (*Application)(nil)
)

// NextResponder returns the controller of v if v is its root view,
// else the superview, else the window if v is its root.
func (v *View) NextResponder() Responder {
	switch {
	case v.controller != nil:
		return v.controller
	case v.superview != nil:
		return v.superview
	case v.window != nil && &v.window.View == v:
		return v.window
	}
	return nil
}

// behaviorOf returns the capability value carried by a responder.
func behaviorOf(r Responder) any {
	switch r := r.(type) {
	case *View:
		return r.behavior
	case *ViewController:
		return r.behavior
	case *Window:
		// The window behavior belongs to its root view, which precedes
		// the window in the chain.
		return nil
	case *Application:
		return r.delegate
	}
	return r
}

// handlerFor walks the chain starting at r and offers the event to
// every behavior implementing T until one handles it.
func handlerFor[T any](r Responder, try func(h T) bool) bool {
	for ; r != nil; r = r.NextResponder() {
		if h, ok := behaviorOf(r).(T); ok && try(h) {
			return true
		}
	}
	return false
}

func dispatchTouches(r Responder, phase Phase, touches []*Touch, e *Event) bool {
	return handlerFor(r, func(h TouchHandler) bool {
		return h.HandleTouches(phase, touches, e)
	})
}

func dispatchWheel(r Responder, e *Event) bool {
	return handlerFor(r, func(h WheelHandler) bool {
		return h.HandleWheel(e)
	})
}

func dispatchPresses(r Responder, e *Event) bool {
	return handlerFor(r, func(h PressHandler) bool {
		return h.HandlePresses(e)
	})
}

// BecomeFirstResponder makes v the receiver of key presses in its
// window. It reports false if v is not in a window.
func (v *View) BecomeFirstResponder() bool {
	if v.window == nil {
		return false
	}
	v.window.setFirstResponder(v)
	return true
}

// ResignFirstResponder clears v as first responder.
func (v *View) ResignFirstResponder() {
	if v.firstResponder {
		v.window.setFirstResponder(nil)
	}
}

// IsFirstResponder reports whether v is the first responder of its
// window.
func (v *View) IsFirstResponder() bool { return v.firstResponder }
