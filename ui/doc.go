// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ui implements view hierarchies, touch handling and gesture
recognition.

# Views

A View is a rectangle in the coordinate space of its superview. Its
frame places it in the superview; its bounds describe its own
coordinate space, and a bounds origin other than zero scrolls the
content. Subviews are ordered back to front. A view owns its
subviews; the superview and window links are back references.

What a view does beyond drawing its background comes from its
behavior, an arbitrary value set with SetBehavior. The behavior may
implement any of Drawer, Layouter, Sizer, TouchHandler, WheelHandler
and PressHandler.

	v := ui.NewView(f32.R(10, 10, 100, 40))
	v.SetBackgroundColor(paint.White)
	v.SetBehavior(myDrawer{})
	window.AddSubview(v)

Layout and drawing are deferred: mutating a view marks it as needing
layout or display, and the window lays out and repaints the dirty
region in its next frame.

# Touches

A Window turns raw pointer events into Touch values. A touch keeps
its identity from press to release, is bound to the view hit by the
press and delivered in Events grouping the touches of one input
batch. Gesture recognizers attached to the bound view and its
ancestors see the touches first; the rest travel the responder
chain: view, view controller, superview, window, application.

# Gestures

GestureRecognizer is the state machine shared by the recognizers in
package gesture. A recognizer starts in StatePossible and moves
through the transitions

	Possible -> Began -> Changed... -> Ended | Cancelled | Failed
	Possible -> Ended (recognized) | Failed

Any other transition panics. Recognizers notify their targets on
every transition except Possible -> Failed, and return to
StatePossible after a terminal state.
*/
package ui
