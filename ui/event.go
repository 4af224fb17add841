// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"time"

	"golang.org/x/exp/slices"

	"viewkit.org/f32"
	"viewkit.org/io/key"
)

// EventType distinguishes the kinds of Event.
type EventType uint8

const (
	TouchesEvent EventType = iota
	MotionEvent
	PressesEvent
	WheelEvent
)

// Event groups the input of one platform batch. Events are not
// modified after delivery starts.
type Event struct {
	typ     EventType
	time    time.Duration
	touches []*Touch
	presses []key.Event
	// Wheel location and translation in window coordinates.
	loc   f32.Point
	delta f32.Point
}

// Type returns the kind of event.
func (e *Event) Type() EventType { return e.typ }

// Timestamp returns the time of the event.
func (e *Event) Timestamp() time.Duration { return e.time }

// AllTouches returns every touch active in the event, including the
// stationary ones.
func (e *Event) AllTouches() []*Touch { return slices.Clone(e.touches) }

// TouchesFor returns the touches bound to v.
func (e *Event) TouchesFor(v *View) []*Touch {
	var ts []*Touch
	for _, t := range e.touches {
		if t.view == v {
			ts = append(ts, t)
		}
	}
	return ts
}

// TouchesForRecognizer returns the touches whose recognizer snapshot
// includes r.
func (e *Event) TouchesForRecognizer(r Recognizer) []*Touch {
	var ts []*Touch
	for _, t := range e.touches {
		if slices.Contains(t.recognizers, r) {
			ts = append(ts, t)
		}
	}
	return ts
}

// Presses returns the key presses of a PressesEvent.
func (e *Event) Presses() []key.Event { return slices.Clone(e.presses) }

// Translation returns the scroll amount of a WheelEvent.
func (e *Event) Translation() f32.Point { return e.delta }

// Location returns the pointer location of a WheelEvent in the
// coordinates of v, or window coordinates for a nil v.
func (e *Event) Location(v *View) f32.Point {
	if v == nil {
		return e.loc
	}
	return v.ConvertPointFrom(e.loc, nil)
}

func (t EventType) String() string {
	switch t {
	case TouchesEvent:
		return "Touches"
	case MotionEvent:
		return "Motion"
	case PressesEvent:
		return "Presses"
	case WheelEvent:
		return "Wheel"
	default:
		panic("unknown event type")
	}
}
