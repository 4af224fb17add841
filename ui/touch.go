// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	"viewkit.org/f32"
	"viewkit.org/io/pointer"
)

// Phase is the stage of a touch within its lifetime.
type Phase uint8

const (
	// PhaseBegan is the first phase of a touch.
	PhaseBegan Phase = iota
	// PhaseMoved means the touch location changed.
	PhaseMoved
	// PhaseStationary means the touch is down but did not move
	// in the event.
	PhaseStationary
	// PhaseEnded is the phase of a released touch.
	PhaseEnded
	// PhaseCancelled is the phase of a touch the system cancelled.
	PhaseCancelled
)

const (
	// DoubleTapInterval is the longest delay between a release and
	// the next press for the press to continue the tap sequence.
	DoubleTapInterval = 300 * time.Millisecond
	// DoubleTapDistance is the largest distance between a release
	// and the next press in the same tap sequence.
	DoubleTapDistance = 10
)

// Touch is the persistent record of one press of one pointer, from
// press to release. The view, window and recognizers are bound at
// the press and never change.
type Touch struct {
	id       pointer.ID
	source   pointer.Source
	loc      f32.Point
	prevLoc  f32.Point
	time     time.Duration
	phase    Phase
	tapCount int

	view        *View
	window      *Window
	recognizers []Recognizer
	// viewCancelled is set when a recognizer claimed the touch and
	// the views were sent a cancellation.
	viewCancelled bool
}

// ID returns the pointer identifier of the touch.
func (t *Touch) ID() pointer.ID { return t.id }

// Source returns the kind of device that produced the touch.
func (t *Touch) Source() pointer.Source { return t.source }

// Phase returns the current phase.
func (t *Touch) Phase() Phase { return t.phase }

// Timestamp returns the time of the last update.
func (t *Touch) Timestamp() time.Duration { return t.time }

// TapCount returns the number of taps in the sequence this touch
// belongs to, starting at 1.
func (t *Touch) TapCount() int { return t.tapCount }

// View returns the view hit by the press, or nil if it missed every
// view.
func (t *Touch) View() *View { return t.view }

// Window returns the window the touch belongs to.
func (t *Touch) Window() *Window { return t.window }

// GestureRecognizers returns the recognizers of the bound view and
// its ancestors at the time of the press, deepest first.
func (t *Touch) GestureRecognizers() []Recognizer {
	return slices.Clone(t.recognizers)
}

// Location returns the touch location in the coordinates of v, or in
// window coordinates if v is nil.
func (t *Touch) Location(v *View) f32.Point {
	if v == nil {
		return t.loc
	}
	return v.ConvertPointFrom(t.loc, nil)
}

// PreviousLocation returns the location before the last update.
func (t *Touch) PreviousLocation(v *View) f32.Point {
	if v == nil {
		return t.prevLoc
	}
	return v.ConvertPointFrom(t.prevLoc, nil)
}

func (t *Touch) finished() bool {
	return t.phase == PhaseEnded || t.phase == PhaseCancelled
}

func (t *Touch) String() string {
	return fmt.Sprintf("touch %d %v at %v", t.id, t.phase, t.loc)
}

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "Began"
	case PhaseMoved:
		return "Moved"
	case PhaseStationary:
		return "Stationary"
	case PhaseEnded:
		return "Ended"
	case PhaseCancelled:
		return "Cancelled"
	default:
		panic("unknown phase")
	}
}
