// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"fmt"

	"golang.org/x/exp/slices"

	"viewkit.org/f32"
	"viewkit.org/internal/log"
)

// State is the state of a gesture recognizer.
type State uint8

const (
	// StatePossible is the initial state, before the gesture is
	// recognized.
	StatePossible State = iota
	// StateBegan is entered when a continuous gesture starts.
	StateBegan
	// StateChanged is entered on every update of a continuous
	// gesture.
	StateChanged
	// StateEnded is entered when a gesture completes. Discrete
	// gestures go directly from StatePossible to StateEnded.
	StateEnded
	// StateCancelled is entered when a continuous gesture is
	// interrupted.
	StateCancelled
	// StateFailed is entered when the touches cannot form the
	// gesture.
	StateFailed
)

// StateRecognized is the state of a recognized discrete gesture.
const StateRecognized = StateEnded

// Recognizer is implemented by gesture recognizers. Implementations
// embed GestureRecognizer and override the touch methods they need.
type Recognizer interface {
	gestureRecognizer() *GestureRecognizer

	TouchesBegan(touches []*Touch, e *Event)
	TouchesMoved(touches []*Touch, e *Event)
	TouchesEnded(touches []*Touch, e *Event)
	TouchesCancelled(touches []*Touch, e *Event)
	// Reset is called after the recognizer returns to StatePossible
	// from a terminal state.
	Reset()
}

// GestureRecognizer is the state machine shared by all recognizers.
// The zero value is an enabled recognizer in StatePossible.
type GestureRecognizer struct {
	state    State
	disabled bool
	// keepTouches disables the cancellation of touches in views when
	// the gesture is recognized.
	keepTouches bool
	targets     []target
	view        *View
	// self is the Recognizer embedding this value.
	self    Recognizer
	tracked []*Touch

	requires   []*GestureRecognizer
	dependents []*GestureRecognizer
	// pending is the deferred success state while a required
	// recognizer is outstanding, or StatePossible for none.
	pending State

	shouldBegin func(Recognizer) bool
	// event is the event being delivered, if any.
	event *Event
}

type target struct {
	target any
	action func(Recognizer)
}

var _ Recognizer = (*GestureRecognizer)(nil)

func (g *GestureRecognizer) gestureRecognizer() *GestureRecognizer { return g }

// TouchesBegan does nothing.
func (g *GestureRecognizer) TouchesBegan(touches []*Touch, e *Event) {}

// TouchesMoved does nothing.
func (g *GestureRecognizer) TouchesMoved(touches []*Touch, e *Event) {}

// TouchesEnded does nothing.
func (g *GestureRecognizer) TouchesEnded(touches []*Touch, e *Event) {}

// TouchesCancelled cancels a gesture in progress and fails a possible
// one.
func (g *GestureRecognizer) TouchesCancelled(touches []*Touch, e *Event) {
	switch g.state {
	case StateBegan, StateChanged:
		g.SetState(StateCancelled)
	case StatePossible:
		g.SetState(StateFailed)
	}
}

// Reset does nothing.
func (g *GestureRecognizer) Reset() {}

// State returns the current state.
func (g *GestureRecognizer) State() State { return g.state }

// View returns the view the recognizer is attached to.
func (g *GestureRecognizer) View() *View { return g.view }

// IsEnabled reports whether the recognizer receives touches.
func (g *GestureRecognizer) IsEnabled() bool { return !g.disabled }

// SetEnabled enables or disables the recognizer. Disabling cancels a
// gesture in progress.
func (g *GestureRecognizer) SetEnabled(enabled bool) {
	if enabled == !g.disabled {
		return
	}
	g.disabled = !enabled
	if !enabled {
		g.abort()
	}
}

// CancelsTouchesInView reports whether recognition cancels the
// touches in the bound views. The default is true.
func (g *GestureRecognizer) CancelsTouchesInView() bool { return !g.keepTouches }

func (g *GestureRecognizer) SetCancelsTouchesInView(cancels bool) { g.keepTouches = !cancels }

// SetShouldBegin sets a function consulted before the gesture leaves
// StatePossible. If it returns false the recognizer fails instead.
func (g *GestureRecognizer) SetShouldBegin(f func(Recognizer) bool) { g.shouldBegin = f }

// AddTarget adds an action invoked on every notifying transition.
// The target identifies the action for RemoveTarget and must be
// comparable.
func (g *GestureRecognizer) AddTarget(t any, action func(Recognizer)) {
	g.targets = append(g.targets, target{target: t, action: action})
}

// RemoveTarget removes the actions added for t. A nil t removes all
// actions.
func (g *GestureRecognizer) RemoveTarget(t any) {
	if t == nil {
		g.targets = nil
		return
	}
	g.targets = slices.DeleteFunc(g.targets, func(e target) bool { return e.target == t })
}

// RequireToFail defers the recognition of g until other fails. If
// other recognizes, g fails.
func (g *GestureRecognizer) RequireToFail(other Recognizer) {
	o := other.gestureRecognizer()
	if o == g || slices.Contains(g.requires, o) {
		return
	}
	g.requires = append(g.requires, o)
	o.dependents = append(o.dependents, g)
}

// Touches returns the touches tracked by the recognizer.
func (g *GestureRecognizer) Touches() []*Touch { return slices.Clone(g.tracked) }

// NumberOfTouches returns the number of tracked touches that have not
// ended.
func (g *GestureRecognizer) NumberOfTouches() int {
	n := 0
	for _, t := range g.tracked {
		if !t.finished() {
			n++
		}
	}
	return n
}

// Location returns the centroid of the active tracked touches in the
// coordinates of v, or window coordinates for a nil v.
func (g *GestureRecognizer) Location(v *View) f32.Point {
	var sum f32.Point
	n := 0
	for _, t := range g.tracked {
		if !t.finished() {
			sum = sum.Add(t.Location(v))
			n++
		}
	}
	if n == 0 {
		if len(g.tracked) == 0 {
			return f32.Point{}
		}
		return g.tracked[len(g.tracked)-1].Location(v)
	}
	return sum.Div(float32(n))
}

func (g *GestureRecognizer) shouldRecognize() bool {
	if g.disabled {
		return false
	}
	switch g.state {
	case StateFailed, StateCancelled, StateEnded:
		return false
	}
	return true
}

// outstanding reports whether the recognizer may still recognize the
// touches it tracks.
func (g *GestureRecognizer) outstanding() bool {
	return g.state == StatePossible && len(g.tracked) > 0
}

func (g *GestureRecognizer) blocked() bool {
	for _, r := range g.requires {
		if r.outstanding() {
			return true
		}
	}
	return false
}

// transition returns whether the transition is legal, whether it
// notifies the targets and whether it resets the recognizer.
func transition(from, to State) (legal, notify, reset bool) {
	switch from {
	case StatePossible:
		switch to {
		case StateBegan:
			return true, true, false
		case StateFailed:
			return true, false, true
		case StateEnded:
			return true, true, true
		}
	case StateBegan, StateChanged:
		switch to {
		case StateChanged:
			return true, true, false
		case StateEnded, StateCancelled, StateFailed:
			return true, true, true
		}
	}
	return false, false, false
}

// SetState moves the recognizer to state to. Transitions outside
// the legal set panic. Terminal states notify the targets if the
// transition notifies and then reset the recognizer to StatePossible.
func (g *GestureRecognizer) SetState(to State) {
	from := g.state
	if g.pending != StatePossible {
		switch to {
		case StateChanged:
			return
		case StateEnded:
			g.pending = StateEnded
			return
		case StateCancelled:
			to = StateFailed
		}
		g.pending = StatePossible
	}
	legal, notify, reset := transition(from, to)
	if !legal {
		panic(fmt.Errorf("ui: illegal gesture transition %v -> %v", from, to))
	}
	if from == StatePossible && (to == StateBegan || to == StateEnded) {
		if g.shouldBegin != nil && !g.shouldBegin(g.self) {
			to = StateFailed
			_, notify, reset = transition(from, to)
		} else if g.blocked() {
			g.pending = to
			return
		}
	}
	g.apply(from, to, notify, reset)
}

func (g *GestureRecognizer) apply(from, to State, notify, reset bool) {
	g.state = to
	log.L().Debug("gesture transition", "recognizer", g.name(), "from", from, "to", to)
	recognized := from == StatePossible && (to == StateBegan || to == StateEnded)
	if recognized {
		g.cancelTouchesInViews()
	}
	if notify {
		for _, t := range slices.Clone(g.targets) {
			t.action(g.self)
		}
	}
	if recognized {
		for _, d := range slices.Clone(g.dependents) {
			d.requiredRecognized()
		}
	}
	if reset {
		g.reset()
	}
	if to == StateFailed {
		for _, d := range slices.Clone(g.dependents) {
			d.requiredFailed()
		}
	}
}

// requiredFailed applies a deferred success once no requirement is
// outstanding.
func (g *GestureRecognizer) requiredFailed() {
	if g.pending == StatePossible || g.blocked() {
		return
	}
	to := g.pending
	g.pending = StatePossible
	g.SetState(to)
}

func (g *GestureRecognizer) requiredRecognized() {
	switch g.state {
	case StatePossible, StateBegan, StateChanged:
		g.pending = StatePossible
		if g.state == StatePossible && len(g.tracked) == 0 {
			return
		}
		g.SetState(StateFailed)
	}
}

func (g *GestureRecognizer) reset() {
	g.state = StatePossible
	g.pending = StatePossible
	g.tracked = nil
	if g.self != nil {
		g.self.Reset()
	}
}

// abort cancels a gesture in progress and drops the tracked touches.
func (g *GestureRecognizer) abort() {
	switch g.state {
	case StateBegan, StateChanged:
		g.SetState(StateCancelled)
	default:
		g.reset()
	}
}

// cancelTouchesInViews sends a cancellation to the views bound to the
// tracked touches and stops further delivery to them.
func (g *GestureRecognizer) cancelTouchesInViews() {
	if g.keepTouches {
		return
	}
	e := g.event
	if e == nil && g.view != nil && g.view.window != nil {
		// A deferred recognition applied after delivery.
		e = g.view.window.delivering
	}
	var cancelled []*Touch
	for _, t := range g.tracked {
		if t.viewCancelled {
			continue
		}
		t.viewCancelled = true
		// Views saw the end of a touch that finished in an earlier
		// event.
		if t.finished() && (e == nil || !slices.Contains(e.touches, t)) {
			continue
		}
		cancelled = append(cancelled, t)
	}
	if len(cancelled) == 0 {
		return
	}
	if e == nil {
		e = &Event{typ: TouchesEvent, time: cancelled[0].time, touches: cancelled}
	}
	for _, group := range groupByView(cancelled) {
		v := group[0].view
		if v == nil {
			continue
		}
		dispatchTouches(v, PhaseCancelled, group, e)
	}
}

func (g *GestureRecognizer) name() string {
	if g.self == nil {
		return "GestureRecognizer"
	}
	return fmt.Sprintf("%T", g.self)
}

func (s State) String() string {
	switch s {
	case StatePossible:
		return "Possible"
	case StateBegan:
		return "Began"
	case StateChanged:
		return "Changed"
	case StateEnded:
		return "Ended"
	case StateCancelled:
		return "Cancelled"
	case StateFailed:
		return "Failed"
	default:
		panic("unknown gesture state")
	}
}
