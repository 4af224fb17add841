// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"viewkit.org/ui"
)

// Control is a view that tracks a touch and reports control events
// to its actions. Widgets embed Control and draw according to its
// state.
type Control struct {
	ui.View

	highlighted bool
	disabled    bool
	// tracking is the touch driving the control, if any.
	tracking *ui.Touch
	actions  []action
}

// ControlState is the visible state of a control.
type ControlState uint8

// ControlEvent is a change reported by a control.
type ControlEvent uint8

type action struct {
	event ControlEvent
	fn    func()
}

const (
	// StateNormal is the default control state.
	StateNormal ControlState = iota
	// StateHighlighted is reported while a touch is pressed inside
	// the control.
	StateHighlighted
	// StateDisabled is reported for controls ignoring touches.
	StateDisabled
)

const (
	// TouchDown is reported when a touch presses the control.
	TouchDown ControlEvent = iota
	// TouchUpInside is reported when the touch lifts inside the
	// control; it is the tap of a button.
	TouchUpInside
	// TouchUpOutside is reported when the touch lifts after leaving
	// the control.
	TouchUpOutside
	// TouchCancel is reported when the touch is cancelled, for
	// example by a recognizer claiming it.
	TouchCancel
	// ValueChanged is reported by controls with a value when it
	// changes.
	ValueChanged
)

var _ ui.TouchHandler = (*Control)(nil)

// State reports the control state.
func (c *Control) State() ControlState {
	switch {
	case c.disabled:
		return StateDisabled
	case c.highlighted:
		return StateHighlighted
	default:
		return StateNormal
	}
}

// IsEnabled reports whether the control responds to touches.
func (c *Control) IsEnabled() bool { return !c.disabled }

// SetEnabled enables or disables the control. Disabling drops a
// touch in progress without reporting it.
func (c *Control) SetEnabled(enabled bool) {
	if enabled == !c.disabled {
		return
	}
	c.disabled = !enabled
	c.highlighted = false
	c.tracking = nil
	c.SetNeedsDisplay()
}

// AddAction adds fn to the actions run for ev.
func (c *Control) AddAction(ev ControlEvent, fn func()) {
	c.actions = append(c.actions, action{event: ev, fn: fn})
}

// RemoveActions removes every action for ev.
func (c *Control) RemoveActions(ev ControlEvent) {
	var kept []action
	for _, a := range c.actions {
		if a.event != ev {
			kept = append(kept, a)
		}
	}
	c.actions = kept
}

// SendActions runs the actions for ev in the order they were added.
func (c *Control) SendActions(ev ControlEvent) {
	for _, a := range c.actions {
		if a.event == ev {
			a.fn()
		}
	}
}

// HandleTouches tracks the first touch pressing the control. It
// consumes every touch while the control is enabled.
func (c *Control) HandleTouches(phase ui.Phase, touches []*ui.Touch, e *ui.Event) bool {
	if c.disabled {
		return false
	}
	switch phase {
	case ui.PhaseBegan:
		if c.tracking != nil {
			return true
		}
		c.tracking = touches[0]
		c.setHighlighted(true)
		c.SendActions(TouchDown)
	case ui.PhaseMoved:
		if t := c.tracked(touches); t != nil {
			c.setHighlighted(c.inside(t))
		}
	case ui.PhaseEnded:
		if t := c.tracked(touches); t != nil {
			c.tracking = nil
			c.setHighlighted(false)
			if c.inside(t) {
				c.SendActions(TouchUpInside)
			} else {
				c.SendActions(TouchUpOutside)
			}
		}
	case ui.PhaseCancelled:
		if c.tracked(touches) != nil {
			c.tracking = nil
			c.setHighlighted(false)
			c.SendActions(TouchCancel)
		}
	}
	return true
}

func (c *Control) tracked(touches []*ui.Touch) *ui.Touch {
	for _, t := range touches {
		if t == c.tracking {
			return t
		}
	}
	return nil
}

func (c *Control) inside(t *ui.Touch) bool {
	return c.Bounds().Contains(t.Location(&c.View))
}

func (c *Control) setHighlighted(h bool) {
	if h != c.highlighted {
		c.highlighted = h
		c.SetNeedsDisplay()
	}
}

func (s ControlState) String() string {
	switch s {
	case StateNormal:
		return "StateNormal"
	case StateHighlighted:
		return "StateHighlighted"
	case StateDisabled:
		return "StateDisabled"
	default:
		panic("invalid ControlState")
	}
}

func (ev ControlEvent) String() string {
	switch ev {
	case TouchDown:
		return "TouchDown"
	case TouchUpInside:
		return "TouchUpInside"
	case TouchUpOutside:
		return "TouchUpOutside"
	case TouchCancel:
		return "TouchCancel"
	case ValueChanged:
		return "ValueChanged"
	default:
		panic("invalid ControlEvent")
	}
}
