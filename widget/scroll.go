// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"viewkit.org/f32"
	"viewkit.org/gesture"
	"viewkit.org/internal/fling"
	"viewkit.org/ui"
)

// ScrollView is a view whose subviews form a scrollable content area.
// Scrolling moves the bounds origin, the content offset, within the
// content size. Touch drags pan the content and fling it on release;
// wheel events scroll it directly.
type ScrollView struct {
	ui.View

	contentSize f32.Size
	disabled    bool
	pan         gesture.Pan
	// panStart is the content offset when the pan began.
	panStart f32.Point
	flingX   fling.Animation
	flingY   fling.Animation
	// Pending fling velocity, started on the next frame.
	launch    f32.Point
	launching bool
}

// ScrollState is the motion state of a scroll view.
type ScrollState uint8

const (
	// StateIdle is the default scroll state.
	StateIdle ScrollState = iota
	// StateDragging is reported during drag gestures.
	StateDragging
	// StateFlinging is reported when a fling is in progress.
	StateFlinging
)

// panSlop is the distance a touch moves before it scrolls.
const panSlop = 10

var (
	_ ui.WheelHandler = (*ScrollView)(nil)
	_ ui.Animator     = (*ScrollView)(nil)
)

// NewScrollView returns a scroll view with the given frame. It
// clips its content to its bounds.
func NewScrollView(frame f32.Rect) *ScrollView {
	s := new(ScrollView)
	s.SetFrame(frame)
	s.SetClipsToBounds(true)
	s.SetBehavior(s)
	s.pan.Slop = panSlop
	s.pan.AddTarget(s, func(ui.Recognizer) { s.handlePan() })
	s.AddGestureRecognizer(&s.pan)
	return s
}

// ContentSize returns the size of the scrollable area.
func (s *ScrollView) ContentSize() f32.Size { return s.contentSize }

// SetContentSize sets the size of the scrollable area and clamps the
// content offset to it.
func (s *ScrollView) SetContentSize(sz f32.Size) {
	s.contentSize = sz
	s.SetContentOffset(s.ContentOffset())
}

// ContentOffset returns the point of the content shown at the top
// left corner.
func (s *ScrollView) ContentOffset() f32.Point { return s.Bounds().Origin }

// SetContentOffset scrolls to p, clamped to the content size.
func (s *ScrollView) SetContentOffset(p f32.Point) {
	b := s.Bounds()
	b.Origin = s.clamp(p)
	s.SetBounds(b)
}

// IsScrollEnabled reports whether the view responds to drags and
// wheels.
func (s *ScrollView) IsScrollEnabled() bool { return !s.disabled }

// SetScrollEnabled enables or disables scrolling. Disabling stops a
// fling.
func (s *ScrollView) SetScrollEnabled(enabled bool) {
	s.disabled = !enabled
	s.pan.SetEnabled(enabled)
	if !enabled {
		s.Stop()
	}
}

// PanGestureRecognizer returns the recognizer driving drags.
func (s *ScrollView) PanGestureRecognizer() *gesture.Pan { return &s.pan }

// State reports the scroll state.
func (s *ScrollView) State() ScrollState {
	switch {
	case s.flingX.Active() || s.flingY.Active() || s.launching:
		return StateFlinging
	case s.pan.State() == ui.StateBegan || s.pan.State() == ui.StateChanged:
		return StateDragging
	default:
		return StateIdle
	}
}

// Stop any remaining fling movement.
func (s *ScrollView) Stop() {
	s.flingX.Stop()
	s.flingY.Stop()
	s.launching = false
}

// maxOffset returns the largest content offset.
func (s *ScrollView) maxOffset() f32.Point {
	sz := s.Bounds().Size
	return f32.Pt(max(0, s.contentSize.Width-sz.Width), max(0, s.contentSize.Height-sz.Height))
}

func (s *ScrollView) clamp(p f32.Point) f32.Point {
	m := s.maxOffset()
	return f32.Pt(max(0, min(p.X, m.X)), max(0, min(p.Y, m.Y)))
}

func (s *ScrollView) handlePan() {
	switch s.pan.State() {
	case ui.StateBegan:
		s.Stop()
		s.panStart = s.ContentOffset()
		fallthrough
	case ui.StateChanged:
		s.SetContentOffset(s.panStart.Sub(s.pan.Translation(&s.View)))
	case ui.StateEnded:
		// The content moves against the touches.
		s.launch = s.pan.Velocity(&s.View).Mul(-1)
		s.launching = true
		if w := s.Window(); w != nil {
			w.AddAnimator(s)
		}
	}
}

// HandleWheel scrolls by the wheel translation.
func (s *ScrollView) HandleWheel(e *ui.Event) bool {
	if s.disabled {
		return false
	}
	s.Stop()
	s.SetContentOffset(s.ContentOffset().Add(e.Translation()))
	return true
}

// Animate advances a fling, stopping each axis at the content edges.
func (s *ScrollView) Animate(now time.Time) bool {
	if s.launching {
		s.launching = false
		m := s.maxOffset()
		if m.X > 0 {
			s.flingX.Start(now, s.launch.X)
		}
		if m.Y > 0 {
			s.flingY.Start(now, s.launch.Y)
		}
	}
	d := f32.Pt(s.flingX.Tick(now), s.flingY.Tick(now))
	want := s.ContentOffset().Add(d)
	s.SetContentOffset(want)
	got := s.ContentOffset()
	if got.X != want.X {
		s.flingX.Stop()
	}
	if got.Y != want.Y {
		s.flingY.Stop()
	}
	return s.flingX.Active() || s.flingY.Active()
}

func (s ScrollState) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StateDragging:
		return "StateDragging"
	case StateFlinging:
		return "StateFlinging"
	default:
		panic("unreachable")
	}
}
