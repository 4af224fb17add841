// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements the common gesture recognizers.

Recognizers are attached to a view with ui.View.AddGestureRecognizer
and receive the touches that begin in the view or its subviews. Tap
and Swipe are discrete gestures, reported once when recognized. Pan
and LongPress are continuous: their targets are notified when the
gesture begins, on every change and when it ends.
*/
package gesture

import (
	"strings"
	"time"

	"viewkit.org/f32"
	"viewkit.org/internal/fling"
	"viewkit.org/ui"
)

// Tap recognizes one or more taps of one or more touches.
type Tap struct {
	ui.GestureRecognizer
	// Taps is the number of consecutive taps required. Zero means 1.
	Taps int
	// Touches is the number of touches required. Zero means 1.
	Touches int
	// Slop is the distance a touch may move and still tap. Zero means
	// DefaultSlop.
	Slop float32

	starts  map[*ui.Touch]f32.Point
	maxDown int
}

// Pan recognizes dragging touches and reports the translation and
// velocity of their centroid.
type Pan struct {
	ui.GestureRecognizer
	// MinTouches is the number of touches required to begin. Zero
	// means 1.
	MinTouches int
	// MaxTouches is the largest number of touches the pan allows.
	// Zero means no limit.
	MaxTouches int
	// Slop is the distance the centroid must move before the pan
	// begins.
	Slop float32

	// start is the window position of the centroid for a zero
	// translation.
	start       f32.Point
	translation f32.Point
	// shift undoes SetTranslation for the velocity samples.
	shift      f32.Point
	estX, estY fling.Extrapolation
}

// LongPress recognizes touches held in place. The press duration is
// evaluated whenever the touches move or end, and on every window
// frame while they are held still.
type LongPress struct {
	ui.GestureRecognizer
	// MinDuration is the time the touches must be held. Zero means
	// DefaultLongPressDuration.
	MinDuration time.Duration
	// AllowableMovement is the distance the touches may move before
	// the press fails. Zero means DefaultSlop.
	AllowableMovement float32
	// Touches is the number of touches required. Zero means 1.
	Touches int

	start f32.Point
	down  time.Duration
	// press counts touch-downs; a hold timer serves one press.
	press int
}

// Swipe recognizes a quick stroke in one of the permitted directions.
type Swipe struct {
	ui.GestureRecognizer
	// Direction is the set of permitted directions. Zero means Right.
	Direction Direction
	// MinDistance is the length of a swipe. Zero means
	// DefaultSwipeDistance.
	MinDistance float32
	// MaxDuration is the time a swipe may take. Zero means
	// DefaultSwipeDuration.
	MaxDuration time.Duration

	start f32.Point
	down  time.Duration
	// Recognized direction.
	dir Direction
}

// Direction is a set of swipe directions.
type Direction uint8

const (
	Right Direction = 1 << iota
	Left
	Up
	Down
)

const (
	DefaultSlop              = 10
	DefaultLongPressDuration = 500 * time.Millisecond
	DefaultSwipeDistance     = 50
	DefaultSwipeDuration     = 500 * time.Millisecond
)

var (
	_ ui.Recognizer = (*Tap)(nil)
	_ ui.Recognizer = (*Pan)(nil)
	_ ui.Recognizer = (*LongPress)(nil)
	_ ui.Recognizer = (*Swipe)(nil)
)

func orOne(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

func slopOr(d float32) float32 {
	if d <= 0 {
		return DefaultSlop
	}
	return d
}

// TouchesBegan records the touches and fails when there are too many.
func (t *Tap) TouchesBegan(touches []*ui.Touch, e *ui.Event) {
	if t.starts == nil {
		t.starts = make(map[*ui.Touch]f32.Point)
	}
	for _, tt := range touches {
		t.starts[tt] = tt.Location(nil)
	}
	n := t.NumberOfTouches()
	if n > orOne(t.Touches) {
		t.SetState(ui.StateFailed)
		return
	}
	t.maxDown = max(t.maxDown, n)
}

// TouchesMoved fails the tap when a touch leaves its slop.
func (t *Tap) TouchesMoved(touches []*ui.Touch, e *ui.Event) {
	slop := slopOr(t.Slop)
	for _, tt := range touches {
		if tt.Location(nil).Sub(t.starts[tt]).Len() > slop {
			t.SetState(ui.StateFailed)
			return
		}
	}
}

// TouchesEnded recognizes the tap when the last touch lifts and its
// tap count is a multiple of Taps. Otherwise the tap stays possible
// and fails with its touches.
func (t *Tap) TouchesEnded(touches []*ui.Touch, e *ui.Event) {
	if t.NumberOfTouches() > 0 || t.maxDown != orOne(t.Touches) {
		return
	}
	last := touches[len(touches)-1]
	if last.TapCount()%orOne(t.Taps) == 0 {
		t.SetState(ui.StateRecognized)
	}
}

// Reset clears the recorded touches.
func (t *Tap) Reset() {
	clear(t.starts)
	t.maxDown = 0
}

// TouchesBegan samples the centroid and keeps a pan in progress
// continuous when touches are added.
func (p *Pan) TouchesBegan(touches []*ui.Touch, e *ui.Event) {
	p.rebase()
	p.sample(e)
}

// TouchesMoved begins the pan once enough touches moved past the
// slop, and reports the translation afterwards.
func (p *Pan) TouchesMoved(touches []*ui.Touch, e *ui.Event) {
	p.sample(e)
	d := p.Location(nil).Sub(p.start)
	switch p.State() {
	case ui.StatePossible:
		n := p.NumberOfTouches()
		if n < orOne(p.MinTouches) || (p.MaxTouches > 0 && n > p.MaxTouches) {
			return
		}
		if d.Len() < p.Slop {
			return
		}
		p.translation = d
		p.SetState(ui.StateBegan)
		if p.State() == ui.StateBegan {
			p.SetState(ui.StateChanged)
		}
	case ui.StateBegan, ui.StateChanged:
		p.translation = d
		p.SetState(ui.StateChanged)
	}
}

// TouchesEnded ends the pan when its touches lift or too few remain.
func (p *Pan) TouchesEnded(touches []*ui.Touch, e *ui.Event) {
	n := p.NumberOfTouches()
	switch p.State() {
	case ui.StatePossible:
		if n == 0 {
			p.SetState(ui.StateFailed)
			return
		}
		p.rebase()
	case ui.StateBegan, ui.StateChanged:
		if n == 0 || n < orOne(p.MinTouches) {
			p.SetState(ui.StateEnded)
			return
		}
		p.rebase()
	}
}

// Reset clears the translation and velocity.
func (p *Pan) Reset() {
	p.start = f32.Point{}
	p.translation = f32.Point{}
	p.shift = f32.Point{}
	p.estX = fling.Extrapolation{}
	p.estY = fling.Extrapolation{}
}

// rebase keeps the translation when the centroid jumps because the
// set of touches changed.
func (p *Pan) rebase() {
	p.start = p.Location(nil).Sub(p.translation)
}

func (p *Pan) sample(e *ui.Event) {
	loc := p.Location(nil).Sub(p.start).Add(p.shift)
	p.estX.Sample(e.Timestamp(), loc.X)
	p.estY.Sample(e.Timestamp(), loc.Y)
}

// Translation returns the distance the touches moved since the pan
// began. Views only translate, so the result is the same for every
// view; v is accepted for symmetry with the other coordinate methods.
func (p *Pan) Translation(v *ui.View) f32.Point {
	return p.translation
}

// SetTranslation sets the current translation, typically to zero to
// report incremental changes.
func (p *Pan) SetTranslation(t f32.Point, v *ui.View) {
	d := p.translation.Sub(t)
	p.start = p.start.Add(d)
	p.shift = p.shift.Add(d)
	p.translation = t
}

// Velocity returns the velocity of the touches in points per second.
func (p *Pan) Velocity(v *ui.View) f32.Point {
	return f32.Pt(p.estX.Estimate().Velocity, p.estY.Estimate().Velocity)
}

// TouchesBegan records where and when the press started.
func (l *LongPress) TouchesBegan(touches []*ui.Touch, e *ui.Event) {
	if l.NumberOfTouches() > orOne(l.Touches) {
		l.SetState(ui.StateFailed)
		return
	}
	l.start = l.Location(nil)
	l.down = e.Timestamp()
	l.press++
	if v := l.View(); v != nil && v.Window() != nil {
		v.Window().AddAnimator(&holdTimer{lp: l, press: l.press})
	}
}

// TouchesMoved fails the press when the touches wander, begins it
// when they were held long enough and reports changes afterwards.
func (l *LongPress) TouchesMoved(touches []*ui.Touch, e *ui.Event) {
	switch l.State() {
	case ui.StatePossible:
		if l.Location(nil).Sub(l.start).Len() > slopOr(l.AllowableMovement) {
			l.SetState(ui.StateFailed)
			return
		}
		if l.held(e) {
			l.SetState(ui.StateBegan)
		}
	case ui.StateBegan, ui.StateChanged:
		l.SetState(ui.StateChanged)
	}
}

// TouchesEnded completes the press if it was held long enough.
func (l *LongPress) TouchesEnded(touches []*ui.Touch, e *ui.Event) {
	if l.NumberOfTouches() > 0 {
		return
	}
	switch l.State() {
	case ui.StatePossible:
		if l.held(e) {
			l.SetState(ui.StateEnded)
		} else {
			l.SetState(ui.StateFailed)
		}
	case ui.StateBegan, ui.StateChanged:
		l.SetState(ui.StateEnded)
	}
}

func (l *LongPress) held(e *ui.Event) bool {
	return l.NumberOfTouches() <= orOne(l.Touches) && e.Timestamp()-l.down >= l.minDuration()
}

func (l *LongPress) minDuration() time.Duration {
	if l.MinDuration <= 0 {
		return DefaultLongPressDuration
	}
	return l.MinDuration
}

// holdTimer begins a long press whose touches are held still. It
// measures from the first frame after the touch-down.
type holdTimer struct {
	lp    *LongPress
	press int
	start time.Time
}

func (h *holdTimer) Animate(now time.Time) bool {
	l := h.lp
	if l.press != h.press || l.State() != ui.StatePossible || l.NumberOfTouches() == 0 {
		return false
	}
	if h.start.IsZero() {
		h.start = now
		return true
	}
	if l.NumberOfTouches() <= orOne(l.Touches) && now.Sub(h.start) >= l.minDuration() {
		l.SetState(ui.StateBegan)
		return false
	}
	return true
}

// Reset does nothing; the press state is recorded on every touch-down.
func (l *LongPress) Reset() {}

// TouchesBegan records the start of the stroke. Swipes take one touch.
func (s *Swipe) TouchesBegan(touches []*ui.Touch, e *ui.Event) {
	if s.NumberOfTouches() > 1 {
		s.SetState(ui.StateFailed)
		return
	}
	s.start = s.Location(nil)
	s.down = e.Timestamp()
	s.dir = 0
}

// TouchesMoved fails strokes that take too long.
func (s *Swipe) TouchesMoved(touches []*ui.Touch, e *ui.Event) {
	if e.Timestamp()-s.down > s.maxDuration() {
		s.SetState(ui.StateFailed)
	}
}

// TouchesEnded recognizes a stroke long enough along a permitted
// direction and at most half as long across it.
func (s *Swipe) TouchesEnded(touches []*ui.Touch, e *ui.Event) {
	if e.Timestamp()-s.down > s.maxDuration() {
		s.SetState(ui.StateFailed)
		return
	}
	d := s.Location(nil).Sub(s.start)
	along, across := d.X, d.Y
	dir := Right
	if abs(d.Y) > abs(d.X) {
		along, across = d.Y, d.X
		dir = Down
		if along < 0 {
			dir = Up
		}
	} else if along < 0 {
		dir = Left
	}
	dist := s.MinDistance
	if dist <= 0 {
		dist = DefaultSwipeDistance
	}
	allowed := s.Direction
	if allowed == 0 {
		allowed = Right
	}
	if abs(along) < dist || abs(across) > abs(along)/2 || allowed&dir == 0 {
		s.SetState(ui.StateFailed)
		return
	}
	s.dir = dir
	s.SetState(ui.StateRecognized)
}

// Swiped returns the direction of the recognized swipe. It is valid
// while the targets are notified.
func (s *Swipe) Swiped() Direction {
	return s.dir
}

func (s *Swipe) maxDuration() time.Duration {
	if s.MaxDuration <= 0 {
		return DefaultSwipeDuration
	}
	return s.MaxDuration
}

// Reset does nothing; the stroke is recorded on every touch-down.
func (s *Swipe) Reset() {}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (d Direction) String() string {
	var buf strings.Builder
	for dd := Direction(1); dd > 0 && dd <= Down; dd <<= 1 {
		if d&dd > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString(dd.string())
		}
	}
	if d&^(Right|Left|Up|Down) != 0 {
		panic("invalid Direction")
	}
	return buf.String()
}

func (d Direction) string() string {
	switch d {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		panic("invalid Direction")
	}
}
