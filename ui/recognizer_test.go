// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"viewkit.org/f32"
	"viewkit.org/io/pointer"
)

// scripted is a recognizer driven by test callbacks.
type scripted struct {
	GestureRecognizer
	began, moved, ended func(g *scripted)
	resets              int
	seen                []*Touch
}

func (s *scripted) TouchesBegan(ts []*Touch, e *Event) {
	s.seen = append(s.seen, ts...)
	if s.began != nil {
		s.began(s)
	}
}

func (s *scripted) TouchesMoved(ts []*Touch, e *Event) {
	s.seen = append(s.seen, ts...)
	if s.moved != nil {
		s.moved(s)
	}
}

func (s *scripted) TouchesEnded(ts []*Touch, e *Event) {
	s.seen = append(s.seen, ts...)
	if s.ended != nil {
		s.ended(s)
	}
}

func (s *scripted) Reset() { s.resets++ }

// continuous begins on the first move, changes on later moves and
// ends on release.
func continuous() *scripted {
	return &scripted{
		moved: func(g *scripted) {
			if g.State() == StatePossible {
				g.SetState(StateBegan)
			} else {
				g.SetState(StateChanged)
			}
		},
		ended: func(g *scripted) {
			if g.State() != StatePossible {
				g.SetState(StateEnded)
			}
		},
	}
}

// discrete recognizes on release.
func discrete() *scripted {
	return &scripted{ended: func(g *scripted) { g.SetState(StateRecognized) }}
}

func press(id pointer.ID, ms int, x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Press, Source: pointer.Touch, PointerID: id, Time: time.Duration(ms) * time.Millisecond, Position: f32.Pt(x, y)}
}

func move(id pointer.ID, ms int, x, y float32) pointer.Event {
	e := press(id, ms, x, y)
	e.Kind = pointer.Move
	return e
}

func release(id pointer.ID, ms int, x, y float32) pointer.Event {
	e := press(id, ms, x, y)
	e.Kind = pointer.Release
	return e
}

func TestTransitionLegality(t *testing.T) {
	type result struct {
		notify bool
		final  State
	}
	legal := map[[2]State]result{
		{StatePossible, StateBegan}:    {true, StateBegan},
		{StatePossible, StateFailed}:   {false, StatePossible},
		{StatePossible, StateEnded}:    {true, StatePossible},
		{StateBegan, StateChanged}:     {true, StateChanged},
		{StateChanged, StateChanged}:   {true, StateChanged},
		{StateBegan, StateEnded}:       {true, StatePossible},
		{StateChanged, StateEnded}:     {true, StatePossible},
		{StateBegan, StateCancelled}:   {true, StatePossible},
		{StateChanged, StateCancelled}: {true, StatePossible},
		{StateBegan, StateFailed}:      {true, StatePossible},
		{StateChanged, StateFailed}:    {true, StatePossible},
	}
	for from := StatePossible; from <= StateFailed; from++ {
		for to := StatePossible; to <= StateFailed; to++ {
			t.Run(fmt.Sprintf("%v->%v", from, to), func(t *testing.T) {
				var g GestureRecognizer
				g.state = from
				notified := 0
				g.AddTarget(t, func(Recognizer) { notified++ })
				want, ok := legal[[2]State{from, to}]
				defer func() {
					err := recover()
					if ok && err != nil {
						t.Fatalf("legal transition panicked: %v", err)
					}
					if !ok && err == nil {
						t.Fatal("illegal transition did not panic")
					}
				}()
				g.SetState(to)
				if got := notified > 0; got != want.notify {
					t.Errorf("notified = %v, want %v", got, want.notify)
				}
				if got := g.State(); got != want.final {
					t.Errorf("final state = %v, want %v", got, want.final)
				}
			})
		}
	}
}

func TestTouchIdentityStable(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	outer := NewView(f32.R(0, 0, 100, 100))
	inner := NewView(f32.R(10, 10, 50, 50))
	outer.AddSubview(inner)
	w.AddSubview(outer)
	ri, ro := continuous(), continuous()
	inner.AddGestureRecognizer(ri)
	outer.AddGestureRecognizer(ro)

	w.HandlePointer(press(1, 1, 20, 20))
	// Recognizers attached after the press are not in the snapshot.
	late := continuous()
	inner.AddGestureRecognizer(late)
	w.HandlePointer(move(1, 2, 80, 80))
	w.HandlePointer(release(1, 3, 90, 90))

	if len(ri.seen) != 3 {
		t.Fatalf("inner recognizer saw %d touches, want 3", len(ri.seen))
	}
	first := ri.seen[0]
	for i, tc := range ri.seen {
		if tc != first {
			t.Errorf("callback %d got a different touch", i)
		}
	}
	if first.View() != inner || first.Window() != w {
		t.Errorf("touch bound to view %p window %p", first.View(), first.Window())
	}
	want := []Recognizer{ri, ro}
	if got := first.GestureRecognizers(); len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("recognizer snapshot = %v, want inner then outer", got)
	}
	if len(late.seen) != 0 {
		t.Error("recognizer added after the press saw the touch")
	}
	if got := first.Location(inner); got != f32.Pt(80, 80) {
		t.Errorf("location in inner = %v, want (80,80)", got)
	}
	if got := first.PreviousLocation(nil); got != f32.Pt(80, 80) {
		t.Errorf("previous location = %v, want (80,80)", got)
	}
	if got := len(w.ActiveTouches()); got != 0 {
		t.Errorf("%d touches still active after release", got)
	}
}

type touchLog struct {
	events  []string
	consume bool
}

func (l *touchLog) HandleTouches(phase Phase, ts []*Touch, e *Event) bool {
	var ids []string
	for _, t := range ts {
		ids = append(ids, fmt.Sprint(t.ID()))
	}
	l.events = append(l.events, fmt.Sprintf("%v %v all=%d", phase, ids, len(e.AllTouches())))
	return l.consume
}

func TestPointerBatching(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	l := &touchLog{consume: true}
	w.SetBehavior(l)
	w.HandlePointer(
		press(1, 1, 10, 10), press(2, 1, 20, 20),
		move(1, 2, 11, 11),
		move(1, 3, 12, 12), move(1, 3, 13, 13),
		release(2, 4, 20, 20), release(1, 4, 13, 13),
	)
	want := []string{
		"Began [1 2] all=2",
		"Moved [1] all=2",
		"Moved [1] all=2",
		"Moved [1] all=2",
		"Ended [1 2] all=2",
	}
	if diff := cmp.Diff(want, l.events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

type phaseProbe struct {
	phases map[pointer.ID][]Phase
}

func (p *phaseProbe) HandleTouches(phase Phase, ts []*Touch, e *Event) bool {
	for _, t := range e.AllTouches() {
		p.phases[t.ID()] = append(p.phases[t.ID()], t.Phase())
	}
	return true
}

func TestStationaryTouches(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	p := &phaseProbe{phases: make(map[pointer.ID][]Phase)}
	w.SetBehavior(p)
	w.HandlePointer(press(1, 1, 10, 10))
	w.HandlePointer(press(2, 2, 20, 20))
	if got, want := p.phases[1], []Phase{PhaseBegan, PhaseStationary}; !cmp.Equal(got, want) {
		t.Errorf("touch 1 phases = %v, want %v", got, want)
	}
}

func TestTapCount(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	var counts []int
	w.SetBehavior(touchFunc(func(ph Phase, ts []*Touch) {
		if ph == PhaseBegan {
			counts = append(counts, ts[0].TapCount())
		}
	}))
	w.HandlePointer(press(1, 0, 10, 10), release(1, 50, 10, 10))
	w.HandlePointer(press(1, 200, 12, 12), release(1, 250, 12, 12))
	// Too far from the previous release.
	w.HandlePointer(press(1, 300, 40, 40), release(1, 350, 40, 40))
	// Too late.
	w.HandlePointer(press(1, 1000, 40, 40), release(1, 1050, 40, 40))
	if want := []int{1, 2, 1, 1}; !cmp.Equal(counts, want) {
		t.Errorf("tap counts = %v, want %v", counts, want)
	}
}

type touchFunc func(ph Phase, ts []*Touch)

func (f touchFunc) HandleTouches(ph Phase, ts []*Touch, e *Event) bool {
	f(ph, ts)
	return true
}

func TestRecognizerFailsWhenTouchesEnd(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	g := new(scripted)
	fired := 0
	g.AddTarget(nil, func(Recognizer) { fired++ })
	w.AddGestureRecognizer(g)
	w.HandlePointer(press(1, 1, 10, 10), move(1, 2, 20, 20), release(1, 3, 20, 20))
	if fired != 0 || g.resets != 1 || g.State() != StatePossible {
		t.Errorf("fired %d, resets %d, state %v", fired, g.resets, g.State())
	}
	if len(g.Touches()) != 0 {
		t.Error("tracked touches survived the reset")
	}
}

func TestFailedRecognizerStopsReceiving(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	g := &scripted{moved: func(g *scripted) { g.SetState(StateFailed) }}
	w.AddGestureRecognizer(g)
	w.HandlePointer(press(1, 1, 10, 10), move(1, 2, 20, 20), move(1, 3, 30, 30), release(1, 4, 30, 30))
	if got := len(g.seen); got != 2 {
		t.Errorf("failed recognizer saw %d touch deliveries, want 2", got)
	}
}

func TestDisabledRecognizer(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	g := discrete()
	g.SetEnabled(false)
	w.AddGestureRecognizer(g)
	w.HandlePointer(press(1, 1, 10, 10), release(1, 2, 10, 10))
	if len(g.seen) != 0 {
		t.Error("disabled recognizer received touches")
	}
}

func TestShouldBegin(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	g := continuous()
	g.SetShouldBegin(func(r Recognizer) bool { return r != Recognizer(g) })
	fired := 0
	g.AddTarget(nil, func(Recognizer) { fired++ })
	w.AddGestureRecognizer(g)
	w.HandlePointer(press(1, 1, 10, 10), move(1, 2, 20, 20), move(1, 3, 30, 30))
	if fired != 0 || g.State() != StatePossible {
		t.Errorf("fired %d, state %v", fired, g.State())
	}
}

func TestRequireToFail(t *testing.T) {
	for _, tc := range []struct {
		label          string
		required       func() *scripted
		dependentFires int
		requiredFires  int
	}{
		{"required fails", func() *scripted { return new(scripted) }, 1, 0},
		{"required recognizes", discrete, 0, 1},
	} {
		t.Run(tc.label, func(t *testing.T) {
			w := NewWindow(f32.Sz(100, 100))
			dep, req := discrete(), tc.required()
			dep.RequireToFail(req)
			depFired, reqFired := 0, 0
			dep.AddTarget(nil, func(Recognizer) { depFired++ })
			req.AddTarget(nil, func(Recognizer) { reqFired++ })
			w.AddGestureRecognizer(dep)
			w.AddGestureRecognizer(req)
			w.HandlePointer(press(1, 1, 10, 10), release(1, 2, 10, 10))
			if depFired != tc.dependentFires || reqFired != tc.requiredFires {
				t.Errorf("dependent fired %d, required fired %d", depFired, reqFired)
			}
			if dep.State() != StatePossible || req.State() != StatePossible {
				t.Errorf("states %v %v, want possible", dep.State(), req.State())
			}
		})
	}
}

func TestRequireToFailViewTouches(t *testing.T) {
	t.Run("same event", func(t *testing.T) {
		w := NewWindow(f32.Sz(100, 100))
		l := &touchLog{consume: true}
		w.SetBehavior(l)
		dep, req := discrete(), new(scripted)
		dep.RequireToFail(req)
		fired := 0
		dep.AddTarget(nil, func(Recognizer) { fired++ })
		w.AddGestureRecognizer(dep)
		w.AddGestureRecognizer(req)
		w.HandlePointer(press(1, 1, 10, 10), release(1, 2, 10, 10))
		if fired != 1 {
			t.Errorf("dependent fired %d times, want 1", fired)
		}
		want := []string{"Began [1] all=1", "Cancelled [1] all=1"}
		if diff := cmp.Diff(want, l.events); diff != "" {
			t.Errorf("view events (-want +got):\n%s", diff)
		}
	})
	t.Run("later event", func(t *testing.T) {
		w := NewWindow(f32.Sz(100, 100))
		a := NewView(f32.R(0, 0, 40, 40))
		l := &touchLog{consume: true}
		a.SetBehavior(l)
		b := NewView(f32.R(50, 50, 40, 40))
		w.AddSubview(a)
		w.AddSubview(b)
		dep, req := discrete(), new(scripted)
		dep.RequireToFail(req)
		fired := 0
		dep.AddTarget(nil, func(Recognizer) { fired++ })
		a.AddGestureRecognizer(dep)
		b.AddGestureRecognizer(req)
		w.HandlePointer(press(1, 1, 10, 10), press(2, 1, 60, 60))
		w.HandlePointer(release(1, 2, 10, 10))
		if fired != 0 {
			t.Fatal("dependent fired while the required recognizer was outstanding")
		}
		w.HandlePointer(release(2, 3, 60, 60))
		if fired != 1 {
			t.Errorf("dependent fired %d times, want 1", fired)
		}
		// The ended touch is not cancelled after the fact.
		want := []string{"Began [1] all=2", "Ended [1] all=2"}
		if diff := cmp.Diff(want, l.events); diff != "" {
			t.Errorf("view events (-want +got):\n%s", diff)
		}
	})
}

func TestCancelsTouchesInView(t *testing.T) {
	for _, tc := range []struct {
		label   string
		cancels bool
		want    []string
	}{
		{"cancels", true, []string{"Began [1] all=1", "Cancelled [1] all=1"}},
		{"keeps", false, []string{"Began [1] all=1", "Moved [1] all=1", "Moved [1] all=1", "Ended [1] all=1"}},
	} {
		t.Run(tc.label, func(t *testing.T) {
			w := NewWindow(f32.Sz(100, 100))
			v := NewView(f32.R(0, 0, 50, 50))
			l := &touchLog{consume: true}
			v.SetBehavior(l)
			w.AddSubview(v)
			g := continuous()
			g.SetCancelsTouchesInView(tc.cancels)
			var states []State
			g.AddTarget(nil, func(r Recognizer) { states = append(states, g.State()) })
			v.AddGestureRecognizer(g)
			w.HandlePointer(press(1, 1, 10, 10), move(1, 2, 20, 20), move(1, 3, 30, 30), release(1, 4, 30, 30))
			if diff := cmp.Diff(tc.want, l.events); diff != "" {
				t.Errorf("view events (-want +got):\n%s", diff)
			}
			if want := []State{StateBegan, StateChanged, StateEnded}; !cmp.Equal(states, want) {
				t.Errorf("notified states = %v, want %v", states, want)
			}
		})
	}
}

func TestRemoveGestureRecognizerCancels(t *testing.T) {
	w := NewWindow(f32.Sz(100, 100))
	g := continuous()
	var states []State
	g.AddTarget(nil, func(Recognizer) { states = append(states, g.State()) })
	w.AddGestureRecognizer(g)
	w.HandlePointer(press(1, 1, 10, 10), move(1, 2, 20, 20))
	w.RemoveGestureRecognizer(g)
	if want := []State{StateBegan, StateCancelled}; !cmp.Equal(states, want) {
		t.Errorf("states = %v, want %v", states, want)
	}
	if g.View() != nil || len(w.GestureRecognizers()) != 0 {
		t.Error("recognizer still attached")
	}
}
