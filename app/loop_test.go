// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"viewkit.org/app/internal/queue"
	"viewkit.org/f32"
	"viewkit.org/io/event"
	"viewkit.org/io/pointer"
	"viewkit.org/io/system"
	"viewkit.org/ui"
)

type fakeDriver struct {
	hz       int
	presents []image.Rectangle
}

func (d *fakeDriver) Open(Config) error          { return nil }
func (d *fakeDriver) Events() <-chan event.Event { return nil }
func (d *fakeDriver) RefreshRate() int           { return d.hz }
func (d *fakeDriver) SetRefreshRate(hz int)      { d.hz = hz }
func (d *fakeDriver) Close()                     {}

func (d *fakeDriver) Present(img *image.RGBA) error {
	d.presents = append(d.presents, img.Bounds())
	return nil
}

func newTestLoop(t *testing.T, d *fakeDriver) *loop {
	t.Helper()
	w, err := newWindow(d, image.Pt(100, 100))
	if err != nil {
		t.Fatal(err)
	}
	a := ui.NewApplication(nil)
	a.AddWindow(w.win)
	return &loop{
		app:   a,
		win:   w,
		drv:   d,
		q:     queue.New(),
		fps:   defaultFPS,
		now:   time.Now,
		sleep: sleep,
	}
}

func TestFrameDelay(t *testing.T) {
	for _, tc := range []struct {
		fps     int
		elapsed time.Duration
		want    time.Duration
	}{
		{60, 5 * time.Millisecond, 11 * time.Millisecond},
		{60, 0, 16 * time.Millisecond},
		{60, 5*time.Millisecond + 900*time.Microsecond, 11 * time.Millisecond},
		{60, 20 * time.Millisecond, 0},
		{30, 5 * time.Millisecond, 28 * time.Millisecond},
	} {
		if got := frameDelay(tc.fps, tc.elapsed); got != tc.want {
			t.Errorf("frameDelay(%d, %v) = %v, want %v", tc.fps, tc.elapsed, got, tc.want)
		}
	}
}

func TestLoopPacing(t *testing.T) {
	d := new(fakeDriver)
	l := newTestLoop(t, d)
	t0 := time.Unix(0, 0)
	calls := 0
	l.now = func() time.Time {
		now := t0.Add(time.Duration(calls) * 5 * time.Millisecond)
		calls++
		return now
	}
	var delays []time.Duration
	l.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		l.q.Push(system.DestroyEvent{})
		return nil
	}
	if err := l.run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]time.Duration{11 * time.Millisecond}, delays); diff != "" {
		t.Errorf("delays (-want +got):\n%s", diff)
	}
	if len(d.presents) != 1 {
		t.Errorf("presented %d frames, want 1", len(d.presents))
	}
}

func TestLoopRefreshRate(t *testing.T) {
	d := new(fakeDriver)
	l := newTestLoop(t, d)
	if got := l.refreshRate(); got != defaultFPS {
		t.Errorf("fallback rate = %d, want %d", got, defaultFPS)
	}
	d.hz = 120
	if got := l.refreshRate(); got != 120 {
		t.Errorf("driver rate = %d, want 120", got)
	}
}

type tapCounter struct {
	ui.View
	began, ended int
}

func (c *tapCounter) HandleTouches(phase ui.Phase, _ []*ui.Touch, _ *ui.Event) bool {
	switch phase {
	case ui.PhaseBegan:
		c.began++
	case ui.PhaseEnded:
		c.ended++
	}
	return true
}

func TestIterateDrainsBeforeDrawing(t *testing.T) {
	d := new(fakeDriver)
	l := newTestLoop(t, d)
	c := new(tapCounter)
	c.SetFrame(f32.R(0, 0, 50, 50))
	c.SetBehavior(c)
	l.win.win.AddSubview(&c.View)
	l.iterate(time.Now())

	l.q.Push(pointer.Event{Kind: pointer.Press, Source: pointer.Touch, PointerID: 1, Position: f32.Pt(10, 10)})
	l.q.Push(pointer.Event{Kind: pointer.Release, Source: pointer.Touch, PointerID: 1, Time: time.Millisecond, Position: f32.Pt(10, 10)})
	l.q.Push(system.ResizeEvent{Size: image.Pt(200, 150)})
	if l.iterate(time.Now()) {
		t.Fatal("loop quit")
	}
	if l.q.Len() != 0 {
		t.Errorf("%d events left in the queue", l.q.Len())
	}
	if c.began != 1 || c.ended != 1 {
		t.Errorf("touches began %d ended %d, want 1 and 1", c.began, c.ended)
	}
	want := []image.Rectangle{image.Rect(0, 0, 100, 100), image.Rect(0, 0, 200, 150)}
	if diff := cmp.Diff(want, d.presents); diff != "" {
		t.Errorf("presented frames (-want +got):\n%s", diff)
	}
	if got := l.win.win.Bounds().Size; got != f32.Sz(200, 150) {
		t.Errorf("window size = %v", got)
	}
}

func TestIteratePaused(t *testing.T) {
	d := new(fakeDriver)
	l := newTestLoop(t, d)
	l.q.Push(system.StageEvent{Stage: system.StagePaused})
	l.iterate(time.Now())
	if len(d.presents) != 0 || !l.idle() {
		t.Errorf("paused loop presented %d frames", len(d.presents))
	}
	l.q.Push(system.StageEvent{Stage: system.StageRunning})
	l.iterate(time.Now())
	if len(d.presents) != 1 {
		t.Errorf("resumed loop presented %d frames, want 1", len(d.presents))
	}
}
