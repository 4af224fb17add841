// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"viewkit.org/app/internal/queue"
	"viewkit.org/internal/log"
	"viewkit.org/io/event"
	"viewkit.org/io/key"
	"viewkit.org/io/pointer"
	"viewkit.org/io/system"
	"viewkit.org/ui"
)

type loop struct {
	app *ui.Application
	win *window
	drv Driver
	q   *queue.Queue

	// fps is the frame rate used when the driver reports none.
	fps    int
	paused bool
	err    error

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// run iterates until the loop quits or ctx is done.
func (l *loop) run(ctx context.Context) error {
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		pump(l.drv.Events(), l.q, stop)
	}()
	defer func() {
		close(stop)
		<-done
	}()
	for {
		start := l.now()
		if l.iterate(start) {
			return l.err
		}
		delay := frameDelay(l.refreshRate(), l.now().Sub(start))
		if err := l.sleep(ctx, delay); err != nil {
			return nil
		}
		if l.idle() {
			if err := l.q.Wait(ctx, -1); err != nil {
				return nil
			}
		}
	}
}

// pump forwards driver events to q until stop is closed. A closed
// events channel is forwarded as a DestroyEvent.
func pump(events <-chan event.Event, q *queue.Queue, stop <-chan struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		select {
		case e, ok := <-events:
			if !ok {
				q.Push(system.DestroyEvent{})
				return
			}
			q.Push(e)
		case <-stop:
			return
		}
	}
}

// iterate runs one frame: it drains the queue, animates, lays out and
// presents the dirty region. It reports whether the loop must quit.
func (l *loop) iterate(now time.Time) bool {
	w := l.win.win
	var batch []pointer.Event
	flush := func() {
		if len(batch) > 0 {
			w.HandlePointer(batch...)
			batch = nil
		}
	}
	for {
		e, ok := l.q.Poll()
		if !ok {
			break
		}
		if pe, ok := e.(pointer.Event); ok {
			batch = append(batch, pe)
			continue
		}
		flush()
		if l.dispatch(e) {
			return true
		}
	}
	flush()
	if l.app.Terminating() {
		return true
	}
	w.Animate(now)
	w.LayoutIfNeeded()
	if !l.paused {
		l.win.present()
	}
	return false
}

func (l *loop) dispatch(e event.Event) (quit bool) {
	w := l.win.win
	switch e := e.(type) {
	case key.Event:
		w.HandleKey(e)
	case system.ResizeEvent:
		l.win.resize(e.Size)
	case system.FocusEvent:
		w.SetFocus(e.Focus)
	case system.StageEvent:
		l.paused = e.Stage == system.StagePaused
		if !l.paused {
			w.SetNeedsDisplay()
		}
	case system.DestroyEvent:
		if e.Err != nil {
			l.err = fmt.Errorf("app: window destroyed: %w", e.Err)
		}
		return true
	default:
		log.L().Debug("app: ignoring event", "type", fmt.Sprintf("%T", e))
	}
	return false
}

// idle reports whether nothing will change until the next event.
func (l *loop) idle() bool {
	w := l.win.win
	return !w.Animating() && !w.NeedsLayout() && (l.paused || !w.NeedsDisplay())
}

func (l *loop) refreshRate() int {
	if hz := l.drv.RefreshRate(); hz > 0 {
		return hz
	}
	return l.fps
}

// frameDelay returns the rest of the frame interval at fps after a
// frame that took elapsed, in whole milliseconds.
func frameDelay(fps int, elapsed time.Duration) time.Duration {
	ms := 1000/fps - int(elapsed.Milliseconds())
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
