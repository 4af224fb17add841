// SPDX-License-Identifier: Unlicense OR MIT

package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"viewkit.org/f32"
	"viewkit.org/io/event"
	"viewkit.org/io/pointer"
	"viewkit.org/io/system"
)

func drain(q *Queue) []event.Event {
	var events []event.Event
	for {
		e, ok := q.Poll()
		if !ok {
			return events
		}
		events = append(events, e)
	}
}

func scroll(id pointer.ID, x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Scroll, PointerID: id, Scroll: f32.Pt(x, y)}
}

func TestCoalesce(t *testing.T) {
	press := pointer.Event{Kind: pointer.Press, PointerID: 1}
	for _, tc := range []struct {
		label string
		in    []event.Event
		want  []event.Event
	}{
		{
			label: "wheel",
			in:    []event.Event{scroll(0, 3, 0), scroll(0, -1, 2)},
			want:  []event.Event{scroll(0, 2, 2)},
		},
		{
			label: "wheel after press",
			in:    []event.Event{scroll(0, 1, 0), press, scroll(0, 1, 0)},
			want:  []event.Event{scroll(0, 1, 0), press, scroll(0, 1, 0)},
		},
		{
			label: "different pointers",
			in:    []event.Event{scroll(0, 1, 0), scroll(1, 1, 0)},
			want:  []event.Event{scroll(0, 1, 0), scroll(1, 1, 0)},
		},
		{
			label: "destroy",
			in:    []event.Event{system.DestroyEvent{}, press, system.DestroyEvent{}},
			want:  []event.Event{system.DestroyEvent{}, press},
		},
		{
			label: "focus",
			in:    []event.Event{system.FocusEvent{Focus: false}, system.FocusEvent{Focus: true}, system.FocusEvent{Focus: true}},
			want:  []event.Event{system.FocusEvent{Focus: false}, system.FocusEvent{Focus: true}, system.FocusEvent{Focus: true}},
		},
	} {
		t.Run(tc.label, func(t *testing.T) {
			q := New()
			for _, e := range tc.in {
				q.Push(e)
			}
			if diff := cmp.Diff(tc.want, drain(q)); diff != "" {
				t.Errorf("events (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPollEmpty(t *testing.T) {
	q := New()
	if e, ok := q.Poll(); ok {
		t.Errorf("Poll on empty queue returned %v", e)
	}
}

func TestConcurrentPush(t *testing.T) {
	q := New()
	var wg sync.WaitGroup
	const producers, n = 4, 100
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				q.Push(system.FocusEvent{Focus: i%2 == 0})
			}
		}()
	}
	got := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
loop:
	for {
		got += len(drain(q))
		select {
		case <-done:
			break loop
		default:
		}
	}
	got += len(drain(q))
	if got != producers*n {
		t.Errorf("received %d events, want %d", got, producers*n)
	}
}

func TestWait(t *testing.T) {
	q := New()
	start := time.Now()
	if err := q.Wait(context.Background(), 10*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if d := time.Since(start); d < 10*time.Millisecond {
		t.Errorf("Wait returned after %v", d)
	}

	go q.Push(system.FocusEvent{Focus: true})
	if err := q.Wait(context.Background(), -1); err != nil {
		t.Fatal(err)
	}
	if q.Len() != 1 {
		t.Errorf("woke with %d events queued", q.Len())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	drain(q)
	if err := q.Wait(ctx, -1); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait on cancelled context = %v", err)
	}
}
