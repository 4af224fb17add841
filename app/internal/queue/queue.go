// SPDX-License-Identifier: Unlicense OR MIT

// Package queue implements the event queue between the input
// goroutine and the run loop.
package queue

import (
	"context"
	"sync"
	"time"

	"viewkit.org/io/event"
	"viewkit.org/io/pointer"
	"viewkit.org/io/system"
)

// Queue is an unbounded FIFO of events. Push never blocks and Poll
// never waits, so a producer and a consumer may use a Queue
// concurrently.
type Queue struct {
	mu     sync.Mutex
	events []event.Event

	// wake has room for a single pending signal.
	wake chan struct{}
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Push appends e to the queue, merging it with the event at the tail
// when possible. A pending scroll accumulates further scroll deltas
// of the same pointer, and a destroy request already in the queue
// absorbs later ones. Other events, focus changes included, are
// never merged.
func (q *Queue) Push(e event.Event) {
	q.mu.Lock()
	if !q.merge(e) {
		q.events = append(q.events, e)
	}
	q.mu.Unlock()
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue) merge(e event.Event) bool {
	switch e := e.(type) {
	case pointer.Event:
		if e.Kind != pointer.Scroll || len(q.events) == 0 {
			return false
		}
		last, ok := q.events[len(q.events)-1].(pointer.Event)
		if !ok || last.Kind != pointer.Scroll || last.PointerID != e.PointerID {
			return false
		}
		e.Scroll = last.Scroll.Add(e.Scroll)
		q.events[len(q.events)-1] = e
		return true
	case system.DestroyEvent:
		for _, p := range q.events {
			if _, ok := p.(system.DestroyEvent); ok {
				return true
			}
		}
	}
	return false
}

// Poll removes and returns the event at the head of the queue. It
// reports false when the queue is empty.
func (q *Queue) Poll() (event.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil, false
	}
	e := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return e, true
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Wait blocks until the queue is not empty, d has elapsed or ctx is
// done. A negative d waits without a deadline. Wait returns ctx.Err()
// if ctx ended the wait.
func (q *Queue) Wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if q.Len() > 0 {
		return nil
	}
	var timeout <-chan time.Time
	if d >= 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		timeout = t.C
	}
	select {
	case <-q.wake:
	case <-timeout:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
