// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements an in-memory app.Driver. It keeps the
// presented frames as images and takes its input from Inject, for
// tests and offscreen rendering.
package headless

import (
	"context"
	"errors"
	"image"
	"image/draw"
	"sync"

	"viewkit.org/app"
	"viewkit.org/io/event"
)

// Driver is a window without a display.
type Driver struct {
	events chan event.Event
	closed chan struct{}

	mu     sync.Mutex
	cnf    app.Config
	open   bool
	hz     int
	frames []*image.RGBA

	// presented is closed and replaced on every Present.
	presented chan struct{}
}

var (
	// ErrClosed is returned when using a closed driver.
	ErrClosed = errors.New("headless: driver closed")
	// ErrOpen is returned by Open for a driver already open.
	ErrOpen = errors.New("headless: driver already open")
)

var _ app.Driver = (*Driver)(nil)

// New returns a driver ready to be opened.
func New() *Driver {
	return &Driver{
		events:    make(chan event.Event),
		closed:    make(chan struct{}),
		presented: make(chan struct{}),
	}
}

// Open records cnf. A driver can be opened once.
func (d *Driver) Open(cnf app.Config) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	select {
	case <-d.closed:
		return ErrClosed
	default:
	}
	if d.open {
		return ErrOpen
	}
	d.open = true
	d.cnf = cnf
	return nil
}

// Config returns the configuration passed to Open.
func (d *Driver) Config() app.Config {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cnf
}

// Events implements app.Driver.
func (d *Driver) Events() <-chan event.Event {
	return d.events
}

// Inject delivers events in order. It blocks until every event is
// accepted or the driver is closed.
func (d *Driver) Inject(events ...event.Event) error {
	for _, e := range events {
		select {
		case d.events <- e:
		case <-d.closed:
			return ErrClosed
		}
	}
	return nil
}

// RefreshRate implements app.Driver.
func (d *Driver) RefreshRate() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hz
}

// SetRefreshRate implements app.Driver.
func (d *Driver) SetRefreshRate(hz int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hz = hz
}

// Present keeps a copy of img.
func (d *Driver) Present(img *image.RGBA) error {
	cp := image.NewRGBA(img.Bounds())
	draw.Draw(cp, cp.Bounds(), img, img.Bounds().Min, draw.Src)
	d.mu.Lock()
	defer d.mu.Unlock()
	select {
	case <-d.closed:
		return ErrClosed
	default:
	}
	d.frames = append(d.frames, cp)
	close(d.presented)
	d.presented = make(chan struct{})
	return nil
}

// Frames returns the number of frames presented.
func (d *Driver) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.frames)
}

// Screenshot returns the last presented frame, or nil.
func (d *Driver) Screenshot() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.frames) == 0 {
		return nil
	}
	return d.frames[len(d.frames)-1]
}

// WaitFrame waits until n frames have been presented and returns the
// nth.
func (d *Driver) WaitFrame(ctx context.Context, n int) (*image.RGBA, error) {
	for {
		d.mu.Lock()
		if len(d.frames) >= n {
			img := d.frames[n-1]
			d.mu.Unlock()
			return img, nil
		}
		presented := d.presented
		d.mu.Unlock()
		select {
		case <-presented:
		case <-d.closed:
			return nil, ErrClosed
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Close releases the driver. Blocked Inject and WaitFrame calls
// return ErrClosed.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	select {
	case <-d.closed:
	default:
		close(d.closed)
	}
}
