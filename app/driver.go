// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"viewkit.org/io/event"
)

// Driver is the platform side of a window.
//
// Events may be read from any goroutine. The other methods are only
// called by the run loop.
type Driver interface {
	// Open creates the window described by cnf.
	Open(cnf Config) error
	// Events returns the channel of raw input and window events:
	// pointer.Event, key.Event and the events of package system.
	// Closing the channel destroys the window.
	Events() <-chan event.Event
	// RefreshRate returns the display refresh rate in Hz, or 0 if
	// unknown.
	RefreshRate() int
	// SetRefreshRate asks the display for a refresh rate.
	SetRefreshRate(hz int)
	// Present copies img to the window. img is reused for the next
	// frame once Present returns.
	Present(img *image.RGBA) error
	// Close releases the window.
	Close()
}
