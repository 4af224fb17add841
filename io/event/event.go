// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the marker type for raw platform events
// flowing from a driver to the run loop.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
