// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer defines the raw pointer events a driver delivers to
// a window. The window turns them into touches; see package ui.
package pointer

import (
	"fmt"
	"time"

	"viewkit.org/f32"
)

// Event is one sample of one pointer.
type Event struct {
	Kind   Kind
	Source Source
	// PointerID stays the same from Press until the matching Release
	// or Cancel. Drivers may reuse an ID once its press is over.
	PointerID ID
	// Time is relative to an undefined base. Events sharing a Time
	// were reported together and form one batch.
	Time time.Duration
	// Position in window coordinates.
	Position f32.Point
	// Scroll is the wheel or trackpad delta of a Scroll event.
	Scroll f32.Point
}

// ID identifies a pointer.
type ID uint16

// Kind of an Event.
type Kind uint8

// Source of an Event.
type Source uint8

const (
	// Press starts a touch.
	Press Kind = iota
	// Move updates the position of a pressed pointer.
	Move
	// Release ends a touch.
	Release
	// Cancel is sent when the system takes over the pointer, for
	// example when the window loses focus mid-gesture.
	Cancel
	// Scroll carries a wheel delta and never starts a touch.
	Scroll
)

const (
	Mouse Source = iota
	Touch
)

var kindNames = [...]string{
	Press:   "Press",
	Move:    "Move",
	Release: "Release",
	Cancel:  "Cancel",
	Scroll:  "Scroll",
}

var sourceNames = [...]string{
	Mouse: "Mouse",
	Touch: "Touch",
}

func (Event) ImplementsEvent() {}

func (e Event) String() string {
	return fmt.Sprintf("%v %v#%d@%v", e.Source, e.Kind, e.PointerID, e.Position)
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		panic(fmt.Sprintf("pointer: invalid kind %d", k))
	}
	return kindNames[k]
}

func (s Source) String() string {
	if int(s) >= len(sourceNames) {
		panic(fmt.Sprintf("pointer: invalid source %d", s))
	}
	return sourceNames[s]
}
