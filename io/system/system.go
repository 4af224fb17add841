// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains window and process level events
// delivered by a platform driver.
package system

import (
	"image"
)

// DestroyEvent is the last event sent by a driver. It asks the
// run loop to terminate.
type DestroyEvent struct {
	// Err is nil for normal window closures. If a
	// window is prematurely closed, Err is the cause.
	Err error
}

// A ResizeEvent is generated when the window surface changes size.
type ResizeEvent struct {
	// Size is the new size of the window in pixels.
	Size image.Point
}

// A FocusEvent is generated when the window gains or loses
// keyboard and pointer focus.
type FocusEvent struct {
	Focus bool
}

// A StageEvent is generated whenever the stage of a
// window changes.
type StageEvent struct {
	Stage Stage
}

// Stage of a window.
type Stage uint8

const (
	// StagePaused is the Stage for inactive windows.
	// Inactive windows are not rendered.
	StagePaused Stage = iota
	// StageRunning is for active windows.
	StageRunning
)

func (l Stage) String() string {
	switch l {
	case StagePaused:
		return "StagePaused"
	case StageRunning:
		return "StageRunning"
	default:
		panic("unexpected Stage value")
	}
}

func (DestroyEvent) ImplementsEvent() {}
func (ResizeEvent) ImplementsEvent()  {}
func (FocusEvent) ImplementsEvent()   {}
func (StageEvent) ImplementsEvent()   {}
