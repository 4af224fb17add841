// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"time"
)

// Animation is an exponentially decelerating fling.
type Animation struct {
	// Deceleration is the fraction of the velocity kept every
	// millisecond. Zero means DecelerationNormal.
	Deceleration float32

	// Offset reached at the last Tick.
	x float32
	// Start time.
	t0 time.Time
	// Initial velocity in points per second.
	v0 float32
	// Decay constant per second, negative.
	k float64
}

const (
	// DecelerationNormal is the deceleration of a scroll view.
	DecelerationNormal = 0.998
	// DecelerationFast is the deceleration of a paging scroll view.
	DecelerationFast = 0.99
)

// Points per second.
const (
	minFlingVelocity  = 50
	maxFlingVelocity  = 8000
	thresholdVelocity = 1
)

// Start a fling given a starting velocity in points per second. It
// returns whether a fling was started; velocities too small to
// matter are ignored.
func (f *Animation) Start(now time.Time, velocity float32) bool {
	v := velocity
	if -minFlingVelocity <= v && v <= minFlingVelocity {
		return false
	}
	v = max(-maxFlingVelocity, min(v, maxFlingVelocity))
	rate := f.Deceleration
	if rate <= 0 || rate >= 1 {
		rate = DecelerationNormal
	}
	f.t0 = now
	f.v0 = v
	f.x = 0
	f.k = 1000 * math.Log(float64(rate))
	return true
}

// Active reports whether the fling is still moving.
func (f *Animation) Active() bool {
	return f.v0 != 0
}

// Stop the fling.
func (f *Animation) Stop() {
	f.v0 = 0
	f.x = 0
}

// Velocity returns the velocity at time now.
func (f *Animation) Velocity(now time.Time) float32 {
	if !f.Active() {
		return 0
	}
	t := now.Sub(f.t0).Seconds()
	return f.v0 * float32(math.Exp(f.k*t))
}

// Tick returns the distance travelled since the last call to Tick.
// The fling stops once its velocity drops below a point per second.
func (f *Animation) Tick(now time.Time) float32 {
	if !f.Active() {
		return 0
	}
	t := now.Sub(f.t0).Seconds()
	if t < 0 {
		return 0
	}
	ekt := math.Exp(f.k * t)
	x := float32(float64(f.v0) * (ekt - 1) / f.k)
	if v := f.v0 * float32(ekt); -thresholdVelocity < v && v < thresholdVelocity {
		// Settle at the limit of the decay.
		x = float32(-float64(f.v0) / f.k)
		f.v0 = 0
	}
	dist := x - f.x
	f.x = x
	if !f.Active() {
		f.x = 0
	}
	return dist
}
