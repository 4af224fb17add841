// SPDX-License-Identifier: Unlicense OR MIT

// Package painttest provides a paint.Context that records drawing
// calls.
package painttest

import (
	"fmt"
	"image/color"

	"viewkit.org/f32"
	"viewkit.org/paint"
)

// Recorder is a paint.Context that logs every call and tracks the
// translation, clip and alpha state to report fills in surface space.
// The zero value is ready to use.
type Recorder struct {
	// Calls lists the calls in order, formatted as text.
	Calls []string
	// Fills lists every visible FillRect and FillPath in surface space.
	Fills []Fill
	// Texts lists every DrawText call in surface space.
	Texts []Text

	st    state
	stack []state
	// GlyphWidth is the advance of each rune reported by MeasureText,
	// as a fraction of the size. Zero means 0.5.
	GlyphWidth float32
}

// Fill is a recorded fill.
type Fill struct {
	// Rect is the filled rectangle, or the path bounds, clipped and
	// translated to surface space.
	Rect  f32.Rect
	Color color.NRGBA
}

// Text is a recorded text draw.
type Text struct {
	Text   string
	Origin f32.Point
	Color  color.NRGBA
}

type state struct {
	off     f32.Point
	clip    f32.Rect
	clipped bool
	// fade is one minus the accumulated alpha, so the zero state is
	// opaque.
	fade float32
}

func (s state) alpha() float32 { return 1 - s.fade }

var _ paint.Context = (*Recorder)(nil)

// Reset clears the recorded calls and state.
func (r *Recorder) Reset() {
	*r = Recorder{GlyphWidth: r.GlyphWidth}
}

// Depth returns the number of unmatched Push calls.
func (r *Recorder) Depth() int { return len(r.stack) }

func (r *Recorder) logf(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) Push() {
	r.stack = append(r.stack, r.st)
	r.logf("push")
}

func (r *Recorder) Pop() {
	n := len(r.stack)
	if n == 0 {
		panic("painttest: Pop without Push")
	}
	r.st = r.stack[n-1]
	r.stack = r.stack[:n-1]
	r.logf("pop")
}

func (r *Recorder) Translate(x, y float32) {
	r.st.off = r.st.off.Add(f32.Pt(x, y))
	r.logf("translate %v", f32.Pt(x, y))
}

func (r *Recorder) ClipRect(c f32.Rect) {
	abs := c.Standardize().Add(r.st.off)
	if r.st.clipped {
		abs = r.st.clip.Intersect(abs)
	}
	r.st.clip, r.st.clipped = abs, true
	r.logf("clip %v", c)
}

func (r *Recorder) MultiplyAlpha(a float32) {
	r.st.fade = 1 - r.st.alpha()*a
	r.logf("alpha %g", a)
}

func (r *Recorder) fill(rect f32.Rect, c color.NRGBA) {
	abs := rect.Standardize().Add(r.st.off)
	if r.st.clipped {
		abs = r.st.clip.Intersect(abs)
	}
	c = paint.MulAlpha(c, r.st.alpha())
	if abs.Empty() || c.A == 0 {
		return
	}
	r.Fills = append(r.Fills, Fill{Rect: abs, Color: c})
}

func (r *Recorder) FillRect(rect f32.Rect, c color.NRGBA) {
	r.logf("fill %v %v", rect, c)
	r.fill(rect, c)
}

func (r *Recorder) FillPath(p *paint.Path, c color.NRGBA) {
	r.logf("fillpath %v %v", p.Bounds(), c)
	r.fill(p.Bounds(), c)
}

func (r *Recorder) StrokePath(p *paint.Path, c color.NRGBA, width float32) {
	r.logf("stroke %v %v %g", p.Bounds(), c, width)
}

func (r *Recorder) MeasureText(s string, size float32) f32.Size {
	w := r.GlyphWidth
	if w == 0 {
		w = .5
	}
	return f32.Sz(float32(len([]rune(s)))*size*w, size)
}

func (r *Recorder) DrawText(s string, origin f32.Point, size float32, c color.NRGBA) {
	r.logf("text %q %v", s, origin)
	r.Texts = append(r.Texts, Text{Text: s, Origin: origin.Add(r.st.off), Color: paint.MulAlpha(c, r.st.alpha())})
}
