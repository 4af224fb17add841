// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"image"

	"viewkit.org/f32"
	"viewkit.org/internal/log"
	"viewkit.org/paint/ggpaint"
	"viewkit.org/ui"
)

// window pairs a view tree with the surface it is drawn to and the
// driver that presents the surface.
type window struct {
	drv  Driver
	win  *ui.Window
	surf *ggpaint.Surface
}

func newWindow(d Driver, size image.Point) (*window, error) {
	surf, err := ggpaint.NewSurface(size)
	if err != nil {
		return nil, fmt.Errorf("app: create surface: %w", err)
	}
	return &window{
		drv:  d,
		win:  ui.NewWindow(sizeOf(size)),
		surf: surf,
	}, nil
}

func sizeOf(p image.Point) f32.Size {
	return f32.Sz(float32(p.X), float32(p.Y))
}

// resize rebuilds the surface at size. On failure the previous
// surface and window size are kept.
func (w *window) resize(size image.Point) {
	if size == w.surf.Size() {
		return
	}
	if err := w.surf.Resize(size); err != nil {
		log.L().Warn("app: keeping previous surface", "size", size, "err", err)
		return
	}
	w.win.SetSize(sizeOf(size))
}

// present draws the dirty region of the window and presents the
// surface. It reports whether a frame was presented.
func (w *window) present() bool {
	if !w.win.NeedsDisplay() {
		return false
	}
	dirty := w.win.Draw(w.surf)
	if err := w.surf.Err(); err != nil {
		log.L().Warn("app: draw", "region", dirty, "err", err)
	}
	if err := w.drv.Present(w.surf.Image()); err != nil {
		log.L().Warn("app: present", "err", err)
	}
	return true
}
