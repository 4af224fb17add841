// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"log/slog"

	"viewkit.org/f32"
	"viewkit.org/ui"
)

// Config describes the window and run loop of an application.
type Config struct {
	// Title of the window.
	Title string
	// Size is the initial window size in pixels.
	Size image.Point
	// Resizable reports whether the user may resize the window.
	Resizable bool
	// Logger receives the framework diagnostics. Nil keeps the
	// current logger.
	Logger *slog.Logger
	// FPS is the frame rate used when the driver does not report a
	// refresh rate.
	FPS int
}

// Option changes a Config.
type Option func(cnf *Config)

const (
	defaultFPS    = 60
	defaultWidth  = 800
	defaultHeight = 600
)

func newConfig(opts []Option) Config {
	cnf := Config{
		Title: ID,
		Size:  image.Pt(defaultWidth, defaultHeight),
		FPS:   defaultFPS,
	}
	for _, o := range opts {
		o(&cnf)
	}
	return cnf
}

func (c Config) launchOptions(args []string) ui.LaunchOptions {
	return ui.LaunchOptions{
		Title:     c.Title,
		Size:      f32.Sz(float32(c.Size.X), float32(c.Size.Y)),
		Resizable: c.Resizable,
		FPS:       c.FPS,
		Args:      args,
	}
}

// Title sets the title of the window.
func Title(t string) Option {
	return func(cnf *Config) {
		cnf.Title = t
	}
}

// Size sets the initial size of the window in pixels.
func Size(w, h int) Option {
	if w <= 0 {
		panic("width must be larger than 0")
	}
	if h <= 0 {
		panic("height must be larger than 0")
	}
	return func(cnf *Config) {
		cnf.Size = image.Pt(w, h)
	}
}

// Resizable controls whether the user may resize the window.
func Resizable(enabled bool) Option {
	return func(cnf *Config) {
		cnf.Resizable = enabled
	}
}

// Logger installs l as the destination of the framework diagnostics.
func Logger(l *slog.Logger) Option {
	return func(cnf *Config) {
		cnf.Logger = l
	}
}

// FPS sets the frame rate used when the driver does not report a
// refresh rate.
func FPS(fps int) Option {
	if fps <= 0 {
		panic("fps must be larger than 0")
	}
	return func(cnf *Config) {
		cnf.FPS = fps
	}
}
