// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"viewkit.org/app"
	"viewkit.org/app/headless"
	"viewkit.org/f32"
	"viewkit.org/io/event"
	"viewkit.org/io/pointer"
	"viewkit.org/io/system"
	"viewkit.org/widget/material"
)

const (
	// tapDuration is the time between the press and release of a tap.
	tapDuration = 50 * time.Millisecond
	// tapInterval separates taps so that each counts as a single tap.
	tapInterval = 500 * time.Millisecond
	// settleTime is how long the window must stay unchanged before
	// it is captured.
	settleTime = 100 * time.Millisecond
)

type shot struct {
	dest   string
	config string

	// size overrides the configured window size when not zero.
	size   image.Point
	scale  float64
	taps   []image.Point
	logger *slog.Logger
}

func (s *shot) options() ([]app.Option, error) {
	opts := []app.Option{app.Title("Gallery"), app.Size(360, 480)}
	if s.logger != nil {
		opts = append(opts, app.Logger(s.logger))
	}
	if s.config != "" {
		f, err := os.Open(s.config)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		cnf, err := app.LoadConfig(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.config, err)
		}
		opts = append(opts, cnf...)
	}
	switch {
	case s.size == (image.Point{}):
	case s.size.X > 0 && s.size.Y > 0:
		opts = append(opts, app.Size(s.size.X, s.size.Y))
	default:
		return nil, errors.New("-width and -height must be set together")
	}
	return opts, nil
}

func (s *shot) run(ctx context.Context) error {
	opts, err := s.options()
	if err != nil {
		return err
	}
	drv := headless.New()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Run(ctx, drv, newGallery(material.NewTheme()), opts...)
	})
	var img *image.RGBA
	g.Go(func() error {
		var err error
		img, err = s.capture(ctx, drv)
		if err != nil {
			return fmt.Errorf("capture: %w", err)
		}
		return drv.Inject(system.DestroyEvent{})
	})
	if err := g.Wait(); err != nil {
		return err
	}
	return s.write(img)
}

// capture waits for the first frame, replays the taps and returns the
// frame once the window stops changing.
func (s *shot) capture(ctx context.Context, drv *headless.Driver) (*image.RGBA, error) {
	img, err := drv.WaitFrame(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(s.taps) == 0 {
		return img, nil
	}
	n := drv.Frames()
	if err := drv.Inject(tapEvents(s.taps)...); err != nil {
		return nil, err
	}
	return settle(ctx, drv, n)
}

func tapEvents(taps []image.Point) []event.Event {
	var events []event.Event
	var t time.Duration
	for _, p := range taps {
		pos := f32.Pt(float32(p.X), float32(p.Y))
		events = append(events,
			pointer.Event{Kind: pointer.Press, Source: pointer.Touch, PointerID: 1, Time: t, Position: pos},
			pointer.Event{Kind: pointer.Release, Source: pointer.Touch, PointerID: 1, Time: t + tapDuration, Position: pos},
		)
		t += tapInterval
	}
	return events
}

// settle returns the last frame presented after the first n, once no
// frame has been presented for settleTime.
func settle(ctx context.Context, drv *headless.Driver, n int) (*image.RGBA, error) {
	img := drv.Screenshot()
	for i := n + 1; ; i++ {
		wctx, cancel := context.WithTimeout(ctx, settleTime)
		next, err := drv.WaitFrame(wctx, i)
		cancel()
		switch {
		case err == nil:
			img = next
		case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
			return img, nil
		default:
			return nil, err
		}
	}
}

func (s *shot) write(img *image.RGBA) error {
	var out image.Image = img
	if s.scale != 1 {
		b := img.Bounds()
		r := image.Rect(0, 0, int(float64(b.Dx())*s.scale), int(float64(b.Dy())*s.scale))
		if r.Empty() {
			return fmt.Errorf("scale %v leaves no pixels", s.scale)
		}
		dst := image.NewRGBA(r)
		draw.CatmullRom.Scale(dst, r, img, b, draw.Src, nil)
		out = dst
	}
	f, err := os.Create(s.dest)
	if err != nil {
		return err
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
