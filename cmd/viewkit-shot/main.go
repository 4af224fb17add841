// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

var (
	destPath   = flag.String("o", "shot.png", "output file.")
	configPath = flag.String("config", "", "YAML file with launch options.")
	width      = flag.Int("width", 0, "window width in pixels, overriding the config.")
	height     = flag.Int("height", 0, "window height in pixels, overriding the config.")
	scale      = flag.Float64("scale", 1, "scale factor applied to the captured image.")
	timeout    = flag.Duration("timeout", 10*time.Second, "maximum time to wait for the capture.")
	verbose    = flag.Bool("v", false, "enable debug logging.")
)

var taps points

func init() {
	flag.Var(&taps, "tap", "tap the window at x,y before capturing. May be repeated.")
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "viewkit-shot: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if *scale <= 0 {
		return fmt.Errorf("invalid -scale %v", *scale)
	}
	if *width < 0 || *height < 0 {
		return errors.New("-width and -height must not be negative")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()
	s := &shot{
		dest:   *destPath,
		config: *configPath,
		size:   image.Pt(*width, *height),
		scale:  *scale,
		taps:   taps,
		logger: newLogger(os.Stderr, *verbose),
	}
	return s.run(ctx)
}

// newLogger returns a text logger for terminals and a JSON logger
// otherwise.
func newLogger(f *os.File, debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}
	return slog.New(newHandler(f, isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), opts))
}

func newHandler(w io.Writer, terminal bool, opts *slog.HandlerOptions) slog.Handler {
	if terminal {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// points is a repeatable flag of x,y pairs.
type points []image.Point

func (p *points) String() string {
	var s []string
	for _, pt := range *p {
		s = append(s, fmt.Sprintf("%d,%d", pt.X, pt.Y))
	}
	return strings.Join(s, " ")
}

func (p *points) Set(v string) error {
	xs, ys, ok := strings.Cut(v, ",")
	if !ok {
		return fmt.Errorf("point %q is not x,y", v)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return fmt.Errorf("point %q: %w", v, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return fmt.Errorf("point %q: %w", v, err)
	}
	*p = append(*p, image.Pt(x, y))
	return nil
}
