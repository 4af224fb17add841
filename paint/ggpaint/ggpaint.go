// SPDX-License-Identifier: Unlicense OR MIT

// Package ggpaint implements paint.Context with the gg software
// rasterizer.
package ggpaint

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"viewkit.org/f32"
	"viewkit.org/internal/log"
	"viewkit.org/paint"
)

// Surface is a pixel buffer with a gg drawing context. A Surface
// must only be used from one goroutine.
type Surface struct {
	dc    *gg.Context
	st    state
	stack []state
	faces map[float32]text.Face
	// err holds the first drawing error since the last call to Err.
	err error
}

// state is the part of the drawing state gg does not track for us.
type state struct {
	alpha float32
	// clip is the clip rectangle in device pixels. Text is drawn
	// outside the gg clip stack and is clipped against it.
	clip image.Rectangle
}

var (
	sourceOnce sync.Once
	source     *text.FontSource
	sourceErr  error

	measureMu sync.Mutex
	measurer  *Surface
)

// ErrSize is returned for surfaces without area.
var ErrSize = errors.New("ggpaint: invalid surface size")

var _ paint.Context = (*Surface)(nil)

func defaultSource() (*text.FontSource, error) {
	sourceOnce.Do(func() {
		source, sourceErr = text.NewFontSource(goregular.TTF)
		if sourceErr != nil {
			sourceErr = fmt.Errorf("ggpaint: default font: %w", sourceErr)
		}
	})
	return source, sourceErr
}

// NewSurface returns a transparent surface of the given size.
func NewSurface(size image.Point) (*Surface, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrSize, size)
	}
	if _, err := defaultSource(); err != nil {
		return nil, err
	}
	gg.SetLogger(log.L())
	return &Surface{
		dc:    gg.NewContext(size.X, size.Y),
		st:    state{alpha: 1, clip: image.Rectangle{Max: size}},
		faces: make(map[float32]text.Face),
	}, nil
}

// Size returns the pixel size of the surface.
func (s *Surface) Size() image.Point {
	return image.Pt(s.dc.Width(), s.dc.Height())
}

// Resize reallocates the pixel buffer. The content is lost.
func (s *Surface) Resize(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("%w: %v", ErrSize, size)
	}
	if err := s.dc.Resize(size.X, size.Y); err != nil {
		return fmt.Errorf("ggpaint: resize: %w", err)
	}
	s.st = state{alpha: 1, clip: image.Rectangle{Max: size}}
	s.stack = s.stack[:0]
	return nil
}

// Clear fills the whole surface with c, ignoring clip and transform.
func (s *Surface) Clear(c color.NRGBA) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

// Image returns the surface pixels.
func (s *Surface) Image() *image.RGBA {
	if img, ok := s.dc.Image().(*image.RGBA); ok {
		return img
	}
	src := s.dc.Image()
	img := image.NewRGBA(image.Rectangle{Max: s.Size()})
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img
}

// Err returns and clears the first drawing error recorded since the
// previous call.
func (s *Surface) Err() error {
	err := s.err
	s.err = nil
	return err
}

func (s *Surface) record(err error) {
	if err != nil && s.err == nil {
		s.err = fmt.Errorf("ggpaint: %w", err)
	}
}

func (s *Surface) Push() {
	s.dc.Push()
	s.stack = append(s.stack, s.st)
}

func (s *Surface) Pop() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.dc.Pop()
	s.st = s.stack[n-1]
	s.stack = s.stack[:n-1]
}

func (s *Surface) Translate(x, y float32) {
	s.dc.Translate(float64(x), float64(y))
}

func (s *Surface) ClipRect(r f32.Rect) {
	r = r.Standardize()
	x0, y0 := s.dc.TransformPoint(float64(r.Origin.X), float64(r.Origin.Y))
	x1, y1 := s.dc.TransformPoint(float64(r.Max().X), float64(r.Max().Y))
	dev := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	s.st.clip = s.st.clip.Intersect(dev)
	s.dc.ClipRect(float64(r.Origin.X), float64(r.Origin.Y), float64(r.Size.Width), float64(r.Size.Height))
}

func (s *Surface) MultiplyAlpha(a float32) {
	s.st.alpha *= min(max(a, 0), 1)
}

func (s *Surface) setColor(c color.NRGBA) bool {
	c = paint.MulAlpha(c, s.st.alpha)
	if c.A == 0 {
		return false
	}
	s.dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
	return true
}

func (s *Surface) FillRect(r f32.Rect, c color.NRGBA) {
	r = r.Standardize()
	if r.Empty() || !s.setColor(c) {
		return
	}
	s.dc.DrawRectangle(float64(r.Origin.X), float64(r.Origin.Y), float64(r.Size.Width), float64(r.Size.Height))
	s.record(s.dc.Fill())
}

func (s *Surface) appendPath(p *paint.Path) {
	s.dc.ClearPath()
	for _, seg := range p.Segments() {
		a := seg.Args
		switch seg.Op {
		case paint.SegMoveTo:
			s.dc.MoveTo(float64(a[0].X), float64(a[0].Y))
		case paint.SegLineTo:
			s.dc.LineTo(float64(a[0].X), float64(a[0].Y))
		case paint.SegQuadTo:
			s.dc.QuadraticTo(float64(a[0].X), float64(a[0].Y), float64(a[1].X), float64(a[1].Y))
		case paint.SegCubeTo:
			s.dc.CubicTo(float64(a[0].X), float64(a[0].Y), float64(a[1].X), float64(a[1].Y), float64(a[2].X), float64(a[2].Y))
		case paint.SegClose:
			s.dc.ClosePath()
		}
	}
}

func (s *Surface) FillPath(p *paint.Path, c color.NRGBA) {
	if len(p.Segments()) == 0 || !s.setColor(c) {
		return
	}
	s.appendPath(p)
	s.record(s.dc.Fill())
}

func (s *Surface) StrokePath(p *paint.Path, c color.NRGBA, width float32) {
	if len(p.Segments()) == 0 || width <= 0 || !s.setColor(c) {
		return
	}
	s.appendPath(p)
	s.dc.SetLineWidth(float64(width))
	s.record(s.dc.Stroke())
}

func (s *Surface) face(size float32) text.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	src, err := defaultSource()
	if err != nil {
		return nil
	}
	f := src.Face(float64(size))
	s.faces[size] = f
	return f
}

func (s *Surface) MeasureText(str string, size float32) f32.Size {
	f := s.face(size)
	if f == nil || size <= 0 {
		return f32.Size{}
	}
	s.dc.SetFont(f)
	w, h := s.dc.MeasureString(str)
	return f32.Sz(float32(w), float32(h))
}

func (s *Surface) DrawText(str string, origin f32.Point, size float32, c color.NRGBA) {
	f := s.face(size)
	c = paint.MulAlpha(c, s.st.alpha)
	if f == nil || size <= 0 || c.A == 0 || s.st.clip.Empty() {
		return
	}
	// Glyphs are placed in device space.
	x, y := s.dc.TransformPoint(float64(origin.X), float64(origin.Y))
	dst := &clipTarget{pm: s.dc.ResizeTarget(), clip: s.st.clip}
	text.Draw(dst, str, f, x, y, c)
}

// clipTarget exposes the part of a pixmap inside clip as a
// draw.Image. Glyph rendering never writes outside Bounds.
type clipTarget struct {
	pm   *gg.Pixmap
	clip image.Rectangle
}

var _ draw.Image = (*clipTarget)(nil)

func (t *clipTarget) ColorModel() color.Model { return color.NRGBAModel }

func (t *clipTarget) Bounds() image.Rectangle { return t.clip.Intersect(t.pm.Bounds()) }

func (t *clipTarget) At(x, y int) color.Color { return t.pm.At(x, y) }

func (t *clipTarget) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(t.clip) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	t.pm.SetPixel(x, y, gg.RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	})
}

// MeasureText measures s like Surface.MeasureText, for code that
// needs text sizes outside of drawing. It is safe for concurrent use.
func MeasureText(str string, size float32) f32.Size {
	measureMu.Lock()
	defer measureMu.Unlock()
	if measurer == nil {
		s, err := NewSurface(image.Pt(1, 1))
		if err != nil {
			log.L().Warn("text measurement unavailable", "err", err)
			return f32.Size{}
		}
		measurer = s
	}
	return measurer.MeasureText(str, size)
}
