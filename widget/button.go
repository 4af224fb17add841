// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"viewkit.org/f32"
	"viewkit.org/layout"
	"viewkit.org/paint"
	"viewkit.org/ui"
)

// Button is a control drawing a rounded rectangle with a centered
// title.
type Button struct {
	Control

	title        string
	textSize     float32
	textColor    color.NRGBA
	fill         color.NRGBA
	cornerRadius float32
	inset        layout.Inset
}

var (
	_ ui.Drawer = (*Button)(nil)
	_ ui.Sizer  = (*Button)(nil)
)

// NewButton returns a button with the given title, sized to fit it.
func NewButton(title string) *Button {
	b := &Button{
		title:        title,
		textSize:     14,
		textColor:    paint.White,
		fill:         color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff},
		cornerRadius: 4,
		inset:        layout.Inset{Top: 10, Bottom: 10, Left: 12, Right: 12},
	}
	b.SetBehavior(b)
	b.SizeToFit()
	return b
}

// Title returns the button title.
func (b *Button) Title() string { return b.title }

// SetTitle sets the button title.
func (b *Button) SetTitle(title string) {
	b.title = title
	b.SetNeedsDisplay()
}

// SetTextSize sets the size of the title text.
func (b *Button) SetTextSize(size float32) {
	b.textSize = size
	b.SetNeedsDisplay()
}

// SetTextColor sets the title color.
func (b *Button) SetTextColor(c color.NRGBA) {
	b.textColor = c
	b.SetNeedsDisplay()
}

// SetFillColor sets the color of the rounded rectangle.
func (b *Button) SetFillColor(c color.NRGBA) {
	b.fill = c
	b.SetNeedsDisplay()
}

// SetCornerRadius sets the corner radius of the rounded rectangle.
func (b *Button) SetCornerRadius(r float32) {
	b.cornerRadius = r
	b.SetNeedsDisplay()
}

// SetInset sets the space between the title and the edges.
func (b *Button) SetInset(in layout.Inset) {
	b.inset = in
	b.SetNeedsLayout()
}

// Draw fills the button shape and draws the title. Highlighted
// buttons are darkened; disabled ones faded.
func (b *Button) Draw(ctx paint.Context, bounds f32.Rect) {
	fill, text := b.fill, b.textColor
	switch b.State() {
	case StateHighlighted:
		fill = darken(fill)
	case StateDisabled:
		fill = paint.MulAlpha(fill, .5)
		text = paint.MulAlpha(text, .5)
	}
	ctx.FillPath(paint.RoundRect(bounds, b.cornerRadius), fill)
	if b.title == "" {
		return
	}
	sz := ctx.MeasureText(b.title, b.textSize)
	p := layout.Center.Position(bounds.Size, sz)
	origin := bounds.Origin.Add(p).Add(f32.Pt(0, baseline(sz)))
	ctx.DrawText(b.title, origin, b.textSize, text)
}

// SizeThatFits returns the title size plus the inset.
func (b *Button) SizeThatFits(v *ui.View, size f32.Size) f32.Size {
	sz := measure(b.title, b.textSize)
	return f32.Sz(
		sz.Width+b.inset.Left+b.inset.Right,
		sz.Height+b.inset.Top+b.inset.Bottom,
	)
}

func darken(c color.NRGBA) color.NRGBA {
	c.R = uint8(uint16(c.R) * 3 / 4)
	c.G = uint8(uint16(c.G) * 3 / 4)
	c.B = uint8(uint16(c.B) * 3 / 4)
	return c
}
