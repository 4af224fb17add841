// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"strings"

	"viewkit.org/f32"
	"viewkit.org/layout"
	"viewkit.org/paint"
	"viewkit.org/paint/ggpaint"
	"viewkit.org/ui"
)

// Label is a view drawing one or more lines of text, centered
// vertically.
type Label struct {
	ui.View

	text      string
	textSize  float32
	textColor color.NRGBA
	alignment layout.Alignment
}

var (
	_ ui.Drawer = (*Label)(nil)
	_ ui.Sizer  = (*Label)(nil)
)

// measure returns the size of s set at size, for layout outside of
// drawing.
var measure = ggpaint.MeasureText

// NewLabel returns a label sized to fit txt.
func NewLabel(txt string) *Label {
	l := &Label{
		text:      txt,
		textSize:  16,
		textColor: paint.Black,
	}
	l.SetBehavior(l)
	l.SizeToFit()
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText sets the label text. Lines are separated by newlines.
func (l *Label) SetText(txt string) {
	l.text = txt
	l.SetNeedsDisplay()
	if s := l.Superview(); s != nil {
		s.SetNeedsLayout()
	}
}

// SetTextSize sets the text size.
func (l *Label) SetTextSize(size float32) {
	l.textSize = size
	l.SetNeedsDisplay()
}

// SetTextColor sets the text color.
func (l *Label) SetTextColor(c color.NRGBA) {
	l.textColor = c
	l.SetNeedsDisplay()
}

// SetAlignment sets the horizontal alignment of the lines: Start,
// Middle or End.
func (l *Label) SetAlignment(a layout.Alignment) {
	l.alignment = a
	l.SetNeedsDisplay()
}

// Draw draws the lines of text.
func (l *Label) Draw(ctx paint.Context, bounds f32.Rect) {
	if l.text == "" {
		return
	}
	lines := strings.Split(l.text, "\n")
	sizes := make([]f32.Size, len(lines))
	for i, line := range lines {
		sizes[i] = ctx.MeasureText(line, l.textSize)
	}
	lh := lineHeight(sizes, l.textSize)
	y := bounds.Origin.Y + (bounds.Size.Height-lh*float32(len(lines)))/2
	for i, line := range lines {
		x := bounds.Origin.X
		switch l.alignment {
		case layout.Middle:
			x += (bounds.Size.Width - sizes[i].Width) / 2
		case layout.End:
			x += bounds.Size.Width - sizes[i].Width
		}
		ctx.DrawText(line, f32.Pt(x, y+baseline(f32.Sz(0, lh))), l.textSize, l.textColor)
		y += lh
	}
}

// SizeThatFits returns the size of the text.
func (l *Label) SizeThatFits(v *ui.View, size f32.Size) f32.Size {
	lines := strings.Split(l.text, "\n")
	sizes := make([]f32.Size, len(lines))
	var w float32
	for i, line := range lines {
		sizes[i] = measure(line, l.textSize)
		w = max(w, sizes[i].Width)
	}
	return f32.Sz(w, lineHeight(sizes, l.textSize)*float32(len(lines)))
}

// lineHeight returns the tallest of the measured lines, or a
// default for text without height.
func lineHeight(sizes []f32.Size, textSize float32) float32 {
	var h float32
	for _, sz := range sizes {
		h = max(h, sz.Height)
	}
	if h == 0 {
		h = textSize * 1.2
	}
	return h
}

// baseline returns the offset of the baseline from the top of a line
// of text of size sz.
func baseline(sz f32.Size) float32 {
	return sz.Height * .8
}
