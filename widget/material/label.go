// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"viewkit.org/widget"
)

func (t *Theme) H1(txt string) *widget.Label {
	return t.Label(t.TextSize*96.0/16.0, txt)
}

func (t *Theme) H2(txt string) *widget.Label {
	return t.Label(t.TextSize*60.0/16.0, txt)
}

func (t *Theme) H3(txt string) *widget.Label {
	return t.Label(t.TextSize*48.0/16.0, txt)
}

func (t *Theme) H4(txt string) *widget.Label {
	return t.Label(t.TextSize*34.0/16.0, txt)
}

func (t *Theme) H5(txt string) *widget.Label {
	return t.Label(t.TextSize*24.0/16.0, txt)
}

func (t *Theme) H6(txt string) *widget.Label {
	return t.Label(t.TextSize*20.0/16.0, txt)
}

func (t *Theme) Body1(txt string) *widget.Label {
	return t.Label(t.TextSize, txt)
}

func (t *Theme) Body2(txt string) *widget.Label {
	return t.Label(t.TextSize*14.0/16.0, txt)
}

func (t *Theme) Caption(txt string) *widget.Label {
	return t.Label(t.TextSize*12.0/16.0, txt)
}

// Label returns a label of the given text size in the text color,
// sized to fit.
func (t *Theme) Label(size float32, txt string) *widget.Label {
	l := widget.NewLabel(txt)
	l.SetTextColor(t.Color.Text)
	l.SetTextSize(size)
	l.SizeToFit()
	return l
}
