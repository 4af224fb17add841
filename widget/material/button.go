// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"viewkit.org/layout"
	"viewkit.org/widget"
)

// Button returns a button in the primary color with inverted text.
func Button(th *Theme, txt string) *widget.Button {
	b := widget.NewButton(txt)
	b.SetFillColor(th.Color.Primary)
	b.SetTextColor(th.Color.InvText)
	b.SetTextSize(th.TextSize * 14.0 / 16.0)
	b.SetCornerRadius(4)
	b.SetInset(layout.Inset{Top: 10, Bottom: 10, Left: 12, Right: 12})
	b.SizeToFit()
	return b
}
