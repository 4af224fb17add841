// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements common user interface controls as views.
// Each widget embeds ui.View and installs itself as the view's
// behavior; add it to a hierarchy through its View field:
//
//	b := widget.NewButton("OK")
//	b.AddAction(widget.TouchUpInside, func() { ... })
//	window.AddSubview(&b.View)
//
// Package widget/material provides themed constructors.
package widget
