// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"

	"viewkit.org/f32"
	"viewkit.org/layout"
	"viewkit.org/ui"
	"viewkit.org/widget"
	"viewkit.org/widget/material"
)

const galleryItems = 12

// gallery is a title, a scrolling column of buttons and a status line.
type gallery struct {
	th *material.Theme

	column  layout.Flex
	rows    layout.Flex
	list    *widget.ScrollView
	content *ui.View
	status  *widget.Label
	taps    int
}

var _ ui.ApplicationDelegate = (*gallery)(nil)

func newGallery(th *material.Theme) *gallery {
	return &gallery{
		th: th,
		column: layout.Flex{
			Axis:      layout.Vertical,
			Alignment: layout.Stretch,
			Inset:     layout.UniformInset(16),
		},
		rows: layout.Flex{
			Axis:      layout.Vertical,
			Alignment: layout.Stretch,
			Inset:     layout.Inset{Top: 8, Bottom: 8},
		},
	}
}

func (g *gallery) WillFinishLaunching(*ui.Application, ui.LaunchOptions) error { return nil }

func (g *gallery) DidFinishLaunching(a *ui.Application, opts ui.LaunchOptions) error {
	w := a.KeyWindow()
	if w == nil {
		return errors.New("no key window")
	}
	root := ui.NewView(f32.Rect{Size: opts.Size})
	root.SetBehavior(g)
	title := g.th.H5(opts.Title)
	g.list = widget.NewScrollView(f32.Rect{})
	g.content = ui.NewView(f32.Rect{})
	g.content.SetBehavior(&g.rows)
	g.list.AddSubview(g.content)
	for i := range galleryItems {
		b := material.Button(g.th, fmt.Sprintf("Item %d", i+1))
		b.AddAction(widget.TouchUpInside, func() { g.tapped(i + 1) })
		g.content.AddSubview(&b.View)
	}
	g.status = g.th.Caption("Tap an item")
	root.AddSubview(&title.View)
	root.AddSubview(&g.list.View)
	root.AddSubview(&g.status.View)
	g.column.SetWeight(&g.list.View, 1)
	w.SetRootViewController(ui.NewViewController(root, nil))
	return nil
}

func (g *gallery) WillTerminate(*ui.Application, ui.LaunchOptions) {}

// LayoutSubviews lays out the column and sizes the scrolling content
// to the width of the list.
func (g *gallery) LayoutSubviews(v *ui.View) {
	g.column.LayoutSubviews(v)
	width := g.list.Bounds().Size.Width
	sz := g.rows.SizeThatFits(g.content, f32.Sz(width, 0))
	g.content.SetFrame(f32.R(0, 0, width, sz.Height))
	g.list.SetContentSize(f32.Sz(width, sz.Height))
}

func (g *gallery) tapped(item int) {
	g.taps++
	g.status.SetText(fmt.Sprintf("Item %d tapped (%d taps)", item, g.taps))
}
