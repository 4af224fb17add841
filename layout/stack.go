// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"viewkit.org/f32"
	"viewkit.org/ui"
)

// Stack is a behavior that lays out the subviews of its view on top
// of each other. Expanded subviews fill the space; the others keep
// their preferred size and are aligned by Alignment.
type Stack struct {
	// Alignment is the direction to align subviews smaller than the
	// available space.
	Alignment Direction
	// Inset is the space around the subviews.
	Inset Inset

	expanded map[*ui.View]bool
}

var (
	_ ui.Layouter = (*Stack)(nil)
	_ ui.Sizer    = (*Stack)(nil)
)

// SetExpanded sets whether v fills the stack.
func (s *Stack) SetExpanded(v *ui.View, expand bool) {
	if expand {
		if s.expanded == nil {
			s.expanded = make(map[*ui.View]bool)
		}
		s.expanded[v] = true
	} else {
		delete(s.expanded, v)
	}
	if p := v.Superview(); p != nil {
		p.SetNeedsLayout()
	}
}

// LayoutSubviews sets the frames of the subviews of v.
func (s *Stack) LayoutSubviews(v *ui.View) {
	content := s.Inset.Rect(v.Bounds())
	for _, c := range v.Subviews() {
		if s.expanded[c] {
			c.SetFrame(content)
			continue
		}
		sz := clampSize(c.SizeThatFits(content.Size), content.Size)
		p := s.Alignment.Position(content.Size, sz)
		c.SetFrame(f32.Rect{Origin: content.Origin.Add(p), Size: sz})
	}
}

// SizeThatFits returns the largest preferred size of the rigid
// subviews plus the inset.
func (s *Stack) SizeThatFits(v *ui.View, size f32.Size) f32.Size {
	avail := s.Inset.Rect(f32.Rect{Size: size}).Size
	var sz f32.Size
	for _, c := range v.Subviews() {
		if s.expanded[c] {
			continue
		}
		cs := c.SizeThatFits(avail)
		sz.Width = max(sz.Width, cs.Width)
		sz.Height = max(sz.Height, cs.Height)
	}
	return s.Inset.grow(sz)
}
