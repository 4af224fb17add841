// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"golang.org/x/exp/slices"
)

// ViewController manages a root view and takes part in the responder
// chain between that view and its superview.
type ViewController struct {
	view     *View
	behavior any
	parent   *ViewController
	children []*ViewController
	title    string
}

// Loader is implemented by controller behaviors that configure the
// root view when the controller is created.
type Loader interface {
	ViewDidLoad(vc *ViewController)
}

// NewViewController returns a controller managing v. A nil v is
// replaced by an empty view. If behavior implements Loader its
// ViewDidLoad method is called before returning.
func NewViewController(v *View, behavior any) *ViewController {
	if v == nil {
		v = new(View)
	}
	if v.controller != nil {
		panic("ui: view already has a controller")
	}
	vc := &ViewController{view: v, behavior: behavior}
	v.controller = vc
	if l, ok := behavior.(Loader); ok {
		l.ViewDidLoad(vc)
	}
	return vc
}

// View returns the root view.
func (vc *ViewController) View() *View { return vc.view }

// Behavior returns the behavior passed to NewViewController.
func (vc *ViewController) Behavior() any { return vc.behavior }

func (vc *ViewController) Title() string { return vc.title }

func (vc *ViewController) SetTitle(t string) { vc.title = t }

// NextResponder returns the superview of the root view, or its
// window when the root view is the window content.
func (vc *ViewController) NextResponder() Responder {
	v := vc.view
	switch {
	case v.superview != nil:
		return v.superview
	case v.window != nil:
		return v.window
	}
	return nil
}

// AddChild makes c a child controller of vc. The child's view is not
// added to the view tree.
func (vc *ViewController) AddChild(c *ViewController) {
	if c.parent == vc {
		return
	}
	c.RemoveFromParent()
	c.parent = vc
	vc.children = append(vc.children, c)
}

// RemoveFromParent detaches vc from its parent controller.
func (vc *ViewController) RemoveFromParent() {
	p := vc.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, vc); i != -1 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	vc.parent = nil
}

// Parent returns the parent controller, or nil.
func (vc *ViewController) Parent() *ViewController { return vc.parent }

// Children returns a copy of the child controllers.
func (vc *ViewController) Children() []*ViewController {
	return slices.Clone(vc.children)
}
