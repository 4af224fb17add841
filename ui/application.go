// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"golang.org/x/exp/slices"

	"viewkit.org/f32"
)

// Application is the end of the responder chain and the owner of the
// windows. Its delegate receives the launch and termination
// callbacks.
type Application struct {
	delegate    ApplicationDelegate
	windows     []*Window
	keyWindow   *Window
	terminating bool
}

// ApplicationDelegate receives application lifecycle callbacks. A
// delegate may also implement PressHandler, WheelHandler or
// TouchHandler to handle events no view consumed.
type ApplicationDelegate interface {
	// WillFinishLaunching is called before the platform window is
	// created. A non-nil error aborts the launch.
	WillFinishLaunching(app *Application, opts LaunchOptions) error
	// DidFinishLaunching is called once the key window exists and
	// before the first frame. A non-nil error aborts the launch.
	DidFinishLaunching(app *Application, opts LaunchOptions) error
	// WillTerminate is called before the run loop returns, with the
	// options the application was launched with.
	WillTerminate(app *Application, opts LaunchOptions)
}

// LaunchOptions describe how the application was started.
type LaunchOptions struct {
	Title     string
	Size      f32.Size
	Resizable bool
	// FPS is the frame rate the run loop paces itself to.
	FPS int
	// Args are the command line arguments not consumed by the host.
	Args []string
}

// NewApplication returns an application with the given delegate,
// which may be nil.
func NewApplication(d ApplicationDelegate) *Application {
	return &Application{delegate: d}
}

// Delegate returns the application delegate.
func (a *Application) Delegate() ApplicationDelegate { return a.delegate }

// NextResponder returns nil; the application ends the chain.
func (a *Application) NextResponder() Responder { return nil }

// AddWindow attaches w to the application. The first window added
// becomes the key window.
func (a *Application) AddWindow(w *Window) {
	if w.app == a {
		return
	}
	if w.app != nil {
		w.app.RemoveWindow(w)
	}
	w.app = a
	a.windows = append(a.windows, w)
	if a.keyWindow == nil {
		w.MakeKey()
	}
}

// RemoveWindow detaches w from the application.
func (a *Application) RemoveWindow(w *Window) {
	i := slices.Index(a.windows, w)
	if i == -1 {
		return
	}
	a.windows = slices.Delete(a.windows, i, i+1)
	w.app = nil
	if a.keyWindow == w {
		w.key = false
		a.keyWindow = nil
	}
}

// Windows returns a copy of the application windows.
func (a *Application) Windows() []*Window { return slices.Clone(a.windows) }

// KeyWindow returns the window receiving input, or nil.
func (a *Application) KeyWindow() *Window { return a.keyWindow }

// Terminate asks the run loop to stop after the current frame.
func (a *Application) Terminate() { a.terminating = true }

// Terminating reports whether Terminate has been called.
func (a *Application) Terminating() bool { return a.terminating }
