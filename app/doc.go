// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app runs a view hierarchy in a platform window.

# Run loop

Run opens a window through a Driver, launches the application
delegate and then runs a single-threaded loop until the window is
destroyed, the application terminates or the context is cancelled.
Each iteration drains every pending event, dispatches it to the key
window, advances animations, lays out the views and redraws the dirty
region before presenting it. The loop then sleeps for the rest of the
frame interval, taken from the driver refresh rate or the FPS option.

Driver events are read by a dedicated goroutine locked to its OS
thread and handed to the loop through a queue that never blocks the
producer.

For example:

	type delegate struct{}

	func (delegate) WillFinishLaunching(*ui.Application, ui.LaunchOptions) error { return nil }

	func (delegate) DidFinishLaunching(a *ui.Application, _ ui.LaunchOptions) error {
		vc := ui.NewViewController(nil, nil)
		vc.View().AddSubview(&material.Button(material.NewTheme(), "Hello").View)
		a.KeyWindow().SetRootViewController(vc)
		return nil
	}

	func (delegate) WillTerminate(*ui.Application, ui.LaunchOptions) {}

	func main() {
		if err := app.Main(delegate{}, app.Title("Hello")); err != nil {
			log.Fatal(err)
		}
	}

# Drivers

A Driver adapts a platform window. Main uses the driver returned by
NewDriver; package headless provides an in-memory driver for tests
and offscreen rendering.
*/
package app
