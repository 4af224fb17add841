// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"viewkit.org/app/internal/queue"
	"viewkit.org/internal/log"
	"viewkit.org/ui"
)

// extraArgs contains extra arguments to append to the launch
// arguments. The arguments are separated with |.
// Set with the go linker flag -X.
var extraArgs string

// ID is the application id, used as the default window title. The
// default value of ID is filepath.Base(os.Args[0]).
var ID = ""

// NewDriver returns the platform driver used by Main. It is set by
// platform integrations, typically from an init function.
var NewDriver func() Driver

// ErrNoDriver is returned by Main when NewDriver is not set.
var ErrNoDriver = errors.New("app: no platform driver")

// Main runs the application with the platform driver until its
// window is destroyed or the process is interrupted.
func Main(delegate ui.ApplicationDelegate, opts ...Option) error {
	if NewDriver == nil {
		return ErrNoDriver
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return Run(ctx, NewDriver(), delegate, opts...)
}

// Run opens a window with d, launches delegate and runs the event
// loop until the window is destroyed, the application terminates or
// ctx is done. Cancelling ctx is a normal shutdown.
//
// Failures to launch are returned. After launch, drawing and
// presentation failures are logged and the loop continues. A window
// destroyed with an error makes Run return it.
func Run(ctx context.Context, d Driver, delegate ui.ApplicationDelegate, opts ...Option) error {
	cnf := newConfig(opts)
	if cnf.Logger != nil {
		log.Set(cnf.Logger)
	}
	application := ui.NewApplication(delegate)
	launch := cnf.launchOptions(args())
	if delegate != nil {
		if err := delegate.WillFinishLaunching(application, launch); err != nil {
			return fmt.Errorf("app: launch: %w", err)
		}
	}
	if err := d.Open(cnf); err != nil {
		return fmt.Errorf("app: open window: %w", err)
	}
	defer d.Close()
	if d.RefreshRate() <= 0 {
		d.SetRefreshRate(cnf.FPS)
	}
	w, err := newWindow(d, cnf.Size)
	if err != nil {
		return err
	}
	application.AddWindow(w.win)
	if delegate != nil {
		if err := delegate.DidFinishLaunching(application, launch); err != nil {
			return fmt.Errorf("app: launch: %w", err)
		}
	}
	log.L().Debug("app: launched", "title", cnf.Title, "size", cnf.Size)
	l := &loop{
		app:   application,
		win:   w,
		drv:   d,
		q:     queue.New(),
		fps:   cnf.FPS,
		now:   time.Now,
		sleep: sleep,
	}
	err = l.run(ctx)
	if delegate != nil {
		delegate.WillTerminate(application, launch)
	}
	return err
}

func args() []string {
	a := os.Args[1:]
	if extraArgs != "" {
		a = append(a, strings.Split(extraArgs, "|")...)
	}
	return a
}

func init() {
	if ID == "" {
		ID = filepath.Base(os.Args[0])
	}
}
