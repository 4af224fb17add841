// SPDX-License-Identifier: Unlicense OR MIT

// Package log holds the logger shared by all viewkit packages.
// Nothing is logged until a logger is installed with Set.
package log

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record without formatting it.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(discard{}))
}

// Set installs l as the logger. A nil l restores the silent default.
// Set is safe for concurrent use.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	current.Store(l)
}

// L returns the installed logger.
func L() *slog.Logger {
	return current.Load()
}
