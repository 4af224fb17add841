// SPDX-License-Identifier: Unlicense OR MIT

// Package key defines raw key events. A window wraps each one into a
// presses event and hands it to the first responder.
package key

import (
	"fmt"
	"strings"
	"time"
)

// Event reports a key going down or up.
type Event struct {
	Name      Name
	Modifiers Modifiers
	State     State
	// Time is relative to an undefined base.
	Time time.Duration
}

// State of a key.
type State uint8

const (
	Press State = iota
	Release
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	// ModCommand is the Apple command key.
	ModCommand
	ModShift
	// ModAlt is also the Apple option key.
	ModAlt
	ModSuper
)

// Name identifies a key. Letters use their upper case form.
type Name string

const (
	NameLeftArrow      Name = "←"
	NameRightArrow     Name = "→"
	NameUpArrow        Name = "↑"
	NameDownArrow      Name = "↓"
	NameReturn         Name = "⏎"
	NameEscape         Name = "⎋"
	NameHome           Name = "⇱"
	NameEnd            Name = "⇲"
	NameDeleteBackward Name = "⌫"
	NamePageUp         Name = "⇞"
	NamePageDown       Name = "⇟"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
	NameCtrl           Name = "Ctrl"
	NameShift          Name = "Shift"
	NameAlt            Name = "Alt"
	NameSuper          Name = "Super"
	NameCommand        Name = "⌘"
)

// modifierNames is in display order.
var modifierNames = []struct {
	mod  Modifiers
	name Name
}{
	{ModCtrl, NameCtrl},
	{ModCommand, NameCommand},
	{ModShift, NameShift},
	{ModAlt, NameAlt},
	{ModSuper, NameSuper},
}

func (Event) ImplementsEvent() {}

func (e Event) String() string {
	if e.Modifiers == 0 {
		return fmt.Sprintf("%s %v", e.Name, e.State)
	}
	return fmt.Sprintf("%v-%s %v", e.Modifiers, e.Name, e.State)
}

// Contain reports whether m holds every modifier of m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var b strings.Builder
	for _, n := range modifierNames {
		if !m.Contain(n.mod) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('-')
		}
		b.WriteString(string(n.name))
	}
	return b.String()
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	}
	panic(fmt.Sprintf("key: invalid state %d", s))
}
