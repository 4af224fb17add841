// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// deliveryPhases is the order in which touches of one event are
// delivered.
var deliveryPhases = [...]Phase{PhaseBegan, PhaseMoved, PhaseEnded, PhaseCancelled}

// deliverToRecognizers feeds the touches of e to the recognizers in
// their snapshots, then fails the recognizers left undecided with
// only finished touches.
func deliverToRecognizers(e *Event) {
	var rs []Recognizer
	for _, t := range e.touches {
		for _, r := range t.recognizers {
			if !slices.Contains(rs, r) {
				rs = append(rs, r)
			}
		}
	}
	for _, r := range rs {
		g := r.gestureRecognizer()
		if !g.shouldRecognize() {
			continue
		}
		var ts []*Touch
		for _, t := range e.touches {
			if t.phase == PhaseStationary || !slices.Contains(t.recognizers, r) {
				continue
			}
			if t.phase != PhaseBegan && !slices.Contains(g.tracked, t) {
				continue
			}
			ts = append(ts, t)
		}
		if len(ts) == 0 {
			continue
		}
		slices.SortStableFunc(ts, func(a, b *Touch) int { return cmp.Compare(a.time, b.time) })
		g.event = e
		for _, ph := range deliveryPhases {
			if !g.shouldRecognize() {
				break
			}
			var group []*Touch
			for _, t := range ts {
				if t.phase == ph {
					group = append(group, t)
				}
			}
			if len(group) == 0 {
				continue
			}
			switch ph {
			case PhaseBegan:
				g.tracked = append(g.tracked, group...)
				r.TouchesBegan(group, e)
			case PhaseMoved:
				r.TouchesMoved(group, e)
			case PhaseEnded:
				r.TouchesEnded(group, e)
			case PhaseCancelled:
				r.TouchesCancelled(group, e)
			}
		}
		g.event = nil
	}
	for _, r := range rs {
		g := r.gestureRecognizer()
		if len(g.tracked) == 0 || slices.ContainsFunc(g.tracked, func(t *Touch) bool { return !t.finished() }) {
			continue
		}
		switch g.state {
		case StatePossible:
			if g.pending == StatePossible {
				g.SetState(StateFailed)
			}
		case StateBegan, StateChanged:
			if slices.ContainsFunc(g.tracked, func(t *Touch) bool { return t.phase == PhaseCancelled }) {
				g.SetState(StateCancelled)
			} else {
				g.SetState(StateEnded)
			}
		}
	}
}

// groupByView splits touches by bound view, preserving the order of
// first appearance.
func groupByView(touches []*Touch) [][]*Touch {
	var groups [][]*Touch
	for _, t := range touches {
		i := slices.IndexFunc(groups, func(g []*Touch) bool { return g[0].view == t.view })
		if i == -1 {
			groups = append(groups, []*Touch{t})
			continue
		}
		groups[i] = append(groups[i], t)
	}
	return groups
}

// deliverToViews sends the touches not claimed by a recognizer to the
// responder chains of their bound views.
func deliverToViews(e *Event) {
	for _, ph := range deliveryPhases {
		var ts []*Touch
		for _, t := range e.touches {
			if t.phase == ph && !t.viewCancelled && t.view != nil {
				ts = append(ts, t)
			}
		}
		for _, group := range groupByView(ts) {
			dispatchTouches(group[0].view, ph, group, e)
		}
	}
}
