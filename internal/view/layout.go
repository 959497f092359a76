package view

import (
	"errors"
	"fmt"
)

// ErrOutOfOrder is returned by CheckOrder when anchors are not stacked in
// declaration order.
var ErrOutOfOrder = errors.New("sections out of declaration order")

// Span is the vertical extent of an anchor, in page coordinates.
type Span struct {
	Top    float64
	Height float64
}

// Bottom is the exclusive end of the span.
func (s Span) Bottom() float64 {
	return s.Top + s.Height
}

// Contains reports whether y lies in [Top, Top+Height).
func (s Span) Contains(y float64) bool {
	return y >= s.Top && y < s.Bottom()
}

// Viewport is the visible window: its scroll offset and height.
type Viewport struct {
	ScrollY float64
	Height  float64
}

// Probe is the vertical centre of the viewport in page coordinates.
func Probe(v Viewport) float64 {
	return v.ScrollY + v.Height/2
}

// AnchorLookup returns the current layout of a section's anchor, or false if
// the page has no such anchor.
type AnchorLookup interface {
	Anchor(Section) (Span, bool)
}

// Spans is a fixed AnchorLookup, handy for synthetic layouts.
type Spans map[Section]Span

func (m Spans) Anchor(s Section) (Span, bool) {
	sp, ok := m[s]
	return sp, ok
}

// Locate scans order first to last and returns the first section whose
// anchor span contains probe. Sections without an anchor are skipped.
func Locate(order []Section, anchors AnchorLookup, probe float64) (Section, bool) {
	for _, s := range order {
		sp, ok := anchors.Anchor(s)
		if !ok {
			continue
		}
		if sp.Contains(probe) {
			return s, true
		}
	}
	return "", false
}

// CheckOrder verifies the precondition Locate relies on: present anchors
// do not overlap and start in declaration order.
func CheckOrder(order []Section, anchors AnchorLookup) error {
	var (
		prev    Section
		prevEnd float64
		seen    bool
	)
	for _, s := range order {
		sp, ok := anchors.Anchor(s)
		if !ok {
			continue
		}
		if seen && sp.Top < prevEnd {
			return fmt.Errorf("%w: %s starts at %g before %s ends at %g", ErrOutOfOrder, s, sp.Top, prev, prevEnd)
		}
		prev, prevEnd, seen = s, sp.Bottom(), true
	}
	return nil
}
