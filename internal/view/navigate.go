package view

// Scroller moves the viewport. ScrollTo starts a smooth scroll that brings
// the section's anchor to the top of the viewport.
type Scroller interface {
	AnchorLookup
	ScrollTo(Section)
}

// Navigator handles navigation clicks.
type Navigator struct {
	state    *State
	scroller Scroller
}

func NewNavigator(state *State, scroller Scroller) *Navigator {
	return &Navigator{state: state, scroller: scroller}
}

// Go scrolls to sec and closes the mobile menu. An unknown section or a
// missing anchor is silently ignored. The active section is left to the
// tracker, which converges once the scroll settles.
func (n *Navigator) Go(sec Section) {
	if !sec.Valid() {
		return
	}
	if _, ok := n.scroller.Anchor(sec); !ok {
		return
	}
	n.scroller.ScrollTo(sec)
	n.state.closeMenu()
}

// GoID is Go for a raw anchor id taken from the page.
func (n *Navigator) GoID(id string) {
	if sec, ok := Parse(id); ok {
		n.Go(sec)
	}
}
