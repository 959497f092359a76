package view

// Page is the live layout the tracker reads on every recompute.
type Page interface {
	AnchorLookup
	Viewport() Viewport
}

// ScrollSource delivers scroll notifications. OnScroll registers fn and
// returns a function that deregisters it.
type ScrollSource interface {
	OnScroll(fn func()) (remove func())
}

// Tracker keeps State.Active in sync with the section under the viewport
// centre.
type Tracker struct {
	state  *State
	page   Page
	scroll ScrollSource
	order  []Section

	// OnOrderViolation, when set, receives the CheckOrder error found at
	// mount. Tracking continues with first-match semantics either way.
	OnOrderViolation func(error)

	remove func()
}

func NewTracker(state *State, page Page, scroll ScrollSource, order []Section) *Tracker {
	return &Tracker{state: state, page: page, scroll: scroll, order: order}
}

// Mount recomputes once so the initial state is correct before any scroll,
// then subscribes to scroll events. Mounting twice is a no-op.
func (t *Tracker) Mount() {
	if t.remove != nil {
		return
	}
	if err := CheckOrder(t.order, t.page); err != nil && t.OnOrderViolation != nil {
		t.OnOrderViolation(err)
	}
	t.Recompute()
	t.remove = t.scroll.OnScroll(t.Recompute)
}

// Unmount deregisters the scroll listener.
func (t *Tracker) Unmount() {
	if t.remove == nil {
		return
	}
	t.remove()
	t.remove = nil
}

// Mounted reports whether the tracker is subscribed.
func (t *Tracker) Mounted() bool {
	return t.remove != nil
}

// Recompute runs one fresh scan. When no anchor contains the probe the
// current active section is kept, which is Home until a section has been
// entered.
func (t *Tracker) Recompute() {
	sec, ok := Locate(t.order, t.page, Probe(t.page.Viewport()))
	if !ok {
		return
	}
	t.state.setActiveSection(sec)
}
