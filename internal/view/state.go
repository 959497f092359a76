package view

// Snapshot is a read-only copy of the view state handed to renderers.
type Snapshot struct {
	DarkMode bool
	MenuOpen bool
	Active   Section
}

// State is the owned view state of one mounted page. It is not safe for
// concurrent use; all mutation happens on the UI event loop.
//
// Each field has a single writer: the toggles for DarkMode and MenuOpen,
// the Navigator for closing the menu, the Tracker for Active.
type State struct {
	darkMode bool
	menuOpen bool
	active   Section

	nextID    int
	listeners map[int]func(Snapshot)
}

// NewState returns the page-load defaults: light theme, menu closed, home
// active.
func NewState() *State {
	return &State{active: Home, listeners: make(map[int]func(Snapshot))}
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{DarkMode: s.darkMode, MenuOpen: s.menuOpen, Active: s.active}
}

func (s *State) DarkMode() bool  { return s.darkMode }
func (s *State) MenuOpen() bool  { return s.menuOpen }
func (s *State) Active() Section { return s.active }

func (s *State) ToggleDarkMode() {
	s.darkMode = !s.darkMode
	s.notify()
}

func (s *State) ToggleMenu() {
	s.menuOpen = !s.menuOpen
	s.notify()
}

// closeMenu is a no-op when the menu is already closed.
func (s *State) closeMenu() {
	if !s.menuOpen {
		return
	}
	s.menuOpen = false
	s.notify()
}

// setActiveSection is only reachable through the Tracker, which guarantees
// sec is declared and anchored.
func (s *State) setActiveSection(sec Section) {
	if s.active == sec {
		return
	}
	s.active = sec
	s.notify()
}

// Subscribe registers fn to run after every change. The returned function
// removes it.
func (s *State) Subscribe(fn func(Snapshot)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

func (s *State) notify() {
	snap := s.Snapshot()
	for _, fn := range s.listeners {
		fn(snap)
	}
}
