//go:build js && wasm

package browser

import (
	"syscall/js"

	"github.com/SubhankarA8415/portfolio/internal/view"
)

// App is the mounted page: one State, its Tracker and Navigator, and the
// DOM listeners that feed them.
type App struct {
	doc     *Document
	state   *view.State
	tracker *view.Tracker
	nav     *view.Navigator
	cleanup []func()
}

// Mount wires the page and performs the initial recompute.
func Mount(doc *Document) *App {
	state := view.NewState()

	order := view.Order(func(s view.Section) bool {
		_, ok := doc.Anchor(s)
		return ok
	})

	a := &App{
		doc:     doc,
		state:   state,
		tracker: view.NewTracker(state, doc, doc, order),
		nav:     view.NewNavigator(state, doc),
	}
	a.tracker.OnOrderViolation = func(err error) {
		doc.warn("portfolio: " + err.Error())
	}

	a.cleanup = append(a.cleanup,
		state.Subscribe(a.paint),
		doc.onClick("[data-nav]", func(el js.Value) {
			a.nav.GoID(el.Get("dataset").Get("nav").String())
		}),
		doc.onClick("[data-theme-toggle]", func(js.Value) {
			a.state.ToggleDarkMode()
		}),
		doc.onClick("#menu-toggle", func(js.Value) {
			a.state.ToggleMenu()
		}),
	)

	a.tracker.Mount()
	a.paint(state.Snapshot())
	return a
}

// Unmount removes every listener. The page stays as last painted.
func (a *App) Unmount() {
	a.tracker.Unmount()
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	a.cleanup = nil
}

// paint reflects snap onto the DOM.
func (a *App) paint(snap view.Snapshot) {
	root := a.doc.doc.Get("documentElement")
	root.Get("classList").Call("toggle", "dark", snap.DarkMode)

	a.doc.each("[data-nav]", func(el js.Value) {
		active := el.Get("dataset").Get("nav").String() == string(snap.Active)
		el.Get("classList").Call("toggle", "is-active", active)
	})

	a.doc.each("[data-theme-toggle]", func(el js.Value) {
		switch el.Get("dataset").Get("themeToggle").String() {
		case "text":
			if snap.DarkMode {
				el.Set("textContent", "Light Mode")
			} else {
				el.Set("textContent", "Dark Mode")
			}
		default:
			if snap.DarkMode {
				el.Set("textContent", "☀")
			} else {
				el.Set("textContent", "☾")
			}
		}
	})

	if menu, ok := a.doc.element("mobile-menu"); ok {
		menu.Set("hidden", !snap.MenuOpen)
	}
	if btn, ok := a.doc.element("menu-toggle"); ok {
		btn.Call("setAttribute", "aria-expanded", boolString(snap.MenuOpen))
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
