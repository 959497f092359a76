//go:build js && wasm

// Package browser adapts the DOM to the view package: window scroll events,
// anchor layout, smooth scrolling and the class toggles the page uses for
// highlight, theme and menu.
package browser

import (
	"syscall/js"

	"github.com/SubhankarA8415/portfolio/internal/view"
)

// Document is the live page. It implements view.Page, view.ScrollSource and
// view.Scroller.
type Document struct {
	window js.Value
	doc    js.Value
}

func NewDocument() *Document {
	w := js.Global()
	return &Document{window: w, doc: w.Get("document")}
}

func (d *Document) element(id string) (js.Value, bool) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, false
	}
	return el, true
}

// Anchor reads offsetTop/offsetHeight of the section element, live.
func (d *Document) Anchor(s view.Section) (view.Span, bool) {
	el, ok := d.element(string(s))
	if !ok {
		return view.Span{}, false
	}
	return view.Span{
		Top:    el.Get("offsetTop").Float(),
		Height: el.Get("offsetHeight").Float(),
	}, true
}

func (d *Document) Viewport() view.Viewport {
	return view.Viewport{
		ScrollY: d.window.Get("scrollY").Float(),
		Height:  d.window.Get("innerHeight").Float(),
	}
}

// OnScroll adds a window scroll listener. The returned function removes it
// and releases the callback.
func (d *Document) OnScroll(fn func()) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	d.window.Call("addEventListener", "scroll", cb)
	return func() {
		d.window.Call("removeEventListener", "scroll", cb)
		cb.Release()
	}
}

func (d *Document) ScrollTo(s view.Section) {
	el, ok := d.element(string(s))
	if !ok {
		return
	}
	opts := js.Global().Get("Object").New()
	opts.Set("behavior", "smooth")
	el.Call("scrollIntoView", opts)
}

// each calls fn for every element matching selector.
func (d *Document) each(selector string, fn func(js.Value)) {
	list := d.doc.Call("querySelectorAll", selector)
	for i, n := 0, list.Get("length").Int(); i < n; i++ {
		fn(list.Call("item", i))
	}
}

// onClick delegates clicks on elements matching selector. The returned
// function removes the listener.
func (d *Document) onClick(selector string, fn func(el js.Value)) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		ev := args[0]
		target := ev.Get("target")
		if target.IsNull() || target.IsUndefined() || target.Get("closest").IsUndefined() {
			return nil
		}
		el := target.Call("closest", selector)
		if el.IsNull() {
			return nil
		}
		ev.Call("preventDefault")
		fn(el)
		return nil
	})
	d.doc.Call("addEventListener", "click", cb)
	return func() {
		d.doc.Call("removeEventListener", "click", cb)
		cb.Release()
	}
}

func (d *Document) warn(msg string) {
	js.Global().Get("console").Call("warn", msg)
}
