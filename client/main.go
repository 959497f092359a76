//go:build js && wasm

// Command client is the in-browser half of the portfolio. Build with
//
//	GOOS=js GOARCH=wasm go build -o dist/app.wasm ./client
//
// and serve dist/ next to wasm_exec.js from the Go distribution.
package main

import (
	"syscall/js"

	"github.com/SubhankarA8415/portfolio/internal/browser"
)

func main() {
	app := browser.Mount(browser.NewDocument())

	unload := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 && leaving(args[0]) {
			app.Unmount()
		}
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", unload)

	select {}
}

// leaving reports whether a pagehide event discards the page. A persisted
// page goes into the back-forward cache and comes back with its listeners.
func leaving(ev js.Value) bool {
	return !ev.Get("persisted").Truthy()
}
