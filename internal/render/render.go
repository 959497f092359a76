// Package render turns a portfolio and a view snapshot into the page HTML.
// The same output is served by the HTTP server and written by the static
// export; the browser client then takes over the live view state.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/SubhankarA8415/portfolio/internal/content"
	"github.com/SubhankarA8415/portfolio/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// Assets is the embedded stylesheet and boot script, rooted at the assets
// directory.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// NavEntry is one navigation button.
type NavEntry struct {
	Section view.Section
	Label   string
	Active  bool
}

// PageData is the template context.
type PageData struct {
	Portfolio *content.Portfolio
	State     view.Snapshot
	Nav       []NavEntry
	Sections  []view.Section
	Year      int
	// ClientURL is where the boot script fetches the WebAssembly client
	// from. Empty disables the client.
	ClientURL string
}

// Has reports whether sec is rendered on this page.
func (d PageData) Has(sec view.Section) bool {
	for _, s := range d.Sections {
		if s == sec {
			return true
		}
	}
	return false
}

type Renderer struct {
	tmpl      *template.Template
	clientURL string
	now       func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// ClientPath is where the client artifacts live relative to the page, both
// when served and in an export.
const ClientPath = "app"

// WithClient sets the base URL of the client artifacts (app.wasm,
// wasm_exec.js).
func WithClient(url string) Option {
	return func(r *Renderer) { r.clientURL = url }
}

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

func New(opts ...Option) (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"markdown": content.Markdown,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	r := &Renderer{tmpl: tmpl, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Data builds the template context for p in state snap.
func (r *Renderer) Data(p *content.Portfolio, snap view.Snapshot) PageData {
	sections := p.Sections()
	nav := make([]NavEntry, 0, len(sections))
	for _, s := range sections {
		if s == view.Home {
			continue
		}
		nav = append(nav, NavEntry{Section: s, Label: s.Label(), Active: s == snap.Active})
	}
	return PageData{
		Portfolio: p,
		State:     snap,
		Nav:       nav,
		Sections:  sections,
		Year:      r.now().Year(),
		ClientURL: r.clientURL,
	}
}

// Page writes the full HTML document.
func (r *Renderer) Page(w io.Writer, p *content.Portfolio, snap view.Snapshot) error {
	if err := r.tmpl.ExecuteTemplate(w, "page.html", r.Data(p, snap)); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}
