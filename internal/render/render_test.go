package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SubhankarA8415/portfolio/internal/content"
	"github.com/SubhankarA8415/portfolio/internal/view"
)

func fixedClock() time.Time {
	return time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
}

func newRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(append([]Option{WithClock(fixedClock)}, opts...)...)
	require.NoError(t, err)
	return r
}

func defaultPortfolio(t *testing.T) *content.Portfolio {
	t.Helper()
	p, err := content.Default()
	require.NoError(t, err)
	return p
}

func render(t *testing.T, r *Renderer, p *content.Portfolio, snap view.Snapshot) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, p, snap))
	return buf.String()
}

func TestPageInitialState(t *testing.T) {
	out := render(t, newRenderer(t), defaultPortfolio(t), view.NewState().Snapshot())

	for _, id := range view.Sections {
		assert.Contains(t, out, `<section id="`+string(id)+`"`)
	}
	assert.Contains(t, out, `<html lang="en">`)
	assert.Contains(t, out, `id="mobile-menu" class="nav-mobile" hidden`)
	assert.Contains(t, out, "Dark Mode")
	assert.NotContains(t, out, "is-active", "home has no nav entry")
	assert.Contains(t, out, "&copy; 2025 Subhankar Pandit")
	assert.Contains(t, out, "<strong>Full Stack Web Development</strong>")
	assert.NotContains(t, out, "boot.js", "no client configured")
}

func TestSectionsRenderInDeclarationOrder(t *testing.T) {
	out := render(t, newRenderer(t), defaultPortfolio(t), view.NewState().Snapshot())

	last := -1
	for _, id := range view.Sections {
		i := strings.Index(out, `<section id="`+string(id)+`"`)
		require.Greater(t, i, last, "section %s out of order", id)
		last = i
	}
}

func TestPageHighlightsActiveSection(t *testing.T) {
	snap := view.Snapshot{Active: view.Projects, DarkMode: true, MenuOpen: true}
	out := render(t, newRenderer(t), defaultPortfolio(t), snap)

	assert.Contains(t, out, `data-nav="projects" class="nav-link is-active"`)
	assert.Contains(t, out, `data-nav="education" class="nav-link"`)
	assert.Equal(t, 2, strings.Count(out, "is-active"), "desktop and mobile entries")
	assert.Contains(t, out, `<html lang="en" class="dark">`)
	assert.Contains(t, out, "Light Mode")
	assert.NotContains(t, out, `class="nav-mobile" hidden`)
}

func TestNavEntries(t *testing.T) {
	r := newRenderer(t)
	data := r.Data(defaultPortfolio(t), view.Snapshot{Active: view.Skills})

	var labels []string
	for _, e := range data.Nav {
		labels = append(labels, e.Label)
		assert.Equal(t, e.Section == view.Skills, e.Active)
	}
	assert.Equal(t, []string{"Education", "Skills & Tools", "Experience", "Projects", "Certifications", "Contact"}, labels)
}

func TestPageWithoutCertifications(t *testing.T) {
	p := defaultPortfolio(t)
	p.Certifications = nil
	out := render(t, newRenderer(t), p, view.NewState().Snapshot())

	assert.NotContains(t, out, `id="certifications"`)
	assert.NotContains(t, out, `data-nav="certifications"`)
}

func TestProjectLinks(t *testing.T) {
	out := render(t, newRenderer(t), defaultPortfolio(t), view.NewState().Snapshot())

	assert.Contains(t, out, `href="https://github.com/SubhankarA8415/Web_Dev_Yelp-camp"`)
	assert.Contains(t, out, `href="https://web-dev-yelp-camp.onrender.com/" class="live"`)
	assert.Equal(t, 2, strings.Count(out, `class="live"`))
	assert.Contains(t, out, `href="mailto:subhankar.pandit2002@gmail.com"`)
}

func TestPageWithClient(t *testing.T) {
	out := render(t, newRenderer(t, WithClient(ClientPath)), defaultPortfolio(t), view.NewState().Snapshot())
	assert.Contains(t, out, `<script src="static/boot.js" data-client="app" defer></script>`)
	assert.Contains(t, out, `<link rel="stylesheet" href="static/style.css">`)
	assert.NotContains(t, out, `"/static/`, "references stay relative for sub-path hosting")
}

func TestMultiParagraphTextUsesBlockWrappers(t *testing.T) {
	p := defaultPortfolio(t)
	p.Profile.Summary = "one\n\ntwo"
	p.Projects[0].Description = "first\n\nsecond"
	out := render(t, newRenderer(t), p, view.NewState().Snapshot())

	assert.Contains(t, out, "<div class=\"summary\"><p>one</p>\n<p>two</p></div>")
	assert.Contains(t, out, "<div class=\"details\"><p>first</p>\n<p>second</p></div>")
	assert.NotContains(t, out, `<p class="summary">`)
	assert.NotContains(t, out, `<p class="details">`)
}

func TestPagePhoto(t *testing.T) {
	p := defaultPortfolio(t)
	assert.NotContains(t, render(t, newRenderer(t), p, view.NewState().Snapshot()), `class="photo"`)

	p.Profile.Photo = "photo.jpg"
	out := render(t, newRenderer(t), p, view.NewState().Snapshot())
	assert.Contains(t, out, `<img class="photo" src="photo.jpg" alt="Subhankar Pandit">`)
}

func TestExport(t *testing.T) {
	clientDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(clientDir, "app.wasm"), []byte("\x00asm"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(clientDir, "wasm_exec.js"), []byte("// runtime"), 0o644))

	out := filepath.Join(t.TempDir(), "public")
	res, err := Export(newRenderer(t), defaultPortfolio(t), out, clientDir)
	require.NoError(t, err)

	assert.True(t, res.Client)
	assert.Equal(t, 5, res.Files)
	for _, name := range []string{"index.html", "static/style.css", "static/boot.js", "app/app.wasm", "app/wasm_exec.js"} {
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(name)))
	}
	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `data-client="app"`)
}

func TestExportRefusesClientDirectory(t *testing.T) {
	dir := t.TempDir()
	wasm := filepath.Join(dir, "app.wasm")
	require.NoError(t, os.WriteFile(wasm, []byte("\x00asm"), 0o644))

	for name, out := range map[string]string{
		"same":   dir,
		"inside": filepath.Join(dir, "public"),
		"parent": filepath.Dir(dir),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Export(newRenderer(t), defaultPortfolio(t), out, dir)
			require.ErrorIs(t, err, ErrUnsafeOutput)
			assert.FileExists(t, wasm)
		})
	}
}

func TestExportRefusesWorkingDirectory(t *testing.T) {
	wd := filepath.Join(t.TempDir(), "site")
	require.NoError(t, os.MkdirAll(wd, 0o755))
	keep := filepath.Join(wd, "go.mod")
	require.NoError(t, os.WriteFile(keep, []byte("module site\n"), 0o644))
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	for _, out := range []string{".", "..", wd} {
		_, err := Export(newRenderer(t), defaultPortfolio(t), out, "")
		require.ErrorIs(t, err, ErrUnsafeOutput, out)
	}
	assert.FileExists(t, keep)

	res, err := Export(newRenderer(t), defaultPortfolio(t), "public", "")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(wd, "public", "index.html"))
	assert.Equal(t, "public", res.Dir)
}

func TestExportWithoutClient(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	require.NoError(t, os.MkdirAll(filepath.Join(out, "stale"), 0o755))

	res, err := Export(newRenderer(t, WithClient("/app")), defaultPortfolio(t), out, filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)

	assert.False(t, res.Client)
	assert.NoDirExists(t, filepath.Join(out, "stale"))
	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(index), "boot.js")
}
