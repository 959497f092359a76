package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePage is a synthetic page: fixed anchor spans, a mutable viewport and
// a set of scroll listeners fired by scrollBy/ScrollTo.
type fakePage struct {
	spans     Spans
	vp        Viewport
	nextID    int
	listeners map[int]func()
	scrolled  []Section
}

func newFakePage(spans Spans, height float64) *fakePage {
	return &fakePage{spans: spans, vp: Viewport{Height: height}, listeners: map[int]func(){}}
}

func (p *fakePage) Anchor(s Section) (Span, bool) { return p.spans.Anchor(s) }
func (p *fakePage) Viewport() Viewport            { return p.vp }

func (p *fakePage) OnScroll(fn func()) func() {
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	return func() { delete(p.listeners, id) }
}

func (p *fakePage) scrollTo(y float64) {
	p.vp.ScrollY = y
	for _, fn := range p.listeners {
		fn()
	}
}

// ScrollTo records the request; the test settles the viewport explicitly.
func (p *fakePage) ScrollTo(s Section) {
	p.scrolled = append(p.scrolled, s)
}

func scenarioSpans() Spans {
	return Spans{
		Home:      {Top: 0, Height: 800},
		Education: {Top: 800, Height: 600},
		Skills:    {Top: 1400, Height: 600},
	}
}

func TestProbe(t *testing.T) {
	assert.Equal(t, 400.0, Probe(Viewport{ScrollY: 0, Height: 800}))
	assert.Equal(t, 1100.0, Probe(Viewport{ScrollY: 700, Height: 800}))
}

func TestSpanContainsIsHalfOpen(t *testing.T) {
	sp := Span{Top: 800, Height: 600}
	assert.True(t, sp.Contains(800))
	assert.True(t, sp.Contains(1399.5))
	assert.False(t, sp.Contains(1400))
	assert.False(t, sp.Contains(799))
}

func TestLocate(t *testing.T) {
	spans := scenarioSpans()
	tests := []struct {
		name  string
		probe float64
		want  Section
		found bool
	}{
		{"top of page", 400, Home, true},
		{"education", 1100, Education, true},
		{"boundary belongs to lower section", 1400, Skills, true},
		{"below last span", 2500, "", false},
		{"above first span", -10, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Locate(Sections, spans, tt.probe)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocateFirstMatchWins(t *testing.T) {
	overlapping := Spans{
		Education: {Top: 0, Height: 1000},
		Skills:    {Top: 500, Height: 1000},
	}
	got, ok := Locate(Sections, overlapping, 700)
	require.True(t, ok)
	assert.Equal(t, Education, got)
}

func TestLocateSkipsMissingAnchors(t *testing.T) {
	spans := Spans{Contact: {Top: 0, Height: 100}}
	got, ok := Locate(Sections, spans, 50)
	require.True(t, ok)
	assert.Equal(t, Contact, got)
}

func TestCheckOrder(t *testing.T) {
	require.NoError(t, CheckOrder(Sections, scenarioSpans()))

	swapped := Spans{
		Home:      {Top: 0, Height: 800},
		Education: {Top: 1400, Height: 600},
		Skills:    {Top: 800, Height: 600},
	}
	err := CheckOrder(Sections, swapped)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfOrder))
}

func TestTrackerScenario(t *testing.T) {
	page := newFakePage(scenarioSpans(), 800)
	st := NewState()
	tr := NewTracker(st, page, page, Sections)

	tr.Mount()
	assert.Equal(t, Home, st.Active())

	page.scrollTo(700)
	assert.Equal(t, Education, st.Active())

	page.scrollTo(0)
	assert.Equal(t, Home, st.Active())
}

func TestTrackerEverySpanOffset(t *testing.T) {
	spans := scenarioSpans()
	page := newFakePage(spans, 800)
	st := NewState()
	NewTracker(st, page, page, Sections).Mount()

	for _, sec := range []Section{Home, Education, Skills} {
		sp := spans[sec]
		for probe := sp.Top; probe < sp.Bottom(); probe += 50 {
			page.scrollTo(probe - 400)
			assert.Equal(t, sec, st.Active(), "probe %g", probe)
		}
	}
}

func TestTrackerRetainsSectionBelowLastSpan(t *testing.T) {
	page := newFakePage(scenarioSpans(), 800)
	st := NewState()
	NewTracker(st, page, page, Sections).Mount()

	page.scrollTo(1500)
	require.Equal(t, Skills, st.Active())

	page.scrollTo(5000)
	assert.Equal(t, Skills, st.Active())
}

func TestTrackerKeepsHomeBeforeAnySection(t *testing.T) {
	spans := Spans{Education: {Top: 2000, Height: 500}}
	page := newFakePage(spans, 800)
	st := NewState()
	NewTracker(st, page, page, Sections).Mount()
	assert.Equal(t, Home, st.Active())
}

func TestTrackerUnmountStopsUpdates(t *testing.T) {
	page := newFakePage(scenarioSpans(), 800)
	st := NewState()
	tr := NewTracker(st, page, page, Sections)

	tr.Mount()
	tr.Mount()
	assert.Len(t, page.listeners, 1)

	tr.Unmount()
	assert.False(t, tr.Mounted())
	assert.Empty(t, page.listeners)

	page.scrollTo(700)
	assert.Equal(t, Home, st.Active())
}

func TestTrackerReportsOrderViolation(t *testing.T) {
	spans := Spans{
		Home:      {Top: 0, Height: 800},
		Education: {Top: 100, Height: 600},
	}
	page := newFakePage(spans, 800)
	tr := NewTracker(NewState(), page, page, Sections)
	var got error
	tr.OnOrderViolation = func(err error) { got = err }
	tr.Mount()
	assert.ErrorIs(t, got, ErrOutOfOrder)
}

func TestNavigatorConverges(t *testing.T) {
	page := newFakePage(scenarioSpans(), 800)
	st := NewState()
	NewTracker(st, page, page, Sections).Mount()
	nav := NewNavigator(st, page)

	nav.Go(Skills)
	require.Equal(t, []Section{Skills}, page.scrolled)
	assert.Equal(t, Home, st.Active(), "navigation does not set the active section")

	page.scrollTo(scenarioSpans()[Skills].Top)
	assert.Equal(t, Skills, st.Active())
}

func TestNavigatorClosesMenu(t *testing.T) {
	page := newFakePage(scenarioSpans(), 800)
	st := NewState()
	nav := NewNavigator(st, page)

	st.ToggleMenu()
	require.True(t, st.MenuOpen())
	nav.Go(Education)
	assert.False(t, st.MenuOpen())
}

func TestNavigatorMissingAnchorIsNoop(t *testing.T) {
	page := newFakePage(scenarioSpans(), 800)
	st := NewState()
	nav := NewNavigator(st, page)
	st.ToggleMenu()

	nav.Go(Certifications)
	nav.GoID("nowhere")
	assert.Empty(t, page.scrolled)
	assert.True(t, st.MenuOpen())
}

func TestToggles(t *testing.T) {
	st := NewState()
	assert.Equal(t, Snapshot{Active: Home}, st.Snapshot())

	st.ToggleDarkMode()
	assert.True(t, st.DarkMode())
	st.ToggleDarkMode()
	assert.False(t, st.DarkMode())

	st.ToggleMenu()
	assert.True(t, st.MenuOpen())
	assert.False(t, st.DarkMode())
}

func TestSubscribe(t *testing.T) {
	st := NewState()
	var got []Snapshot
	cancel := st.Subscribe(func(s Snapshot) { got = append(got, s) })

	st.ToggleDarkMode()
	st.setActiveSection(Home)
	st.setActiveSection(Projects)
	cancel()
	st.ToggleMenu()

	require.Len(t, got, 2)
	assert.True(t, got[0].DarkMode)
	assert.Equal(t, Projects, got[1].Active)
}

func TestOrderAndParse(t *testing.T) {
	order := Order(func(s Section) bool { return s != Certifications })
	assert.Equal(t, []Section{Home, Education, Skills, Experience, Projects, Contact}, order)

	s, ok := Parse("skills")
	assert.True(t, ok)
	assert.Equal(t, "Skills & Tools", s.Label())

	_, ok = Parse("skills & tools")
	assert.False(t, ok)
}
