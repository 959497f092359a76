// Package view holds the client-side behaviour of the portfolio page: the
// view state (theme, menu, active section), the active-section tracker and
// the navigation handler. Nothing here touches the DOM directly; the
// browser package adapts these types to syscall/js.
package view

// Section identifies a content section. The value doubles as the id of the
// section's anchor element on the page.
type Section string

const (
	Home           Section = "home"
	Education      Section = "education"
	Skills         Section = "skills"
	Experience     Section = "experience"
	Projects       Section = "projects"
	Certifications Section = "certifications"
	Contact        Section = "contact"
)

// Sections is the full declaration order. Anchors are expected to be stacked
// on the page in this same order.
var Sections = []Section{Home, Education, Skills, Experience, Projects, Certifications, Contact}

var labels = map[Section]string{
	Home:           "Home",
	Education:      "Education",
	Skills:         "Skills & Tools",
	Experience:     "Experience",
	Projects:       "Projects",
	Certifications: "Certifications",
	Contact:        "Contact",
}

// Label is the navigation text for s, or "" for an unknown section.
func (s Section) Label() string {
	return labels[s]
}

// Valid reports whether s is one of the declared sections.
func (s Section) Valid() bool {
	_, ok := labels[s]
	return ok
}

// Parse converts an anchor id back into a Section.
func Parse(id string) (Section, bool) {
	s := Section(id)
	return s, s.Valid()
}

// Order returns the declared order without the sections for which present
// reports false. The result keeps declaration order.
func Order(present func(Section) bool) []Section {
	out := make([]Section, 0, len(Sections))
	for _, s := range Sections {
		if present(s) {
			out = append(out, s)
		}
	}
	return out
}
