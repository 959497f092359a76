// Package content is the static content store: the biographical records the
// page renders, authored once in YAML and never mutated at runtime.
package content

import "github.com/SubhankarA8415/portfolio/internal/view"

// Portfolio is everything the page shows. Slices keep authored order, which
// is also display order.
type Portfolio struct {
	Profile        Profile         `yaml:"profile" json:"profile"`
	Education      []Education     `yaml:"education" json:"education"`
	Skills         []string        `yaml:"skills" json:"skills"`
	Experience     []Experience    `yaml:"experience" json:"experience"`
	Projects       []Project       `yaml:"projects" json:"projects"`
	Certifications []Certification `yaml:"certifications,omitempty" json:"certifications,omitempty"`
	Contact        Contact         `yaml:"contact" json:"contact"`
}

type Profile struct {
	Name     string `yaml:"name" json:"name"`
	Headline string `yaml:"headline" json:"headline"`
	// Summary is Markdown; a single paragraph renders inline.
	Summary string `yaml:"summary" json:"summary"`
	Photo   string `yaml:"photo,omitempty" json:"photo,omitempty"`
}

type Education struct {
	Degree      string `yaml:"degree" json:"degree"`
	Institution string `yaml:"institution" json:"institution"`
	Duration    string `yaml:"duration" json:"duration"`
	Score       string `yaml:"score,omitempty" json:"score,omitempty"`
}

type Experience struct {
	Title       string `yaml:"title" json:"title"`
	Duration    string `yaml:"duration" json:"duration"`
	Description string `yaml:"description" json:"description"`
}

// Project links are opaque strings rendered as-is.
type Project struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Tech        []string `yaml:"tech" json:"tech"`
	Repository  string   `yaml:"repository" json:"repository"`
	Live        string   `yaml:"live,omitempty" json:"live,omitempty"`
}

type Certification struct {
	Title string `yaml:"title" json:"title"`
	Date  string `yaml:"date" json:"date"`
	Link  string `yaml:"link,omitempty" json:"link,omitempty"`
}

type Contact struct {
	Location string `yaml:"location" json:"location"`
	Phone    string `yaml:"phone,omitempty" json:"phone,omitempty"`
	Email    string `yaml:"email" json:"email"`
	GitHub   string `yaml:"github,omitempty" json:"github,omitempty"`
	LinkedIn string `yaml:"linkedin,omitempty" json:"linkedin,omitempty"`
}

// MailTo is the email link for the contact section.
func (c Contact) MailTo() string {
	if c.Email == "" {
		return ""
	}
	return "mailto:" + c.Email
}

// Sections is the section order this portfolio renders. Certifications is
// the one optional section and only appears when there is something to list.
func (p *Portfolio) Sections() []view.Section {
	return view.Order(func(s view.Section) bool {
		return s != view.Certifications || len(p.Certifications) > 0
	})
}
