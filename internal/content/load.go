package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid portfolio")

//go:embed default.yaml
var defaultYAML []byte

// Default is the portfolio compiled into the binary.
func Default() (*Portfolio, error) {
	p, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded portfolio: %w", err)
	}
	return p, nil
}

// DefaultYAML returns the source of the embedded portfolio, as a starting
// point for a content file.
func DefaultYAML() []byte {
	return bytes.Clone(defaultYAML)
}

// Load reads and validates a portfolio from a YAML file. An empty path
// yields the embedded default.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes YAML strictly; unknown keys are an error so typos in the
// content file do not silently drop a field.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields the page cannot render without. Links are not
// checked for well-formedness.
func (p *Portfolio) Validate() error {
	var problems []string
	if strings.TrimSpace(p.Profile.Name) == "" {
		problems = append(problems, "profile.name is required")
	}
	for i, e := range p.Education {
		if strings.TrimSpace(e.Degree) == "" {
			problems = append(problems, fmt.Sprintf("education[%d].degree is required", i))
		}
	}
	// Skills are matched caselessly: "Git" and "git" are the same tag.
	fold := cases.Fold()
	seen := make(map[string]bool, len(p.Skills))
	for i, s := range p.Skills {
		key := fold.String(strings.TrimSpace(s))
		switch {
		case key == "":
			problems = append(problems, fmt.Sprintf("skills[%d] is empty", i))
		case seen[key]:
			problems = append(problems, fmt.Sprintf("skills[%d] %q is duplicated", i, s))
		}
		seen[key] = true
	}
	for i, e := range p.Experience {
		if strings.TrimSpace(e.Title) == "" {
			problems = append(problems, fmt.Sprintf("experience[%d].title is required", i))
		}
	}
	for i, pr := range p.Projects {
		if strings.TrimSpace(pr.Title) == "" {
			problems = append(problems, fmt.Sprintf("projects[%d].title is required", i))
		}
		if strings.TrimSpace(pr.Repository) == "" {
			problems = append(problems, fmt.Sprintf("projects[%d].repository is required", i))
		}
	}
	for i, c := range p.Certifications {
		if strings.TrimSpace(c.Title) == "" {
			problems = append(problems, fmt.Sprintf("certifications[%d].title is required", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
