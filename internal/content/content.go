// Package content holds the static records the portfolio page renders.
package content

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Praveen-pk-pro/Portfolio-pk/internal/sphere"
)

// ErrInvalidContent is returned by Site.Validate.
var ErrInvalidContent = errors.New("content: invalid")

type NavLink struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
}

type TechIcon struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

type Project struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	Link        string   `json:"link,omitempty" yaml:"link,omitempty"`
	GitHub      string   `json:"github,omitempty" yaml:"github,omitempty"`
	Image       string   `json:"image" yaml:"image"`
	Video       string   `json:"video,omitempty" yaml:"video,omitempty"`
}

type ExperienceItem struct {
	ID          int    `json:"id" yaml:"id"`
	Role        string `json:"role" yaml:"role"`
	Company     string `json:"company" yaml:"company"`
	Period      string `json:"period" yaml:"period"`
	Description string `json:"description" yaml:"description"`
}

type SkillCategory struct {
	Title  string   `json:"title" yaml:"title"`
	Skills []string `json:"skills" yaml:"skills"`
}

type Testimonial struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Role    string `json:"role" yaml:"role"`
	Company string `json:"company" yaml:"company"`
	Text    string `json:"text" yaml:"text"`
	Avatar  string `json:"avatar" yaml:"avatar"`
}

// Profile is the owner's identity and the hero/about copy.
type Profile struct {
	Name       string   `json:"name" yaml:"name"`
	Headline   string   `json:"headline" yaml:"headline"`
	Tagline    string   `json:"tagline" yaml:"tagline"`
	Email      string   `json:"email" yaml:"email"`
	GitHub     string   `json:"github" yaml:"github"`
	LinkedIn   string   `json:"linkedin" yaml:"linkedin"`
	About      []string `json:"about" yaml:"about"`
	Highlights []string `json:"highlights" yaml:"highlights"`
}

// Site is the full content set of the page.
type Site struct {
	Profile      Profile          `json:"profile" yaml:"profile"`
	NavLinks     []NavLink        `json:"nav_links" yaml:"nav_links"`
	TechIcons    []TechIcon       `json:"tech_icons" yaml:"tech_icons"`
	Projects     []Project        `json:"projects" yaml:"projects"`
	Experience   []ExperienceItem `json:"experience" yaml:"experience"`
	Skills       []SkillCategory  `json:"skills" yaml:"skills"`
	Testimonials []Testimonial    `json:"testimonials" yaml:"testimonials"`
}

// SphereIcons converts the tech icons into sphere items.
func (s Site) SphereIcons() []sphere.Icon {
	icons := make([]sphere.Icon, len(s.TechIcons))
	for i, t := range s.TechIcons {
		icons[i] = sphere.Icon{Label: t.Name, Asset: t.URL}
	}
	return icons
}

// Validate checks required fields and ID uniqueness.
func (s Site) Validate() error {
	if s.Profile.Name == "" {
		return fmt.Errorf("%w: profile name is required", ErrInvalidContent)
	}
	if len(s.TechIcons) == 0 {
		return fmt.Errorf("%w: at least one tech icon is required", ErrInvalidContent)
	}
	for i, t := range s.TechIcons {
		if t.Name == "" {
			return fmt.Errorf("%w: tech icon %d has no name", ErrInvalidContent, i)
		}
	}
	for i, l := range s.NavLinks {
		if l.Name == "" || l.Href == "" {
			return fmt.Errorf("%w: nav link %d needs a name and href", ErrInvalidContent, i)
		}
	}

	seen := make(map[int]bool)
	for _, p := range s.Projects {
		if p.Title == "" {
			return fmt.Errorf("%w: project %d has no title", ErrInvalidContent, p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate project id %d", ErrInvalidContent, p.ID)
		}
		seen[p.ID] = true
	}

	seen = make(map[int]bool)
	for _, e := range s.Experience {
		if e.Role == "" || e.Company == "" {
			return fmt.Errorf("%w: experience %d needs a role and company", ErrInvalidContent, e.ID)
		}
		if seen[e.ID] {
			return fmt.Errorf("%w: duplicate experience id %d", ErrInvalidContent, e.ID)
		}
		seen[e.ID] = true
	}

	for _, c := range s.Skills {
		if c.Title == "" {
			return fmt.Errorf("%w: skill category has no title", ErrInvalidContent)
		}
	}

	seen = make(map[int]bool)
	for _, t := range s.Testimonials {
		if t.Name == "" {
			return fmt.Errorf("%w: testimonial %d has no name", ErrInvalidContent, t.ID)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate testimonial id %d", ErrInvalidContent, t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// LoadYAML decodes a content set. Sections missing from the document keep
// the values already in base.
func LoadYAML(r io.Reader, base Site) (Site, error) {
	site := base
	if err := yaml.NewDecoder(r).Decode(&site); err != nil {
		return Site{}, fmt.Errorf("content: decode yaml: %w", err)
	}
	if err := site.Validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}
