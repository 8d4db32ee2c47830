package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	site := Default()
	require.NoError(t, site.Validate())

	assert.Len(t, site.TechIcons, 12)
	assert.Len(t, site.Projects, 4)
	assert.Len(t, site.Experience, 3)
	assert.Len(t, site.Skills, 3)
	assert.Len(t, site.Testimonials, 2)
	assert.Len(t, site.NavLinks, 5)

	icons := site.SphereIcons()
	require.Len(t, icons, 12)
	assert.Equal(t, "Java", icons[0].Label)
	assert.Equal(t, site.TechIcons[11].URL, icons[11].Asset)
}

func TestDefault_FreshCopies(t *testing.T) {
	a := Default()
	a.Projects[0].Title = "changed"
	assert.Equal(t, "E-Commerce Analytics Dashboard", Default().Projects[0].Title)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Site)
	}{
		{name: "no profile name", mutate: func(s *Site) { s.Profile.Name = "" }},
		{name: "no icons", mutate: func(s *Site) { s.TechIcons = nil }},
		{name: "unnamed icon", mutate: func(s *Site) { s.TechIcons[2].Name = "" }},
		{name: "bad nav link", mutate: func(s *Site) { s.NavLinks[0].Href = "" }},
		{name: "duplicate project", mutate: func(s *Site) { s.Projects[1].ID = s.Projects[0].ID }},
		{name: "untitled project", mutate: func(s *Site) { s.Projects[0].Title = "" }},
		{name: "duplicate experience", mutate: func(s *Site) { s.Experience[2].ID = 1 }},
		{name: "experience without company", mutate: func(s *Site) { s.Experience[0].Company = "" }},
		{name: "untitled skills", mutate: func(s *Site) { s.Skills[0].Title = "" }},
		{name: "duplicate testimonial", mutate: func(s *Site) { s.Testimonials[1].ID = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := Default()
			tt.mutate(&site)
			assert.ErrorIs(t, site.Validate(), ErrInvalidContent)
		})
	}
}

func TestLoadYAML(t *testing.T) {
	doc := `
profile:
  name: Jane Doe
tech_icons:
  - name: Go
    url: https://example.com/go.svg
  - name: Rust
    url: https://example.com/rust.svg
`
	site, err := LoadYAML(strings.NewReader(doc), Default())
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", site.Profile.Name)
	assert.Equal(t, "Full Stack Software Engineer", site.Profile.Headline)
	require.Len(t, site.TechIcons, 2)
	assert.Equal(t, "Rust", site.TechIcons[1].Name)
	assert.Len(t, site.Projects, 4)
}

func TestLoadYAML_Invalid(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("tech_icons: []\n"), Default())
	assert.ErrorIs(t, err, ErrInvalidContent)

	_, err = LoadYAML(strings.NewReader("profile: [1, 2"), Default())
	assert.Error(t, err)
}
