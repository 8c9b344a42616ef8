// Package content holds the externally supplied page data: the typewriter
// roles, the project cards and their category tags, skills, stats, and the
// page sections.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FilterAll is the filter tag that matches every category.
const FilterAll = "all"

//go:embed content.yaml
var defaultYAML []byte

type Content struct {
	Name       string      `yaml:"name"`
	Tagline    string      `yaml:"tagline"`
	Roles      []string    `yaml:"roles"`
	About      string      `yaml:"about"`
	Sections   []Section   `yaml:"sections"`
	Stats      []Stat      `yaml:"stats"`
	Highlights []Highlight `yaml:"highlights"`
	Skills     []Skill     `yaml:"skills"`
	Projects   []Project   `yaml:"projects"`
}

type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// Stat is a hero counter (.stat-number[data-target]).
type Stat struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// Highlight is a visual-panel counter (.stat-value[data-value]).
type Highlight struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

type Project struct {
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

var (
	ErrReservedCategory = errors.New("category is reserved")
	ErrMissingSection   = errors.New("required section missing")
)

// requiredSections are the section ids the interaction layer looks up.
var requiredSections = []string{"home", "skills", "projects"}

// Default returns the embedded content.
func Default() (*Content, error) {
	return Parse(defaultYAML)
}

// Load reads content from path, or the embedded default when path is empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates YAML content. Numeric fields are kept as the
// raw strings the page will carry in its data attributes.
func Parse(raw []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the parts of the content the page contract depends on.
func (c *Content) Validate() error {
	for i, p := range c.Projects {
		if p.Category == FilterAll {
			return fmt.Errorf("project %d (%s): %q: %w", i, p.Title, p.Category, ErrReservedCategory)
		}
	}
	for _, id := range requiredSections {
		if !c.hasSection(id) {
			return fmt.Errorf("section %q: %w", id, ErrMissingSection)
		}
	}
	return nil
}

func (c *Content) hasSection(id string) bool {
	for _, s := range c.Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Categories returns the distinct project categories in first-seen order.
func (c *Content) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.Projects {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// ParseRoles decodes a role list embedded in the page as a JSON array. A
// JSON null yields no roles.
func ParseRoles(raw []byte) ([]string, error) {
	var roles []string
	if err := yaml.Unmarshal(raw, &roles); err != nil {
		return nil, fmt.Errorf("decode roles: %w", err)
	}
	return roles, nil
}
