// Package site renders the portfolio page from content. The markup it emits
// is the contract the ui controllers are written against.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Zachkp/zach-dev/internal/content"
	"github.com/Zachkp/zach-dev/internal/dom/htmldom"
	"github.com/Zachkp/zach-dev/internal/sched"
	"github.com/Zachkp/zach-dev/internal/ui"
)

// PageTemplate is the name of the page in Templates.
const PageTemplate = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page is the template data for PageTemplate.
type Page struct {
	Name       string
	Roles      []string
	Tagline    template.HTML
	About      template.HTML
	Sections   []content.Section
	Stats      []content.Stat
	Highlights []content.Highlight
	Skills     []content.Skill
	Filters    []string
	Projects   []Project
	ShowMore   bool
}

type Project struct {
	Title       string
	Category    string
	Description template.HTML
}

// Site is a parsed template plus the page data built from content.
type Site struct {
	tmpl *template.Template
	page Page
}

func New(c *content.Content) (*Site, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	page, err := buildPage(c)
	if err != nil {
		return nil, err
	}
	return &Site{tmpl: tmpl, page: page}, nil
}

func buildPage(c *content.Content) (Page, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	render := func(field, src string) (template.HTML, error) {
		var buf bytes.Buffer
		if err := md.Convert([]byte(src), &buf); err != nil {
			return "", fmt.Errorf("render %s: %w", field, err)
		}
		// goldmark escapes raw HTML unless WithUnsafe is set.
		return template.HTML(buf.String()), nil
	}

	p := Page{
		Name:       c.Name,
		Roles:      c.Roles,
		Sections:   c.Sections,
		Stats:      c.Stats,
		Highlights: c.Highlights,
		Skills:     c.Skills,
		Filters:    append([]string{content.FilterAll}, c.Categories()...),
		ShowMore:   len(c.Projects) > ui.VisibleProjects,
	}
	var err error
	if p.Tagline, err = render("tagline", c.Tagline); err != nil {
		return Page{}, err
	}
	if p.About, err = render("about", c.About); err != nil {
		return Page{}, err
	}
	for _, proj := range c.Projects {
		desc, err := render("project "+proj.Title, proj.Description)
		if err != nil {
			return Page{}, err
		}
		p.Projects = append(p.Projects, Project{
			Title:       proj.Title,
			Category:    proj.Category,
			Description: desc,
		})
	}
	return p, nil
}

// Templates returns the parsed page templates.
func (s *Site) Templates() *template.Template { return s.tmpl }

// Page returns the data PageTemplate is executed with.
func (s *Site) Page() Page { return s.page }

// Render writes the full page.
func (s *Site) Render(w io.Writer) error {
	if err := s.tmpl.ExecuteTemplate(w, PageTemplate, s.page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// CheckContract renders the page into an in-memory document and mounts the
// interaction layer on it, failing if any element it needs is missing.
func (s *Site) CheckContract(roles []string, logger *slog.Logger) error {
	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		return err
	}
	doc, err := htmldom.Parse(&buf)
	if err != nil {
		return err
	}
	if _, err := ui.Mount(doc, sched.NewManual(), roles, ui.WithLogger(logger)); err != nil {
		return fmt.Errorf("page contract: %w", err)
	}
	return nil
}

// Static serves the embedded stylesheet.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
