// Package dom describes the slice of the browser document the portfolio
// controllers read and mutate. Implementations live in htmldom (in-memory,
// used by tests and the server) and jsdom (the browser, via syscall/js).
package dom

// Selectors and class names of the page contract.
const (
	SelMenuToggle  = ".menu-toggle"
	SelNavLinks    = ".nav-links"
	SelNavLink     = ".nav-links a"
	SelFilterBtn   = ".filter-btn"
	SelProjectCard = ".project-card"
	SelSkillLevel  = ".skill-level"
	SelStatNumber  = ".stat-number"
	SelStatValue   = ".stat-value"
	SelTypingText  = ".typing-text"
	SelSection     = "section"
	SelAnchor      = `a[href^="#"]`

	IDShowMore = "showMoreBtn"
	IDRoles    = "page-roles"
	IDHome     = "home"
	IDSkills   = "skills"
	IDProjects = "projects"

	ClassActive = "active"
	ClassHidden = "hidden"

	AttrFilter   = "data-filter"
	AttrCategory = "data-category"
	AttrLevel    = "data-level"
	AttrTarget   = "data-target"
	AttrValue    = "data-value"
	AttrHref     = "href"
)

// Element is a single node of the document.
type Element interface {
	ID() string
	Attr(name string) string

	HasClass(name string) bool
	AddClass(name string)
	RemoveClass(name string)

	Text() string
	SetText(text string)
	SetHTML(markup string)

	Style(prop string) string
	SetStyle(prop, value string)

	// OffsetTop is the element's distance from the top of the document.
	OffsetTop() float64
	// BoundingTop is the element's distance from the top of the viewport.
	BoundingTop() float64

	// Closest returns the nearest inclusive ancestor matching selector, or nil.
	Closest(selector string) Element
	On(event string, fn func(Event))
}

// Event is a dispatched DOM event.
type Event interface {
	Target() Element
	PreventDefault()
}

// Document is the page plus its window.
type Document interface {
	// Query returns the first element matching selector, or nil.
	Query(selector string) Element
	QueryAll(selector string) []Element
	ByID(id string) Element

	// On registers a document-level listener; scroll events are delivered here too.
	On(event string, fn func(Event))

	ScrollY() float64
	InnerHeight() float64
	ScrollTo(top float64, smooth bool)
}
