package ui

import (
	"log/slog"

	"github.com/Zachkp/zach-dev/internal/dom"
)

const (
	iconBars  = `<i class="fas fa-bars"></i>`
	iconClose = `<i class="fas fa-times"></i>`

	// spyOffset is how far above a section's top the scroll position starts
	// counting as inside it.
	spyOffset = 100
)

// Nav drives the mobile menu and the scroll-spy highlighting of nav links.
type Nav struct {
	doc    dom.Document
	toggle dom.Element
	links  dom.Element
	log    *slog.Logger

	menuOpen bool
}

func NewNav(doc dom.Document, toggle, links dom.Element, log *slog.Logger) *Nav {
	return &Nav{doc: doc, toggle: toggle, links: links, log: log}
}

// Bind registers the menu toggle and the delegated nav link listener.
func (n *Nav) Bind() {
	n.toggle.On("click", func(dom.Event) { n.Toggle() })
	n.doc.On("click", func(ev dom.Event) {
		if closest(ev, dom.SelNavLink) != nil {
			n.Close()
		}
	})
}

// BindSpy registers the scroll-spy.
func (n *Nav) BindSpy() {
	n.doc.On("scroll", func(dom.Event) { n.Spy() })
}

func (n *Nav) Toggle() {
	n.menuOpen = !n.menuOpen
	n.render()
}

func (n *Nav) Close() {
	n.menuOpen = false
	n.render()
}

func (n *Nav) render() {
	if n.menuOpen {
		n.links.AddClass(dom.ClassActive)
		n.toggle.SetHTML(iconClose)
		return
	}
	n.links.RemoveClass(dom.ClassActive)
	n.toggle.SetHTML(iconBars)
}

// Spy marks the nav link of the current section active. The current section
// is the last one, in document order, whose top minus spyOffset the scroll
// position has reached.
func (n *Nav) Spy() string {
	y := n.doc.ScrollY()
	current := ""
	for _, s := range n.doc.QueryAll(dom.SelSection) {
		if y >= s.OffsetTop()-spyOffset {
			current = s.ID()
		}
	}
	for _, a := range n.doc.QueryAll(dom.SelNavLink) {
		a.RemoveClass(dom.ClassActive)
		if current != "" && a.Attr(dom.AttrHref) == "#"+current {
			a.AddClass(dom.ClassActive)
		}
	}
	return current
}
