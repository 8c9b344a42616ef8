// Package htmldom is an in-memory dom.Document over a parsed HTML tree.
//
// It has no layout engine: vertical offsets are assigned with Place, and the
// window is a scroll offset plus a viewport height. Events are dispatched
// synchronously and bubble from the target up to the document.
package htmldom

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/Zachkp/zach-dev/internal/dom"
)

// DefaultInnerHeight is the viewport height of a fresh document.
const DefaultInnerHeight = 800

// Document implements dom.Document.
type Document struct {
	root        *html.Node
	scrollY     float64
	innerHeight float64

	offsets   map[*html.Node]float64
	elements  map[*html.Node]*Element
	listeners map[*html.Node]map[string][]func(dom.Event)
	docEvents map[string][]func(dom.Event)
	selectors map[string]cascadia.Selector

	// Scrolls records every ScrollTo call in order.
	Scrolls []Scroll
}

// Scroll is one recorded ScrollTo call.
type Scroll struct {
	Top    float64
	Smooth bool
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{
		root:        root,
		innerHeight: DefaultInnerHeight,
		offsets:     make(map[*html.Node]float64),
		elements:    make(map[*html.Node]*Element),
		listeners:   make(map[*html.Node]map[string][]func(dom.Event)),
		docEvents:   make(map[string][]func(dom.Event)),
		selectors:   make(map[string]cascadia.Selector),
	}, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func (d *Document) compile(selector string) cascadia.Selector {
	if sel, ok := d.selectors[selector]; ok {
		return sel
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		sel = nil
	}
	d.selectors[selector] = sel
	return sel
}

func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elements[n] = el
	return el
}

// element converts to the interface without producing a typed nil.
func (d *Document) element(n *html.Node) dom.Element {
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

func (d *Document) Query(selector string) dom.Element {
	sel := d.compile(selector)
	if sel == nil {
		return nil
	}
	return d.element(sel.MatchFirst(d.root))
}

func (d *Document) QueryAll(selector string) []dom.Element {
	sel := d.compile(selector)
	if sel == nil {
		return nil
	}
	nodes := sel.MatchAll(d.root)
	out := make([]dom.Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.wrap(n))
	}
	return out
}

func (d *Document) ByID(id string) dom.Element {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return d.element(found)
}

func (d *Document) On(event string, fn func(dom.Event)) {
	d.docEvents[event] = append(d.docEvents[event], fn)
}

func (d *Document) ScrollY() float64     { return d.scrollY }
func (d *Document) InnerHeight() float64 { return d.innerHeight }

// ScrollTo jumps to top immediately and dispatches a scroll event.
func (d *Document) ScrollTo(top float64, smooth bool) {
	d.Scrolls = append(d.Scrolls, Scroll{Top: top, Smooth: smooth})
	d.Scroll(top)
}

// SetInnerHeight sets the viewport height.
func (d *Document) SetInnerHeight(h float64) { d.innerHeight = h }

// Scroll sets the vertical scroll offset and dispatches a scroll event.
func (d *Document) Scroll(y float64) {
	d.scrollY = y
	ev := &event{}
	for _, fn := range d.docEvents["scroll"] {
		fn(ev)
	}
}

// Place assigns the document offset of the element with the given id.
// Descendants without their own placement inherit it.
func (d *Document) Place(id string, top float64) error {
	el := d.ByID(id)
	if el == nil {
		return fmt.Errorf("place %q: no such element", id)
	}
	d.offsets[el.(*Element).node] = top
	return nil
}

// Click dispatches a click on el and reports whether the default action was
// prevented.
func (d *Document) Click(el dom.Element) bool {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return false
	}
	ev := &event{target: e}
	for n := e.node; n != nil; n = n.Parent {
		for _, fn := range d.listeners[n]["click"] {
			fn(ev)
		}
	}
	for _, fn := range d.docEvents["click"] {
		fn(ev)
	}
	return ev.prevented
}

// Render serializes the current tree.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

type event struct {
	target    dom.Element
	prevented bool
}

func (e *event) Target() dom.Element { return e.target }
func (e *event) PreventDefault()     { e.prevented = true }

func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
