package htmldom

import (
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/Zachkp/zach-dev/internal/dom"
)

// Element implements dom.Element over an *html.Node.
type Element struct {
	doc  *Document
	node *html.Node
}

func (e *Element) ID() string              { return attr(e.node, "id") }
func (e *Element) Attr(name string) string { return attr(e.node, name) }

// SetAttr sets or adds an attribute.
func (e *Element) SetAttr(key, val string) {
	for i, a := range e.node.Attr {
		if a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

func (e *Element) classes() []string {
	return strings.Fields(attr(e.node, "class"))
}

func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes(), name)
}

func (e *Element) AddClass(name string) {
	cs := e.classes()
	if slices.Contains(cs, name) {
		return
	}
	e.SetAttr("class", strings.Join(append(cs, name), " "))
}

func (e *Element) RemoveClass(name string) {
	cs := slices.DeleteFunc(e.classes(), func(c string) bool { return c == name })
	e.SetAttr("class", strings.Join(cs, " "))
}

func (e *Element) Text() string {
	var b strings.Builder
	walk(e.node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}

func (e *Element) clear() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
}

func (e *Element) SetText(text string) {
	e.clear()
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// SetHTML replaces the children with the parsed markup. Unparseable markup
// is inserted as text.
func (e *Element) SetHTML(markup string) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		e.SetText(markup)
		return
	}
	e.clear()
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
}

// HTML serializes the element's children.
func (e *Element) HTML() string {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

type declaration struct{ prop, value string }

func (e *Element) declarations() []declaration {
	var out []declaration
	for _, part := range strings.Split(attr(e.node, "style"), ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		out = append(out, declaration{prop: prop, value: strings.TrimSpace(value)})
	}
	return out
}

func (e *Element) Style(prop string) string {
	for _, d := range e.declarations() {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}

// SetStyle sets an inline style property; an empty value removes it.
func (e *Element) SetStyle(prop, value string) {
	decls := e.declarations()
	found := false
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value = value
			found = true
		}
	}
	if !found {
		decls = append(decls, declaration{prop: prop, value: value})
	}
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		if d.value == "" {
			continue
		}
		parts = append(parts, d.prop+": "+d.value)
	}
	e.SetAttr("style", strings.Join(parts, "; "))
}

func (e *Element) OffsetTop() float64 {
	for n := e.node; n != nil; n = n.Parent {
		if top, ok := e.doc.offsets[n]; ok {
			return top
		}
	}
	return 0
}

func (e *Element) BoundingTop() float64 {
	return e.OffsetTop() - e.doc.scrollY
}

func (e *Element) Closest(selector string) dom.Element {
	sel := e.doc.compile(selector)
	if sel == nil {
		return nil
	}
	for n := e.node; n != nil && n.Type == html.ElementNode; n = n.Parent {
		if sel.Match(n) {
			return e.doc.wrap(n)
		}
	}
	return nil
}

func (e *Element) On(event string, fn func(dom.Event)) {
	byEvent, ok := e.doc.listeners[e.node]
	if !ok {
		byEvent = make(map[string][]func(dom.Event))
		e.doc.listeners[e.node] = byEvent
	}
	byEvent[event] = append(byEvent[event], fn)
}
