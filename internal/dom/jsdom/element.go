//go:build js && wasm
// +build js,wasm

package jsdom

import (
	"syscall/js"

	"github.com/Zachkp/zach-dev/internal/dom"
)

// Element wraps a JS Element.
type Element struct {
	v   js.Value
	doc *Document
}

func (e *Element) ID() string { return e.v.Get("id").String() }

func (e *Element) Attr(name string) string {
	a := e.v.Call("getAttribute", name)
	if a.IsNull() {
		return ""
	}
	return a.String()
}

func (e *Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *Element) AddClass(name string)    { e.v.Get("classList").Call("add", name) }
func (e *Element) RemoveClass(name string) { e.v.Get("classList").Call("remove", name) }

func (e *Element) Text() string          { return e.v.Get("textContent").String() }
func (e *Element) SetText(text string)   { e.v.Set("textContent", text) }
func (e *Element) SetHTML(markup string) { e.v.Set("innerHTML", markup) }

func (e *Element) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

func (e *Element) SetStyle(prop, value string) {
	e.v.Get("style").Call("setProperty", prop, value)
}

func (e *Element) OffsetTop() float64 { return e.v.Get("offsetTop").Float() }

func (e *Element) BoundingTop() float64 {
	return e.v.Call("getBoundingClientRect").Get("top").Float()
}

func (e *Element) Closest(selector string) dom.Element {
	return e.doc.wrap(call(e.v, "closest", selector))
}

func (e *Element) On(event string, fn func(dom.Event)) {
	e.doc.listen(e.v, event, fn)
}
