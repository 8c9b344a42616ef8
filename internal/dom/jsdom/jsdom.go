//go:build js && wasm
// +build js,wasm

// Package jsdom binds dom.Document and sched.Scheduler to the browser through
// syscall/js. Listeners and timers run as JS callbacks, so all controller code
// executes on the page's event loop.
package jsdom

import (
	"syscall/js"

	"github.com/Zachkp/zach-dev/internal/dom"
)

// Document is the browser document and window.
type Document struct {
	doc js.Value
	win js.Value
	// funcs keeps listener callbacks alive for the life of the page.
	funcs []js.Func
}

func New() *Document {
	return &Document{
		doc: js.Global().Get("document"),
		win: js.Global(),
	}
}

func (d *Document) wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Element{v: v, doc: d}
}

// call invokes a DOM method that may throw, such as querySelector with an
// invalid selector, and reports a thrown exception as null.
func call(v js.Value, method string, args ...any) (out js.Value) {
	defer func() {
		if r := recover(); r != nil {
			out = js.Null()
		}
	}()
	return v.Call(method, args...)
}

func (d *Document) Query(selector string) dom.Element {
	return d.wrap(call(d.doc, "querySelector", selector))
}

func (d *Document) QueryAll(selector string) []dom.Element {
	list := call(d.doc, "querySelectorAll", selector)
	if list.IsNull() {
		return nil
	}
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &Element{v: list.Index(i), doc: d})
	}
	return out
}

func (d *Document) ByID(id string) dom.Element {
	return d.wrap(d.doc.Call("getElementById", id))
}

// On registers on the window for scroll events and on the document otherwise.
func (d *Document) On(event string, fn func(dom.Event)) {
	target := d.doc
	if event == "scroll" {
		target = d.win
	}
	d.listen(target, event, fn)
}

func (d *Document) listen(target js.Value, event string, fn func(dom.Event)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(&Event{v: ev, doc: d})
		return nil
	})
	d.funcs = append(d.funcs, f)
	target.Call("addEventListener", event, f)
}

func (d *Document) ScrollY() float64     { return d.win.Get("scrollY").Float() }
func (d *Document) InnerHeight() float64 { return d.win.Get("innerHeight").Float() }

func (d *Document) ScrollTo(top float64, smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	d.win.Call("scrollTo", map[string]any{"top": top, "behavior": behavior})
}

// Event wraps a JS event object.
type Event struct {
	v   js.Value
	doc *Document
}

func (e *Event) Target() dom.Element {
	if e.v.IsUndefined() {
		return nil
	}
	t := e.v.Get("target")
	// Only elements have closest; the document and window do not.
	if t.IsNull() || t.IsUndefined() || t.Get("closest").IsUndefined() {
		return nil
	}
	return e.doc.wrap(t)
}

func (e *Event) PreventDefault() {
	if !e.v.IsUndefined() {
		e.v.Call("preventDefault")
	}
}
