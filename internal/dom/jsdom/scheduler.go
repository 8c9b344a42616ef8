//go:build js && wasm
// +build js,wasm

package jsdom

import (
	"syscall/js"
	"time"

	"github.com/Zachkp/zach-dev/internal/sched"
)

// Scheduler implements sched.Scheduler with setTimeout and setInterval.
type Scheduler struct{}

type timer struct {
	id    js.Value
	clear string
	cb    js.Func
	done  bool
}

func (t *timer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	js.Global().Call(t.clear, t.id)
	t.cb.Release()
	return true
}

func (Scheduler) AfterFunc(d time.Duration, f func()) sched.Timer {
	t := &timer{clear: "clearTimeout"}
	t.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		if t.done {
			return nil
		}
		t.done = true
		t.cb.Release()
		f()
		return nil
	})
	t.id = js.Global().Call("setTimeout", t.cb, d.Milliseconds())
	return t
}

func (Scheduler) Every(d time.Duration, f func()) sched.Timer {
	t := &timer{clear: "clearInterval"}
	t.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		if !t.done {
			f()
		}
		return nil
	})
	t.id = js.Global().Call("setInterval", t.cb, d.Milliseconds())
	return t
}
