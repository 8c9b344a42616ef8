package ui

import (
	"log/slog"
	"time"

	"github.com/Zachkp/zach-dev/internal/content"
	"github.com/Zachkp/zach-dev/internal/dom"
	"github.com/Zachkp/zach-dev/internal/sched"
)

const (
	filterShowDelay = 10 * time.Millisecond
	// filterHideDelay matches the stylesheet's opacity/transform transition.
	filterHideDelay = 300 * time.Millisecond
)

// Filter shows the project cards whose category matches the selected filter
// button. Selecting a filter cancels layout changes still pending from the
// previous selection.
type Filter struct {
	doc   dom.Document
	sched sched.Scheduler
	log   *slog.Logger

	active  string
	pending []sched.Timer
}

func NewFilter(doc dom.Document, s sched.Scheduler, log *slog.Logger) *Filter {
	return &Filter{doc: doc, sched: s, log: log, active: content.FilterAll}
}

func (f *Filter) Bind() {
	f.doc.On("click", func(ev dom.Event) {
		if btn := closest(ev, dom.SelFilterBtn); btn != nil {
			f.Select(btn)
		}
	})
}

// Select activates btn and applies its data-filter tag to every card.
func (f *Filter) Select(btn dom.Element) {
	for _, b := range f.doc.QueryAll(dom.SelFilterBtn) {
		b.RemoveClass(dom.ClassActive)
	}
	btn.AddClass(dom.ClassActive)
	f.active = btn.Attr(dom.AttrFilter)
	f.pending = sched.StopAll(f.pending)

	cards := f.doc.QueryAll(dom.SelProjectCard)
	for _, c := range cards {
		c.SetStyle("display", "flex")
	}

	shown := 0
	for _, c := range cards {
		if f.active == content.FilterAll || f.active == c.Attr(dom.AttrCategory) {
			shown++
			showCard(c)
			f.pending = append(f.pending, f.sched.AfterFunc(filterShowDelay, func() {
				c.SetStyle("display", "flex")
			}))
			continue
		}
		fadeCard(c)
		f.pending = append(f.pending, f.sched.AfterFunc(filterHideDelay, func() {
			c.SetStyle("display", "none")
		}))
	}
	f.log.Debug("filter applied", "filter", f.active, "shown", shown, "cards", len(cards))
}

// Active is the selected filter tag.
func (f *Filter) Active() string { return f.active }
