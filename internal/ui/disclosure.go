package ui

import (
	"log/slog"
	"time"

	"github.com/Zachkp/zach-dev/internal/dom"
	"github.com/Zachkp/zach-dev/internal/sched"
)

const (
	labelMore = `<i class="fas fa-plus"></i> Show More Projects`
	labelLess = `<i class="fas fa-minus"></i> Show Less Projects`

	expandFadeDelay = 100 * time.Millisecond
	collapseDelay   = 300 * time.Millisecond
)

// Disclosure expands and collapses the project cards past VisibleProjects.
// Each toggle cancels timers still pending from the previous one.
type Disclosure struct {
	doc   dom.Document
	sched sched.Scheduler
	btn   dom.Element
	log   *slog.Logger

	expanded bool
	pending  []sched.Timer
}

// NewDisclosure returns a disclosure controller; btn may be nil, in which
// case Bind registers nothing.
func NewDisclosure(doc dom.Document, s sched.Scheduler, btn dom.Element, log *slog.Logger) *Disclosure {
	return &Disclosure{doc: doc, sched: s, btn: btn, log: log}
}

func (d *Disclosure) Bind() {
	if d.btn == nil {
		d.log.Info("show-more toggle absent, disclosure inert", "id", dom.IDShowMore)
		return
	}
	d.btn.On("click", func(dom.Event) { d.Toggle() })
}

func (d *Disclosure) Toggle() {
	d.pending = sched.StopAll(d.pending)
	if d.expanded {
		d.collapse()
	} else {
		d.expand()
	}
	d.log.Debug("disclosure toggled", "expanded", d.expanded)
}

func (d *Disclosure) expand() {
	// The extra cards are included even when not hidden: a collapse cancelled
	// by this toggle leaves them faded but still in layout.
	for i, c := range d.doc.QueryAll(dom.SelProjectCard) {
		if i < VisibleProjects && !c.HasClass(dom.ClassHidden) {
			continue
		}
		c.RemoveClass(dom.ClassHidden)
		fadeCard(c)
		d.pending = append(d.pending, d.sched.AfterFunc(expandFadeDelay, func() {
			showCard(c)
		}))
	}
	d.btn.SetHTML(labelLess)
	d.expanded = true
}

func (d *Disclosure) collapse() {
	for i, c := range d.doc.QueryAll(dom.SelProjectCard) {
		if i < VisibleProjects {
			continue
		}
		fadeCard(c)
		d.pending = append(d.pending, d.sched.AfterFunc(collapseDelay, func() {
			c.AddClass(dom.ClassHidden)
		}))
	}
	d.btn.SetHTML(labelMore)
	d.expanded = false
}

// Expanded reports whether the extra cards are shown.
func (d *Disclosure) Expanded() bool { return d.expanded }
