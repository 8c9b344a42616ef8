// Package ui implements the interaction layer of the portfolio page: the
// role typewriter, mobile navigation and scroll-spy, the project filter, the
// "show more" disclosure, scroll-triggered reveal animations, and smooth
// in-page scrolling.
//
// Every controller owns its state privately and touches the page only through
// dom.Document, and every deferred effect goes through a sched.Scheduler, so
// the whole layer runs unchanged in the browser and under a manual clock.
package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Zachkp/zach-dev/internal/dom"
	"github.com/Zachkp/zach-dev/internal/logging"
	"github.com/Zachkp/zach-dev/internal/sched"
)

// ErrMissingElement is returned by Mount when the page lacks an element the
// controllers cannot work without.
var ErrMissingElement = errors.New("required element missing")

// Page holds the mounted controllers.
type Page struct {
	typewriter *Typewriter
	nav        *Nav
	filter     *Filter
	disclosure *Disclosure
	reveal     *Reveal
	scroll     *SmoothScroll
}

type options struct {
	logger *slog.Logger
}

// Option configures Mount.
type Option func(*options)

// WithLogger sets the logger used by every controller.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Mount wires all controllers to doc and runs the page-load initialization:
// initial card and skill-bar styling, the stat counters, and one scroll check.
// The typewriter starts after its initial delay.
func Mount(doc dom.Document, s sched.Scheduler, roles []string, opts ...Option) (*Page, error) {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger

	typing, err := required(doc.Query(dom.SelTypingText), dom.SelTypingText)
	if err != nil {
		return nil, err
	}
	links, err := required(doc.Query(dom.SelNavLinks), dom.SelNavLinks)
	if err != nil {
		return nil, err
	}
	toggle, err := required(doc.Query(dom.SelMenuToggle), dom.SelMenuToggle)
	if err != nil {
		return nil, err
	}
	skills, err := required(doc.ByID(dom.IDSkills), "#"+dom.IDSkills)
	if err != nil {
		return nil, err
	}
	projects, err := required(doc.ByID(dom.IDProjects), "#"+dom.IDProjects)
	if err != nil {
		return nil, err
	}

	p := &Page{
		typewriter: NewTypewriter(typing, s, roles, log),
		nav:        NewNav(doc, toggle, links, log),
		filter:     NewFilter(doc, s, log),
		disclosure: NewDisclosure(doc, s, doc.ByID(dom.IDShowMore), log),
		reveal:     NewReveal(doc, s, skills, projects, log),
		scroll:     NewSmoothScroll(doc, log),
	}

	p.typewriter.Start()
	p.nav.Bind()
	p.filter.Bind()
	p.disclosure.Bind()
	p.scroll.Bind()
	p.reveal.Bind()
	p.nav.BindSpy()

	initCards(doc)
	p.reveal.Init()

	log.Debug("page mounted",
		"roles", len(roles),
		"cards", len(doc.QueryAll(dom.SelProjectCard)))
	return p, nil
}

func required(el dom.Element, selector string) (dom.Element, error) {
	if el == nil {
		return nil, fmt.Errorf("%s: %w", selector, ErrMissingElement)
	}
	return el, nil
}

// closest resolves the delegated target of ev.
func closest(ev dom.Event, selector string) dom.Element {
	t := ev.Target()
	if t == nil {
		return nil
	}
	return t.Closest(selector)
}
